// Package placeholder derives the token vocabulary a form exposes to
// notification templates: a fixed set of system/context tokens plus one
// token per value-holding component, deduplicated and stable across runs.
package placeholder

// Category groups placeholders for display and export.
type Category string

const (
	CategoryBasic      Category = "basic info"
	CategorySubmitter  Category = "submitter info"
	CategorySystem     Category = "system info"
	CategoryFormFields Category = "form fields"
)

// Placeholder is one entry of the token vocabulary. Key is normalized text
// with no whitespace or punctuation, unique within one generation pass.
type Placeholder struct {
	Key      string
	Label    string
	Category Category
}

// Token returns the wrapped form substituted into templates: {key}.
func (p Placeholder) Token() string {
	return Token(p.Key)
}

// Token wraps a key in curly braces with no surrounding whitespace.
func Token(key string) string {
	return "{" + key + "}"
}
