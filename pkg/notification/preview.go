package notification

import "github.com/goliatone/go-formflow/pkg/substitute"

// Rendered is a template after token substitution.
type Rendered struct {
	Subject string
	Content string
}

// Render substitutes the data map into a template's subject and content.
// Data keys are wrapped tokens; unknown tokens stay verbatim.
func Render(tpl Template, data map[string]string) Rendered {
	return Rendered{
		Subject: substitute.Apply(tpl.Subject, data),
		Content: substitute.Apply(tpl.Content, data),
	}
}
