package placeholder

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-formflow/pkg/component"
)

// Generate produces the complete token vocabulary for a form: the fixed
// system tokens followed by one token per value-holding component, in
// document order. Running it twice over an unchanged tree yields identical
// results, and no two entries share a key within one pass.
func Generate(tree *component.Tree) []Placeholder {
	out := SystemPlaceholders()

	used := make(map[string]struct{}, len(out))
	for _, p := range out {
		used[p.Key] = struct{}{}
	}

	for _, comp := range tree.ValueComponents() {
		label := comp.ResolveLabel()
		key := uniqueKey(NormalizeKey(label), used)
		used[key] = struct{}{}
		out = append(out, Placeholder{
			Key:      key,
			Label:    label,
			Category: CategoryFormFields,
		})
	}

	return out
}

// NormalizeKey strips every character that is not a CJK ideograph, a Latin
// letter, or a digit, and lower-cases the remainder. The result can be empty
// for labels made entirely of punctuation; callers fall back to "field".
func NormalizeKey(label string) string {
	var builder strings.Builder
	builder.Grow(len(label))
	for _, r := range label {
		switch {
		case unicode.Is(unicode.Han, r):
			builder.WriteRune(r)
		case unicode.Is(unicode.Latin, r):
			builder.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// uniqueKey resolves collisions by appending an incrementing integer suffix:
// the first holder keeps the bare key, later ones get key1, key2, and so on.
func uniqueKey(key string, used map[string]struct{}) string {
	if key == "" {
		key = "field"
	}
	if _, taken := used[key]; !taken {
		return key
	}
	for n := 1; ; n++ {
		candidate := key + strconv.Itoa(n)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}
