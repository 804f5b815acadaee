// Package substitute replaces {token} occurrences in text templates with
// values from a flat data map. Substitution is literal and single-level: a
// value that itself contains token-looking text is inserted verbatim, never
// re-expanded. That matches how sent notifications behave and is the
// documented contract, not an oversight.
package substitute

import "strings"

// Segment is one piece of a scanned template: either literal text or a
// candidate token (including its braces).
type Segment struct {
	Token bool
	Text  string
}

// Scan splits a template into literal and token segments in a single pass.
// A token is a brace-wrapped run with no whitespace, no nested braces, and
// at least one character between the braces. Anything else stays literal.
func Scan(template string) []Segment {
	var segments []Segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{Text: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	for i < len(template) {
		if template[i] != '{' {
			literal.WriteByte(template[i])
			i++
			continue
		}

		end := tokenEnd(template, i)
		if end < 0 {
			literal.WriteByte(template[i])
			i++
			continue
		}

		flush()
		segments = append(segments, Segment{Token: true, Text: template[i : end+1]})
		i = end + 1
	}
	flush()

	return segments
}

// tokenEnd returns the index of the closing brace for a token starting at
// start, or -1 when the run is not a well-formed token.
func tokenEnd(template string, start int) int {
	for i := start + 1; i < len(template); i++ {
		switch template[i] {
		case '}':
			if i == start+1 {
				return -1
			}
			return i
		case '{', ' ', '\t', '\n', '\r':
			return -1
		}
	}
	return -1
}

// Apply replaces every token present in data with its value. Data keys are
// the wrapped token form ({key}). Tokens absent from the map are left
// untouched verbatim: a missing field value is a data-availability issue,
// not an engine fault.
func Apply(template string, data map[string]string) string {
	if template == "" || len(data) == 0 {
		return template
	}

	var builder strings.Builder
	builder.Grow(len(template))
	for _, segment := range Scan(template) {
		if segment.Token {
			if value, ok := data[segment.Text]; ok {
				builder.WriteString(value)
				continue
			}
		}
		builder.WriteString(segment.Text)
	}
	return builder.String()
}
