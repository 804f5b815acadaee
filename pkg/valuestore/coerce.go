package valuestore

import "github.com/goliatone/go-formflow/pkg/component"

// coerce aligns a value with the component's cardinality. Multi-value
// components wrap scalars into a one-element list; scalar components collapse
// lists to their first element. Mismatches are legitimate (an author can flip
// a field between single and multi after data exists) so they are corrected,
// never rejected. The returned bool reports whether the shape changed.
//
// Already-correct shapes pass through untouched, so coercion is idempotent.
func coerce(comp component.Component, value any) (any, bool) {
	if comp.MultiValue() {
		return toList(value)
	}
	return toScalar(value)
}

func toList(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return []any{}, true
	case []any:
		return v, false
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return []any{v}, true
	}
}

func toScalar(value any) (any, bool) {
	switch v := value.(type) {
	case []any:
		if len(v) == 0 {
			return nil, true
		}
		return v[0], true
	case []string:
		if len(v) == 0 {
			return nil, true
		}
		return v[0], true
	default:
		return v, false
	}
}
