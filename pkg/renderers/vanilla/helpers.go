package vanilla

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		if len(v) == 0 {
			return ""
		}
		return valueString(v[0])
	case float64:
		return trimFloat(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// valueSet flattens a stored value into the set of selected option values.
// Scalars become single-element sets so choice controls tolerate either
// cardinality.
func valueSet(value any) map[string]struct{} {
	out := make(map[string]struct{})
	switch v := value.(type) {
	case nil:
	case []any:
		for _, item := range v {
			if s := valueString(item); s != "" {
				out[s] = struct{}{}
			}
		}
	default:
		if s := valueString(v); s != "" {
			out[s] = struct{}{}
		}
	}
	return out
}

// formatNumber renders a numeric string for display: fixed decimal places
// when decimals >= 0, comma grouping when thousands is set. Non-numeric
// input reports ok=false and the caller keeps the raw value.
func formatNumber(raw string, decimals int, thousands bool) (string, bool) {
	if decimals < 0 && !thousands {
		return "", false
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", false
	}

	formatted := strconv.FormatFloat(parsed, 'f', decimals, 64)
	if thousands {
		formatted = groupThousands(formatted)
	}
	return formatted, true
}

func groupThousands(formatted string) string {
	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	intPart := formatted
	fracPart := ""
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 {
		intPart = formatted[:dot]
		fracPart = formatted[dot:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var builder strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		builder.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(intPart[i : i+3])
	}
	return sign + builder.String() + fracPart
}

func trimFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func styleAttr(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(style))
	for key := range style {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+":"+style[key])
	}
	return strings.Join(parts, ";")
}
