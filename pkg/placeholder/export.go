package placeholder

import (
	"fmt"
	"io"
)

// ExportText writes the vocabulary as a plain-text reference document: one
// section per category in first-appearance order, one "{token}<tab>label"
// row per placeholder.
func ExportText(w io.Writer, placeholders []Placeholder) error {
	var order []Category
	grouped := make(map[Category][]Placeholder)
	for _, p := range placeholders {
		if _, seen := grouped[p.Category]; !seen {
			order = append(order, p.Category)
		}
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	for idx, category := range order {
		if idx > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("placeholder: export: %w", err)
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", category); err != nil {
			return fmt.Errorf("placeholder: export: %w", err)
		}
		for _, p := range grouped[category] {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Token(), p.Label); err != nil {
				return fmt.Errorf("placeholder: export: %w", err)
			}
		}
	}
	return nil
}
