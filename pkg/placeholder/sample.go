package placeholder

import (
	"strings"

	"github.com/goliatone/go-formflow/pkg/component"
)

// systemSamples are the canned values backing system tokens in previews.
var systemSamples = map[string]string{
	"submission_id":     "20240115-0042",
	"submission_date":   "2024-01-15",
	"submission_time":   "14:30",
	"submitter_name":    "Zhang San",
	"submitter_email":   "zhang.san@example.com",
	"submitter_ip":      "203.0.113.7",
	"submitter_company": "Acme Ltd",
	"site_title":        "Example Studio",
	"site_url":          "https://example.com",
}

// SampleData builds a synthetic substitution map for preview rendering: the
// same keys Generate produces, each assigned a type-appropriate canned value.
// Keys are the wrapped token form expected by the substitution engine.
func SampleData(tree *component.Tree) map[string]string {
	data := make(map[string]string)

	// Generate emits form-field tokens in the same document order as the
	// tree walk, so pairing by index is stable.
	components := tree.ValueComponents()
	idx := 0
	for _, p := range Generate(tree) {
		if p.Category != CategoryFormFields {
			if sample, ok := systemSamples[p.Key]; ok {
				data[p.Token()] = sample
			}
			continue
		}
		if idx < len(components) {
			data[p.Token()] = sampleFor(components[idx])
		}
		idx++
	}

	return data
}

func sampleFor(comp component.Component) string {
	switch comp.Type {
	case component.TypeNumber:
		return "1,250.00"
	case component.TypeDate:
		return "2024-01-15"
	case component.TypeRate:
		return "5"
	case component.TypeSelect, component.TypeRadio:
		if len(comp.Options) > 0 {
			return comp.Options[0].Label
		}
		return "Option A"
	case component.TypeCheckbox:
		if len(comp.Options) > 0 {
			labels := make([]string, 0, len(comp.Options))
			for _, opt := range comp.Options {
				labels = append(labels, opt.Label)
			}
			return strings.Join(labels, ", ")
		}
		return "Option A, Option B"
	case component.TypeUpload:
		return "document.pdf"
	case component.TypeEditor, component.TypeArticle:
		return "Sample rich text content"
	case component.TypeAuthor:
		return "Zhang San"
	case component.TypePaymentMethod:
		return "Bank transfer"
	case component.TypeInvoiceInfo:
		return "INV-2024-0042"
	case component.TypeContractName:
		return "Service Agreement"
	default:
		return "Sample text"
	}
}
