package placeholder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/placeholder"
)

func TestGenerate_CJKLabelKeepsIdeographs(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "客户姓名"},
	})

	fields := formFields(placeholder.Generate(tree))
	if len(fields) != 1 {
		t.Fatalf("expected 1 field token, got %d", len(fields))
	}
	if fields[0].Key != "客户姓名" {
		t.Fatalf("key mismatch: %q", fields[0].Key)
	}
	if fields[0].Token() != "{客户姓名}" {
		t.Fatalf("token mismatch: %q", fields[0].Token())
	}
}

func TestGenerate_DuplicateLabelsGetSuffixes(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "Email"},
		{ID: "c2", Type: component.TypeInput, Label: "Email"},
		{ID: "c3", Type: component.TypeInput, Label: "Email"},
	})

	fields := formFields(placeholder.Generate(tree))
	keys := []string{fields[0].Key, fields[1].Key, fields[2].Key}
	if diff := cmp.Diff([]string{"email", "email1", "email2"}, keys); diff != "" {
		t.Fatalf("suffix sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "Name"},
		{ID: "c2", Type: component.TypeInput, Label: "Name"},
		{ID: "c3", Type: component.TypeNumber},
		{ID: "c4", Type: component.TypeSelect, Placeholder: "Pick one"},
	})

	first := placeholder.Generate(tree)
	second := placeholder.Generate(tree)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("generation not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerate_UniqueAcrossWholeVocabulary(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "Submitter name"},
		{ID: "c2", Type: component.TypeInput, Label: "submitter_name"},
		{ID: "c3", Type: component.TypeInput, Label: "!!!"},
		{ID: "c4", Type: component.TypeInput, Label: "???"},
	})

	seen := make(map[string]struct{})
	for _, p := range placeholder.Generate(tree) {
		if _, dup := seen[p.Key]; dup {
			t.Fatalf("duplicate key %q", p.Key)
		}
		seen[p.Key] = struct{}{}
	}
}

func TestGenerate_PunctuationOnlyLabelFallsBack(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "!!!"},
	})

	fields := formFields(placeholder.Generate(tree))
	if fields[0].Key != "field" {
		t.Fatalf("expected fallback key, got %q", fields[0].Key)
	}
}

func TestGenerate_LabelResolutionOrder(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "Name", Placeholder: "hint"},
		{ID: "c2", Type: component.TypeInput, Placeholder: "Company name"},
		{ID: "c3", Type: component.TypeNumber},
	})

	fields := formFields(placeholder.Generate(tree))
	labels := []string{fields[0].Label, fields[1].Label, fields[2].Label}
	if diff := cmp.Diff([]string{"Name", "Company name", "number field"}, labels); diff != "" {
		t.Fatalf("label resolution mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ExcludesStructural(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "d", Type: component.TypeDivider},
		{ID: "g", Type: component.TypeGroup, Label: "Group"},
		{ID: "c1", Type: component.TypeInput, ParentID: "g", Label: "Inside"},
	})

	fields := formFields(placeholder.Generate(tree))
	if len(fields) != 1 || fields[0].Label != "Inside" {
		t.Fatalf("structural leak: %#v", fields)
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Customer Name", "customername"},
		{"客户姓名", "客户姓名"},
		{"Order #42!", "order42"},
		{"___", ""},
		{"Ünïcode", "ünïcode"},
	}
	for _, tc := range cases {
		if got := placeholder.NormalizeKey(tc.in); got != tc.want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExportText_GroupsByCategory(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "Name"},
	})

	var buf bytes.Buffer
	if err := placeholder.ExportText(&buf, placeholder.Generate(tree)); err != nil {
		t.Fatalf("export: %v", err)
	}

	out := buf.String()
	for _, section := range []string{"basic info", "submitter info", "system info", "form fields"} {
		if !strings.Contains(out, section+"\n") {
			t.Fatalf("missing section %q in:\n%s", section, out)
		}
	}
	if !strings.Contains(out, "{name}\tName") {
		t.Fatalf("missing form field row in:\n%s", out)
	}
	if strings.Index(out, "basic info") > strings.Index(out, "form fields") {
		t.Fatalf("category order wrong:\n%s", out)
	}
}

func TestSampleData_TypeAppropriateValues(t *testing.T) {
	tree := component.MustNewTree([]component.Component{
		{ID: "c1", Type: component.TypeDate, Label: "Due date"},
		{ID: "c2", Type: component.TypeNumber, Label: "Amount"},
		{ID: "c3", Type: component.TypeSelect, Label: "Plan", Options: []component.Option{
			{Label: "Basic", Value: "basic"},
		}},
	})

	data := placeholder.SampleData(tree)
	if data["{duedate}"] != "2024-01-15" {
		t.Fatalf("date sample mismatch: %q", data["{duedate}"])
	}
	if data["{amount}"] != "1,250.00" {
		t.Fatalf("amount sample mismatch: %q", data["{amount}"])
	}
	if data["{plan}"] != "Basic" {
		t.Fatalf("select sample mismatch: %q", data["{plan}"])
	}
	if data["{submitter_name}"] == "" {
		t.Fatalf("system samples missing")
	}
}

func formFields(all []placeholder.Placeholder) []placeholder.Placeholder {
	var out []placeholder.Placeholder
	for _, p := range all {
		if p.Category == placeholder.CategoryFormFields {
			out = append(out, p)
		}
	}
	return out
}
