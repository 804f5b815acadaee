package component_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/component"
)

func TestParseContent(t *testing.T) {
	raw := []byte(`[
		{"id":"c1","type":"input","label":"客户姓名","defaultValue":"张三"},
		{"id":"c2","type":"select","label":"Plan","multiple":true,"options":[
			{"label":"Basic","value":"basic","defaultSelected":true},
			{"label":"Pro","value":"pro"}
		]},
		{"id":"c3","type":"number","label":"Amount","precision":2,"thousandsSeparator":true}
	]`)

	components, err := component.ParseContent(raw)
	if err != nil {
		t.Fatalf("parse content: %v", err)
	}
	if len(components) != 3 {
		t.Fatalf("expected 3 components, got %d", len(components))
	}

	if components[0].Label != "客户姓名" {
		t.Fatalf("label mismatch: %q", components[0].Label)
	}
	if !components[1].Multiple || len(components[1].Options) != 2 {
		t.Fatalf("select options not decoded: %#v", components[1])
	}
	if got := components[2].DecimalPlaces(); got != 2 {
		t.Fatalf("expected precision 2, got %d", got)
	}
	if !components[2].ThousandsSeparator {
		t.Fatalf("thousands separator flag lost")
	}
}

func TestParseContent_AbsentPrecisionPreservesFull(t *testing.T) {
	components, err := component.ParseContent([]byte(`[{"id":"n1","type":"number"}]`))
	if err != nil {
		t.Fatalf("parse content: %v", err)
	}
	if got := components[0].DecimalPlaces(); got != -1 {
		t.Fatalf("expected -1 for absent precision, got %d", got)
	}
}

func TestContentRoundTrip(t *testing.T) {
	precision := 0
	in := []component.Component{
		{ID: "c1", Type: component.TypeInput, Label: "Name", Default: "n/a"},
		{ID: "c2", Type: component.TypeNumber, Label: "Count", Precision: &precision},
		{ID: "g1", Type: component.TypeGroup, Label: "Group"},
		{ID: "c3", Type: component.TypeCheckbox, ParentID: "g1", Options: []component.Option{
			{Label: "A", Value: "a"},
		}},
	}

	data, err := component.EncodeContent(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := component.ParseContent(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseContent_Empty(t *testing.T) {
	components, err := component.ParseContent(nil)
	if err != nil {
		t.Fatalf("parse nil: %v", err)
	}
	if components != nil {
		t.Fatalf("expected nil components, got %#v", components)
	}
}
