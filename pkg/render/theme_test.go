package render_test

import (
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formflow/pkg/render"
)

type stubSelector struct {
	selection *theme.Selection
	err       error
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, s.err
}

func TestResolveTheme_NilSelectorFallsBackToDefault(t *testing.T) {
	cfg, err := render.ResolveTheme(nil, "any", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.DescriptionPosition != render.DescriptionTop {
		t.Fatalf("default position mismatch: %q", cfg.DescriptionPosition)
	}
}

func TestResolveTheme_AdaptsSelection(t *testing.T) {
	manifest := &theme.Manifest{
		Name: "acme",
		Tokens: map[string]string{
			"brand":               "#123456",
			"descriptionPosition": "right",
			"spacing":             "0.75rem",
		},
		Templates: map[string]string{
			"forms.shell": "themes/acme/shell.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{
					Files: map[string]string{"stylesheet": "theme.dark.css"},
				},
			},
		},
	}
	selector := &stubSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	cfg, err := render.ResolveTheme(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if cfg.DescriptionPosition != render.DescriptionRight {
		t.Fatalf("descriptionPosition token ignored: %q", cfg.DescriptionPosition)
	}
	if cfg.Spacing != "0.75rem" {
		t.Fatalf("spacing token ignored: %q", cfg.Spacing)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not merged: %q", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css var not derived: %q", cfg.CSSVars["--brand"])
	}
	if cfg.Partials["forms.shell"] != "themes/acme/shell.tmpl" {
		t.Fatalf("partial lost: %q", cfg.Partials["forms.shell"])
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("asset url mismatch: %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset should resolve empty, got %q", got)
	}
}

func TestResolveTheme_InvalidPositionFallsBack(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme: "acme",
		Manifest: &theme.Manifest{
			Tokens: map[string]string{"descriptionPosition": "diagonal"},
		},
	}}

	cfg, err := render.ResolveTheme(selector, "acme", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.DescriptionPosition != render.DescriptionTop {
		t.Fatalf("invalid position accepted: %q", cfg.DescriptionPosition)
	}
}
