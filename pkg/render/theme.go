package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DescriptionPosition places a component's help text relative to its
// control. It is a theme-wide decision: one setting governs every renderer,
// never a per-component override.
type DescriptionPosition string

const (
	DescriptionTop    DescriptionPosition = "top"
	DescriptionBottom DescriptionPosition = "bottom"
	DescriptionRight  DescriptionPosition = "right"
)

// Valid reports whether the position is one of the allowed placements.
func (p DescriptionPosition) Valid() bool {
	switch p {
	case DescriptionTop, DescriptionBottom, DescriptionRight:
		return true
	default:
		return false
	}
}

// ThemeConfig is the resolved presentation configuration renderers consume.
type ThemeConfig struct {
	Theme   string
	Variant string

	DescriptionPosition DescriptionPosition
	Spacing             string

	Tokens   map[string]string
	CSSVars  map[string]string
	Partials map[string]string
	AssetURL func(key string) string
}

// DefaultTheme returns the built-in presentation defaults.
func DefaultTheme() *ThemeConfig {
	return &ThemeConfig{
		DescriptionPosition: DescriptionTop,
		Spacing:             "1rem",
	}
}

// ResolveTheme selects a theme/variant through a go-theme selector and
// adapts the selection into a ThemeConfig: manifest tokens become CSS custom
// properties, templates become partial lookups, and assets resolve through
// AssetURL. The descriptionPosition and spacing tokens drive the layout
// decorator.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*ThemeConfig, error) {
	if selector == nil {
		return DefaultTheme(), nil
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return DefaultTheme(), nil
	}

	return themeFromSelection(selection), nil
}

func themeFromSelection(selection *theme.Selection) *ThemeConfig {
	manifest := selection.Manifest

	tokens := mergeStringMaps(manifest.Tokens, nil)
	partials := mergeStringMaps(manifest.Templates, nil)
	assets := manifest.Assets.Files
	prefix := manifest.Assets.Prefix

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMaps(tokens, variant.Tokens)
		partials = mergeStringMaps(partials, variant.Templates)
		assets = mergeStringMaps(assets, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	cfg := &ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVarsFrom(tokens),
		Partials: partials,
	}

	cfg.DescriptionPosition = DescriptionPosition(tokens["descriptionPosition"])
	if !cfg.DescriptionPosition.Valid() {
		cfg.DescriptionPosition = DescriptionTop
	}
	cfg.Spacing = tokens["spacing"]
	if cfg.Spacing == "" {
		cfg.Spacing = DefaultTheme().Spacing
	}

	assetPrefix := strings.TrimRight(prefix, "/")
	assetFiles := assets
	cfg.AssetURL = func(key string) string {
		file, ok := assetFiles[key]
		if !ok || file == "" {
			return ""
		}
		if assetPrefix == "" {
			return file
		}
		return assetPrefix + "/" + file
	}

	return cfg
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}

func cssVarsFrom(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+key] = value
	}
	return out
}
