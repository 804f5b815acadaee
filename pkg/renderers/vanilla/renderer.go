// Package vanilla renders a component tree as a self-contained HTML form.
// Controls are built with an exhaustive per-type dispatch; the outer shell
// comes from an embedded pongo2 template bundle.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/render"
	rendertemplate "github.com/goliatone/go-formflow/pkg/render/template"
	"github.com/goliatone/go-formflow/pkg/render/template/pongo"
	"github.com/goliatone/go-formflow/pkg/valuestore"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate shell bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the shell bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer overrides the policy applied to rich text and raw html
// components.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		policy:     bluemonday.UGCPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, policy: cfg.policy}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render walks the tree in document order, builds field markup per
// component, and wraps the result in the form shell template.
func (r *Renderer) Render(_ context.Context, tree *component.Tree, store *valuestore.Store, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla: template renderer is nil")
	}
	if tree == nil {
		return nil, fmt.Errorf("vanilla: component tree is nil")
	}
	if store == nil {
		return nil, fmt.Errorf("vanilla: value store is nil")
	}

	theme := options.EffectiveTheme()
	fields := &fieldRenderer{
		tree:     tree,
		store:    store,
		theme:    theme,
		policy:   r.policy,
		disabled: options.DesignMode,
	}

	var body strings.Builder
	for _, comp := range tree.Roots() {
		markup, err := fields.render(comp)
		if err != nil {
			return nil, err
		}
		body.WriteString(markup)
	}

	stylesheet := ""
	if theme.AssetURL != nil {
		stylesheet = theme.AssetURL("stylesheet")
	}

	result, err := r.templates.RenderTemplate("templates/form", map[string]any{
		"fields":      body.String(),
		"css_vars":    cssVarBlock(theme.CSSVars),
		"stylesheet":  stylesheet,
		"spacing":     theme.Spacing,
		"theme":       theme.Theme,
		"variant":     theme.Variant,
		"design_mode": options.DesignMode,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla: render form shell: %w", err)
	}
	return []byte(result), nil
}

func cssVarBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(vars[key])
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}
