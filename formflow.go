// Package formflow assembles the form engine: load a form definition, open a
// session over its component tree, render it, and preview its notifications.
package formflow

import (
	"context"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/formdef"
	"github.com/goliatone/go-formflow/pkg/notification"
	"github.com/goliatone/go-formflow/pkg/placeholder"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/renderers/vanilla"
	"github.com/goliatone/go-formflow/pkg/substitute"
	"github.com/goliatone/go-formflow/pkg/valuestore"
)

// Mode re-exports the session modes for callers that only import the root
// package.
type Mode = valuestore.Mode

const (
	ModeDesign  Mode = valuestore.ModeDesign
	ModeRuntime Mode = valuestore.ModeRuntime
)

// Option configures a session.
type Option func(*config)

type config struct {
	storeOptions  []valuestore.StoreOption
	themeSelector theme.ThemeSelector
}

// WithStoreOptions forwards options to the session value store.
func WithStoreOptions(options ...valuestore.StoreOption) Option {
	return func(cfg *config) {
		cfg.storeOptions = append(cfg.storeOptions, options...)
	}
}

// WithThemeSelector resolves the form's theme spec through a go-theme
// selector ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
	}
}

// Session binds one form to a component tree, a value store, and its
// notification manager.
type Session struct {
	Form          *formdef.Form
	Tree          *component.Tree
	Values        *valuestore.Store
	Notifications *notification.Manager

	mode  Mode
	theme *render.ThemeConfig
}

// NewSession validates the form content and opens a session in the given
// mode.
func NewSession(form *formdef.Form, mode Mode, options ...Option) (*Session, error) {
	if form == nil {
		return nil, fmt.Errorf("formflow: form is nil")
	}

	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	tree, err := form.Tree()
	if err != nil {
		return nil, err
	}

	manager, err := form.Notifications()
	if err != nil {
		return nil, err
	}

	themeConfig, err := render.ResolveTheme(cfg.themeSelector, form.Theme.Name, form.Theme.Variant)
	if err != nil {
		return nil, err
	}

	return &Session{
		Form:          form,
		Tree:          tree,
		Values:        valuestore.New(tree, mode, cfg.storeOptions...),
		Notifications: manager,
		mode:          mode,
		theme:         themeConfig,
	}, nil
}

// Mode reports the session mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Theme returns the resolved theme configuration.
func (s *Session) Theme() *render.ThemeConfig {
	return s.theme
}

// RenderOptions builds the render options for this session.
func (s *Session) RenderOptions() render.Options {
	return render.Options{
		DesignMode: s.mode == ModeDesign,
		Theme:      s.theme,
	}
}

// Placeholders generates the token list for this form: fixed system tokens
// first, then one token per value component in document order.
func (s *Session) Placeholders() []placeholder.Placeholder {
	return placeholder.Generate(s.Tree)
}

// TokenData maps every known token to its current value: system tokens from
// the supplied system data, form-field tokens from the value store.
func (s *Session) TokenData(system map[string]string) map[string]string {
	data := make(map[string]string, len(system))
	for key, value := range system {
		data[key] = value
	}

	placeholders := s.Placeholders()
	comps := s.Tree.ValueComponents()
	idx := 0
	for _, ph := range placeholders {
		if ph.Category != placeholder.CategoryFormFields {
			continue
		}
		if idx >= len(comps) {
			break
		}
		data[placeholder.Token(ph.Key)] = tokenValue(s.Values.InitialValue(comps[idx].ID))
		idx++
	}
	return data
}

// RenderHTML renders the session through a vanilla renderer.
func (s *Session) RenderHTML(ctx context.Context, options ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, s.Tree, s.Values, s.RenderOptions())
}

// Render dispatches to any registered renderer by name.
func (s *Session) Render(ctx context.Context, registry *render.Registry, name string) ([]byte, error) {
	if registry == nil {
		return nil, fmt.Errorf("formflow: renderer registry is nil")
	}
	renderer, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, s.Tree, s.Values, s.RenderOptions())
}

// PreviewNotifications renders every enabled template bound to the trigger
// against the session's token data.
func (s *Session) PreviewNotifications(trigger notification.Trigger, system map[string]string) []notification.Rendered {
	data := s.TokenData(system)
	templates := s.Notifications.ForTrigger(trigger)
	out := make([]notification.Rendered, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, notification.Render(tpl, data))
	}
	return out
}

func tokenValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// Substitute applies the session's token data to arbitrary template text.
func (s *Session) Substitute(template string, system map[string]string) string {
	return substitute.Apply(template, s.TokenData(system))
}
