// Package tui drives an interactive terminal fill session over a component
// tree. Answers flow through the value store, so rules and listeners fire
// exactly as in any runtime session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/valuestore"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts for every value component in document order and returns the
// final value snapshot. Design mode skips prompting and prints a read-only
// preview instead.
func (r *Renderer) Render(ctx context.Context, tree *component.Tree, store *valuestore.Store, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if tree == nil {
		return nil, errors.New("tui: component tree is nil")
	}
	if store == nil {
		return nil, errors.New("tui: value store is nil")
	}

	for _, comp := range tree.Roots() {
		var err error
		if options.DesignMode {
			err = r.previewComponent(ctx, tree, store, comp, 0)
		} else {
			err = r.promptComponent(ctx, tree, store, comp)
		}
		if err != nil {
			return nil, err
		}
	}

	return r.serialize(store.Snapshot())
}

func (r *Renderer) promptComponent(ctx context.Context, tree *component.Tree, store *valuestore.Store, comp component.Component) error {
	switch comp.Type {
	case component.TypeDivider:
		return r.driver.Info(ctx, strings.Repeat("-", 40))
	case component.TypeHTML:
		return nil
	case component.TypeSteps, component.TypeGroup, component.TypeColumnContainer:
		if comp.Label != "" {
			if err := r.driver.Info(ctx, "== "+comp.Label+" =="); err != nil {
				return err
			}
		}
		for _, child := range tree.Children(comp.ID) {
			if err := r.promptComponent(ctx, tree, store, child); err != nil {
				return err
			}
		}
		return nil
	case component.TypeCheckbox:
		return r.promptMulti(ctx, store, comp)
	case component.TypeSelect:
		if comp.Multiple {
			return r.promptMulti(ctx, store, comp)
		}
		return r.promptChoice(ctx, store, comp)
	case component.TypeRadio:
		return r.promptChoice(ctx, store, comp)
	case component.TypeTextarea, component.TypeEditor:
		return r.promptTextArea(ctx, store, comp)
	case component.TypeNumber:
		return r.promptNumber(ctx, store, comp)
	case component.TypeRate:
		return r.promptRate(ctx, store, comp)
	case component.TypeUpload:
		return r.promptUpload(ctx, store, comp)
	case component.TypeInput, component.TypeDate, component.TypeAuthor,
		component.TypeArticle, component.TypePaymentMethod,
		component.TypeInvoiceInfo, component.TypeContractName:
		return r.promptInput(ctx, store, comp)
	default:
		return fmt.Errorf("tui: component %q has unknown type %q", comp.ID, comp.Type)
	}
}

func (r *Renderer) promptInput(ctx context.Context, store *valuestore.Store, comp component.Component) error {
	response, err := r.driver.Input(ctx, InputConfig{
		Message: comp.ResolveLabel(),
		Default: stringValue(store.InitialValue(comp.ID)),
		Help:    comp.Description,
	})
	if err != nil {
		return err
	}
	store.SetValue(comp.ID, response)
	return nil
}

func (r *Renderer) promptTextArea(ctx context.Context, store *valuestore.Store, comp component.Component) error {
	response, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: comp.ResolveLabel(),
		Default: stringValue(store.InitialValue(comp.ID)),
		Help:    comp.Description,
	})
	if err != nil {
		return err
	}
	store.SetValue(comp.ID, response)
	return nil
}

func (r *Renderer) promptNumber(ctx context.Context, store *valuestore.Store, comp component.Component) error {
	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: comp.ResolveLabel(),
			Default: stringValue(store.InitialValue(comp.ID)),
			Help:    comp.Description,
		})
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			store.SetValue(comp.ID, "")
			return nil
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: not a number", comp.ResolveLabel())); err != nil {
				return err
			}
			continue
		}
		store.SetValue(comp.ID, trimmed)
		return nil
	}
}

func (r *Renderer) promptRate(ctx context.Context, store *valuestore.Store, comp component.Component) error {
	max := int(comp.Max)
	if max <= 0 {
		max = 5
	}
	for {
		input, err := r.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s (0-%d)", comp.ResolveLabel(), max),
			Default: stringValue(store.InitialValue(comp.ID)),
			Help:    comp.Description,
		})
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			store.SetValue(comp.ID, "")
			return nil
		}
		rating, err := strconv.Atoi(trimmed)
		if err != nil || rating < 0 || rating > max {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s: expected 0-%d", comp.ResolveLabel(), max)); err != nil {
				return err
			}
			continue
		}
		store.SetValue(comp.ID, trimmed)
		return nil
	}
}

func (r *Renderer) promptUpload(ctx context.Context, store *valuestore.Store, comp component.Component) error {
	response, err := r.driver.Input(ctx, InputConfig{
		Message: comp.ResolveLabel(),
		Help:    "Comma-separated file paths",
	})
	if err != nil {
		return err
	}

	var files []any
	for _, path := range strings.Split(response, ",") {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	store.SetValue(comp.ID, files)
	return nil
}

func (r *Renderer) promptChoice(ctx context.Context, store *valuestore.Store, comp component.Component) error {
	labels, values := optionLists(comp)
	defaultIdx := -1
	if current := stringValue(store.InitialValue(comp.ID)); current != "" {
		defaultIdx = indexOf(values, current)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      comp.ResolveLabel(),
		Options:      labels,
		DefaultIndex: defaultIdx,
		Help:         comp.Description,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(values) {
		store.SetValue(comp.ID, "")
		return nil
	}
	store.SetValue(comp.ID, values[idx])
	return nil
}

func (r *Renderer) promptMulti(ctx context.Context, store *valuestore.Store, comp component.Component) error {
	labels, values := optionLists(comp)
	defaults := indicesOf(values, stringList(store.InitialValue(comp.ID)))

	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  comp.ResolveLabel(),
		Options:  labels,
		Defaults: defaults,
		Help:     comp.Description,
	})
	if err != nil {
		return err
	}

	selected := make([]any, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(values) {
			selected = append(selected, values[idx])
		}
	}
	store.SetValue(comp.ID, selected)
	return nil
}

func (r *Renderer) previewComponent(ctx context.Context, tree *component.Tree, store *valuestore.Store, comp component.Component, depth int) error {
	pad := strings.Repeat("  ", depth)

	switch comp.Type {
	case component.TypeDivider:
		return r.driver.Info(ctx, pad+strings.Repeat("-", 40))
	case component.TypeHTML:
		return nil
	case component.TypeSteps, component.TypeGroup, component.TypeColumnContainer:
		if comp.Label != "" {
			if err := r.driver.Info(ctx, pad+"== "+comp.Label+" =="); err != nil {
				return err
			}
		}
		for _, child := range tree.Children(comp.ID) {
			if err := r.previewComponent(ctx, tree, store, child, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		line := fmt.Sprintf("%s%s [%s]", pad, comp.ResolveLabel(), comp.Type)
		if value := stringValue(store.InitialValue(comp.ID)); value != "" {
			line += ": " + value
		}
		return r.driver.Info(ctx, line)
	}
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return []byte(prettyPrint(values)), nil
	}
	return json.Marshal(values)
}

func optionLists(comp component.Component) (labels, values []string) {
	labels = make([]string, 0, len(comp.Options))
	values = make([]string, 0, len(comp.Options))
	for _, option := range comp.Options {
		label := option.Label
		if label == "" {
			label = option.Value
		}
		labels = append(labels, label)
		values = append(values, option.Value)
	}
	return labels, values
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		if len(v) == 0 {
			return ""
		}
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func stringList(value any) []string {
	list, ok := value.([]any)
	if !ok {
		if s := stringValue(value); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprint(item))
	}
	return out
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&builder, "%s=%v\n", key, values[key])
	}
	return builder.String()
}
