package valuestore

import (
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-formflow/pkg/component"
)

// Mode selects how a store behaves during a form session.
type Mode string

const (
	// ModeDesign is the authoring/preview state: writes mutate the local
	// store only and dependency rules never run.
	ModeDesign Mode = "design"
	// ModeRuntime is the live form-filling state: writes additionally run
	// the configured Rules capability before listeners are notified.
	ModeRuntime Mode = "runtime"
)

// Listener receives the new value after a component's entry changes.
type Listener func(value any)

// Rules is the external dependency-rule capability consumed in runtime mode.
// Apply runs after the value is written and before listeners fire; it may
// call SetValue on other components, which re-enters the store synchronously.
type Rules interface {
	Apply(store *Store, componentID string, value any)
}

// RulesFunc adapts a function into a Rules capability.
type RulesFunc func(store *Store, componentID string, value any)

// Apply calls the underlying function.
func (fn RulesFunc) Apply(store *Store, componentID string, value any) {
	fn(store, componentID, value)
}

// maxNotifyDepth bounds synchronous re-entrant fan-out. The rule grammar is
// external and nothing stops two rules from writing each other's components;
// past this depth the write still lands but fan-out stops and a warning is
// logged.
const maxNotifyDepth = 64

// Store is the single source of truth for one form session's current values,
// plus the change-notification channel renderers subscribe to. Each session
// owns exactly one Store; stores are never shared across sessions.
type Store struct {
	mu        sync.Mutex
	mode      Mode
	tree      *component.Tree
	values    map[string]any
	listeners map[string]map[int]Listener
	nextToken int
	depth     int

	rules  Rules
	logger *zap.Logger
}

// StoreOption customises a Store at construction time.
type StoreOption func(*Store)

// WithRules wires the external dependency-rule capability. Ignored in design
// mode.
func WithRules(rules Rules) StoreOption {
	return func(s *Store) {
		s.rules = rules
	}
}

// WithLogger sets the diagnostics logger used for coercion corrections and
// fan-out guard trips. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs an empty store bound to a component tree. Values materialise
// through SetValue; defaults surface via InitialValue without being written.
func New(tree *component.Tree, mode Mode, options ...StoreOption) *Store {
	store := &Store{
		mode:      mode,
		tree:      tree,
		values:    make(map[string]any),
		listeners: make(map[string]map[int]Listener),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

// Mode returns the session mode the store was created with.
func (s *Store) Mode() Mode {
	return s.mode
}

// Value returns the current value for a component id. No side effects.
func (s *Store) Value(componentID string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[componentID]
	return value, ok
}

// SetValue overwrites a component's value unconditionally (last write wins),
// coercing it to the component's cardinality first, then fans out to rules
// (runtime mode) and listeners. Fan-out is synchronous and re-entrant: a
// listener may call SetValue on another component and that component's
// listeners run before control returns here.
func (s *Store) SetValue(componentID string, value any) {
	s.mu.Lock()

	comp, ok := s.tree.ByID(componentID)
	if !ok {
		s.mu.Unlock()
		s.logger.Debug("value for unknown component dropped",
			zap.String("component", componentID))
		return
	}
	if comp.Type.Structural() {
		s.mu.Unlock()
		s.logger.Debug("structural components hold no value",
			zap.String("component", componentID),
			zap.String("type", string(comp.Type)))
		return
	}

	coerced, changed := coerce(comp, value)
	if changed {
		s.logger.Info("value coerced to component cardinality",
			zap.String("component", componentID),
			zap.Bool("multi", comp.MultiValue()))
	}
	s.values[componentID] = coerced

	if s.depth >= maxNotifyDepth {
		s.depth = 0
		s.mu.Unlock()
		s.logger.Warn("value fan-out depth exceeded, possible rule cycle",
			zap.String("component", componentID),
			zap.Int("max_depth", maxNotifyDepth))
		return
	}
	s.depth++

	var fns []Listener
	for _, fn := range s.listeners[componentID] {
		fns = append(fns, fn)
	}
	rules := s.rules
	mode := s.mode
	s.mu.Unlock()

	if mode == ModeRuntime && rules != nil {
		rules.Apply(s, componentID, coerced)
	}
	for _, fn := range fns {
		fn(coerced)
	}

	s.mu.Lock()
	if s.depth > 0 {
		s.depth--
	}
	s.mu.Unlock()
}

// InitialValue resolves the value a renderer should start from: the stored
// value when present and non-nil, else the component's static default, else
// a type-appropriate empty value ("" for scalars, an empty list for
// multi-value components).
func (s *Store) InitialValue(componentID string) any {
	comp, ok := s.tree.ByID(componentID)
	if !ok || comp.Type.Structural() {
		return nil
	}

	s.mu.Lock()
	stored, exists := s.values[componentID]
	s.mu.Unlock()

	if exists && stored != nil {
		// A stored value that coerces to nil (an empty list on a scalar
		// component, for instance) counts as absent.
		if value, _ := coerce(comp, stored); value != nil {
			return value
		}
	}

	if def := defaultFor(comp); def != nil {
		if value, _ := coerce(comp, def); value != nil {
			return value
		}
	}

	if comp.MultiValue() {
		return []any{}
	}
	return ""
}

// Snapshot returns a copy of the current values, keyed by component id.
func (s *Store) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.values))
	for id, value := range s.values {
		out[id] = value
	}
	return out
}

// defaultFor derives the static default: defaultSelected options for choice
// components, the declared default value otherwise.
func defaultFor(comp component.Component) any {
	if comp.Type.Choice() && len(comp.Options) > 0 {
		var selected []any
		for _, opt := range comp.Options {
			if opt.DefaultSelected {
				selected = append(selected, opt.Value)
			}
		}
		if len(selected) == 0 {
			return comp.Default
		}
		if comp.MultiValue() {
			return selected
		}
		return selected[0]
	}
	return comp.Default
}
