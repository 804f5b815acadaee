package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a template id has no record.
var ErrNotFound = fmt.Errorf("notification: template not found")

// Manager owns the notification template list of one form. It is a pure
// in-memory CRUD layer; the surrounding application persists the list as
// part of the Form resource's settings.
type Manager struct {
	mu        sync.Mutex
	templates []Template
	now       func() time.Time
	newID     func() string
}

// ManagerOption customises a Manager.
type ManagerOption func(*Manager)

// WithClock overrides the time source. Tests pin CreatedAt with it.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) ManagerOption {
	return func(m *Manager) {
		if newID != nil {
			m.newID = newID
		}
	}
}

// NewManager constructs a manager seeded with the form's existing templates.
func NewManager(templates []Template, options ...ManagerOption) *Manager {
	m := &Manager{
		templates: append([]Template(nil), templates...),
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// List returns a copy of every template in insertion order.
func (m *Manager) List() []Template {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Template(nil), m.templates...)
}

// Get returns the template with the given id.
func (m *Manager) Get(id string) (Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tpl := range m.templates {
		if tpl.ID == id {
			return tpl, nil
		}
	}
	return Template{}, fmt.Errorf("notification: template %q: %w", id, ErrNotFound)
}

// Create validates the record, assigns a fresh id and creation time, and
// appends it. Validation failures abort before any mutation.
func (m *Manager) Create(tpl Template) (Template, error) {
	if errs := tpl.Validate(); errs != nil {
		return Template{}, errs
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tpl.ID = m.newID()
	tpl.CreatedAt = m.now()
	m.templates = append(m.templates, tpl)
	return tpl, nil
}

// Update replaces the record in place, preserving its id and CreatedAt.
func (m *Manager) Update(tpl Template) (Template, error) {
	if errs := tpl.Validate(); errs != nil {
		return Template{}, errs
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for idx, existing := range m.templates {
		if existing.ID == tpl.ID {
			tpl.CreatedAt = existing.CreatedAt
			m.templates[idx] = tpl
			return tpl, nil
		}
	}
	return Template{}, fmt.Errorf("notification: template %q: %w", tpl.ID, ErrNotFound)
}

// Duplicate clones a record under a new id with " (copy)" appended to its
// name.
func (m *Manager) Duplicate(id string) (Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.templates {
		if existing.ID != id {
			continue
		}
		clone := existing
		clone.ID = m.newID()
		clone.Name = existing.Name + " (copy)"
		clone.CreatedAt = m.now()
		clone.CustomEmails = append([]string(nil), existing.CustomEmails...)
		clone.Triggers = append([]Trigger(nil), existing.Triggers...)
		m.templates = append(m.templates, clone)
		return clone, nil
	}
	return Template{}, fmt.Errorf("notification: template %q: %w", id, ErrNotFound)
}

// Delete removes a record. Irreversible; interactive surfaces confirm with
// the author first.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for idx, existing := range m.templates {
		if existing.ID == id {
			m.templates = append(m.templates[:idx], m.templates[idx+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification: template %q: %w", id, ErrNotFound)
}

// ForTrigger returns the enabled templates whose trigger set contains the
// given trigger. Exact membership, no priority or ordering scheme.
func (m *Manager) ForTrigger(trigger Trigger) []Template {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Template
	for _, tpl := range m.templates {
		if tpl.Enabled && tpl.HasTrigger(trigger) {
			out = append(out, tpl)
		}
	}
	return out
}

// Bootstrap installs the default templates when the form has none: an
// admin-notify template and a submitter confirmation that starts disabled.
// A UX nicety so authors never face an empty list; a no-op otherwise.
func (m *Manager) Bootstrap() []Template {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.templates) > 0 {
		return nil
	}

	defaults := []Template{
		{
			ID:        m.newID(),
			Name:      "New submission",
			Subject:   "New submission from {submitter_name}",
			Content:   "A new entry arrived on {submission_date} at {submission_time}.",
			To:        RecipientAdmin,
			Triggers:  []Trigger{TriggerSubmit},
			Enabled:   true,
			CreatedAt: m.now(),
		},
		{
			ID:        m.newID(),
			Name:      "Submission confirmation",
			Subject:   "We received your submission",
			Content:   "Hello {submitter_name}, thanks for your submission to {site_title}.",
			To:        RecipientSubmitter,
			Triggers:  []Trigger{TriggerSubmit},
			Enabled:   false,
			CreatedAt: m.now(),
		},
	}
	m.templates = append(m.templates, defaults...)
	return append([]Template(nil), defaults...)
}
