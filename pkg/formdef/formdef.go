// Package formdef defines the serializable form document: component content
// plus theme and notification settings, loadable from JSON or YAML.
package formdef

import (
	"fmt"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/notification"
)

// ThemeSpec names the theme and variant a form renders with.
type ThemeSpec struct {
	Name    string `json:"name,omitempty"`
	Variant string `json:"variant,omitempty"`
}

// NotificationSettings carries the form's notification templates.
type NotificationSettings struct {
	Templates []notification.Template `json:"templates,omitempty"`
}

// Settings groups non-content form configuration.
type Settings struct {
	Notification NotificationSettings `json:"notification,omitempty"`
}

// Form is one complete form document.
type Form struct {
	ID      string                `json:"id,omitempty"`
	Name    string                `json:"name,omitempty"`
	Content []component.Component `json:"content"`
	Theme   ThemeSpec             `json:"theme,omitempty"`
	Setting Settings              `json:"settings,omitempty"`
}

// Tree builds the validated component tree from the form content.
func (f *Form) Tree() (*component.Tree, error) {
	tree, err := component.NewTree(f.Content)
	if err != nil {
		return nil, fmt.Errorf("formdef: form %q: %w", f.Name, err)
	}
	return tree, nil
}

// Notifications returns a manager seeded with the form's templates. Invalid
// templates reject the whole load so a form never carries half-valid
// settings.
func (f *Form) Notifications(options ...notification.ManagerOption) (*notification.Manager, error) {
	for _, tpl := range f.Setting.Notification.Templates {
		if errs := tpl.Validate(); errs != nil {
			return nil, fmt.Errorf("formdef: form %q: template %q: %w", f.Name, tpl.Name, errs)
		}
	}
	return notification.NewManager(f.Setting.Notification.Templates, options...), nil
}
