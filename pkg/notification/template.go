package notification

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Recipient selects who a template addresses.
type Recipient string

const (
	RecipientAdmin     Recipient = "admin"
	RecipientSubmitter Recipient = "submitter"
	RecipientCustom    Recipient = "custom"
)

// Trigger gates whether a template fires for a form lifecycle event.
type Trigger string

const (
	TriggerSubmit Trigger = "submit"
	TriggerUpdate Trigger = "update"
	TriggerDelete Trigger = "delete"
)

// Template is one notification template record scoped to a form. Subject and
// Content may reference the form's token vocabulary; stale tokens referencing
// removed components are tolerated and stay verbatim when substituted.
type Template struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Subject      string    `json:"subject" validate:"required"`
	Content      string    `json:"content"`
	To           Recipient `json:"to" validate:"required,oneof=admin submitter custom"`
	CustomEmails []string  `json:"customEmails,omitempty" validate:"dive,email"`
	Triggers     []Trigger `json:"triggers" validate:"dive,oneof=submit update delete"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasTrigger reports exact membership of the trigger in the template's set.
func (t Template) HasTrigger(trigger Trigger) bool {
	for _, candidate := range t.Triggers {
		if candidate == trigger {
			return true
		}
	}
	return false
}

// FieldErrors maps json field names to validation messages. Returned before
// any persistence is attempted; no partial save occurs.
type FieldErrors map[string][]string

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	var parts []string
	for field, messages := range fe {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return "notification: invalid template: " + strings.Join(parts, ", ")
}

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
		validatorInstance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validatorInstance.RegisterStructValidation(customRecipientRule, Template{})
	})
	return validatorInstance
}

// customRecipientRule enforces that a custom recipient carries at least one
// address.
func customRecipientRule(sl validator.StructLevel) {
	tpl := sl.Current().Interface().(Template)
	if tpl.To == RecipientCustom && len(tpl.CustomEmails) == 0 {
		sl.ReportError(tpl.CustomEmails, "customEmails", "CustomEmails", "required_for_custom", "")
	}
}

// Validate checks a template and returns field-level errors keyed by json
// field name, or nil when the record is valid.
func (t Template) Validate() FieldErrors {
	err := getValidator().Struct(t)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"template": {err.Error()}}
	}

	out := make(FieldErrors, len(verrs))
	for _, ve := range verrs {
		field := ve.Field()
		// Slice element errors report as "customEmails[0]"; group them
		// under the field itself.
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		out[field] = append(out[field], messageFor(ve.Tag()))
	}
	return out
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "oneof":
		return "is not an allowed value"
	case "email":
		return "is not a valid email address"
	case "required_for_custom":
		return "at least one address is required for custom recipients"
	default:
		return "is invalid"
	}
}
