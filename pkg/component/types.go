package component

// Type is the closed enumeration of form component kinds. Adding a kind means
// touching every exhaustive switch over Type; renderers fail with a typed
// error for anything outside this set.
type Type string

const (
	TypeInput           Type = "input"
	TypeTextarea        Type = "textarea"
	TypeNumber          Type = "number"
	TypeSelect          Type = "select"
	TypeRadio           Type = "radio"
	TypeCheckbox        Type = "checkbox"
	TypeDate            Type = "date"
	TypeRate            Type = "rate"
	TypeUpload          Type = "upload"
	TypeEditor          Type = "editor"
	TypeAuthor          Type = "author"
	TypeArticle         Type = "article"
	TypePaymentMethod   Type = "paymentMethod"
	TypeInvoiceInfo     Type = "invoiceInfo"
	TypeContractName    Type = "contractName"
	TypeDivider         Type = "divider"
	TypeHTML            Type = "html"
	TypeSteps           Type = "steps"
	TypeGroup           Type = "group"
	TypeColumnContainer Type = "columnContainer"
)

// Known reports whether t belongs to the closed type set.
func (t Type) Known() bool {
	switch t {
	case TypeInput, TypeTextarea, TypeNumber, TypeSelect, TypeRadio,
		TypeCheckbox, TypeDate, TypeRate, TypeUpload, TypeEditor,
		TypeAuthor, TypeArticle, TypePaymentMethod, TypeInvoiceInfo,
		TypeContractName, TypeDivider, TypeHTML, TypeSteps, TypeGroup,
		TypeColumnContainer:
		return true
	default:
		return false
	}
}

// Structural reports whether the type is layout-only. Structural components
// never hold a value and are excluded from the value store and from
// placeholder generation.
func (t Type) Structural() bool {
	switch t {
	case TypeDivider, TypeHTML, TypeSteps, TypeGroup, TypeColumnContainer:
		return true
	default:
		return false
	}
}

// Choice reports whether the type renders a fixed option list.
func (t Type) Choice() bool {
	switch t {
	case TypeSelect, TypeRadio, TypeCheckbox:
		return true
	default:
		return false
	}
}

// Container reports whether the type hosts child components.
func (t Type) Container() bool {
	switch t {
	case TypeSteps, TypeGroup, TypeColumnContainer:
		return true
	default:
		return false
	}
}

var defaultLabels = map[Type]string{
	TypeInput:         "text field",
	TypeTextarea:      "textarea field",
	TypeNumber:        "number field",
	TypeSelect:        "select field",
	TypeRadio:         "radio field",
	TypeCheckbox:      "checkbox field",
	TypeDate:          "date field",
	TypeRate:          "rate field",
	TypeUpload:        "upload field",
	TypeEditor:        "rich text field",
	TypeAuthor:        "author field",
	TypeArticle:       "article field",
	TypePaymentMethod: "payment method",
	TypeInvoiceInfo:   "invoice info",
	TypeContractName:  "contract name",
}

// DefaultLabel returns the fallback phrase used when a component carries
// neither a label nor placeholder hint text.
func (t Type) DefaultLabel() string {
	if label, ok := defaultLabels[t]; ok {
		return label
	}
	return "field"
}

// Option is one entry in a choice component's option list.
type Option struct {
	Label           string `json:"label"`
	Value           string `json:"value"`
	DefaultSelected bool   `json:"defaultSelected,omitempty"`
}

// Upload captures file-input constraints.
type Upload struct {
	MaxFiles int      `json:"maxFiles,omitempty"`
	MaxSize  int64    `json:"maxSize,omitempty"`
	Accept   []string `json:"accept,omitempty"`
}

// Component is one serializable node of a form definition tree. ParentID
// establishes containment only; values always belong to the component itself.
type Component struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	ParentID    string `json:"parentId,omitempty"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"defaultValue,omitempty"`

	Options  []Option `json:"options,omitempty"`
	Multiple bool     `json:"multiple,omitempty"`
	RichText bool     `json:"richText,omitempty"`

	// Precision fixes the displayed decimal places when set; nil preserves
	// full precision. Display-only: stored values are never formatted.
	Precision          *int    `json:"precision,omitempty"`
	ThousandsSeparator bool    `json:"thousandsSeparator,omitempty"`
	Min                float64 `json:"min,omitempty"`
	Max                float64 `json:"max,omitempty"`
	Step               float64 `json:"step,omitempty"`

	Upload *Upload `json:"upload,omitempty"`

	// HTML holds raw markup for html components. Sanitized before render.
	HTML string `json:"html,omitempty"`

	Style map[string]string `json:"style,omitempty"`
}

// MultiValue reports whether the component's value is a list rather than a
// scalar: checkbox, multi-select, and upload components collect collections.
func (c Component) MultiValue() bool {
	switch c.Type {
	case TypeCheckbox, TypeUpload:
		return true
	case TypeSelect:
		return c.Multiple
	default:
		return false
	}
}

// DecimalPlaces returns the display precision: -1 preserves full precision,
// N >= 0 fixes N places.
func (c Component) DecimalPlaces() int {
	if c.Precision == nil {
		return -1
	}
	if *c.Precision < 0 {
		return -1
	}
	return *c.Precision
}

// ResolveLabel returns the human label used for placeholder generation:
// explicit label, else the placeholder hint, else the type default phrase.
func (c Component) ResolveLabel() string {
	if c.Label != "" {
		return c.Label
	}
	if c.Placeholder != "" {
		return c.Placeholder
	}
	return c.Type.DefaultLabel()
}
