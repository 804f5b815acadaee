package vanilla

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/valuestore"
)

// UnknownTypeError reports a component type outside the closed set reaching
// the dispatch switch.
type UnknownTypeError struct {
	ID   string
	Type component.Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("vanilla: component %q has unknown type %q", e.ID, e.Type)
}

type fieldRenderer struct {
	tree     *component.Tree
	store    *valuestore.Store
	theme    *render.ThemeConfig
	policy   *bluemonday.Policy
	disabled bool
}

// render builds the markup for one component, recursing into containers.
// Value-bearing components get a label, a control, and the decorated
// description.
func (r *fieldRenderer) render(comp component.Component) (string, error) {
	switch comp.Type {
	case component.TypeDivider:
		return "<hr class=\"formflow-divider\">\n", nil
	case component.TypeHTML:
		return r.htmlBlock(comp), nil
	case component.TypeSteps, component.TypeGroup, component.TypeColumnContainer:
		return r.container(comp)
	}

	control, err := r.controlFor(comp)
	if err != nil {
		return "", err
	}
	return r.buildFieldMarkup(comp, control), nil
}

func (r *fieldRenderer) container(comp component.Component) (string, error) {
	var builder strings.Builder
	builder.WriteString(`<fieldset class="formflow-`)
	builder.WriteString(string(comp.Type))
	builder.WriteString(`" data-component="`)
	builder.WriteString(string(comp.Type))
	builder.WriteString(`">` + "\n")

	if comp.Label != "" {
		builder.WriteString("  <legend>")
		builder.WriteString(html.EscapeString(comp.Label))
		builder.WriteString("</legend>\n")
	}

	for _, child := range r.tree.Children(comp.ID) {
		markup, err := r.render(child)
		if err != nil {
			return "", err
		}
		indent(&builder, markup)
	}

	builder.WriteString("</fieldset>\n")
	return builder.String(), nil
}

func (r *fieldRenderer) htmlBlock(comp component.Component) string {
	content := comp.HTML
	if r.policy != nil {
		content = r.policy.Sanitize(content)
	}
	return `<div class="formflow-html" data-component="html">` + content + "</div>\n"
}

// controlFor is the single dispatch point over the component type set. The
// default branch only sees types outside the closed enumeration.
func (r *fieldRenderer) controlFor(comp component.Component) (string, error) {
	switch comp.Type {
	case component.TypeInput:
		return r.textInput(comp, "text"), nil
	case component.TypeTextarea:
		return r.textarea(comp), nil
	case component.TypeNumber:
		return r.numberInput(comp), nil
	case component.TypeSelect:
		return r.selectControl(comp), nil
	case component.TypeRadio:
		return r.choiceInputs(comp, "radio"), nil
	case component.TypeCheckbox:
		return r.choiceInputs(comp, "checkbox"), nil
	case component.TypeDate:
		return r.textInput(comp, "date"), nil
	case component.TypeRate:
		return r.rateControl(comp), nil
	case component.TypeUpload:
		return r.uploadControl(comp), nil
	case component.TypeEditor:
		return r.editorControl(comp), nil
	case component.TypeAuthor, component.TypeArticle, component.TypePaymentMethod,
		component.TypeInvoiceInfo, component.TypeContractName:
		return r.businessInput(comp), nil
	case component.TypeDivider, component.TypeHTML, component.TypeSteps,
		component.TypeGroup, component.TypeColumnContainer:
		// Structural types are handled before dispatch; reaching here is a
		// caller bug, not an unknown type.
		return "", fmt.Errorf("vanilla: structural component %q has no control", comp.ID)
	default:
		return "", &UnknownTypeError{ID: comp.ID, Type: comp.Type}
	}
}

func (r *fieldRenderer) textInput(comp component.Component, inputType string) string {
	var builder strings.Builder
	builder.WriteString(`<input type="`)
	builder.WriteString(inputType)
	builder.WriteString(`"`)
	writeNameID(&builder, comp.ID)
	if value := valueString(r.store.InitialValue(comp.ID)); value != "" {
		writeAttr(&builder, "value", value)
	}
	if comp.Placeholder != "" {
		writeAttr(&builder, "placeholder", comp.Placeholder)
	}
	r.writeDisabled(&builder)
	builder.WriteString(">")
	return builder.String()
}

func (r *fieldRenderer) textarea(comp component.Component) string {
	var builder strings.Builder
	builder.WriteString(`<textarea`)
	writeNameID(&builder, comp.ID)
	if comp.Placeholder != "" {
		writeAttr(&builder, "placeholder", comp.Placeholder)
	}
	r.writeDisabled(&builder)
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(valueString(r.store.InitialValue(comp.ID))))
	builder.WriteString("</textarea>")
	return builder.String()
}

// numberInput keeps the raw value on the control and carries the formatted
// rendition in data-display; stored values are never formatted.
func (r *fieldRenderer) numberInput(comp component.Component) string {
	var builder strings.Builder
	builder.WriteString(`<input type="number"`)
	writeNameID(&builder, comp.ID)

	raw := valueString(r.store.InitialValue(comp.ID))
	if raw != "" {
		writeAttr(&builder, "value", raw)
		if display, ok := formatNumber(raw, comp.DecimalPlaces(), comp.ThousandsSeparator); ok {
			writeAttr(&builder, "data-display", display)
		}
	}
	if comp.Min != 0 || comp.Max != 0 {
		writeAttr(&builder, "min", trimFloat(comp.Min))
		writeAttr(&builder, "max", trimFloat(comp.Max))
	}
	if comp.Step != 0 {
		writeAttr(&builder, "step", trimFloat(comp.Step))
	}
	r.writeDisabled(&builder)
	builder.WriteString(">")
	return builder.String()
}

func (r *fieldRenderer) selectControl(comp component.Component) string {
	selected := valueSet(r.store.InitialValue(comp.ID))

	var builder strings.Builder
	builder.WriteString(`<select`)
	writeNameID(&builder, comp.ID)
	if comp.Multiple {
		builder.WriteString(" multiple")
	}
	r.writeDisabled(&builder)
	builder.WriteString(">\n")

	for _, option := range comp.Options {
		builder.WriteString(`  <option value="`)
		builder.WriteString(html.EscapeString(option.Value))
		builder.WriteString(`"`)
		if _, ok := selected[option.Value]; ok {
			builder.WriteString(" selected")
		}
		builder.WriteString(">")
		builder.WriteString(html.EscapeString(option.Label))
		builder.WriteString("</option>\n")
	}

	builder.WriteString("</select>")
	return builder.String()
}

func (r *fieldRenderer) choiceInputs(comp component.Component, inputType string) string {
	selected := valueSet(r.store.InitialValue(comp.ID))

	var builder strings.Builder
	builder.WriteString(`<div class="formflow-options" role="group">`)
	builder.WriteString("\n")

	for i, option := range comp.Options {
		builder.WriteString(`  <label><input type="`)
		builder.WriteString(inputType)
		builder.WriteString(`" name="`)
		builder.WriteString(html.EscapeString(comp.ID))
		builder.WriteString(`" id="`)
		builder.WriteString(html.EscapeString(fmt.Sprintf("%s-%d", comp.ID, i)))
		builder.WriteString(`" value="`)
		builder.WriteString(html.EscapeString(option.Value))
		builder.WriteString(`"`)
		if _, ok := selected[option.Value]; ok {
			builder.WriteString(" checked")
		}
		r.writeDisabled(&builder)
		builder.WriteString("> ")
		builder.WriteString(html.EscapeString(option.Label))
		builder.WriteString("</label>\n")
	}

	builder.WriteString("</div>")
	return builder.String()
}

func (r *fieldRenderer) rateControl(comp component.Component) string {
	max := comp.Max
	if max <= 0 {
		max = 5
	}
	var builder strings.Builder
	builder.WriteString(`<input type="range" class="formflow-rate"`)
	writeNameID(&builder, comp.ID)
	writeAttr(&builder, "min", "0")
	writeAttr(&builder, "max", trimFloat(max))
	writeAttr(&builder, "step", "1")
	if value := valueString(r.store.InitialValue(comp.ID)); value != "" {
		writeAttr(&builder, "value", value)
	}
	r.writeDisabled(&builder)
	builder.WriteString(">")
	return builder.String()
}

func (r *fieldRenderer) uploadControl(comp component.Component) string {
	var builder strings.Builder
	builder.WriteString(`<input type="file"`)
	writeNameID(&builder, comp.ID)
	if upload := comp.Upload; upload != nil {
		if upload.MaxFiles != 1 {
			builder.WriteString(" multiple")
		}
		if len(upload.Accept) > 0 {
			writeAttr(&builder, "accept", strings.Join(upload.Accept, ","))
		}
		if upload.MaxFiles > 0 {
			writeAttr(&builder, "data-max-files", fmt.Sprintf("%d", upload.MaxFiles))
		}
		if upload.MaxSize > 0 {
			writeAttr(&builder, "data-max-size", fmt.Sprintf("%d", upload.MaxSize))
		}
	} else {
		builder.WriteString(" multiple")
	}
	r.writeDisabled(&builder)
	builder.WriteString(">")
	return builder.String()
}

// editorControl renders a WYSIWYG block when rich text is on; the initial
// content passes through the sanitizer. Plain mode degrades to a textarea.
func (r *fieldRenderer) editorControl(comp component.Component) string {
	if !comp.RichText {
		return r.textarea(comp)
	}

	content := valueString(r.store.InitialValue(comp.ID))
	if r.policy != nil {
		content = r.policy.Sanitize(content)
	}

	var builder strings.Builder
	builder.WriteString(`<div class="formflow-editor" data-component="editor"`)
	builder.WriteString(` id="`)
	builder.WriteString(html.EscapeString(comp.ID))
	builder.WriteString(`" contenteditable="`)
	if r.disabled {
		builder.WriteString("false")
	} else {
		builder.WriteString("true")
	}
	builder.WriteString(`">`)
	builder.WriteString(content)
	builder.WriteString("</div>")
	return builder.String()
}

// businessInput covers the domain-specific single-line kinds. They behave as
// text inputs distinguished by data-kind for client-side enhancement.
func (r *fieldRenderer) businessInput(comp component.Component) string {
	var builder strings.Builder
	builder.WriteString(`<input type="text"`)
	writeAttr(&builder, "data-kind", string(comp.Type))
	writeNameID(&builder, comp.ID)
	if value := valueString(r.store.InitialValue(comp.ID)); value != "" {
		writeAttr(&builder, "value", value)
	}
	if comp.Placeholder != "" {
		writeAttr(&builder, "placeholder", comp.Placeholder)
	}
	r.writeDisabled(&builder)
	builder.WriteString(">")
	return builder.String()
}

func (r *fieldRenderer) buildFieldMarkup(comp component.Component, control string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="formflow-field" data-component="`)
	builder.WriteString(html.EscapeString(string(comp.Type)))
	builder.WriteString(`"`)
	if style := styleAttr(comp.Style); style != "" {
		writeAttr(&builder, "style", style)
	}
	builder.WriteString(">\n")

	if comp.Label != "" {
		builder.WriteString(`  <label for="`)
		builder.WriteString(html.EscapeString(comp.ID))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(comp.Label))
		builder.WriteString("</label>\n")
	}

	indent(&builder, decorate(control, comp.Description, r.theme.DescriptionPosition))

	builder.WriteString("</div>\n")
	return builder.String()
}

// decorate attaches the description to a control per the theme-wide
// position. It runs exactly once per field; controls never self-describe.
func decorate(control, description string, position render.DescriptionPosition) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return control + "\n"
	}

	hint := `<small class="formflow-description">` + html.EscapeString(description) + "</small>"

	switch position {
	case render.DescriptionRight:
		var builder strings.Builder
		builder.WriteString(`<div class="formflow-field-body" style="display:flex;align-items:center;gap:0.5rem">` + "\n")
		indent(&builder, control+"\n")
		indent(&builder, hint+"\n")
		builder.WriteString("</div>\n")
		return builder.String()
	case render.DescriptionBottom:
		return control + "\n" + hint + "\n"
	default:
		return hint + "\n" + control + "\n"
	}
}

func (r *fieldRenderer) writeDisabled(builder *strings.Builder) {
	if r.disabled {
		builder.WriteString(" disabled")
	}
}

func writeNameID(builder *strings.Builder, id string) {
	writeAttr(builder, "name", id)
	writeAttr(builder, "id", id)
}

func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteString(" ")
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`"`)
}

func indent(builder *strings.Builder, markup string) {
	for _, line := range strings.Split(markup, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("  ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
}
