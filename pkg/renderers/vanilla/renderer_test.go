package vanilla_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/renderers/vanilla"
	"github.com/goliatone/go-formflow/pkg/valuestore"
)

func newSession(t *testing.T, mode valuestore.Mode, comps ...component.Component) (*component.Tree, *valuestore.Store) {
	t.Helper()
	tree, err := component.NewTree(comps)
	if err != nil {
		t.Fatalf("build tree: %v", err)
	}
	return tree, valuestore.New(tree, mode)
}

func renderHTML(t *testing.T, tree *component.Tree, store *valuestore.Store, options render.Options) string {
	t.Helper()
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), tree, store, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_FormShell(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeRuntime, component.Component{
		ID:    "name",
		Type:  component.TypeInput,
		Label: "Name",
	})

	html := renderHTML(t, tree, store, render.Options{})

	for _, want := range []string{
		`<form class="formflow"`,
		`name="name"`,
		`id="name"`,
		`<label for="name">Name</label>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRender_DesignModeDisablesControls(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeDesign, component.Component{
		ID:      "city",
		Type:    component.TypeInput,
		Default: "Berlin",
	})

	html := renderHTML(t, tree, store, render.Options{DesignMode: true})

	if !strings.Contains(html, `data-design-mode="true"`) {
		t.Errorf("form should carry design mode marker:\n%s", html)
	}
	if !strings.Contains(html, " disabled") {
		t.Errorf("controls should be disabled in design mode:\n%s", html)
	}
	if !strings.Contains(html, `value="Berlin"`) {
		t.Errorf("disabled control should still show its default:\n%s", html)
	}
}

func TestRender_ChoiceControlsTolerateScalarValue(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeRuntime, component.Component{
		ID:       "tags",
		Type:     component.TypeSelect,
		Multiple: true,
		Options: []component.Option{
			{Label: "Option A", Value: "optionA"},
			{Label: "Option B", Value: "optionB"},
		},
	})
	store.SetValue("tags", "optionA")

	html := renderHTML(t, tree, store, render.Options{})

	if !strings.Contains(html, `<option value="optionA" selected>`) {
		t.Errorf("coerced scalar should select its option:\n%s", html)
	}
	if strings.Contains(html, `<option value="optionB" selected>`) {
		t.Errorf("unselected option marked selected:\n%s", html)
	}
	if !strings.Contains(html, "<select name=\"tags\" id=\"tags\" multiple>") {
		t.Errorf("multi select should carry multiple attribute:\n%s", html)
	}
}

func TestRender_NumberDisplayFormatting(t *testing.T) {
	precision := 2
	tree, store := newSession(t, valuestore.ModeRuntime, component.Component{
		ID:                 "amount",
		Type:               component.TypeNumber,
		Precision:          &precision,
		ThousandsSeparator: true,
		Default:            "1250",
	})

	html := renderHTML(t, tree, store, render.Options{})

	if !strings.Contains(html, `value="1250"`) {
		t.Errorf("stored value must stay unformatted:\n%s", html)
	}
	if !strings.Contains(html, `data-display="1,250.00"`) {
		t.Errorf("display formatting missing:\n%s", html)
	}
}

func TestRender_SanitizesRichTextAndHTML(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeRuntime,
		component.Component{
			ID:       "notes",
			Type:     component.TypeEditor,
			RichText: true,
			Default:  `<p>fine</p><script>alert(1)</script>`,
		},
		component.Component{
			ID:   "blurb",
			Type: component.TypeHTML,
			HTML: `<em>hi</em><script>alert(2)</script>`,
		},
	)

	html := renderHTML(t, tree, store, render.Options{})

	if strings.Contains(html, "<script>") {
		t.Errorf("script survived sanitizing:\n%s", html)
	}
	if !strings.Contains(html, "<p>fine</p>") {
		t.Errorf("benign rich text stripped:\n%s", html)
	}
	if !strings.Contains(html, "<em>hi</em>") {
		t.Errorf("benign html stripped:\n%s", html)
	}
}

func TestRender_ContainersNest(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeRuntime,
		component.Component{ID: "grp", Type: component.TypeGroup, Label: "Contact"},
		component.Component{ID: "email", Type: component.TypeInput, ParentID: "grp", Label: "Email"},
		component.Component{ID: "hr", Type: component.TypeDivider},
	)

	html := renderHTML(t, tree, store, render.Options{})

	groupAt := strings.Index(html, `<fieldset class="formflow-group"`)
	emailAt := strings.Index(html, `id="email"`)
	closeAt := strings.Index(html, "</fieldset>")
	if groupAt < 0 || emailAt < 0 || closeAt < 0 {
		t.Fatalf("missing container markup:\n%s", html)
	}
	if !(groupAt < emailAt && emailAt < closeAt) {
		t.Errorf("child should render inside its container:\n%s", html)
	}
	if !strings.Contains(html, `<hr class="formflow-divider">`) {
		t.Errorf("divider missing:\n%s", html)
	}
}

func TestRender_NonContainerParentChildStillRenders(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeRuntime,
		component.Component{ID: "name", Type: component.TypeInput, Label: "Name"},
		component.Component{ID: "email", Type: component.TypeInput, ParentID: "name", Label: "Email"},
	)

	html := renderHTML(t, tree, store, render.Options{})

	if !strings.Contains(html, `id="email"`) {
		t.Errorf("child of a non-container parent should render at root level:\n%s", html)
	}
}

func TestRender_UnknownTypeFails(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeRuntime, component.Component{
		ID:   "mystery",
		Type: component.Type("hologram"),
	})

	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	_, err = renderer.Render(context.Background(), tree, store, render.Options{})
	if err == nil {
		t.Fatal("expected unknown type error")
	}

	var unknownErr *vanilla.UnknownTypeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("want UnknownTypeError, got %T: %v", err, err)
	}
	if unknownErr.ID != "mystery" {
		t.Errorf("error should name the component, got %q", unknownErr.ID)
	}
}

func TestRender_ThemeCSSVarsAndStylesheet(t *testing.T) {
	tree, store := newSession(t, valuestore.ModeRuntime, component.Component{
		ID:   "name",
		Type: component.TypeInput,
	})

	theme := render.DefaultTheme()
	theme.Theme = "acme"
	theme.CSSVars = map[string]string{"--brand": "#123456"}
	theme.AssetURL = func(key string) string {
		if key == "stylesheet" {
			return "/assets/acme/theme.css"
		}
		return ""
	}

	html := renderHTML(t, tree, store, render.Options{Theme: theme})

	if !strings.Contains(html, "--brand: #123456;") {
		t.Errorf("css vars missing:\n%s", html)
	}
	if !strings.Contains(html, `<link rel="stylesheet" href="/assets/acme/theme.css">`) {
		t.Errorf("stylesheet link missing:\n%s", html)
	}
	if !strings.Contains(html, `data-theme="acme"`) {
		t.Errorf("theme marker missing:\n%s", html)
	}
}
