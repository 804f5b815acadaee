package pongo_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formflow/pkg/render/template/pongo"
)

func TestNew_RequiresSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatal("expected error when neither base dir nor fs provided")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("Hello {{ name }}!", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello World!" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderTemplate_AppendsExtensionAndWritesOut(t *testing.T) {
	files := fstest.MapFS{
		"greet.tmpl": {Data: []byte("Hi {{ who }}")},
	}
	engine, err := pongo.New(pongo.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var buf bytes.Buffer
	out, err := engine.RenderTemplate("greet", map[string]any{"who": "there"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hi there" {
		t.Fatalf("unexpected output %q", out)
	}
	if buf.String() != out {
		t.Fatalf("writer got %q, want %q", buf.String(), out)
	}
}

func TestRender_DetectsInlineContent(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{
		"page.tmpl": {Data: []byte("from file")},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	inline, err := engine.Render("{{ x }}", map[string]any{"x": "inline"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "inline" {
		t.Fatalf("inline content not detected: %q", inline)
	}

	fromFile, err := engine.Render("page", nil)
	if err != nil {
		t.Fatalf("render file: %v", err)
	}
	if fromFile != "from file" {
		t.Fatalf("bundle path not resolved: %q", fromFile)
	}
}

func TestGlobalContext_SeedsEveryRender(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithFS(fstest.MapFS{}),
		pongo.WithGlobalData(map[string]any{"site": "formflow"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ site }}/{{ page }}", map[string]any{"page": "home"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "formflow/home" {
		t.Fatalf("global data missing: %q", out)
	}
}

func TestRenderString_StructDataConverts(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	data := struct {
		Title string `json:"title"`
	}{Title: "Welcome"}

	out, err := engine.RenderString("{{ title }}", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Welcome" {
		t.Fatalf("struct data not converted: %q", out)
	}
}

func TestRenderTemplate_MissingTemplateErrors(t *testing.T) {
	engine, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("nope", nil); err == nil {
		t.Fatal("expected error for missing template")
	} else if !strings.Contains(err.Error(), "nope.tmpl") {
		t.Fatalf("error should name the template path: %v", err)
	}
}
