package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/valuestore"
)

type namedRenderer struct {
	name string
}

func (r *namedRenderer) Name() string        { return r.name }
func (r *namedRenderer) ContentType() string { return "text/plain" }
func (r *namedRenderer) Render(context.Context, *component.Tree, *valuestore.Store, render.Options) ([]byte, error) {
	return []byte(r.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(&namedRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("vanilla")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Errorf("name = %q", renderer.Name())
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistry_RejectsDuplicatesAndEmptyNames(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(&namedRenderer{name: "tui"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(&namedRenderer{name: "tui"}); err == nil {
		t.Fatal("duplicate name should fail")
	}
	if err := registry.Register(&namedRenderer{}); err == nil {
		t.Fatal("empty name should fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("nil renderer should fail")
	}
}

func TestRegistry_ListSortsNames(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(&namedRenderer{name: "tui"})
	registry.MustRegister(&namedRenderer{name: "vanilla"})
	registry.MustRegister(&namedRenderer{name: "json"})

	if diff := cmp.Diff([]string{"json", "tui", "vanilla"}, registry.List()); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("json") || registry.Has("preact") {
		t.Error("Has reports wrong membership")
	}
}
