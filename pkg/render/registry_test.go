package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agencysite/pkg/render"
)

type stubRenderer struct {
	name        string
	contentType string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return s.contentType }
func (s stubRenderer) Render(context.Context, render.View, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func newTestRegistry(t *testing.T) *render.Registry {
	t.Helper()
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "html", contentType: "text/html; charset=utf-8"})
	registry.MustRegister(stubRenderer{name: "json", contentType: "application/json"})
	return registry
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	registry := newTestRegistry(t)
	err := registry.Register(stubRenderer{name: "html", contentType: "text/html"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistry_GetAndList(t *testing.T) {
	registry := newTestRegistry(t)

	if diff := cmp.Diff([]string{"html", "json"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if _, err := registry.Get("xml"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
	renderer, err := registry.Get("json")
	if err != nil {
		t.Fatalf("get json: %v", err)
	}
	if renderer.Name() != "json" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistry_Negotiate(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		accept string
		want   string
	}{
		{accept: "application/json", want: "json"},
		{accept: "text/html,application/xhtml+xml", want: "html"},
		{accept: "application/xml;q=0.9, application/json;q=0.8", want: "json"},
		{accept: "*/*", want: "html"},
		{accept: "", want: "html"},
	}
	for _, tt := range tests {
		renderer, err := registry.Negotiate(tt.accept)
		if err != nil {
			t.Fatalf("negotiate %q: %v", tt.accept, err)
		}
		if renderer.Name() != tt.want {
			t.Fatalf("negotiate %q = %q, want %q", tt.accept, renderer.Name(), tt.want)
		}
	}

	if _, err := render.NewRegistry().Negotiate("text/html"); err == nil {
		t.Fatalf("expected error from empty registry")
	}
}
