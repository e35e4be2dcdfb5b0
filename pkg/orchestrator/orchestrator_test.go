package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-agencysite/pkg/content"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/render"
	"github.com/goliatone/go-agencysite/pkg/site"
)

type captureRenderer struct {
	name        string
	contentType string
	view        render.View
	options     render.RenderOptions
	calls       int
}

func (c *captureRenderer) Name() string        { return c.name }
func (c *captureRenderer) ContentType() string { return c.contentType }
func (c *captureRenderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	c.calls++
	c.view = view
	c.options = options
	return []byte(c.name), nil
}

func newCaptureRegistry(t *testing.T) (*render.Registry, *captureRenderer, *captureRenderer) {
	t.Helper()
	html := &captureRenderer{name: "vanilla", contentType: "text/html; charset=utf-8"}
	json := &captureRenderer{name: "json", contentType: "application/json"}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(json)
	return registry, html, json
}

func TestGenerate_BuildsPageView(t *testing.T) {
	registry, html, _ := newCaptureRegistry(t)
	orch := orchestrator.New(orchestrator.WithRegistry(registry))

	result, err := orch.Generate(context.Background(), orchestrator.Request{
		Page: site.PagePortfolio,
		Data: map[string]any{"projects": []string{"a"}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(result.Body) != "vanilla" || result.ContentType != html.contentType {
		t.Fatalf("unexpected result %+v", result)
	}

	view := html.view
	if view.Template != "pages/portfolio" || view.Page != "portfolio" || view.Title != "Portfolio" {
		t.Fatalf("unexpected view %+v", view)
	}
	if _, ok := view.Data["site"].(*content.Site); !ok {
		t.Fatalf("expected site content in view data, got %T", view.Data["site"])
	}
	nav, ok := view.Data["nav"].([]site.NavItem)
	if !ok || len(nav) == 0 {
		t.Fatalf("expected nav items, got %#v", view.Data["nav"])
	}
	if _, ok := view.Data["projects"]; !ok {
		t.Fatalf("request data not merged")
	}
	style, _ := view.Data["theme_style"].(string)
	if !strings.Contains(style, "--gold: #D4AF37;") {
		t.Fatalf("expected theme style, got %q", style)
	}
	if html.options.Theme == nil || html.options.Theme.Variant != site.VariantDark {
		t.Fatalf("expected dark theme, got %+v", html.options.Theme)
	}
}

func TestGenerate_ThemeVariant(t *testing.T) {
	registry, html, _ := newCaptureRegistry(t)
	brand, err := site.NewTheme(nil)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithTheme(brand, site.VariantLight),
	)

	if _, err := orch.Generate(context.Background(), orchestrator.Request{Page: site.PageHome}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if html.options.Theme.Variant != site.VariantLight {
		t.Fatalf("expected configured variant, got %q", html.options.Theme.Variant)
	}
	if got := html.options.Theme.AssetURL("stylesheet"); got != "/static/css/site-light.css" {
		t.Fatalf("unexpected stylesheet %q", got)
	}

	if _, err := orch.Generate(context.Background(), orchestrator.Request{Page: site.PageHome, ThemeVariant: site.VariantDark}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if html.options.Theme.Variant != site.VariantDark {
		t.Fatalf("expected request variant, got %q", html.options.Theme.Variant)
	}

	_, err = orch.Generate(context.Background(), orchestrator.Request{Page: site.PageHome, ThemeVariant: "neon"})
	if !errors.Is(err, site.ErrUnknownVariant) {
		t.Fatalf("expected unknown variant error, got %v", err)
	}
}

func TestGenerate_RendererSelection(t *testing.T) {
	registry, html, json := newCaptureRegistry(t)
	orch := orchestrator.New(orchestrator.WithRegistry(registry))

	tests := []struct {
		name     string
		renderer string
		accept   string
		want     *captureRenderer
	}{
		{name: "explicit", renderer: "json", accept: "text/html", want: json},
		{name: "negotiated", accept: "application/json", want: json},
		{name: "browser", accept: "text/html,application/xhtml+xml", want: html},
		{name: "wildcard", accept: "*/*", want: html},
		{name: "empty", want: html},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.want.calls
			_, err := orch.Generate(context.Background(), orchestrator.Request{
				Page:     site.PageAbout,
				Renderer: tt.renderer,
				Accept:   tt.accept,
			})
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if tt.want.calls != before+1 {
				t.Fatalf("expected %s renderer to be used", tt.want.name)
			}
		})
	}

	if _, err := orch.Generate(context.Background(), orchestrator.Request{Page: site.PageAbout, Renderer: "xml"}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestGenerate_DefaultRendererOverride(t *testing.T) {
	registry, _, json := newCaptureRegistry(t)
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("json"),
	)
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Page: site.PageHome}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if json.calls != 1 {
		t.Fatalf("expected default renderer override to apply")
	}
}

func TestGenerate_Transformers(t *testing.T) {
	registry, html, _ := newCaptureRegistry(t)
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithTransformers(
			orchestrator.GlobalData(map[string]any{"year": "2026", "page_note": "global"}),
			orchestrator.TransformerFunc(func(_ context.Context, view *render.View) error {
				view.Title = strings.ToUpper(view.Title)
				return nil
			}),
		),
	)

	_, err := orch.Generate(context.Background(), orchestrator.Request{
		Page: site.PageContact,
		Data: map[string]any{"page_note": "request"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if html.view.Title != "CONTACT" {
		t.Fatalf("expected transformer to rewrite title, got %q", html.view.Title)
	}
	if html.view.Data["year"] != "2026" || html.view.Data["page_note"] != "request" {
		t.Fatalf("unexpected data %#v", html.view.Data)
	}

	failing := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithTransformers(orchestrator.TransformerFunc(func(context.Context, *render.View) error {
			return errors.New("boom")
		})),
	)
	if _, err := failing.Generate(context.Background(), orchestrator.Request{Page: site.PageHome}); err == nil {
		t.Fatalf("expected transformer error")
	}
}

func TestGenerate_RejectsUnknownPage(t *testing.T) {
	registry, _, _ := newCaptureRegistry(t)
	orch := orchestrator.New(orchestrator.WithRegistry(registry))
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Page: "blog"}); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestGenerate_DefaultsRenderEveryPage(t *testing.T) {
	orch := orchestrator.New()
	for _, page := range site.Pages() {
		data := map[string]any{}
		switch page {
		case site.PagePortfolio:
			data["projects"] = orch.Content().Projects(content.AllCategory)
		case site.PageAudit:
			data["wizard"] = map[string]any{"step": 1, "total": 7, "progress": 14, "first_step": true}
		}
		result, err := orch.Generate(context.Background(), orchestrator.Request{Page: page, Data: data})
		if err != nil {
			t.Fatalf("generate %s: %v", page, err)
		}
		if !strings.Contains(string(result.Body), "</html>") {
			t.Fatalf("expected full document for %s", page)
		}
	}
}

func TestGenerate_JSONNegotiation(t *testing.T) {
	orch := orchestrator.New()
	result, err := orch.Generate(context.Background(), orchestrator.Request{
		Page:   site.PagePackages,
		Accept: "application/json",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(result.ContentType, "application/json") {
		t.Fatalf("unexpected content type %q", result.ContentType)
	}
	if !strings.Contains(string(result.Body), `"page": "packages"`) {
		t.Fatalf("unexpected body %s", result.Body)
	}
}
