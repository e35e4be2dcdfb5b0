package agencysite

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agencysite/pkg/audit"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/render"
	"github.com/goliatone/go-agencysite/pkg/site"
	"github.com/goliatone/go-agencysite/pkg/webhook"
)

// RenderOptions describes per-request values, errors and hidden fields
// renderers use to prefill forms.
type RenderOptions = render.RenderOptions

// Page aliases site.Page so callers can name pages from the root package.
type Page = site.Page

// AuditState aliases audit.State, the read-only wizard snapshot.
type AuditState = audit.State

// NewOrchestrator exposes the page orchestrator constructor from the
// top-level module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderPage renders page with the built-in content, theme and renderers.
// rendererName may be empty to use the HTML renderer.
func RenderPage(ctx context.Context, page Page, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	result, err := gen.Generate(ctx, orchestrator.Request{
		Page:     page,
		Renderer: rendererName,
	})
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

// WithThemeVariant selects the brand theme variant ("dark" or "light").
func WithThemeVariant(variant string) (orchestrator.Option, error) {
	brand, err := site.NewTheme(nil)
	if err != nil {
		return nil, err
	}
	return orchestrator.WithTheme(brand, variant), nil
}

// NewAuditWizard returns a wizard that posts completed audits to endpoint.
// An empty endpoint logs payloads instead.
func NewAuditWizard(endpoint string, options ...webhook.Option) (*audit.Wizard, error) {
	if endpoint == "" {
		return audit.NewWizard(webhook.NewLogSink(zerolog.Nop(), "audit")), nil
	}
	client, err := webhook.New(endpoint, options...)
	if err != nil {
		return nil, err
	}
	return audit.NewWizard(client), nil
}
