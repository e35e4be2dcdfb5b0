package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-agencysite/pkg/content"
	"github.com/goliatone/go-agencysite/pkg/render"
	"github.com/goliatone/go-agencysite/pkg/renderers/vanilla"
	"github.com/goliatone/go-agencysite/pkg/site"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request names none
// and its Accept header matches nothing.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithContent replaces the embedded site content.
func WithContent(catalogue *content.Site) Option {
	return func(o *Orchestrator) {
		o.content = catalogue
	}
}

// WithTheme sets the brand theme and its default variant.
func WithTheme(t *site.Theme, variant string) Option {
	return func(o *Orchestrator) {
		o.theme = t
		o.variant = variant
	}
}

// WithTransformers registers transformers that run, in order, on every view.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// Orchestrator assembles a page view from content and request data, resolves
// the theme, and renders it through the registry. Missing dependencies are
// initialised with the built-in implementations (embedded content, brand
// theme, vanilla and JSON renderers).
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	content         *content.Site
	theme           *site.Theme
	variant         string
	transformers    []Transformer
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one page render.
type Request struct {
	// Page selects the template and base data.
	Page site.Page

	// Renderer names the renderer to use. When empty the Accept header is
	// negotiated, then the default renderer is used.
	Renderer string
	Accept   string

	// ThemeVariant overrides the configured variant for this request.
	ThemeVariant string

	// Data is merged over the base page data.
	Data map[string]any

	// RenderOptions carries values, errors and hidden fields. Theme is filled
	// in by the orchestrator when nil.
	RenderOptions render.RenderOptions
}

// Result is the rendered page.
type Result struct {
	Body        []byte
	ContentType string
}

// Content returns the catalogue pages are built from.
func (o *Orchestrator) Content() *content.Site {
	return o.content
}

// Generate builds the view for req.Page and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !req.Page.Valid() {
		return Result{}, fmt.Errorf("orchestrator: unknown page %q", req.Page)
	}

	view := o.baseView(req.Page)
	for key, value := range req.Data {
		view.Data[key] = value
	}
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, &view); err != nil {
			return Result{}, fmt.Errorf("orchestrator: transform view: %w", err)
		}
	}

	options := req.RenderOptions
	if options.Theme == nil {
		variant := req.ThemeVariant
		if variant == "" {
			variant = o.variant
		}
		cfg, err := o.theme.Resolve(variant)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: resolve theme: %w", err)
		}
		options.Theme = cfg
	}
	view.Data["theme_style"] = site.CSSVarsStyle(options.Theme.CSSVars)

	renderer, err := o.rendererFor(req.Renderer, req.Accept)
	if err != nil {
		return Result{}, err
	}

	output, err := renderer.Render(ctx, view, options)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Result{Body: output, ContentType: renderer.ContentType()}, nil
}

func (o *Orchestrator) baseView(page site.Page) render.View {
	return render.View{
		Page:     page.String(),
		Template: page.Template(),
		Title:    page.Title(),
		Data: map[string]any{
			"site": o.content,
			"nav":  site.Nav(page),
		},
	}
}

func (o *Orchestrator) rendererFor(name, accept string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	if name != "" {
		renderer, err := o.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		return renderer, nil
	}

	if accept != "" {
		if renderer, err := o.registry.Negotiate(accept); err == nil && matchesAccept(renderer, accept) {
			return renderer, nil
		}
	}

	if renderer, err := o.registry.Get(o.defaultRenderer); err == nil {
		return renderer, nil
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// matchesAccept filters out the registry fallback so the configured default
// renderer applies when nothing in accept matched.
func matchesAccept(renderer render.Renderer, accept string) bool {
	return render.Accepts(accept, renderer.ContentType())
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	o.defaultsApplied = true

	if o.content == nil {
		catalogue, err := content.Default()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load content: %w", err)
			return
		}
		o.content = catalogue
	}
	if o.theme == nil {
		t, err := site.NewTheme(nil)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: brand theme: %w", err)
			return
		}
		o.theme = t
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
		o.registry.MustRegister(render.NewJSONRenderer())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
