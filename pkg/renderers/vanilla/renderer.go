package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-agencysite/pkg/render"
	rendertemplate "github.com/goliatone/go-agencysite/pkg/render/template"
	"github.com/goliatone/go-agencysite/pkg/render/template/pongo"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer renders site pages to HTML. The template context carries the view
// data plus page, title, values, errors, form_errors, hidden, chrome and
// theme.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithName("vanilla"),
			pongo.WithFS(cfg.templateFS),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes view.Template.
func (r *Renderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	if view.Template == "" {
		return nil, errors.New("vanilla renderer: view template is required")
	}

	data := make(map[string]any, len(view.Data)+9)
	for key, value := range view.Data {
		data[key] = value
	}
	data["page"] = view.Page
	data["title"] = view.Title
	data["values"] = nonNilValues(options.Values)
	data["errors"] = fieldErrors(options.Errors)
	data["form_errors"] = options.Errors[render.FormErrorKey]
	data["hidden"] = render.SortedHiddenFields(options.Hidden)
	data["chrome"] = Chrome()
	if options.Theme != nil {
		data["theme"] = map[string]any{
			"name":       options.Theme.Theme,
			"variant":    options.Theme.Variant,
			"tokens":     options.Theme.Tokens,
			"css_vars":   options.Theme.CSSVars,
			"stylesheet": assetURL(options.Theme.AssetURL, "stylesheet"),
			"favicon":    assetURL(options.Theme.AssetURL, "favicon"),
		}
	}

	result, err := r.templates.RenderTemplate(view.Template, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render %s: %w", view.Template, err)
	}
	return []byte(result), nil
}

// fieldErrors keeps the first message per field; templates show one line
// under each control.
func fieldErrors(errs map[string][]string) map[string]string {
	out := make(map[string]string, len(errs))
	for key, messages := range errs {
		if key == render.FormErrorKey || len(messages) == 0 {
			continue
		}
		out[key] = messages[0]
	}
	return out
}

func nonNilValues(values map[string]any) map[string]any {
	if values == nil {
		return map[string]any{}
	}
	return values
}

func assetURL(resolve func(string) string, key string) string {
	if resolve == nil {
		return ""
	}
	return resolve(key)
}
