package site

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	// ThemeName is the registered name of the brand manifest.
	ThemeName = "kate-creatives"
	// VariantDark is the default look of the site.
	VariantDark = "dark"
	// VariantLight is an alternate palette.
	VariantLight = "light"
)

// ErrUnknownVariant is returned for variants the manifest does not define.
var ErrUnknownVariant = errors.New("site: unknown theme variant")

// BrandManifest returns the brand palette, fonts and assets.
func BrandManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"primary":      "#0D1F1B",
			"gold":         "#D4AF37",
			"pink":         "#22c55e",
			"green":        "#F4C6D6",
			"font-heading": "Poppins, sans-serif",
			"font-body":    "Inter, system-ui, sans-serif",
			"background":   "#000000",
			"surface":      "rgba(255, 255, 255, 0.05)",
			"text":         "#ffffff",
			"muted":        "#9ca3af",
		},
		Templates: map[string]string{
			"layout": "layouts/base",
		},
		Assets: theme.Assets{
			Prefix: "/static",
			Files: map[string]string{
				"stylesheet": "css/site.css",
				"favicon":    "favicon.svg",
			},
		},
		Variants: map[string]theme.Variant{
			VariantDark: {},
			VariantLight: {
				Tokens: map[string]string{
					"background": "#ffffff",
					"surface":    "rgba(13, 31, 27, 0.05)",
					"text":       "#0D1F1B",
					"muted":      "#4b5563",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"stylesheet": "css/site-light.css",
					},
				},
			},
		},
	}
}

// Theme resolves the brand manifest into renderer configuration.
type Theme struct {
	manifest *theme.Manifest
	provider theme.ThemeProvider
}

// NewTheme registers manifest, or the brand manifest when nil.
func NewTheme(manifest *theme.Manifest) (*Theme, error) {
	if manifest == nil {
		manifest = BrandManifest()
	}
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("site: register theme: %w", err)
	}
	return &Theme{manifest: manifest, provider: registry}, nil
}

// Provider exposes the registry holding the manifest.
func (t *Theme) Provider() theme.ThemeProvider {
	return t.provider
}

// Name returns the manifest name.
func (t *Theme) Name() string {
	return t.manifest.Name
}

// Variants lists the defined variants in sorted order.
func (t *Theme) Variants() []string {
	out := make([]string, 0, len(t.manifest.Variants))
	for name := range t.manifest.Variants {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve merges variant overrides onto the base manifest. An empty variant
// selects VariantDark.
func (t *Theme) Resolve(variant string) (*theme.RendererConfig, error) {
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = VariantDark
	}
	v, ok := t.manifest.Variants[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	tokens := mergeStrings(t.manifest.Tokens, v.Tokens)
	partials := mergeStrings(t.manifest.Templates, v.Templates)
	files := mergeStrings(t.manifest.Assets.Files, v.Assets.Files)
	prefix := t.manifest.Assets.Prefix
	if v.Assets.Prefix != "" {
		prefix = v.Assets.Prefix
	}

	return &theme.RendererConfig{
		Theme:    t.manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  CSSVars(tokens),
		AssetURL: assetResolver(prefix, files),
	}, nil
}

// CSSVars maps tokens to custom property names.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+key] = value
	}
	return out
}

// CSSVarsStyle renders vars as a :root rule with sorted declarations.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return "/" + strings.TrimLeft(file, "/")
		}
		return path.Join(prefix, file)
	}
}

func mergeStrings(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}
