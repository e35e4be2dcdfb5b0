package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/layouts/*.tpl templates/pages/*.tpl templates/partials/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/css/*.css assets/favicon.svg
var embeddedAssets embed.FS

// TemplatesFS exposes the embedded page templates rooted at templates/.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the stylesheets and favicon so callers can serve them
// over HTTP.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen, but fall back to raw FS so assets remain usable.
		return embeddedAssets
	}
	return sub
}
