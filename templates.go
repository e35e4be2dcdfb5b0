package agencysite

import (
	"io/fs"

	"github.com/goliatone/go-agencysite/pkg/content"
	"github.com/goliatone/go-agencysite/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StaticAssetsFS exposes the stylesheets and favicon served under /static/.
//
// Typical mount:
//
//	mux.Handle("/static/",
//	  http.StripPrefix("/static/",
//	    http.FileServerFS(agencysite.StaticAssetsFS()),
//	  ),
//	)
func StaticAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// EmbeddedContent exposes the YAML files behind the default site content.
func EmbeddedContent() fs.FS {
	return content.EmbeddedFS()
}
