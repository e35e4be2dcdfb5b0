package content

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed data/*.yaml
var embedded embed.FS

var (
	defaultOnce sync.Once
	defaultSite *Site
	defaultErr  error
)

// EmbeddedFS returns the bundled content files.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default returns the bundled catalogue, parsed once.
func Default() (*Site, error) {
	defaultOnce.Do(func() {
		defaultSite, defaultErr = LoadFS(EmbeddedFS())
	})
	return defaultSite, defaultErr
}
