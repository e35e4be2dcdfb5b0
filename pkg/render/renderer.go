package render

import (
	"context"
)

// View is a page ready to render: the template to use plus its data.
type View struct {
	Page     string
	Template string
	Title    string
	Data     map[string]any
}

// Renderer converts a View into a byte representation (HTML, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options RenderOptions) ([]byte, error)
}
