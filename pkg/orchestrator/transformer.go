package orchestrator

import (
	"context"

	"github.com/goliatone/go-agencysite/pkg/render"
)

// Transformer mutates a View after the base page data is assembled and before
// rendering. Implementations can add data or swap the template.
type Transformer interface {
	Transform(ctx context.Context, view *render.View) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, view *render.View) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, view *render.View) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, view)
}

// GlobalData returns a Transformer that adds fixed keys to every view without
// overwriting keys already present.
func GlobalData(data map[string]any) Transformer {
	return TransformerFunc(func(_ context.Context, view *render.View) error {
		if len(data) == 0 {
			return nil
		}
		if view.Data == nil {
			view.Data = make(map[string]any, len(data))
		}
		for key, value := range data {
			if _, exists := view.Data[key]; exists {
				continue
			}
			view.Data[key] = value
		}
		return nil
	})
}
