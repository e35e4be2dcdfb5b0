package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data layered over a View.
type RenderOptions struct {
	// Values pre-populates form controls keyed by field name. Multi-choice
	// fields carry []string.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field name. Messages under
	// FormErrorKey are shown above the form.
	Errors map[string][]string
	// Hidden carries extra hidden inputs such as the current wizard step.
	Hidden map[string]string
	// Theme is the resolved brand theme.
	Theme *theme.RendererConfig
	// Status is the HTTP status the handler intends to send.
	Status int
}
