package render

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONRenderer emits the view data, values and errors as a JSON document.
type JSONRenderer struct{}

// NewJSONRenderer returns a JSONRenderer.
func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (*JSONRenderer) Name() string        { return "json" }
func (*JSONRenderer) ContentType() string { return "application/json; charset=utf-8" }

// Render encodes view and options.
func (*JSONRenderer) Render(_ context.Context, view View, options RenderOptions) ([]byte, error) {
	payload := struct {
		Page   string              `json:"page"`
		Title  string              `json:"title,omitempty"`
		Data   map[string]any      `json:"data,omitempty"`
		Values map[string]any      `json:"values,omitempty"`
		Errors map[string][]string `json:"errors,omitempty"`
	}{
		Page:   view.Page,
		Title:  view.Title,
		Data:   view.Data,
		Values: options.Values,
		Errors: options.Errors,
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encode json view: %w", err)
	}
	return out, nil
}
