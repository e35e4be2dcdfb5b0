package vanilla

import (
	"strings"
)

// Field kinds understood by the form partials.
const (
	KindText     = "text"
	KindEmail    = "email"
	KindTel      = "tel"
	KindTextArea = "textarea"
	KindSelect   = "select"
	KindMulti    = "multi"
)

// Choice is one selectable option. Selected is filled in by BuildFields.
type Choice struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FieldSpec describes a form control independent of any request.
type FieldSpec struct {
	Name        string
	Label       string
	Kind        string
	Placeholder string
	Required    bool
	Options     []Choice
}

// FieldView is a FieldSpec bound to the current values and errors, ready for
// the field partial.
type FieldView struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Kind        string   `json:"kind"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	Value       string   `json:"value"`
	Options     []Choice `json:"options,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// BuildFields binds specs to values and errors. Multi-choice values may be
// []string or []any; single values are stringified.
func BuildFields(specs []FieldSpec, values map[string]any, errs map[string][]string) []FieldView {
	out := make([]FieldView, 0, len(specs))
	for _, spec := range specs {
		view := FieldView{
			Name:        spec.Name,
			ID:          controlID(spec.Name),
			Label:       spec.Label,
			Kind:        spec.Kind,
			Placeholder: spec.Placeholder,
			Required:    spec.Required,
		}
		if view.Kind == "" {
			view.Kind = KindText
		}
		if messages := errs[spec.Name]; len(messages) > 0 {
			view.Error = messages[0]
		}

		current := values[spec.Name]
		selected := selectedSet(current)
		if view.Kind != KindMulti {
			view.Value = stringValue(current)
		}

		if len(spec.Options) > 0 {
			view.Options = make([]Choice, 0, len(spec.Options))
			for _, option := range spec.Options {
				option.Selected = selected[option.Value]
				view.Options = append(view.Options, option)
			}
		}
		out = append(out, view)
	}
	return out
}

func selectedSet(value any) map[string]bool {
	out := make(map[string]bool)
	switch v := value.(type) {
	case []string:
		for _, item := range v {
			out[item] = true
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out[s] = true
			}
		}
	case string:
		if v != "" {
			out[v] = true
		}
	}
	return out
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	default:
		return ""
	}
}

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "field-" + trimmed
}
