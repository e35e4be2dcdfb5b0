package render

import (
	"sort"
	"strings"
)

// FormErrorKey collects messages that do not belong to a single field.
const FormErrorKey = "_form"

// ErrorMapping splits validation output into field-level and form-level
// messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrors splits a flat key to message map into field and form errors. Keys
// accepted by isField stay on the field; everything else, including empty
// keys, becomes a form-level message. Form messages are sorted by key so the
// output is stable.
func MapErrors(errs map[string]string, isField func(key string) bool) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(errs) == 0 {
		mapping.Fields = nil
		return mapping
	}

	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		messages := normalizeMessages([]string{errs[rawKey]})
		if len(messages) == 0 {
			continue
		}
		key := strings.TrimSpace(rawKey)
		if key == "" || key == FormErrorKey || isField == nil || !isField(key) {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[key] = append(mapping.Fields[key], messages...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// Flatten converts a mapping into the RenderOptions.Errors shape, placing form
// messages under FormErrorKey.
func (m ErrorMapping) Flatten() map[string][]string {
	if len(m.Fields) == 0 && len(m.Form) == 0 {
		return nil
	}
	out := make(map[string][]string, len(m.Fields)+1)
	for key, messages := range m.Fields {
		out[key] = append([]string(nil), messages...)
	}
	if len(m.Form) > 0 {
		out[FormErrorKey] = append([]string(nil), m.Form...)
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
