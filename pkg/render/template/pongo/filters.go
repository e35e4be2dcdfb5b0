package pongo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-agencysite/pkg/render"
)

func registerDefaultFilters() {
	filters := map[string]pongo2.FilterFunction{
		"trim":        filterTrim,
		"lowerfirst":  filterLowerFirst,
		"sanitize":    filterSanitize,
		"selected":    filterSelected,
		"optionlabel": filterOptionLabel,
	}
	for name, fn := range filters {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

func filterLowerFirst(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	t := in.String()

	var (
		firstNonWhitespaceIndex int
		firstRune               rune
		firstRuneSize           int
	)

	for i, r := range t {
		if !strings.ContainsRune(" \t\n\r", r) {
			firstNonWhitespaceIndex = i
			firstRune = r
			firstRuneSize = utf8.RuneLen(r)
			break
		}
	}

	if firstRune == 0 {
		return pongo2.AsValue(t), nil
	}

	prefix := t[:firstNonWhitespaceIndex]
	loweredRune := strings.ToLower(string(firstRune))
	rest := t[firstNonWhitespaceIndex+firstRuneSize:]

	return pongo2.AsValue(prefix + loweredRune + rest), nil
}

// filterSanitize strips markup from visitor-entered text. Output is still
// autoescaped by pongo2.
func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(render.SanitizeText(in.String())), nil
}

// filterSelected reports whether param is the current value, or one of the
// values when the input is a list.
//
//	{% if values.challenges|selected:option.value %}checked{% endif %}
func filterSelected(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() || param == nil || param.IsNil() {
		return pongo2.AsValue(false), nil
	}
	want := param.String()
	switch values := in.Interface().(type) {
	case []any:
		for _, value := range values {
			if fmt.Sprint(value) == want {
				return pongo2.AsValue(true), nil
			}
		}
		return pongo2.AsValue(false), nil
	case []string:
		for _, value := range values {
			if value == want {
				return pongo2.AsValue(true), nil
			}
		}
		return pongo2.AsValue(false), nil
	}
	return pongo2.AsValue(in.String() == want), nil
}

// filterOptionLabel maps an option value to its label using a list of
// {value, label} objects. Unknown values are returned unchanged.
//
//	{{ values.budget|optionlabel:fields.budget.options }}
func filterOptionLabel(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	value := in.String()
	if param == nil || param.IsNil() {
		return pongo2.AsValue(value), nil
	}
	options, ok := param.Interface().([]any)
	if !ok {
		return pongo2.AsValue(value), nil
	}
	for _, raw := range options {
		option, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if fmt.Sprint(option["value"]) == value {
			if label, ok := option["label"].(string); ok && label != "" {
				return pongo2.AsValue(label), nil
			}
		}
	}
	return pongo2.AsValue(value), nil
}
