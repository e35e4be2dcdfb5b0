package tui

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-agencysite/pkg/audit"
)

// Summarize serializes a payload in the requested format. The JSON form is
// the exact webhook body.
func Summarize(payload audit.Payload, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(payload)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(payload)), nil
	case OutputFormatJSON, "":
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode payload: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("tui: unknown output format %q", format)
	}
}

func flattenForm(payload audit.Payload) string {
	values := url.Values{}
	for _, field := range audit.Fields() {
		if field.Kind().Multi() {
			for _, value := range payload.List(field) {
				values.Add(field.String(), value)
			}
			continue
		}
		values.Set(field.String(), payload.Get(field))
	}
	values.Set("submittedAt", payload.SubmittedAt)
	return values.Encode()
}

func prettyPrint(payload audit.Payload) string {
	var b strings.Builder
	for _, step := range audit.Steps() {
		fmt.Fprintf(&b, "%s\n", step.Title)
		for _, info := range step.Fields {
			fmt.Fprintf(&b, "  %s: %s\n", info.Label, displayValue(payload.Answers, info))
		}
	}
	if payload.SubmittedAt != "" {
		fmt.Fprintf(&b, "Submitted at: %s\n", payload.SubmittedAt)
	}
	return b.String()
}

func displayValue(answers audit.Answers, info audit.FieldInfo) string {
	if info.Kind.Multi() {
		values := answers.List(info.Key)
		if len(values) == 0 {
			return "-"
		}
		labels := make([]string, 0, len(values))
		for _, value := range values {
			labels = append(labels, audit.LabelFor(info.Key, value))
		}
		return strings.Join(labels, ", ")
	}
	value := strings.TrimSpace(answers.Get(info.Key))
	if value == "" {
		return "-"
	}
	if info.Kind.Choice() {
		return audit.LabelFor(info.Key, value)
	}
	return strings.Join(strings.Fields(value), " ")
}
