package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agencysite/pkg/render"
)

func TestMapErrors_SplitsFieldAndFormMessages(t *testing.T) {
	known := map[string]bool{"firstName": true, "email": true}
	errs := map[string]string{
		"firstName": " First name is required ",
		"email":     "Valid email is required",
		"submit":    "Failed to submit audit. Please try again.",
		"":          "Unscoped error",
		"blank":     "   ",
	}

	mapped := render.MapErrors(errs, func(key string) bool { return known[key] })

	wantFields := map[string][]string{
		"firstName": {"First name is required"},
		"email":     {"Valid email is required"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Unscoped error", "Failed to submit audit. Please try again."}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrors_Empty(t *testing.T) {
	mapped := render.MapErrors(nil, nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
	if flat := mapped.Flatten(); flat != nil {
		t.Fatalf("expected nil flatten, got %v", flat)
	}
}

func TestErrorMapping_Flatten(t *testing.T) {
	mapping := render.ErrorMapping{
		Fields: map[string][]string{"name": {"Full name is required"}},
		Form:   []string{"Failed to send message. Please try again."},
	}

	want := map[string][]string{
		"name":              {"Full name is required"},
		render.FormErrorKey: {"Failed to send message. Please try again."},
	}
	if diff := cmp.Diff(want, mapping.Flatten()); diff != "" {
		t.Fatalf("flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}
