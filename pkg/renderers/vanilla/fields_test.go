package vanilla_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agencysite/pkg/renderers/vanilla"
)

func TestBuildFields(t *testing.T) {
	specs := []vanilla.FieldSpec{
		{Name: "firstName", Label: "First Name", Required: true},
		{
			Name:  "industry",
			Label: "Industry",
			Kind:  vanilla.KindSelect,
			Options: []vanilla.Choice{
				{Value: "retail", Label: "Retail"},
				{Value: "finance", Label: "Finance"},
			},
		},
		{
			Name:  "challenges",
			Label: "Challenges",
			Kind:  vanilla.KindMulti,
			Options: []vanilla.Choice{
				{Value: "Lead generation", Label: "Lead generation"},
				{Value: "Email management", Label: "Email management"},
			},
		},
	}
	values := map[string]any{
		"firstName":  "Jane",
		"industry":   "finance",
		"challenges": []any{"Email management"},
	}
	errs := map[string][]string{"firstName": {"First name is required", "ignored"}}

	got := vanilla.BuildFields(specs, values, errs)
	want := []vanilla.FieldView{
		{
			Name:     "firstName",
			ID:       "field-firstName",
			Label:    "First Name",
			Kind:     vanilla.KindText,
			Required: true,
			Value:    "Jane",
			Error:    "First name is required",
		},
		{
			Name:  "industry",
			ID:    "field-industry",
			Label: "Industry",
			Kind:  vanilla.KindSelect,
			Value: "finance",
			Options: []vanilla.Choice{
				{Value: "retail", Label: "Retail"},
				{Value: "finance", Label: "Finance", Selected: true},
			},
		},
		{
			Name:  "challenges",
			ID:    "field-challenges",
			Label: "Challenges",
			Kind:  vanilla.KindMulti,
			Options: []vanilla.Choice{
				{Value: "Lead generation", Label: "Lead generation"},
				{Value: "Email management", Label: "Email management", Selected: true},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFieldsDoesNotMutateSpecs(t *testing.T) {
	specs := []vanilla.FieldSpec{{
		Name:    "budget",
		Kind:    vanilla.KindSelect,
		Options: []vanilla.Choice{{Value: "under-1k", Label: "Under $1K"}},
	}}
	vanilla.BuildFields(specs, map[string]any{"budget": "under-1k"}, nil)
	if specs[0].Options[0].Selected {
		t.Fatalf("spec options should stay untouched")
	}
}
