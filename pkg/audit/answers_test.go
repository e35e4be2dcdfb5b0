package audit

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAnswersToggleRoundTrip(t *testing.T) {
	a := Answers{Challenges: []string{"Lead generation"}}

	if err := a.Toggle(FieldChallenges, "Email management", true); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if err := a.Toggle(FieldChallenges, "Email management", false); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if diff := cmp.Diff([]string{"Lead generation"}, a.Challenges); diff != "" {
		t.Fatalf("round trip changed the set (-want +got):\n%s", diff)
	}
}

func TestAnswersToggleIsIdempotent(t *testing.T) {
	var a Answers
	for i := 0; i < 3; i++ {
		if err := a.Toggle(FieldAutomationGoals, "Lead nurturing", true); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	if got := a.List(FieldAutomationGoals); len(got) != 1 {
		t.Fatalf("expected single entry, got %v", got)
	}
	if err := a.Toggle(FieldAutomationGoals, "Not present", false); err != nil {
		t.Fatalf("remove absent value: %v", err)
	}
	if got := a.List(FieldAutomationGoals); len(got) != 1 {
		t.Fatalf("removing an absent value changed the set: %v", got)
	}
}

func TestAnswersToggleRemovePreservesOrder(t *testing.T) {
	a := Answers{CurrentTools: []string{"A", "B", "C"}}
	if err := a.Toggle(FieldCurrentTools, "B", false); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if diff := cmp.Diff([]string{"A", "C"}, a.CurrentTools); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAnswersWrongKindRejected(t *testing.T) {
	var a Answers
	if err := a.Set(FieldChallenges, "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for multi field, got %v", err)
	}
	if err := a.Toggle(FieldIndustry, "retail", true); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for single field, got %v", err)
	}
	if err := a.Set(Field("favouriteColour"), "blue"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for unknown field, got %v", err)
	}
}

func TestAnswersCloneIsDeep(t *testing.T) {
	a := completeAnswers()
	clone := a.Clone()
	clone.Challenges[0] = "mutated"
	if a.Challenges[0] == "mutated" {
		t.Fatalf("clone shares backing array with source")
	}
}

func TestPayloadEncodesEveryKey(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.FixedZone("EST", -5*3600))
	payload := NewPayload(Answers{FirstName: "Jane"}, at)

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, field := range Fields() {
		value, ok := decoded[field.String()]
		if !ok {
			t.Fatalf("payload missing %q", field)
		}
		if field.Kind().Multi() {
			if _, isList := value.([]any); !isList {
				t.Fatalf("%q encoded as %T, want array", field, value)
			}
		}
	}
	if got := decoded["submittedAt"]; got != "2026-03-14T20:09:26.535Z" {
		t.Fatalf("submittedAt = %v", got)
	}
	if len(decoded) != len(Fields())+1 {
		t.Fatalf("expected %d keys, got %d", len(Fields())+1, len(decoded))
	}
}
