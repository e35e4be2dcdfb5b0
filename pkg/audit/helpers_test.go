package audit

import "testing"

func completeAnswers() Answers {
	return Answers{
		FirstName:           "Jane",
		LastName:            "Doe",
		Email:               "jane@example.com",
		Company:             "Acme",
		BusinessDescription: "We sell handmade furniture online.",
		Industry:            "retail",
		Challenges:          []string{"Manual data entry", "Lead generation"},
		PainPoints:          "Orders are copied between three systems.",
		TeamSize:            "6-20",
		CurrentTools:        []string{"Accounting (QuickBooks)"},
		TechStack:           "Shopify",
		TimeConsumingTasks:  []string{"Invoice and billing"},
		DailyHours:          "3-4",
		AutomationGoals:     []string{"Invoice generation", "Lead nurturing"},
		Priority:            "save-time",
		GrowthGoals:         "Double online revenue.",
		Budget:              "1k-5k",
		Timeline:            "1-month",
	}
}

// fillWizard copies every answer into w through its public mutators.
func fillWizard(t *testing.T, w *Wizard, a Answers) {
	t.Helper()
	for _, field := range Fields() {
		if field.Kind().Multi() {
			for _, value := range a.List(field) {
				if err := w.ToggleMultiField(field, value, true); err != nil {
					t.Fatalf("toggle %s: %v", field, err)
				}
			}
			continue
		}
		if err := w.SetField(field, a.Get(field)); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
}

// walkToLastStep advances through every step, failing if any is rejected.
func walkToLastStep(t *testing.T, w *Wizard) {
	t.Helper()
	for w.Step() < LastStep {
		if !w.Advance() {
			t.Fatalf("advance from step %d rejected: %v", w.Step(), w.Errors())
		}
	}
}
