package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agencysite/pkg/audit"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int
	inputErr     error
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) sawInfo(fragment string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

type recordingSink struct {
	mu       sync.Mutex
	payloads []audit.Payload
	errs     []error
}

func (s *recordingSink) Deliver(_ context.Context, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload.(audit.Payload))
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return err
	}
	return nil
}

// sampleDriver scripts the prompts for one valid pass through all steps.
func sampleDriver() *stubDriver {
	return &stubDriver{
		inputs: []string{"Jane", "Doe", "jane@example.com", ""},
		textAreas: []string{
			"Boutique design studio",
			"too slow",
			"",
			"double revenue",
		},
		selectIdx: []int{0, 1, 1, 0, 1, 1},
		multiIdx:  [][]int{{2}, {0}, {1}, {2}},
		confirm:   []bool{true},
	}
}

func newTestWizard(sink audit.Sink) *audit.Wizard {
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return audit.NewWizard(sink, audit.WithClock(func() time.Time { return fixed }))
}

func TestRun_WalksAllStepsAndSubmits(t *testing.T) {
	driver := sampleDriver()
	sink := &recordingSink{}
	wizard := newTestWizard(sink)

	if err := New(WithPromptDriver(driver)).Run(context.Background(), wizard); err != nil {
		t.Fatalf("run: %v", err)
	}

	if wizard.Phase() != audit.PhaseSubmitted {
		t.Fatalf("expected submitted phase, got %s", wizard.Phase())
	}
	if len(sink.payloads) != 1 {
		t.Fatalf("expected one delivery, got %d", len(sink.payloads))
	}

	want := audit.Payload{
		Answers: audit.Answers{
			FirstName:           "Jane",
			LastName:            "Doe",
			Email:               "jane@example.com",
			BusinessDescription: "Boutique design studio",
			Industry:            "technology",
			Challenges:          []string{"Lead generation"},
			PainPoints:          "too slow",
			TeamSize:            "2-5",
			CurrentTools:        []string{"CRM (Salesforce, HubSpot)"},
			TimeConsumingTasks:  []string{"Email management"},
			DailyHours:          "3-4",
			AutomationGoals:     []string{"Lead nurturing"},
			Priority:            "save-time",
			GrowthGoals:         "double revenue",
			Budget:              "1k-5k",
			Timeline:            "1-month",
		},
		SubmittedAt: "2026-03-01T09:30:00.000Z",
	}
	if diff := cmp.Diff(want, sink.payloads[0]); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if !driver.sawInfo("Step 7 of 7: Growth & Investment") {
		t.Fatalf("expected step header, got %v", driver.infoMessages)
	}
	if !driver.sawInfo("Thank you!") {
		t.Fatalf("expected confirmation message, got %v", driver.infoMessages)
	}
}

func TestRun_ReasksInvalidStep(t *testing.T) {
	driver := sampleDriver()
	driver.inputs = append([]string{"", "Doe", "not-an-email", ""}, driver.inputs...)
	sink := &recordingSink{}
	wizard := newTestWizard(sink)

	if err := New(WithPromptDriver(driver)).Run(context.Background(), wizard); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !driver.sawInfo("First name is required") || !driver.sawInfo("Valid email is required") {
		t.Fatalf("expected validation messages, got %v", driver.infoMessages)
	}
	if driver.inputPos != 8 {
		t.Fatalf("expected step 1 to be asked twice, consumed %d inputs", driver.inputPos)
	}
	if len(sink.payloads) != 1 {
		t.Fatalf("expected one delivery, got %d", len(sink.payloads))
	}
}

func TestRun_ReasksInvalidFinalStepBeforeConfirm(t *testing.T) {
	driver := sampleDriver()
	driver.textAreas = []string{"Boutique design studio", "too slow", "", "", "double revenue"}
	driver.selectIdx = append(driver.selectIdx, 1, 1)
	sink := &recordingSink{}
	wizard := newTestWizard(sink)

	if err := New(WithPromptDriver(driver)).Run(context.Background(), wizard); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !driver.sawInfo("Growth goals are required") {
		t.Fatalf("expected final step validation message, got %v", driver.infoMessages)
	}
	headers, errorAt, lastHeaderAt := 0, -1, -1
	for i, msg := range driver.infoMessages {
		if strings.Contains(msg, "Step 7 of 7") {
			headers++
			lastHeaderAt = i
		}
		if strings.Contains(msg, "Growth goals are required") {
			errorAt = i
		}
	}
	if headers != 2 || errorAt > lastHeaderAt {
		t.Fatalf("expected step 7 to be asked again after the error, got %v", driver.infoMessages)
	}
	if driver.textPos != 5 || driver.selectPos != 8 {
		t.Fatalf("expected step 7 asked twice, consumed %d textareas and %d selects", driver.textPos, driver.selectPos)
	}
	if driver.confirmPos != 1 {
		t.Fatalf("expected a single confirmation after the valid pass, got %d", driver.confirmPos)
	}
	if len(sink.payloads) != 1 || sink.payloads[0].GrowthGoals != "double revenue" {
		t.Fatalf("unexpected deliveries %+v", sink.payloads)
	}
}

func TestRun_RetriesFailedSubmission(t *testing.T) {
	driver := sampleDriver()
	driver.confirm = []bool{true, true}
	sink := &recordingSink{errs: []error{errors.New("connection refused")}}
	wizard := newTestWizard(sink)

	if err := New(WithPromptDriver(driver)).Run(context.Background(), wizard); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(sink.payloads) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(sink.payloads))
	}
	if !driver.sawInfo(audit.SubmitErrorMessage) {
		t.Fatalf("expected submit error message, got %v", driver.infoMessages)
	}
	if wizard.Phase() != audit.PhaseSubmitted {
		t.Fatalf("expected submitted phase, got %s", wizard.Phase())
	}
}

func TestRun_DeclinedRetryAborts(t *testing.T) {
	driver := sampleDriver()
	driver.confirm = []bool{true, false}
	sink := &recordingSink{errs: []error{errors.New("status 500")}}
	wizard := newTestWizard(sink)

	err := New(WithPromptDriver(driver)).Run(context.Background(), wizard)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if !errors.Is(err, audit.ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed in chain, got %v", err)
	}

	state := wizard.Snapshot()
	if state.Phase != audit.PhaseEditing || state.Step != audit.LastStep {
		t.Fatalf("expected editing on last step, got %s/%d", state.Phase, state.Step)
	}
	if state.Errors[audit.KeySubmit] == "" {
		t.Fatalf("expected submit error, got %v", state.Errors)
	}
}

func TestRun_DeclinedConfirmationStepsBack(t *testing.T) {
	driver := sampleDriver()
	driver.confirm = []bool{false, true}
	// step 6 and 7 are asked a second time
	driver.multiIdx = append(driver.multiIdx, []int{0})
	driver.selectIdx = append(driver.selectIdx, 1, 1, 1)
	driver.textAreas = append(driver.textAreas, "triple revenue")
	sink := &recordingSink{}
	wizard := newTestWizard(sink)

	if err := New(WithPromptDriver(driver)).Run(context.Background(), wizard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(sink.payloads) != 1 {
		t.Fatalf("expected one delivery, got %d", len(sink.payloads))
	}

	got := sink.payloads[0]
	if diff := cmp.Diff([]string{"Customer onboarding"}, got.AutomationGoals); diff != "" {
		t.Fatalf("automation goals mismatch (-want +got):\n%s", diff)
	}
	if got.Priority != "reduce-errors" || got.GrowthGoals != "triple revenue" {
		t.Fatalf("expected revised answers, got %q / %q", got.Priority, got.GrowthGoals)
	}
}

func TestRun_PropagatesDriverAbort(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	sink := &recordingSink{}

	err := New(WithPromptDriver(driver)).Run(context.Background(), newTestWizard(sink))
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if len(sink.payloads) != 0 {
		t.Fatalf("expected no delivery, got %d", len(sink.payloads))
	}
}

func TestRun_RequiresWizard(t *testing.T) {
	if err := New(WithPromptDriver(&stubDriver{})).Run(context.Background(), nil); !errors.Is(err, ErrWizardRequired) {
		t.Fatalf("expected ErrWizardRequired, got %v", err)
	}
}
