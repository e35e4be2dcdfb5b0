package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Phase is the coarse wizard state.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

// State is a read-only snapshot of a Wizard.
type State struct {
	Step     int     `json:"step"`
	Total    int     `json:"total"`
	Phase    Phase   `json:"phase"`
	Answers  Answers `json:"answers"`
	Errors   Errors  `json:"errors"`
	Progress int     `json:"progress"`
}

// Submitting reports whether a submission is in flight.
func (s State) Submitting() bool { return s.Phase == PhaseSubmitting }

// Submitted reports whether the wizard reached its terminal state.
func (s State) Submitted() bool { return s.Phase == PhaseSubmitted }

// Option configures a Wizard.
type Option func(*Wizard)

// WithClock overrides the clock used for submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// WithLogger attaches a logger for submission events.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Wizard) {
		w.logger = logger
	}
}

// Wizard walks the seven audit steps, validating each before advancing, and
// delivers the record once on the final step.
//
// All methods are safe for concurrent use. The lock is released while the
// payload is delivered so a concurrent Submit observes the in-flight state
// and is rejected.
type Wizard struct {
	mu      sync.Mutex
	step    int
	answers Answers
	errors  Errors
	phase   Phase

	sink   Sink
	now    func() time.Time
	logger zerolog.Logger
}

// NewWizard returns a wizard on step 1 with an empty record.
func NewWizard(sink Sink, opts ...Option) *Wizard {
	w := &Wizard{
		step:    FirstStep,
		errors:  Errors{},
		phase:   PhaseEditing,
		sink:    sink,
		now:     time.Now,
		logger:  zerolog.Nop(),
		answers: Answers{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Step returns the current step number.
func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Errors returns a copy of the current error map.
func (w *Wizard) Errors() Errors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errors.Clone()
}

// Snapshot copies the full wizard state.
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Step:     w.step,
		Total:    TotalSteps,
		Phase:    w.phase,
		Answers:  w.answers.Clone(),
		Errors:   w.errors.Clone(),
		Progress: w.step * 100 / TotalSteps,
	}
}

// Validate checks step against the current record and replaces the error map
// with the result.
func (w *Wizard) Validate(step int) Errors {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errors = Validate(step, w.answers)
	return w.errors.Clone()
}

// Advance validates the current step and moves forward when it passes. It
// reports whether the step changed. On the last step it is a no-op and
// leaves the error map untouched.
func (w *Wizard) Advance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseEditing || w.step >= LastStep {
		return false
	}
	w.errors = Validate(w.step, w.answers)
	if len(w.errors) > 0 {
		return false
	}
	w.step++
	return true
}

// Retreat moves back one step, floored at the first, and clears errors.
func (w *Wizard) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseEditing {
		return
	}
	if w.step > FirstStep {
		w.step--
	}
	w.errors = Errors{}
}

// SetField overwrites a single-value field.
func (w *Wizard) SetField(field Field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.mutable(); err != nil {
		return err
	}
	return w.answers.Set(field, value)
}

// ToggleMultiField adds or removes value from a multi-value field.
func (w *Wizard) ToggleMultiField(field Field, value string, included bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.mutable(); err != nil {
		return err
	}
	return w.answers.Toggle(field, value, included)
}

// Field reads a single-value field.
func (w *Wizard) Field(field Field) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.answers.Get(field)
}

// Values reads a multi-value field.
func (w *Wizard) Values(field Field) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.answers.List(field)
}

// Reset discards the record and returns to step 1. It is ignored while a
// submission is in flight and reports whether the reset happened.
func (w *Wizard) Reset() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase == PhaseSubmitting {
		return false
	}
	w.step = FirstStep
	w.answers = Answers{}
	w.errors = Errors{}
	w.phase = PhaseEditing
	return true
}

// Submit re-validates the final step and delivers the payload to the sink
// exactly once. Failures leave the wizard editing step 7 with a generic
// submit error so the caller can retry.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if err := w.mutable(); err != nil {
		w.mu.Unlock()
		return err
	}
	if w.step != LastStep {
		w.mu.Unlock()
		return ErrNotFinalStep
	}

	w.errors = Validate(LastStep, w.answers)
	if len(w.errors) > 0 {
		errs := w.errors.Clone()
		w.mu.Unlock()
		return &ValidationError{Step: LastStep, Errors: errs}
	}

	payload := NewPayload(w.answers, w.now())
	if err := CheckPayload(payload); err != nil {
		w.errors = Errors{KeySubmit: SubmitErrorMessage}
		w.mu.Unlock()
		w.logger.Warn().Err(err).Msg("audit payload rejected by contract")
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	w.phase = PhaseSubmitting
	sink := w.sink
	w.mu.Unlock()

	started := time.Now()
	err := deliver(ctx, sink, payload)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.phase = PhaseEditing
		w.errors = Errors{KeySubmit: SubmitErrorMessage}
		w.logger.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("audit submission failed")
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	w.phase = PhaseSubmitted
	w.errors = Errors{}
	w.logger.Info().
		Str("email", payload.Email).
		Str("submitted_at", payload.SubmittedAt).
		Dur("elapsed", time.Since(started)).
		Msg("audit submitted")
	return nil
}

func (w *Wizard) mutable() error {
	switch w.phase {
	case PhaseSubmitting:
		return ErrSubmitInFlight
	case PhaseSubmitted:
		return ErrAlreadySubmitted
	}
	return nil
}

func deliver(ctx context.Context, sink Sink, payload Payload) error {
	if sink == nil {
		return ErrNoSink
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return sink.Deliver(ctx, payload)
}
