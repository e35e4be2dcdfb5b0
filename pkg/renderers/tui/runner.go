package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-agencysite/pkg/audit"
)

// Runner walks an audit.Wizard step by step in the terminal. Each step is
// asked in full, then validated; failing steps are shown and asked again.
type Runner struct {
	driver        PromptDriver
	theme         Theme
	logger        zerolog.Logger
	confirmSubmit bool
}

// New constructs a Runner with defaults (survey driver, confirmation on).
func New(options ...Option) *Runner {
	r := &Runner{
		theme:         DefaultTheme,
		logger:        zerolog.Nop(),
		confirmSubmit: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Run prompts until the wizard is submitted. Declining the submit
// confirmation steps back to the previous step. Declining a retry after a
// failed submission returns an error wrapping both ErrAborted and the
// submission failure.
func (r *Runner) Run(ctx context.Context, wizard *audit.Wizard) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if wizard == nil {
		return ErrWizardRequired
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if wizard.Phase() == audit.PhaseSubmitted {
			return nil
		}

		number := wizard.Step()
		step, ok := audit.StepFor(number)
		if !ok {
			return fmt.Errorf("tui: wizard on unknown step %d", number)
		}

		r.info(ctx, fmt.Sprintf("%s Step %d of %d: %s", r.theme.StepPrefix, step.Number, audit.LastStep, step.Title))
		r.info(ctx, step.Description)

		for _, field := range step.Fields {
			if err := r.promptField(ctx, wizard, field); err != nil {
				return err
			}
		}

		if number < audit.LastStep {
			if !wizard.Advance() {
				r.showErrors(ctx, wizard.Errors())
			}
			continue
		}

		if errs := wizard.Validate(number); len(errs) > 0 {
			r.showErrors(ctx, errs)
			continue
		}

		if r.confirmSubmit {
			ok, err := r.driver.Confirm(ctx, ConfirmConfig{
				Message: "Submit your AI audit?",
				Default: true,
			})
			if err != nil {
				return err
			}
			if !ok {
				wizard.Retreat()
				continue
			}
		}

		done, err := r.submit(ctx, wizard)
		if err != nil || done {
			return err
		}
	}
}

// submit delivers the answers, offering a retry after each failure. It
// reports done=false when the step must be asked again.
func (r *Runner) submit(ctx context.Context, wizard *audit.Wizard) (bool, error) {
	for {
		err := wizard.Submit(ctx)
		if err == nil {
			r.info(ctx, r.theme.InfoPrefix+"Thank you! Your AI audit has been submitted. We'll be in touch within 24 hours.")
			return true, nil
		}

		var validation *audit.ValidationError
		switch {
		case errors.As(err, &validation):
			r.showErrors(ctx, validation.Errors)
			return false, nil
		case errors.Is(err, audit.ErrSubmissionFailed):
			r.logger.Warn().Err(err).Msg("audit submission failed")
			r.showErrors(ctx, wizard.Errors())
		default:
			return false, err
		}

		retry, promptErr := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Retry submission?",
			Default: true,
		})
		if promptErr != nil {
			return false, promptErr
		}
		if !retry {
			return false, fmt.Errorf("%w: %w", ErrAborted, err)
		}
	}
}

func (r *Runner) promptField(ctx context.Context, wizard *audit.Wizard, field audit.FieldInfo) error {
	label := field.Label
	if !field.Required {
		label += " (optional)"
	}

	switch field.Kind {
	case audit.KindSelect:
		labels := optionLabels(field.Options)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      labels,
			DefaultIndex: optionIndex(field.Options, wizard.Field(field.Key)),
			Help:         field.Placeholder,
			PageSize:     len(labels),
		})
		if err != nil {
			return err
		}
		value := ""
		if idx >= 0 && idx < len(field.Options) {
			value = field.Options[idx].Value
		}
		return wizard.SetField(field.Key, value)

	case audit.KindMulti:
		labels := optionLabels(field.Options)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  labels,
			Defaults: optionIndices(field.Options, wizard.Values(field.Key)),
			Help:     "Select all that apply",
			PageSize: len(labels),
		})
		if err != nil {
			return err
		}
		chosen := make(map[int]bool, len(indices))
		for _, idx := range indices {
			chosen[idx] = true
		}
		for i, option := range field.Options {
			if err := wizard.ToggleMultiField(field.Key, option.Value, chosen[i]); err != nil {
				return err
			}
		}
		return nil

	case audit.KindTextArea:
		value, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: wizard.Field(field.Key),
			Help:    field.Placeholder,
		})
		if err != nil {
			return err
		}
		return wizard.SetField(field.Key, value)

	default:
		value, err := r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: wizard.Field(field.Key),
			Help:    field.Placeholder,
		})
		if err != nil {
			return err
		}
		return wizard.SetField(field.Key, strings.TrimSpace(value))
	}
}

func (r *Runner) showErrors(ctx context.Context, errs audit.Errors) {
	for _, key := range errs.Keys() {
		r.info(ctx, fmt.Sprintf("%s %s", r.theme.ErrorPrefix, errs[key]))
	}
}

func (r *Runner) info(ctx context.Context, msg string) {
	if err := r.driver.Info(ctx, msg); err != nil {
		r.logger.Debug().Err(err).Msg("tui info write failed")
	}
}

func optionLabels(options []audit.Choice) []string {
	out := make([]string, 0, len(options))
	for _, option := range options {
		out = append(out, option.Label)
	}
	return out
}

func optionIndex(options []audit.Choice, value string) int {
	for i, option := range options {
		if option.Value == value {
			return i
		}
	}
	return -1
}

func optionIndices(options []audit.Choice, values []string) []int {
	var out []int
	for _, value := range values {
		if idx := optionIndex(options, value); idx >= 0 {
			out = append(out, idx)
		}
	}
	return out
}
