package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/goliatone/go-agencysite/pkg/audit"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/render"
	"github.com/goliatone/go-agencysite/pkg/renderers/vanilla"
	"github.com/goliatone/go-agencysite/pkg/site"
)

// Wizard form actions.
const (
	actionNext    = "next"
	actionBack    = "back"
	actionSubmit  = "submit"
	actionRestart = "restart"
)

const (
	staleStepMessage = "This form was out of date. Please review the current step and continue."
	inFlightMessage  = "Your audit is being submitted. Please wait."
	submittedMessage = "This audit has already been submitted."
)

// stepLink is one entry of the step trail above the wizard form.
type stepLink struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Current bool   `json:"current"`
	Done    bool   `json:"done"`
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	default:
		methodNotAllowedWith(w, http.MethodGet, http.MethodHead, http.MethodPost)
		return
	}

	wizard, started := s.sessions.Acquire(w, r).enterAudit(s.newWizard)
	if started {
		s.metrics.IncAuditsStarted()
	}

	if r.Method != http.MethodPost {
		s.renderAudit(w, r, http.StatusOK, wizard, nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}
	status, formErrors := s.applyAuditAction(r, wizard)
	s.renderAudit(w, r, status, wizard, formErrors)
}

// applyAuditAction runs the posted action and returns the response status
// and any form-level messages not held by the wizard.
func (s *Server) applyAuditAction(r *http.Request, wizard *audit.Wizard) (int, []string) {
	action := r.PostForm.Get(render.ActionFieldName)
	if action == actionRestart {
		if !wizard.Reset() {
			return http.StatusConflict, []string{inFlightMessage}
		}
		s.metrics.IncAuditsStarted()
		return http.StatusOK, nil
	}

	current := wizard.Step()
	posted, ok := render.ParseStepField(r.PostForm.Get(render.StepFieldName))
	if !ok || posted != current {
		return http.StatusConflict, []string{staleStepMessage}
	}

	if action == "" {
		action = actionNext
	}
	// Next on the last step submits.
	if action == actionNext && current == audit.LastStep {
		action = actionSubmit
	}

	if err := applyStepFields(r, wizard, current); err != nil {
		return mutationStatus(err)
	}

	switch action {
	case actionBack:
		wizard.Retreat()
		return http.StatusOK, nil
	case actionNext:
		if wizard.Advance() {
			s.metrics.IncStepsAdvanced()
			return http.StatusOK, nil
		}
		return http.StatusBadRequest, nil
	case actionSubmit:
		return s.submitAudit(r.Context(), wizard)
	default:
		return http.StatusBadRequest, []string{"Unknown action."}
	}
}

func (s *Server) submitAudit(ctx context.Context, wizard *audit.Wizard) (int, []string) {
	err := wizard.Submit(context.WithoutCancel(ctx))

	var invalid *audit.ValidationError
	switch {
	case err == nil:
		s.metrics.ObserveSubmission(nil)
		return http.StatusOK, nil
	case errors.As(err, &invalid):
		return http.StatusBadRequest, nil
	case errors.Is(err, audit.ErrSubmissionFailed):
		s.metrics.ObserveSubmission(err)
		return http.StatusBadGateway, nil
	case errors.Is(err, audit.ErrNotFinalStep):
		return http.StatusBadRequest, nil
	default:
		return mutationStatus(err)
	}
}

func mutationStatus(err error) (int, []string) {
	switch {
	case errors.Is(err, audit.ErrSubmitInFlight):
		return http.StatusConflict, []string{inFlightMessage}
	case errors.Is(err, audit.ErrAlreadySubmitted):
		return http.StatusConflict, []string{submittedMessage}
	default:
		return http.StatusBadRequest, []string{err.Error()}
	}
}

// applyStepFields copies the posted answers of step into the wizard.
// Multi-choice fields toggle every catalogue option so unchecked boxes are
// removed; values outside the catalogue are dropped.
func applyStepFields(r *http.Request, wizard *audit.Wizard, step int) error {
	info, ok := audit.StepFor(step)
	if !ok {
		return nil
	}
	for _, field := range info.Fields {
		key := field.Key.String()
		if field.Kind.Multi() {
			chosen := make(map[string]bool, len(r.PostForm[key]))
			for _, value := range r.PostForm[key] {
				chosen[value] = true
			}
			for _, value := range audit.OptionValues(field.Key) {
				if err := wizard.ToggleMultiField(field.Key, value, chosen[value]); err != nil {
					return err
				}
			}
			continue
		}
		if err := wizard.SetField(field.Key, r.PostForm.Get(key)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) renderAudit(w http.ResponseWriter, r *http.Request, status int, wizard *audit.Wizard, formErrors []string) {
	state := wizard.Snapshot()
	info, _ := audit.StepFor(state.Step)

	mapping := render.MapErrors(state.Errors, isAuditField)
	mapping.Form = render.MergeFormErrors(mapping.Form, formErrors...)
	errs := mapping.Flatten()
	values := stepValues(state.Answers, info)

	data := map[string]any{
		"wizard": map[string]any{
			"step":        state.Step,
			"total":       state.Total,
			"progress":    state.Progress,
			"title":       info.Title,
			"description": info.Description,
			"first_step":  state.Step == audit.FirstStep,
			"last_step":   state.Step == audit.LastStep,
			"submitting":  state.Submitting(),
			"submitted":   state.Submitted(),
		},
		"steps":  stepTrail(state.Step),
		"fields": vanilla.BuildFields(auditFieldSpecs(info), values, errs),
	}

	s.render(w, r, status, orchestrator.Request{
		Page: site.PageAudit,
		Data: data,
		RenderOptions: render.RenderOptions{
			Values: values,
			Errors: errs,
			Hidden: render.MergeHiddenFields(nil, render.StepField(state.Step)),
		},
	})
}

func isAuditField(key string) bool {
	_, ok := audit.ParseField(key)
	return ok
}

func stepValues(answers audit.Answers, info audit.StepInfo) map[string]any {
	values := make(map[string]any, len(info.Fields))
	for _, field := range info.Fields {
		if field.Kind.Multi() {
			values[field.Key.String()] = answers.List(field.Key)
			continue
		}
		values[field.Key.String()] = answers.Get(field.Key)
	}
	return values
}

func stepTrail(current int) []stepLink {
	steps := audit.Steps()
	out := make([]stepLink, 0, len(steps))
	for _, step := range steps {
		out = append(out, stepLink{
			Number:  step.Number,
			Title:   step.Title,
			Current: step.Number == current,
			Done:    step.Number < current,
		})
	}
	return out
}

func auditFieldSpecs(info audit.StepInfo) []vanilla.FieldSpec {
	specs := make([]vanilla.FieldSpec, 0, len(info.Fields))
	for _, field := range info.Fields {
		spec := vanilla.FieldSpec{
			Name:        field.Key.String(),
			Label:       field.Label,
			Kind:        string(field.Kind),
			Placeholder: field.Placeholder,
			Required:    field.Required,
		}
		for _, option := range field.Options {
			spec.Options = append(spec.Options, vanilla.Choice{Value: option.Value, Label: option.Label})
		}
		specs = append(specs, spec)
	}
	return specs
}
