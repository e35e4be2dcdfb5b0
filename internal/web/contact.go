package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/goliatone/go-agencysite/pkg/contact"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/render"
	"github.com/goliatone/go-agencysite/pkg/renderers/vanilla"
	"github.com/goliatone/go-agencysite/pkg/site"
)

var contactFields = []vanilla.FieldSpec{
	{Name: contact.KeyName, Label: "Full Name", Kind: vanilla.KindText, Placeholder: "Enter your full name", Required: true},
	{Name: contact.KeyEmail, Label: "Email Address", Kind: vanilla.KindEmail, Placeholder: "Enter your email", Required: true},
	{Name: contact.KeyPhone, Label: "Phone Number", Kind: vanilla.KindTel, Placeholder: "Enter your phone number"},
	{Name: contact.KeyCompany, Label: "Company Name", Kind: vanilla.KindText, Placeholder: "Enter your company name"},
	{Name: contact.KeyService, Label: "Service Needed", Kind: vanilla.KindSelect, Placeholder: "Select a service", Required: true, Options: contactChoices(contact.Services)},
	{Name: contact.KeyBudget, Label: "Project Budget", Kind: vanilla.KindSelect, Placeholder: "Select budget range", Options: contactChoices(contact.Budgets)},
	{Name: contact.KeyTimeline, Label: "Project Timeline", Kind: vanilla.KindSelect, Placeholder: "Select timeline", Options: contactChoices(contact.Timelines)},
	{Name: contact.KeyMessage, Label: "Project Details", Kind: vanilla.KindTextArea, Placeholder: "Tell us about your project, goals, and any specific requirements...", Required: true},
}

func contactChoices(options []contact.Option) []vanilla.Choice {
	out := make([]vanilla.Choice, 0, len(options))
	for _, option := range options {
		out = append(out, vanilla.Choice{Value: option.Value, Label: option.Label})
	}
	return out
}

func isContactField(key string) bool {
	for _, field := range contactFields {
		if field.Name == key {
			return true
		}
	}
	return false
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.visit(w, r, site.PageContact)
		s.renderContact(w, r, http.StatusOK, contact.Form{}, nil, false)
		return
	case http.MethodPost:
	default:
		methodNotAllowedWith(w, http.MethodGet, http.MethodHead, http.MethodPost)
		return
	}

	s.visit(w, r, site.PageContact)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	var form contact.Form
	for _, key := range contact.Keys() {
		form.Set(key, r.PostForm.Get(key))
	}

	_, err := s.contact.Submit(context.WithoutCancel(r.Context()), form)
	var invalid *contact.ValidationError
	switch {
	case err == nil:
		s.metrics.ObserveContact(nil)
		s.renderContact(w, r, http.StatusOK, form.Normalize(), nil, true)
	case errors.As(err, &invalid):
		s.renderContact(w, r, http.StatusBadRequest, form, invalid.Errors, false)
	default:
		s.metrics.ObserveContact(err)
		s.logger.Error().Err(err).Msg("contact submission failed")
		s.renderContact(w, r, http.StatusBadGateway, form, map[string]string{contact.KeySubmit: contact.SubmitErrorMessage}, false)
	}
}

func (s *Server) renderContact(w http.ResponseWriter, r *http.Request, status int, form contact.Form, errs map[string]string, sent bool) {
	values := make(map[string]any, len(contact.Keys()))
	for _, key := range contact.Keys() {
		values[key] = form.Get(key)
	}
	flat := render.MapErrors(errs, isContactField).Flatten()

	data := map[string]any{"sent": sent}
	if sent {
		data["sender"] = form.Name
	} else {
		data["fields"] = vanilla.BuildFields(contactFields, values, flat)
	}

	s.render(w, r, status, orchestrator.Request{
		Page: site.PageContact,
		Data: data,
		RenderOptions: render.RenderOptions{
			Values: values,
			Errors: flat,
		},
	})
}
