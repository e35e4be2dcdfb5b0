// Package contact models the agency contact form: its fields, option lists,
// validation and delivery to a configurable sink.
package contact

import (
	"regexp"
	"strings"
)

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

var (
	// Services lists the service interests offered on the form.
	Services = []Option{
		{Value: "brand-strategy", Label: "Brand Strategy"},
		{Value: "creative-design", Label: "Creative Design"},
		{Value: "web-development", Label: "Web Development"},
		{Value: "growth-marketing", Label: "Growth Marketing"},
		{Value: "digital-consulting", Label: "Digital Consulting"},
		{Value: "other", Label: "Other"},
	}
	// Budgets lists project budget ranges.
	Budgets = []Option{
		{Value: "5k-10k", Label: "$5K - $10K"},
		{Value: "10k-25k", Label: "$10K - $25K"},
		{Value: "25k-50k", Label: "$25K - $50K"},
		{Value: "50k-100k", Label: "$50K - $100K"},
		{Value: "100k+", Label: "$100K+"},
	}
	// Timelines lists project start windows.
	Timelines = []Option{
		{Value: "asap", Label: "ASAP"},
		{Value: "1-month", Label: "Within 1 month"},
		{Value: "2-3-months", Label: "2-3 months"},
		{Value: "3-6-months", Label: "3-6 months"},
		{Value: "6-months+", Label: "6+ months"},
	}
)

// Form is a single contact request.
type Form struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Service  string `json:"service"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
	Message  string `json:"message"`
}

// Field keys used in error maps and form encodings.
const (
	KeyName     = "name"
	KeyEmail    = "email"
	KeyPhone    = "phone"
	KeyCompany  = "company"
	KeyService  = "service"
	KeyBudget   = "budget"
	KeyTimeline = "timeline"
	KeyMessage  = "message"
	KeySubmit   = "submit"
)

// Keys lists every form key in display order.
func Keys() []string {
	return []string{KeyName, KeyEmail, KeyPhone, KeyCompany, KeyService, KeyBudget, KeyTimeline, KeyMessage}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
		Company:  strings.TrimSpace(f.Company),
		Service:  strings.TrimSpace(f.Service),
		Budget:   strings.TrimSpace(f.Budget),
		Timeline: strings.TrimSpace(f.Timeline),
		Message:  strings.TrimSpace(f.Message),
	}
}

// Set assigns a field by key. Unknown keys are ignored and reported false.
func (f *Form) Set(key, value string) bool {
	switch key {
	case KeyName:
		f.Name = value
	case KeyEmail:
		f.Email = value
	case KeyPhone:
		f.Phone = value
	case KeyCompany:
		f.Company = value
	case KeyService:
		f.Service = value
	case KeyBudget:
		f.Budget = value
	case KeyTimeline:
		f.Timeline = value
	case KeyMessage:
		f.Message = value
	default:
		return false
	}
	return true
}

// Get reads a field by key.
func (f Form) Get(key string) string {
	switch key {
	case KeyName:
		return f.Name
	case KeyEmail:
		return f.Email
	case KeyPhone:
		return f.Phone
	case KeyCompany:
		return f.Company
	case KeyService:
		return f.Service
	case KeyBudget:
		return f.Budget
	case KeyTimeline:
		return f.Timeline
	case KeyMessage:
		return f.Message
	}
	return ""
}

// Validate returns one message per failing rule; an empty map means the form
// can be sent. Name, email, service and message are required. Budget and
// timeline are optional but must come from their lists when set.
func Validate(f Form) map[string]string {
	f = f.Normalize()
	errs := map[string]string{}

	if f.Name == "" {
		errs[KeyName] = "Full name is required"
	}
	switch {
	case f.Email == "":
		errs[KeyEmail] = "Email is required"
	case !emailPattern.MatchString(f.Email):
		errs[KeyEmail] = "Valid email is required"
	}
	switch {
	case f.Service == "":
		errs[KeyService] = "Please select a service"
	case !hasOption(Services, f.Service):
		errs[KeyService] = "Please select a valid service"
	}
	if f.Budget != "" && !hasOption(Budgets, f.Budget) {
		errs[KeyBudget] = "Please select a valid budget range"
	}
	if f.Timeline != "" && !hasOption(Timelines, f.Timeline) {
		errs[KeyTimeline] = "Please select a valid timeline"
	}
	if f.Message == "" {
		errs[KeyMessage] = "Project details are required"
	}
	return errs
}

// LabelFor returns the display label of value within options, or value when
// it is not listed.
func LabelFor(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

func hasOption(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
