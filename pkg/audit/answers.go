package audit

import "fmt"

// Answers is the accumulated answer record across all seven steps.
type Answers struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`

	BusinessDescription string `json:"businessDescription"`
	Industry            string `json:"industry"`

	Challenges []string `json:"challenges"`
	PainPoints string   `json:"painPoints"`

	TeamSize     string   `json:"teamSize"`
	CurrentTools []string `json:"currentTools"`
	TechStack    string   `json:"techStack"`

	TimeConsumingTasks []string `json:"timeConsumingTasks"`
	DailyHours         string   `json:"dailyHours"`

	AutomationGoals []string `json:"automationGoals"`
	Priority        string   `json:"priority"`

	GrowthGoals string `json:"growthGoals"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
}

// Get returns the value of a single-value field. Multi-value and unknown
// fields return an empty string.
func (a *Answers) Get(field Field) string {
	if ptr := a.text(field); ptr != nil {
		return *ptr
	}
	return ""
}

// Set overwrites a single-value field.
func (a *Answers) Set(field Field, value string) error {
	ptr := a.text(field)
	if ptr == nil {
		return fmt.Errorf("%w: %q is not a single-value field", ErrUnknownField, field)
	}
	*ptr = value
	return nil
}

// List returns a copy of a multi-value field.
func (a *Answers) List(field Field) []string {
	ptr := a.list(field)
	if ptr == nil || len(*ptr) == 0 {
		return nil
	}
	return append([]string(nil), (*ptr)...)
}

// Toggle adds value to a multi-value field when included is true and removes
// it otherwise. Adding a value already present is a no-op.
func (a *Answers) Toggle(field Field, value string, included bool) error {
	ptr := a.list(field)
	if ptr == nil {
		return fmt.Errorf("%w: %q is not a multi-value field", ErrUnknownField, field)
	}
	idx := indexOf(*ptr, value)
	switch {
	case included && idx < 0:
		*ptr = append(*ptr, value)
	case !included && idx >= 0:
		next := make([]string, 0, len(*ptr)-1)
		next = append(next, (*ptr)[:idx]...)
		next = append(next, (*ptr)[idx+1:]...)
		*ptr = next
	}
	return nil
}

// Clone returns a deep copy of the record.
func (a Answers) Clone() Answers {
	out := a
	out.Challenges = cloneList(a.Challenges)
	out.CurrentTools = cloneList(a.CurrentTools)
	out.TimeConsumingTasks = cloneList(a.TimeConsumingTasks)
	out.AutomationGoals = cloneList(a.AutomationGoals)
	return out
}

func (a *Answers) text(field Field) *string {
	switch field {
	case FieldFirstName:
		return &a.FirstName
	case FieldLastName:
		return &a.LastName
	case FieldEmail:
		return &a.Email
	case FieldCompany:
		return &a.Company
	case FieldBusinessDescription:
		return &a.BusinessDescription
	case FieldIndustry:
		return &a.Industry
	case FieldPainPoints:
		return &a.PainPoints
	case FieldTeamSize:
		return &a.TeamSize
	case FieldTechStack:
		return &a.TechStack
	case FieldDailyHours:
		return &a.DailyHours
	case FieldPriority:
		return &a.Priority
	case FieldGrowthGoals:
		return &a.GrowthGoals
	case FieldBudget:
		return &a.Budget
	case FieldTimeline:
		return &a.Timeline
	}
	return nil
}

func (a *Answers) list(field Field) *[]string {
	switch field {
	case FieldChallenges:
		return &a.Challenges
	case FieldCurrentTools:
		return &a.CurrentTools
	case FieldTimeConsumingTasks:
		return &a.TimeConsumingTasks
	case FieldAutomationGoals:
		return &a.AutomationGoals
	}
	return nil
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}

// cloneList copies a set and never returns nil so payloads encode [] rather
// than null.
func cloneList(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
