package audit

import (
	"regexp"
	"strings"
)

// FirstStep and LastStep bound the wizard.
const (
	FirstStep  = 1
	LastStep   = 7
	TotalSteps = LastStep
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether value has a basic local@domain.tld shape.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// Validate checks the required fields of step against the record and returns
// one message per failing rule. Steps outside the wizard range return an
// empty map.
func Validate(step int, a Answers) Errors {
	errs := Errors{}

	switch step {
	case 1:
		requireText(errs, FieldFirstName, a.FirstName, "First name is required")
		requireText(errs, FieldLastName, a.LastName, "Last name is required")
		if blank(a.Email) {
			errs[FieldEmail.String()] = "Email is required"
		} else if !ValidEmail(a.Email) {
			errs[FieldEmail.String()] = "Valid email is required"
		}
	case 2:
		requireText(errs, FieldBusinessDescription, a.BusinessDescription, "Business description is required")
		requireChoice(errs, FieldIndustry, a.Industry, "Industry selection is required")
	case 3:
		requireAny(errs, FieldChallenges, a.Challenges, "Please select at least one challenge")
		requireText(errs, FieldPainPoints, a.PainPoints, "Please describe your main pain points")
	case 4:
		requireChoice(errs, FieldTeamSize, a.TeamSize, "Team size is required")
		requireAny(errs, FieldCurrentTools, a.CurrentTools, "Please select at least one tool category")
	case 5:
		requireAny(errs, FieldTimeConsumingTasks, a.TimeConsumingTasks, "Please select at least one time-consuming task")
		requireChoice(errs, FieldDailyHours, a.DailyHours, "Please select daily hours spent on repetitive tasks")
	case 6:
		requireAny(errs, FieldAutomationGoals, a.AutomationGoals, "Please select at least one automation goal")
		requireChoice(errs, FieldPriority, a.Priority, "Priority selection is required")
	case 7:
		requireText(errs, FieldGrowthGoals, a.GrowthGoals, "Growth goals are required")
		requireChoice(errs, FieldBudget, a.Budget, "Budget range is required")
		requireChoice(errs, FieldTimeline, a.Timeline, "Timeline is required")
	}

	return errs
}

func requireText(errs Errors, field Field, value, msg string) {
	if blank(value) {
		errs[field.String()] = msg
	}
}

// requireChoice only checks presence; option membership is enforced by the
// payload contract at submission.
func requireChoice(errs Errors, field Field, value, msg string) {
	if value == "" {
		errs[field.String()] = msg
	}
}

func requireAny(errs Errors, field Field, values []string, msg string) {
	if len(values) == 0 {
		errs[field.String()] = msg
	}
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
