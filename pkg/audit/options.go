package audit

// Choice is a selectable option. Value is submitted verbatim; Label is what
// front-ends display.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

var catalogue = map[Field][]Choice{
	FieldIndustry: {
		{Value: "technology", Label: "Technology"},
		{Value: "healthcare", Label: "Healthcare"},
		{Value: "finance", Label: "Finance"},
		{Value: "retail", Label: "Retail/E-commerce"},
		{Value: "manufacturing", Label: "Manufacturing"},
		{Value: "consulting", Label: "Consulting"},
		{Value: "education", Label: "Education"},
		{Value: "real-estate", Label: "Real Estate"},
		{Value: "marketing", Label: "Marketing/Advertising"},
		{Value: "other", Label: "Other"},
	},
	FieldTeamSize: {
		{Value: "1", Label: "Just me (Solo)"},
		{Value: "2-5", Label: "2-5 employees"},
		{Value: "6-20", Label: "6-20 employees"},
		{Value: "21-50", Label: "21-50 employees"},
		{Value: "51-100", Label: "51-100 employees"},
		{Value: "100+", Label: "100+ employees"},
	},
	FieldDailyHours: {
		{Value: "1-2", Label: "1-2 hours"},
		{Value: "3-4", Label: "3-4 hours"},
		{Value: "5-6", Label: "5-6 hours"},
		{Value: "7-8", Label: "7-8 hours"},
		{Value: "8+", Label: "More than 8 hours"},
	},
	FieldPriority: {
		{Value: "save-time", Label: "Save time on repetitive tasks"},
		{Value: "reduce-errors", Label: "Reduce human errors"},
		{Value: "improve-customer", Label: "Improve customer experience"},
		{Value: "increase-revenue", Label: "Increase revenue"},
		{Value: "scale-operations", Label: "Scale operations"},
		{Value: "reduce-costs", Label: "Reduce operational costs"},
	},
	FieldBudget: {
		{Value: "under-1k", Label: "Under $1,000/month"},
		{Value: "1k-5k", Label: "$1,000 - $5,000/month"},
		{Value: "5k-10k", Label: "$5,000 - $10,000/month"},
		{Value: "10k-25k", Label: "$10,000 - $25,000/month"},
		{Value: "25k+", Label: "$25,000+/month"},
	},
	FieldTimeline: {
		{Value: "immediately", Label: "Immediately"},
		{Value: "1-month", Label: "Within 1 month"},
		{Value: "2-3-months", Label: "2-3 months"},
		{Value: "3-6-months", Label: "3-6 months"},
		{Value: "6-12-months", Label: "6-12 months"},
		{Value: "exploring", Label: "Just exploring options"},
	},
	FieldChallenges: literal(
		"Manual data entry",
		"Customer service bottlenecks",
		"Lead generation",
		"Email management",
		"Inventory management",
		"Scheduling conflicts",
		"Report generation",
		"Social media management",
		"Invoice processing",
		"Quality control",
		"Team communication",
		"Document management",
	),
	FieldCurrentTools: literal(
		"CRM (Salesforce, HubSpot)",
		"Email Marketing (Mailchimp)",
		"Project Management (Asana, Trello)",
		"Accounting (QuickBooks)",
		"Social Media Tools",
		"Analytics (Google Analytics)",
		"Communication (Slack, Teams)",
		"E-commerce Platform",
		"Design Tools (Adobe, Canva)",
		"Automation Tools (Zapier)",
		"Database Management",
		"Custom Software",
	),
	FieldTimeConsumingTasks: literal(
		"Data entry and processing",
		"Email management",
		"Customer support",
		"Scheduling and calendar management",
		"Social media posting",
		"Report generation",
		"Invoice and billing",
		"Lead qualification",
		"Content creation",
		"Inventory updates",
		"Meeting coordination",
		"Document organization",
	),
	FieldAutomationGoals: literal(
		"Customer onboarding",
		"Email marketing campaigns",
		"Lead nurturing",
		"Data backup and sync",
		"Social media scheduling",
		"Invoice generation",
		"Appointment booking",
		"Inventory management",
		"Customer support tickets",
		"Report generation",
		"Task assignment",
		"Quality assurance checks",
	),
}

// literal builds choices whose label is the submitted value.
func literal(values ...string) []Choice {
	out := make([]Choice, 0, len(values))
	for _, value := range values {
		out = append(out, Choice{Value: value, Label: value})
	}
	return out
}

// Options returns a copy of the option list for a choice field. Non-choice
// fields return nil.
func Options(field Field) []Choice {
	choices, ok := catalogue[field]
	if !ok {
		return nil
	}
	return append([]Choice(nil), choices...)
}

// OptionValues returns the submitted values allowed for a choice field.
func OptionValues(field Field) []string {
	choices := catalogue[field]
	if len(choices) == 0 {
		return nil
	}
	out := make([]string, 0, len(choices))
	for _, choice := range choices {
		out = append(out, choice.Value)
	}
	return out
}

// HasOption reports whether value is part of the field's option list.
func HasOption(field Field, value string) bool {
	for _, choice := range catalogue[field] {
		if choice.Value == value {
			return true
		}
	}
	return false
}

// LabelFor returns the display label for a value, falling back to the value
// itself when it is not in the catalogue.
func LabelFor(field Field, value string) string {
	for _, choice := range catalogue[field] {
		if choice.Value == value {
			return choice.Label
		}
	}
	return value
}

// Catalogue returns every option list keyed by field name.
func Catalogue() map[Field][]Choice {
	out := make(map[Field][]Choice, len(catalogue))
	for field, choices := range catalogue {
		out[field] = append([]Choice(nil), choices...)
	}
	return out
}
