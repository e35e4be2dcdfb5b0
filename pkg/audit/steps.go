package audit

// FieldInfo describes how a front-end should present one question.
type FieldInfo struct {
	Key         Field     `json:"key"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
	Options     []Choice  `json:"options,omitempty"`
}

// StepInfo groups the questions shown on one wizard step.
type StepInfo struct {
	Number      int         `json:"number"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      []FieldInfo `json:"fields"`
}

var steps = []StepInfo{
	{
		Number:      1,
		Title:       "Business Basics",
		Description: "Let's start with some basic information about you and your business",
		Fields: []FieldInfo{
			{Key: FieldFirstName, Label: "First Name", Placeholder: "Enter your first name", Required: true},
			{Key: FieldLastName, Label: "Last Name", Placeholder: "Enter your last name", Required: true},
			{Key: FieldEmail, Label: "Email Address", Placeholder: "Enter your email address", Required: true},
			{Key: FieldCompany, Label: "Company Name", Placeholder: "Enter your company name (optional)"},
		},
	},
	{
		Number:      2,
		Title:       "Business Overview",
		Description: "Tell us about your business and industry",
		Fields: []FieldInfo{
			{Key: FieldBusinessDescription, Label: "What does your business do?", Placeholder: "Describe your business, products, or services...", Required: true},
			{Key: FieldIndustry, Label: "Industry", Placeholder: "Select your industry", Required: true},
		},
	},
	{
		Number:      3,
		Title:       "Current Challenges",
		Description: "What are your biggest business challenges right now?",
		Fields: []FieldInfo{
			{Key: FieldChallenges, Label: "Select your main challenges", Required: true},
			{Key: FieldPainPoints, Label: "Describe your biggest pain points", Placeholder: "What specific problems are slowing down your business?", Required: true},
		},
	},
	{
		Number:      4,
		Title:       "Team & Tools",
		Description: "Tell us about your team size and current tools",
		Fields: []FieldInfo{
			{Key: FieldTeamSize, Label: "Team Size", Placeholder: "Select team size", Required: true},
			{Key: FieldCurrentTools, Label: "Current tools you use", Required: true},
			{Key: FieldTechStack, Label: "Other software or platforms", Placeholder: "List any specific software, platforms, or technologies you use..."},
		},
	},
	{
		Number:      5,
		Title:       "Time Management",
		Description: "What tasks consume most of your time?",
		Fields: []FieldInfo{
			{Key: FieldTimeConsumingTasks, Label: "Most time-consuming tasks", Required: true},
			{Key: FieldDailyHours, Label: "Hours per day spent on repetitive tasks", Placeholder: "Select hours per day", Required: true},
		},
	},
	{
		Number:      6,
		Title:       "Automation Goals",
		Description: "What would you like to automate in your business?",
		Fields: []FieldInfo{
			{Key: FieldAutomationGoals, Label: "Processes you'd like to automate", Required: true},
			{Key: FieldPriority, Label: "Top priority", Placeholder: "Select your top priority", Required: true},
		},
	},
	{
		Number:      7,
		Title:       "Growth & Investment",
		Description: "Tell us about your growth goals and budget",
		Fields: []FieldInfo{
			{Key: FieldGrowthGoals, Label: "Growth goals for the next 12 months", Placeholder: "Describe your growth objectives, revenue targets, expansion plans...", Required: true},
			{Key: FieldBudget, Label: "Monthly budget for automation", Placeholder: "Select budget range", Required: true},
			{Key: FieldTimeline, Label: "Implementation timeline", Placeholder: "Select timeline", Required: true},
		},
	},
}

// Steps returns metadata for every step, with kinds and option lists filled
// in from the catalogue.
func Steps() []StepInfo {
	out := make([]StepInfo, 0, len(steps))
	for _, step := range steps {
		out = append(out, expandStep(step))
	}
	return out
}

// StepFor returns metadata for a single step.
func StepFor(number int) (StepInfo, bool) {
	if number < FirstStep || number > LastStep {
		return StepInfo{}, false
	}
	return expandStep(steps[number-1]), true
}

// StepOf returns the step a field is asked on, or 0 if unknown.
func StepOf(field Field) int {
	for _, step := range steps {
		for _, info := range step.Fields {
			if info.Key == field {
				return step.Number
			}
		}
	}
	return 0
}

func expandStep(step StepInfo) StepInfo {
	out := step
	out.Fields = make([]FieldInfo, 0, len(step.Fields))
	for _, info := range step.Fields {
		info.Kind = info.Key.Kind()
		info.Options = Options(info.Key)
		out.Fields = append(out.Fields, info)
	}
	return out
}
