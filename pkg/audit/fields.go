package audit

// Field identifies a question in the answer record. Values double as the JSON
// keys of the submitted payload.
type Field string

const (
	FieldFirstName           Field = "firstName"
	FieldLastName            Field = "lastName"
	FieldEmail               Field = "email"
	FieldCompany             Field = "company"
	FieldBusinessDescription Field = "businessDescription"
	FieldIndustry            Field = "industry"
	FieldChallenges          Field = "challenges"
	FieldPainPoints          Field = "painPoints"
	FieldTeamSize            Field = "teamSize"
	FieldCurrentTools        Field = "currentTools"
	FieldTechStack           Field = "techStack"
	FieldTimeConsumingTasks  Field = "timeConsumingTasks"
	FieldDailyHours          Field = "dailyHours"
	FieldAutomationGoals     Field = "automationGoals"
	FieldPriority            Field = "priority"
	FieldGrowthGoals         Field = "growthGoals"
	FieldBudget              Field = "budget"
	FieldTimeline            Field = "timeline"
)

// KeySubmit is the error map key used for submission failures.
const KeySubmit = "submit"

// FieldKind describes how a field is captured and stored.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindTextArea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindMulti    FieldKind = "multi"
)

// Multi reports whether the kind stores a set of values.
func (k FieldKind) Multi() bool {
	return k == KindMulti
}

// Choice reports whether values are drawn from a fixed option list.
func (k FieldKind) Choice() bool {
	return k == KindSelect || k == KindMulti
}

// fieldOrder is the payload order of every answer field.
var fieldOrder = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldCompany,
	FieldBusinessDescription,
	FieldIndustry,
	FieldChallenges,
	FieldPainPoints,
	FieldTeamSize,
	FieldCurrentTools,
	FieldTechStack,
	FieldTimeConsumingTasks,
	FieldDailyHours,
	FieldAutomationGoals,
	FieldPriority,
	FieldGrowthGoals,
	FieldBudget,
	FieldTimeline,
}

var fieldKinds = map[Field]FieldKind{
	FieldFirstName:           KindText,
	FieldLastName:            KindText,
	FieldEmail:               KindEmail,
	FieldCompany:             KindText,
	FieldBusinessDescription: KindTextArea,
	FieldIndustry:            KindSelect,
	FieldChallenges:          KindMulti,
	FieldPainPoints:          KindTextArea,
	FieldTeamSize:            KindSelect,
	FieldCurrentTools:        KindMulti,
	FieldTechStack:           KindTextArea,
	FieldTimeConsumingTasks:  KindMulti,
	FieldDailyHours:          KindSelect,
	FieldAutomationGoals:     KindMulti,
	FieldPriority:            KindSelect,
	FieldGrowthGoals:         KindTextArea,
	FieldBudget:              KindSelect,
	FieldTimeline:            KindSelect,
}

// Fields returns every answer field in payload order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// ParseField resolves a raw key into a known Field.
func ParseField(raw string) (Field, bool) {
	field := Field(raw)
	_, ok := fieldKinds[field]
	return field, ok
}

// Kind returns the field kind. Unknown fields report an empty kind.
func (f Field) Kind() FieldKind {
	return fieldKinds[f]
}

// Known reports whether the field belongs to the answer record.
func (f Field) Known() bool {
	_, ok := fieldKinds[f]
	return ok
}

func (f Field) String() string {
	return string(f)
}
