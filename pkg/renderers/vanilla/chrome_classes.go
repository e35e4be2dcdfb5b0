package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm     ChromeClass = "site-form"
	ClassField    ChromeClass = "site-field"
	ClassFieldset ChromeClass = "site-fieldset"
	ClassActions  ChromeClass = "site-actions"
	ClassErrors   ChromeClass = "site-errors"
	ClassGrid     ChromeClass = "site-grid"
)

// Chrome returns the class names exposed to templates under "chrome".
func Chrome() map[string]string {
	return map[string]string{
		"form":     string(ClassForm),
		"field":    string(ClassField),
		"fieldset": string(ClassFieldset),
		"actions":  string(ClassActions),
		"errors":   string(ClassErrors),
		"grid":     string(ClassGrid),
	}
}
