package audit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownField is returned when a mutation names a field that does not
	// exist or has the wrong kind for the operation.
	ErrUnknownField = errors.New("audit: unknown field")
	// ErrSubmitInFlight signals a submission is already pending. Attempts are
	// rejected, never queued.
	ErrSubmitInFlight = errors.New("audit: submission in flight")
	// ErrAlreadySubmitted signals the wizard reached its terminal state.
	ErrAlreadySubmitted = errors.New("audit: already submitted")
	// ErrNotFinalStep is returned when Submit is called before the last step.
	ErrNotFinalStep = errors.New("audit: submit is only allowed on the final step")
	// ErrSubmissionFailed wraps transport, status, and contract failures.
	ErrSubmissionFailed = errors.New("audit: submission failed")
	// ErrNoSink is wrapped by ErrSubmissionFailed when no sink is configured.
	ErrNoSink = errors.New("audit: no sink configured")
)

// SubmitErrorMessage is the generic message shown after a failed submission.
const SubmitErrorMessage = "Failed to submit audit. Please try again."

// ValidationError reports the failing rules of a step.
type ValidationError struct {
	Step   int
	Errors Errors
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "audit: validation failed"
	}
	return fmt.Sprintf("audit: step %d invalid: %s", e.Step, strings.Join(e.Errors.Keys(), ", "))
}

// Errors maps field keys to human readable messages. An empty map means the
// step passes.
type Errors map[string]string

// Keys returns the failing keys in sorted order.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone copies the map; a nil receiver yields an empty map.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for key, msg := range e {
		out[key] = msg
	}
	return out
}

// Has reports whether key has a message.
func (e Errors) Has(key string) bool {
	_, ok := e[key]
	return ok
}
