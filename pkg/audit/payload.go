package audit

import (
	"context"
	"time"
)

// TimestampLayout renders submission instants as ISO-8601 UTC with
// millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Payload is the JSON body delivered on submission: every answer field plus
// the submission instant.
type Payload struct {
	Answers
	SubmittedAt string `json:"submittedAt"`
}

// NewPayload snapshots the record at the given instant. Multi-value fields are
// always non-nil so they encode as arrays.
func NewPayload(a Answers, at time.Time) Payload {
	return Payload{
		Answers:     a.Clone(),
		SubmittedAt: at.UTC().Format(TimestampLayout),
	}
}

// Sink receives the final payload. Implementations report any non-success
// outcome as an error.
type Sink interface {
	Deliver(ctx context.Context, payload any) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, payload any) error

// Deliver calls fn.
func (fn SinkFunc) Deliver(ctx context.Context, payload any) error {
	return fn(ctx, payload)
}
