package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog"
)

var (
	// ErrSubmissionFailed wraps sink and contract failures.
	ErrSubmissionFailed = errors.New("contact: submission failed")
	// ErrNoSink is returned when the service has nowhere to deliver.
	ErrNoSink = errors.New("contact: no sink configured")
)

// SubmitErrorMessage is the generic message shown after a failed delivery.
const SubmitErrorMessage = "Failed to send message. Please try again."

// ValidationError carries the failing fields of a rejected form.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for key := range e.Errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return "contact: invalid form: " + strings.Join(keys, ", ")
}

// Sink receives accepted contact messages.
type Sink interface {
	Deliver(ctx context.Context, payload any) error
}

// Message is the delivered body.
type Message struct {
	Form
	SubmittedAt string `json:"submittedAt"`
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service validates contact forms and hands accepted ones to a sink.
type Service struct {
	sink   Sink
	now    func() time.Time
	logger zerolog.Logger
}

// NewService builds a Service around sink.
func NewService(sink Sink, opts ...ServiceOption) *Service {
	s := &Service{
		sink:   sink,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Submit validates form and delivers it once. Validation failures return a
// *ValidationError; delivery failures wrap ErrSubmissionFailed.
func (s *Service) Submit(ctx context.Context, form Form) (Message, error) {
	form = form.Normalize()
	if errs := Validate(form); len(errs) > 0 {
		return Message{}, &ValidationError{Errors: errs}
	}

	msg := Message{
		Form:        form,
		SubmittedAt: s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	if err := CheckMessage(msg); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	if s.sink == nil {
		return Message{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, ErrNoSink)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.sink.Deliver(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("email", msg.Email).Msg("contact delivery failed")
		return Message{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	s.logger.Info().Str("email", msg.Email).Str("service", msg.Service).Msg("contact message accepted")
	return msg, nil
}

var (
	schemaOnce    sync.Once
	messageSchema *openapi3.Schema
)

// MessageSchema describes the delivered JSON body.
func MessageSchema() *openapi3.Schema {
	schemaOnce.Do(func() {
		schema := openapi3.NewObjectSchema()
		for _, key := range Keys() {
			prop := openapi3.NewStringSchema()
			switch key {
			case KeyEmail:
				prop.WithPattern(emailPattern.String())
			case KeyService:
				prop.WithEnum(enum(Services, false)...)
			case KeyBudget:
				prop.WithEnum(enum(Budgets, true)...)
			case KeyTimeline:
				prop.WithEnum(enum(Timelines, true)...)
			case KeyName, KeyMessage:
				prop.WithMinLength(1)
			}
			schema.WithProperty(key, prop)
		}
		schema.WithProperty("submittedAt", openapi3.NewDateTimeSchema())
		schema.Required = append(Keys(), "submittedAt")
		messageSchema = schema
	})
	return messageSchema
}

// CheckMessage validates the JSON form of msg against MessageSchema.
func CheckMessage(msg Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("contact: encode message: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("contact: decode message: %w", err)
	}
	if err := MessageSchema().VisitJSON(decoded); err != nil {
		return fmt.Errorf("contact: message contract: %w", err)
	}
	return nil
}

func enum(options []Option, allowEmpty bool) []any {
	out := make([]any, 0, len(options)+1)
	if allowEmpty {
		out = append(out, "")
	}
	for _, opt := range options {
		out = append(out, opt.Value)
	}
	return out
}
