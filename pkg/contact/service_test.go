package contact

import (
	"context"
	"errors"
	"testing"
	"time"
)

type captureSink struct {
	messages []Message
	err      error
}

func (s *captureSink) Deliver(_ context.Context, payload any) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, payload.(Message))
	return nil
}

func TestServiceSubmitDelivers(t *testing.T) {
	sink := &captureSink{}
	at := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	svc := NewService(sink, WithClock(func() time.Time { return at }))

	form := validForm()
	form.Name = "  Jane Doe  "
	msg, err := svc.Submit(context.Background(), form)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(sink.messages) != 1 {
		t.Fatalf("deliveries = %d", len(sink.messages))
	}
	if msg.Name != "Jane Doe" {
		t.Fatalf("name not trimmed: %q", msg.Name)
	}
	if msg.SubmittedAt != "2026-05-06T07:08:09.000Z" {
		t.Fatalf("submittedAt = %q", msg.SubmittedAt)
	}
}

func TestServiceSubmitValidationSkipsSink(t *testing.T) {
	sink := &captureSink{}
	svc := NewService(sink)

	_, err := svc.Submit(context.Background(), Form{Name: "Jane"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Errors[KeyMessage]; !ok {
		t.Fatalf("missing message error: %v", verr.Errors)
	}
	if len(sink.messages) != 0 {
		t.Fatalf("sink called for invalid form")
	}
}

func TestServiceSubmitSinkFailure(t *testing.T) {
	svc := NewService(&captureSink{err: errors.New("boom")})
	if _, err := svc.Submit(context.Background(), validForm()); !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
}

func TestServiceSubmitWithoutSink(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Submit(context.Background(), validForm())
	if !errors.Is(err, ErrNoSink) {
		t.Fatalf("expected ErrNoSink, got %v", err)
	}
}

func TestCheckMessageRejectsMissingName(t *testing.T) {
	msg := Message{Form: validForm(), SubmittedAt: "2026-05-06T07:08:09.000Z"}
	if err := CheckMessage(msg); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}
	msg.Name = ""
	if err := CheckMessage(msg); err == nil {
		t.Fatalf("expected empty name to fail the contract")
	}
}
