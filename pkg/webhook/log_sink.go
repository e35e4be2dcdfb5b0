package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// LogSink records payloads in the log instead of posting them. It is used
// when no endpoint is configured.
type LogSink struct {
	logger zerolog.Logger
	label  string
}

// NewLogSink returns a sink that logs each payload at info level under label.
func NewLogSink(logger zerolog.Logger, label string) *LogSink {
	if label == "" {
		label = "payload"
	}
	return &LogSink{logger: logger, label: label}
}

// Deliver logs payload and always succeeds unless it cannot be encoded.
func (s *LogSink) Deliver(_ context.Context, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}
	s.logger.Info().RawJSON(s.label, raw).Msg("delivery recorded without endpoint")
	return nil
}
