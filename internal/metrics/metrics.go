// Package metrics holds the in-process counters exposed at /metricsz.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics counts site activity. The zero value is ready to use.
type Metrics struct {
	AuditsStarted        int64
	StepsAdvanced        int64
	SubmissionsAttempted int64
	SubmissionsSucceeded int64
	SubmissionsFailed    int64
	ContactMessages      int64
	ContactFailures      int64
	WebhookErrors        int64

	mu             sync.RWMutex
	averageLatency time.Duration
	webhookCalls   int64
}

// New creates an empty Metrics.
func New() *Metrics {
	return &Metrics{}
}

// IncAuditsStarted counts a fresh wizard handed to a visitor.
func (m *Metrics) IncAuditsStarted() { atomic.AddInt64(&m.AuditsStarted, 1) }

// IncStepsAdvanced counts successful Advance calls.
func (m *Metrics) IncStepsAdvanced() { atomic.AddInt64(&m.StepsAdvanced, 1) }

// ObserveSubmission counts one audit submission attempt and its outcome.
func (m *Metrics) ObserveSubmission(err error) {
	atomic.AddInt64(&m.SubmissionsAttempted, 1)
	if err != nil {
		atomic.AddInt64(&m.SubmissionsFailed, 1)
		return
	}
	atomic.AddInt64(&m.SubmissionsSucceeded, 1)
}

// ObserveContact counts one contact form delivery and its outcome.
func (m *Metrics) ObserveContact(err error) {
	if err != nil {
		atomic.AddInt64(&m.ContactFailures, 1)
		return
	}
	atomic.AddInt64(&m.ContactMessages, 1)
}

// ObserveWebhook records one outbound webhook call. Its signature matches
// webhook.Observer.
func (m *Metrics) ObserveWebhook(elapsed time.Duration, err error) {
	if err != nil {
		atomic.AddInt64(&m.WebhookErrors, 1)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.webhookCalls++
	// cumulative mean
	m.averageLatency += (elapsed - m.averageLatency) / time.Duration(m.webhookCalls)
}

// AverageLatency returns the mean webhook latency.
func (m *Metrics) AverageLatency() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.averageLatency
}

// Stats is a point-in-time copy of every counter.
type Stats struct {
	AuditsStarted         int64  `json:"audits_started"`
	StepsAdvanced         int64  `json:"steps_advanced"`
	SubmissionsAttempted  int64  `json:"submissions_attempted"`
	SubmissionsSucceeded  int64  `json:"submissions_succeeded"`
	SubmissionsFailed     int64  `json:"submissions_failed"`
	ContactMessages       int64  `json:"contact_messages"`
	ContactFailures       int64  `json:"contact_failures"`
	WebhookCalls          int64  `json:"webhook_calls"`
	WebhookErrors         int64  `json:"webhook_errors"`
	WebhookAverageLatency string `json:"webhook_average_latency"`
}

// GetStats returns the current counters.
func (m *Metrics) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		AuditsStarted:         atomic.LoadInt64(&m.AuditsStarted),
		StepsAdvanced:         atomic.LoadInt64(&m.StepsAdvanced),
		SubmissionsAttempted:  atomic.LoadInt64(&m.SubmissionsAttempted),
		SubmissionsSucceeded:  atomic.LoadInt64(&m.SubmissionsSucceeded),
		SubmissionsFailed:     atomic.LoadInt64(&m.SubmissionsFailed),
		ContactMessages:       atomic.LoadInt64(&m.ContactMessages),
		ContactFailures:       atomic.LoadInt64(&m.ContactFailures),
		WebhookCalls:          m.webhookCalls,
		WebhookErrors:         atomic.LoadInt64(&m.WebhookErrors),
		WebhookAverageLatency: m.averageLatency.String(),
	}
}
