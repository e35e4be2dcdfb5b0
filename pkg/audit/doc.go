// Package audit implements the AI Audit lead-qualification wizard: the answer
// record, the fixed option catalogue, per-step validation, and the Wizard
// controller that walks seven steps and delivers the final payload to a Sink.
//
// Validation is exposed as the pure Validate function so front-ends (HTML,
// terminal) and tests can call it without a controller. The Wizard wraps the
// same rules with navigation state and a single outbound delivery.
package audit
