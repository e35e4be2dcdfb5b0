// Package webhook delivers form payloads to an external HTTP endpoint as a
// single JSON POST. Any 2xx response is success; every other status and every
// transport error is reported to the caller. There is no retry and no
// idempotency key.
package webhook
