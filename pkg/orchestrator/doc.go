// Package orchestrator wires site content, the brand theme and the renderer
// registry into a single page rendering entry point used by the HTTP server.
package orchestrator
