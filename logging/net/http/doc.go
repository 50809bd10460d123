// Package http provides Fiber middleware that wires the logging facade into
// an HTTP server: request-correlation ID stamping and per-request access
// records.
package http
