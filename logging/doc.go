// Package logging is a minimal structured-logging facade: one record shape,
// one single-method Logger port, and reference adapters for human-readable
// console output and machine-readable JSON lines.
//
// Adapters (such as the zap package) implement Logger so applications can
// swap backends without touching call sites.
package logging
