// Package zap adapts the logging facade to a go.uber.org/zap backend.
//
// The adapter maps facade levels onto zap levels (trace collapses into debug,
// which zap does not distinguish) and carries record fields and the request ID
// as structured zap fields.
package zap
