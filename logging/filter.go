package logging

// FilterLogger forwards records at or above a minimum level to an inner
// logger and drops the rest.
type FilterLogger struct {
	next Logger
	min  Level
}

var _ Logger = (*FilterLogger)(nil)

// NewFilterLogger decorates next with a minimum-level gate.
func NewFilterLogger(next Logger, min Level) *FilterLogger {
	return &FilterLogger{next: next, min: min}
}

// Log forwards the record when its level is at or above the minimum.
func (f *FilterLogger) Log(record *Record) {
	if record == nil || f.next == nil {
		return
	}

	if record.Level() < f.min {
		return
	}

	f.next.Log(record)
}
