package logging

// MultiLogger fans every record out to a list of loggers, in order.
type MultiLogger struct {
	loggers []Logger
}

var _ Logger = (*MultiLogger)(nil)

// NewMultiLogger creates a fan-out over the given loggers. Nil entries are
// skipped at log time.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log forwards the record to every logger.
func (m *MultiLogger) Log(record *Record) {
	if record == nil {
		return
	}

	for _, logger := range m.loggers {
		if logger != nil {
			logger.Log(record)
		}
	}
}
