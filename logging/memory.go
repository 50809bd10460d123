package logging

import "sync"

// MemoryLogger collects records in memory. It stores clones, so mutating a
// record after Log does not change what was captured. Safe for concurrent use;
// intended for tests and in-process inspection.
type MemoryLogger struct {
	mu      sync.Mutex
	records []Record
}

var _ Logger = (*MemoryLogger)(nil)

// NewMemoryLogger creates an empty in-memory collector.
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

// Log appends a clone of the record.
func (m *MemoryLogger) Log(record *Record) {
	if record == nil {
		return
	}

	clone := record.Clone()

	m.mu.Lock()
	m.records = append(m.records, clone)
	m.mu.Unlock()
}

// Records returns a copy of the captured records in arrival order.
func (m *MemoryLogger) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.records))
	copy(out, m.records)

	return out
}

// RecordsAtLevel returns the captured records with exactly the given level.
func (m *MemoryLogger) RecordsAtLevel(level Level) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Record

	for _, record := range m.records {
		if record.Level() == level {
			out = append(out, record)
		}
	}

	return out
}

// Len returns the number of captured records.
func (m *MemoryLogger) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records)
}

// Reset discards all captured records.
func (m *MemoryLogger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
}
