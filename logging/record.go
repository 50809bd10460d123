package logging

import "time"

// Record is a single structured log event: severity, message, the unix-seconds
// timestamp captured at construction, free-form fields, and an optional
// request-correlation ID.
type Record struct {
	level     Level
	message   string
	timestamp uint64
	fields    map[string]any
	requestID *string
}

// NewRecord creates a record for the given level and message. The timestamp is
// captured once, here; fields start empty and no request ID is attached.
func NewRecord(level Level, message string) Record {
	return Record{
		level:     level,
		message:   message,
		timestamp: unixNow(),
		fields:    make(map[string]any),
	}
}

// AddField inserts or overwrites a structured field. Values must be JSON-like
// (strings, numbers, booleans, nil, and nested maps/slices thereof) for the
// JSON adapter to render them.
func (r *Record) AddField(key string, value any) {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}

	r.fields[key] = value
}

// WithRequestID returns the record with the correlation ID attached,
// builder-style. The returned record shares the fields map with the receiver;
// use Clone for an independent copy.
func (r Record) WithRequestID(id string) Record {
	r.requestID = &id
	return r
}

// Level returns the record severity.
func (r Record) Level() Level {
	return r.level
}

// Message returns the record message, verbatim.
func (r Record) Message() string {
	return r.message
}

// Timestamp returns the unix-seconds creation time.
func (r Record) Timestamp() uint64 {
	return r.timestamp
}

// Fields returns the live fields map, which may be nil on a zero-value record.
// Mutating it mutates the record.
func (r Record) Fields() map[string]any {
	return r.fields
}

// RequestID returns the correlation ID and whether one is attached.
func (r Record) RequestID() (string, bool) {
	if r.requestID == nil {
		return "", false
	}

	return *r.requestID, true
}

// Clone returns a copy whose fields map is duplicated, deeply for nested
// JSON-like values. Collectors that retain records past the Log call should
// store clones.
func (r Record) Clone() Record {
	clone := r
	clone.fields = cloneFieldMap(r.fields)

	if r.requestID != nil {
		id := *r.requestID
		clone.requestID = &id
	}

	return clone
}

func cloneFieldMap(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}

	out := make(map[string]any, len(fields))
	for key, value := range fields {
		out[key] = cloneFieldValue(value)
	}

	return out
}

func cloneFieldValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneFieldMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneFieldValue(item)
		}

		return out
	default:
		return v
	}
}

func unixNow() uint64 {
	now := time.Now().Unix()
	if now < 0 {
		return 0
	}

	return uint64(now)
}
