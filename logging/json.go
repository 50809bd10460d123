package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONLogger renders each record as one single-line JSON object with exactly
// five top-level keys: timestamp, level, message, fields, request_id. The
// fields object is always present ({} when empty) and request_id is null when
// no correlation ID is attached.
type JSONLogger struct {
	// Out is the destination stream. Defaults to os.Stdout when nil.
	Out io.Writer
}

// Compile-time assertion: *JSONLogger implements Logger.
var _ Logger = (*JSONLogger)(nil)

// NewJSONLogger creates a JSON logger writing to standard output.
func NewJSONLogger() *JSONLogger {
	return &JSONLogger{}
}

// jsonRecord fixes the wire shape and key order of an emitted record.
type jsonRecord struct {
	Timestamp uint64         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields"`
	RequestID *string        `json:"request_id"`
}

// Log writes the record as one JSON line. When the fields map contains a value
// the encoder rejects, the record is re-emitted with the fields object
// replaced by {"logging_error": "<marshal error>"} so the stream stays valid
// JSON and the scalar parts of the record survive.
func (j *JSONLogger) Log(record *Record) {
	if record == nil {
		return
	}

	out := j.Out
	if out == nil {
		out = os.Stdout
	}

	fields := record.Fields()
	if fields == nil {
		fields = map[string]any{}
	}

	entry := jsonRecord{
		Timestamp: record.Timestamp(),
		Level:     record.Level().String(),
		Message:   record.Message(),
		Fields:    fields,
	}

	if requestID, ok := record.RequestID(); ok {
		entry.RequestID = &requestID
	}

	data, err := json.Marshal(entry)
	if err != nil {
		entry.Fields = map[string]any{"logging_error": err.Error()}

		data, err = json.Marshal(entry)
		if err != nil {
			return
		}
	}

	fmt.Fprintln(out, string(data))
}
