package logging

import (
	"fmt"
	"io"
	"os"
)

// ConsoleLogger renders records as single human-readable lines:
//
//	[<unix-seconds>] <LEVEL>: <message>
//
// Fields and the request ID are intentionally not rendered; use JSONLogger
// when they matter.
type ConsoleLogger struct {
	// Out is the destination stream. Defaults to os.Stdout when nil.
	Out io.Writer
}

// Compile-time assertion: *ConsoleLogger implements Logger.
var _ Logger = (*ConsoleLogger)(nil)

// NewConsoleLogger creates a console logger writing to standard output.
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{}
}

// Log writes the record as one formatted line.
func (c *ConsoleLogger) Log(record *Record) {
	if record == nil {
		return
	}

	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "[%d] %s: %s\n", record.Timestamp(), record.Level(), record.Message())
}
