package logging

// Logger is the output port every adapter implements. Log renders or routes a
// record; it never blocks on application concerns and never returns an error
// to the caller.
//
// Implementations shared across goroutines must be safe for concurrent use.
// The stateless adapters in this package are; stateful custom adapters own
// their synchronization.
type Logger interface {
	Log(record *Record)
}
