// Package logging is the process-wide sink routing warnings and errors
// from the osmingest package (including the restriction compile errors
// it reports) to a caller-chosen backend.
//
// There is one active Sink at a time (SetSink), defaulting to Discard so
// that importing this module never forces a logging backend on a caller
// who hasn't configured one. Level uses the same six-tier numeric scale
// (5/10/20/30/40/50) as the Python logging module, matching the
// reference implementation this package's contract is distilled from.
//
// NewZerologSink adapts a github.com/rs/zerolog.Logger to the Sink
// signature, for callers who already standardize on zerolog elsewhere in
// their service.
package logging

// Level is a log severity on the Trace..Critical scale.
type Level int

// Level constants, matching Python's logging module numbering.
const (
	Trace    Level = 5
	Debug    Level = 10
	Info     Level = 20
	Warn     Level = 30
	Error    Level = 40
	Critical Level = 50
)

// String renders the level's conventional name.
func (l Level) String() string {
	switch l {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Sink receives a single log record: severity, the subsystem that
// produced it (e.g. "osm" for the ingestion pipeline, "" for the root
// package), and a human-readable message.
type Sink func(level Level, target, message string)

// Discard is a Sink that drops every record. It is the default sink.
func Discard(Level, string, string) {}

var active Sink = Discard

// SetSink installs sink as the process-wide log destination. Passing nil
// restores Discard.
func SetSink(sink Sink) {
	if sink == nil {
		active = Discard
		return
	}
	active = sink
}

// Log routes a record through the active sink.
func Log(level Level, target, message string) {
	active(level, target, message)
}
