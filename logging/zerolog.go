package logging

import "github.com/rs/zerolog"

// NewZerologSink adapts logger to the Sink signature, mapping this
// package's six-tier level scale onto zerolog's leveled API. Critical
// logs at zerolog's panic level without actually panicking — zerolog's
// levels above Error (Fatal, Panic) only exit or panic via the Fatal()
// and Panic() methods, which this adapter never calls; it logs through
// WithLevel instead.
func NewZerologSink(logger zerolog.Logger) Sink {
	return func(level Level, target, message string) {
		var zlevel zerolog.Level
		switch level {
		case Trace:
			zlevel = zerolog.TraceLevel
		case Debug:
			zlevel = zerolog.DebugLevel
		case Info:
			zlevel = zerolog.InfoLevel
		case Warn:
			zlevel = zerolog.WarnLevel
		case Error:
			zlevel = zerolog.ErrorLevel
		case Critical:
			zlevel = zerolog.PanicLevel
		default:
			zlevel = zerolog.InfoLevel
		}

		event := logger.WithLevel(zlevel)
		if target != "" {
			event = event.Str("target", target)
		}
		event.Msg(message)
	}
}
