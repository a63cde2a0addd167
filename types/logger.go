package types

// Logger is the structured logging interface used by sqlitex.
//
// The method set is compatible with zap.SugaredLogger, so a sugared zap
// logger can be passed directly. Arguments are alternating key/value pairs:
//
//	logger.Warn("implicit commit failed", "code", code, "error", msg)
//
// The default logger discards all messages; see sqlitex.WithLogger.
type Logger interface {
	// Debug logs a message at debug level with alternating key/value pairs.
	Debug(msg string, args ...any)

	// Info logs a message at info level with alternating key/value pairs.
	Info(msg string, args ...any)

	// Warn logs a message at warn level with alternating key/value pairs.
	Warn(msg string, args ...any)

	// Error logs a message at error level with alternating key/value pairs.
	Error(msg string, args ...any)

	// Fatal logs a message at fatal level with alternating key/value pairs.
	Fatal(msg string, args ...any)
}
