// Package logger provides the service wide Logger, backed by log/slog.
package logger

// Logger is the logging surface used by handlers, services and repositories.
// Arguments are concatenated like fmt.Sprint.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	// Fatal logs and terminates the process.
	Fatal(args ...interface{})
	// Panic logs and panics with the formatted message.
	Panic(args ...interface{})
}
