// Package logger provides the logging abstraction used across the service,
// with console and rotating-file backends.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)
}
