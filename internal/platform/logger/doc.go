// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// logging with configurable level and format (JSON or text). Request-scoped
// loggers travel through context via WithLogger and FromContextOrDefault.
package logger
