// Package logger provides structured logging for the application.
//
// It builds on the standard library's log/slog package, emitting JSON
// records with a configurable level, and carries request-scoped loggers
// through the context so handlers log with their request's trace ID.
package logger
