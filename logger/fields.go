package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across propgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldOperation = "op"

	// Files and paths
	FieldFile    = "file"
	FieldDir     = "dir"
	FieldPattern = "pattern"
	FieldPathSet = "path_set"
	FieldSource  = "source"

	// Generation
	FieldClassName = "classname"
	FieldLanguage  = "language"
	FieldConstants = "constants"
	FieldSources   = "sources"
	FieldSkipped   = "skipped"
	FieldVerbosity = "verbosity"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	emitter := constgen.NewEmitter(dialect, true, logger.ComponentLogger("emit"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	srcLogger := logger.ChildLogger(baseLogger, logger.FieldSource, src.Origin())
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
