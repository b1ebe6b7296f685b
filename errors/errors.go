// Package errors provides error handling for propgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to configuration failures
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "pass --classname or set classname in propgen.toml")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Generation failures. The messages are part of the tool's contract with
// build pipelines and must stay byte-for-byte stable.
var (
	// ErrClassnameNotSet is returned when no fully qualified target name was given
	ErrClassnameNotSet = New("classname not set")

	// ErrDestDirNotSet is returned when no destination directory was given
	ErrDestDirNotSet = New("destdir not set")

	// ErrNoSources is returned when neither a path collection nor a property set was registered
	ErrNoSources = New("path or propertyset not added")

	// ErrCouldNotCreateFile is returned when the output file cannot be created or written
	ErrCouldNotCreateFile = New("Could not create file")
)

// IsConfigurationError reports whether err is one of the eager validation failures
// that abort a run before any file is touched.
func IsConfigurationError(err error) bool {
	return err != nil && IsAny(err, ErrClassnameNotSet, ErrDestDirNotSet, ErrNoSources)
}

// CouldNotCreateFile marks cause as an output-creation failure. The returned
// error prints exactly as ErrCouldNotCreateFile; cause is kept as a secondary
// error for %+v formatting.
func CouldNotCreateFile(cause error) error {
	if cause == nil {
		return ErrCouldNotCreateFile
	}
	return WithSecondaryError(WithStack(ErrCouldNotCreateFile), cause)
}
