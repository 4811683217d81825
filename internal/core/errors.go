package core

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionFileMissing is returned when the version file does not exist.
	ErrVersionFileMissing = errors.New("version file missing")

	// ErrVersionFileMalformed is returned when the version file cannot be parsed
	// or has no usable version value.
	ErrVersionFileMalformed = errors.New("version file malformed")

	// ErrVersionNotBumpable is returned when a version has no trailing numeric
	// component to increment.
	ErrVersionNotBumpable = errors.New("version not bumpable")

	// ErrWriteFailure is returned when a file could not be written.
	ErrWriteFailure = errors.New("write failure")

	// ErrUnknownFormat is returned for an unregistered input format.
	ErrUnknownFormat = errors.New("unknown input format")
)

// VersionFileError reports a problem reading a version file.
// Kind is ErrVersionFileMissing or ErrVersionFileMalformed.
type VersionFileError struct {
	Path   string
	Kind   error
	Reason string
	Err    error
}

func (e *VersionFileError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Path, e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *VersionFileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NotBumpableError wraps ErrVersionNotBumpable with the offending version.
type NotBumpableError struct {
	Version string
}

func (e *NotBumpableError) Error() string {
	return fmt.Sprintf("version %q cannot be incremented", e.Version)
}

func (e *NotBumpableError) Unwrap() error {
	return ErrVersionNotBumpable
}

// WriteError wraps ErrWriteFailure with the destination path and cause.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailure, e.Err}
}
