// Package errors provides structured error reporting for kit.
//
// The editing core never fails loudly: full registries and full buffers are
// reported through return values. This package carries the diagnostics
// around that core (theme loading, capacity warnings) to a replaceable
// handler.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a theme or configuration file problem.
	KindConfig
	// KindCapacity indicates a caller-sized store ran out of room.
	KindCapacity
	// KindInput indicates malformed input events, such as a bad replay script.
	KindInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCapacity:
		return "capacity"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupportedFormat is returned for theme files that are neither
	// YAML nor TOML.
	ErrUnsupportedFormat = stderrors.New("unsupported format")

	// ErrVersion is returned when a theme file declares an invalid or
	// unsupported schema version.
	ErrVersion = stderrors.New("unsupported version")

	// ErrRegistryFull is reported when a state registry rejects a new id.
	ErrRegistryFull = stderrors.New("state registry full")
)

// KitError represents a structured error.
type KitError struct {
	// Op is the operation that failed (e.g., "theme.LoadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *KitError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *KitError) Unwrap() error {
	return e.Err
}

// New returns a KitError for op wrapping err.
func New(op string, kind ErrorKind, err error) *KitError {
	return &KitError{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first KitError in err's chain.
func KindOf(err error) ErrorKind {
	var ke *KitError
	if stderrors.As(err, &ke) {
		return ke.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// ErrorHandler receives errors reported by kit.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *KitError)
}

// HandlerFunc adapts a function to ErrorHandler.
type HandlerFunc func(err *KitError)

// HandleError calls f(err).
func (f HandlerFunc) HandleError(err *KitError) {
	f(err)
}
