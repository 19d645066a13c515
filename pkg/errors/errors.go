// Package errors provides structured error handling for the Relay framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLookup indicates a failed scope or channel lookup.
	KindLookup
	// KindBinding indicates an invalid type binding.
	KindBinding
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindSettings indicates a settings decode or validation error.
	KindSettings
)

func (k ErrorKind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindBinding:
		return "binding"
	case KindBuild:
		return "build"
	case KindPanic:
		return "panic"
	case KindSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// RelayError represents a structured error in the Relay framework.
type RelayError struct {
	// Op is the operation that failed (e.g., "settings.Source.Start").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// LookupError reports a required scope lookup that found no publisher.
//
// This is a programmer-usage error, not a recoverable runtime condition:
// a required slot or update channel was read below a position where nothing
// publishes it. The Maybe* lookup variants exist for callers that expect
// absence.
type LookupError struct {
	// Slot is the type name of the slot that was requested.
	Slot string
	// Op is the lookup operation (e.g., "scope.Of", "scope.UpdaterOf").
	Op string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s[%s]: no publisher in scope", e.Op, e.Slot)
}

// BindingError reports a container or channel parameterized by an ambiguous
// primitive type. Numeric primitives are rejected eagerly at construction;
// callers wrap them in a distinct nominal type instead.
type BindingError struct {
	// Type is the rejected type name.
	Type string
	// Kind is the reflect kind that caused the rejection.
	Kind string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("cannot bind %s: ambiguous primitive kind %s (wrap it in a nominal struct type)", e.Type, e.Kind)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Relay framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RelayError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
