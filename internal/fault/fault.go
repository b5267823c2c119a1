// Package fault classifies devsetup failures as fatal or recoverable so
// orchestration code can decide whether to stop the run or keep going.
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies which part of a run failed.
type Kind int

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindProbe is a package manager query that could not run.
	KindProbe
	// KindBootstrap is a failure to install the package manager itself.
	KindBootstrap
	// KindConfigIO is a config read or write failure.
	KindConfigIO
)

func (k Kind) String() string {
	switch k {
	case KindProbe:
		return "probe"
	case KindBootstrap:
		return "bootstrap"
	case KindConfigIO:
		return "config"
	default:
		return "unknown"
	}
}

// Severity says whether a failure stops the run.
type Severity int

const (
	// Recoverable failures are handled where they occur.
	Recoverable Severity = iota
	// Fatal failures abort the whole run.
	Fatal
)

func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "recoverable"
}

// Error is a categorized failure.
type Error struct {
	Kind     Kind
	Severity Severity
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failure", e.Kind)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewRecoverable wraps err as a recoverable failure of kind.
func NewRecoverable(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Severity: Recoverable, Err: err}
}

// NewFatal wraps err as a fatal failure of kind.
func NewFatal(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Severity: Fatal, Err: err}
}

// IsFatal reports whether err carries a fatal fault anywhere in its chain.
func IsFatal(err error) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Severity == Fatal
	}
	return false
}

// KindOf returns the Kind of the first fault in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
