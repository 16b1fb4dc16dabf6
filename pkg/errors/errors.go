// Package errors provides structured error handling for the composition core.
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
	// KindPlatform indicates a failure reported by the platform collaborator.
	KindPlatform
	// KindInit indicates a startup error, such as an unusable renderer.
	KindInit
	// KindRender indicates a rendering backend error.
	KindRender
	// KindPaint indicates a single draw call whose paint could not be resolved.
	KindPaint
	// KindAddressing indicates an IdPath push/pop imbalance in a view.
	KindAddressing
	// KindState indicates malformed state cell access.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPaint:
		return "paint"
	case KindAddressing:
		return "addressing"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrUnbalancedPath is reported when a traversal returns with a
	// non-empty IdPath, meaning some view pushed without popping.
	ErrUnbalancedPath = stderrors.New("unbalanced id path")

	// ErrReentrant is returned when a traversal is started on a Context that
	// is already inside a traversal.
	ErrReentrant = stderrors.New("re-entrant context traversal")

	// ErrNoAdapter is returned when no rendering backend can be created.
	ErrNoAdapter = stderrors.New("no compatible rendering adapter")

	// ErrUnsupported is returned when a backend lacks a required capability.
	ErrUnsupported = stderrors.New("unsupported rendering capability")
)

// LoomError represents a structured error in the composition core.
type LoomError struct {
	// Op is the operation that failed (e.g., "core.Context.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the depth of the IdPath left over by an addressing error,
	// negative when views popped more than they pushed.
	Path int
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LoomError) Error() string {
	if e.Kind == KindAddressing && e.Path != 0 {
		return fmt.Sprintf("%s [%s] depth=%d: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoomError) Unwrap() error {
	return e.Err
}

// New returns a LoomError with the timestamp set.
func New(op string, kind ErrorKind, err error) *LoomError {
	return &LoomError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of the first LoomError in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var le *LoomError
	if stderrors.As(err, &le) {
		return le.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Context.Process").
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

// ErrorHandler receives errors reported by the core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LoomError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
