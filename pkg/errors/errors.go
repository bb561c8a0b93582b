// Package errors carries the failure types of the presentation engine and
// the process-wide hook they are reported through.
//
// Programmer errors, such as a deceleration rate outside (0, 1) or content
// presented twice, raise an [InvariantError] as a panic after being handed to
// the installed [ErrorHandler]. Everything else is recovered locally and at
// most reported as a [PresentError].
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorKind groups reported errors by the subsystem they came from.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvariant
	// KindLifecycle marks a failure inside a content appearance callback.
	KindLifecycle
	// KindLayout marks a style or size computation that had to be clamped
	// or ignored.
	KindLayout
	KindGesture
	KindPanic
	KindConfig
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindInvariant: "invariant",
	KindLifecycle: "lifecycle",
	KindLayout:    "layout",
	KindGesture:   "gesture",
	KindPanic:     "panic",
	KindConfig:    "config",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// PresentError is a recoverable failure. The engine keeps running after
// reporting one.
type PresentError struct {
	Op   string
	Kind ErrorKind
	Err  error
	// Presentation is the id of the item involved, when there is one.
	Presentation string
	StackTrace   string
	Timestamp    time.Time
}

func (e *PresentError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	fmt.Fprintf(&sb, " [%s]", e.Kind)
	if e.Presentation != "" {
		sb.WriteString(" presentation=")
		sb.WriteString(e.Presentation)
	}
	fmt.Fprintf(&sb, ": %v", e.Err)
	return sb.String()
}

func (e *PresentError) Unwrap() error { return e.Err }

// PanicError wraps a value recovered by [Recover].
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
}

// InvariantError is only ever seen as a panic value.
type InvariantError struct {
	Op         string
	Message    string
	StackTrace string
	Timestamp  time.Time
}

func (e *InvariantError) Error() string {
	return "invariant violated in " + e.Op + ": " + e.Message
}

// ErrorHandler receives everything the engine reports. HandleInvariant runs
// just before the panic is raised.
type ErrorHandler interface {
	HandleError(err *PresentError)
	HandlePanic(err *PanicError)
	HandleInvariant(err *InvariantError)
}
