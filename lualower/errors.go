package lualower

import (
	"errors"
	"fmt"

	"github.com/zengjie/TypescriptToLua/slast"
)

// Reason names why a translation was rejected. Every reason here is
// fatal and non-recoverable inside the engine (spec section 7).
type Reason string

const (
	UnsupportedSyntax         Reason = "UnsupportedSyntax"
	UnsupportedStringCall     Reason = "UnsupportedStringCall"
	UnsupportedStringProperty Reason = "UnsupportedStringProperty"
	UnsupportedArrayCall      Reason = "UnsupportedArrayCall"
	UnsupportedArrayProperty  Reason = "UnsupportedArrayProperty"
	UnsupportedEnumInit       Reason = "UnsupportedEnumInit"
	UnsupportedForShape       Reason = "UnsupportedForShape"
	RenamedImport             Reason = "RenamedImport"
)

// TranspileError carries a reason, a human-readable message, and the
// offending node (spec section 3: TranspileError). The front-end is
// expected to map Node back to a source location; this engine only
// carries the line number the node itself reports.
type TranspileError struct {
	Reason  Reason
	Message string
	Node    slast.Node
}

func (e *TranspileError) Error() string {
	if e.Node != nil && e.Node.Line() > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Node.Line(), e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// Is lets callers match with errors.Is(err, lualower.ErrUnsupportedSyntax)
// and friends without string comparison.
func (e *TranspileError) Is(target error) bool {
	t, ok := target.(*TranspileError)
	if !ok {
		return false
	}
	if t.Node != nil || t.Message != "" {
		return false
	}
	return e.Reason == t.Reason
}

// Sentinel errors, one per Reason, for errors.Is checks against a bare
// reason without constructing a TranspileError.
var (
	ErrUnsupportedSyntax         = &TranspileError{Reason: UnsupportedSyntax}
	ErrUnsupportedStringCall     = &TranspileError{Reason: UnsupportedStringCall}
	ErrUnsupportedStringProperty = &TranspileError{Reason: UnsupportedStringProperty}
	ErrUnsupportedArrayCall      = &TranspileError{Reason: UnsupportedArrayCall}
	ErrUnsupportedArrayProperty  = &TranspileError{Reason: UnsupportedArrayProperty}
	ErrUnsupportedEnumInit       = &TranspileError{Reason: UnsupportedEnumInit}
	ErrUnsupportedForShape       = &TranspileError{Reason: UnsupportedForShape}
	ErrRenamedImport             = &TranspileError{Reason: RenamedImport}
)

func newError(reason Reason, node slast.Node, format string, args ...any) *TranspileError {
	return &TranspileError{
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
		Node:    node,
	}
}

// AsTranspileError extracts the *TranspileError from err, if any.
func AsTranspileError(err error) (*TranspileError, bool) {
	var te *TranspileError
	ok := errors.As(err, &te)
	return te, ok
}
