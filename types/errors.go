package types

import (
	"errors"
	"fmt"
)

// Kind identifies which operation produced an Error.
type Kind uint8

const (
	// KindOpen means opening or creating the database failed.
	KindOpen Kind = iota + 1
	// KindPrepare means the engine rejected the SQL text during compilation.
	KindPrepare
	// KindBind means binding a parameter failed, either because the engine
	// rejected the value or because a named parameter did not resolve.
	KindBind
	// KindStep means the engine returned an unexpected status while
	// advancing the row cursor.
	KindStep
	// KindExec means the engine returned an unexpected status during scalar
	// execution.
	KindExec
	// KindRange means a column index was at or beyond the column count.
	KindRange
	// KindBegin means BEGIN TRANSACTION failed.
	KindBegin
	// KindCommit means COMMIT failed with a non-busy status, or a bounded
	// retry policy gave up while the engine kept reporting busy.
	KindCommit
	// KindRollback means ROLLBACK failed.
	KindRollback
	// KindType means a strict column accessor was asked for a storage class
	// the value does not have.
	KindType
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindPrepare:
		return "prepare"
	case KindBind:
		return "bind"
	case KindStep:
		return "step"
	case KindExec:
		return "exec"
	case KindRange:
		return "range"
	case KindBegin:
		return "begin"
	case KindCommit:
		return "commit"
	case KindRollback:
		return "rollback"
	case KindType:
		return "type"
	}

	return "unknown"
}

// Error is one failed operation of the binding layer.
//
// It carries the engine status code so callers can distinguish transient
// conditions (CodeBusy) from permanent ones (malformed SQL), and a message
// assembled at the failure site.
type Error struct {
	// Kind identifies the failed operation.
	Kind Kind

	// Code is the engine status code reported for the failure.
	Code Code

	// Message is the human-readable description.
	Message string
}

// NewError creates an Error for the given operation and engine code.
//
// The message is built by concatenating the string forms of parts, which may
// be of heterogeneous types:
//
//	types.NewError(types.KindBind, types.CodeError,
//	    "unknown parameter name '", name, "'")
//
// Parameters:
//   - kind: The failed operation
//   - code: The engine status code
//   - parts: Message fragments, concatenated without separators
//
// Returns:
//   - *Error: The assembled error
func NewError(kind Kind, code Code, parts ...any) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprint(parts...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "sqlitex: " + e.Kind.String() + ": " + e.Message + " (" + e.Code.String() + ")"
}

// IsBusy reports whether err is a *types.Error carrying the engine's busy
// status, meaning another session holds a lock and the operation may succeed
// if retried.
func IsBusy(err error) bool {
	var serr *Error
	return errors.As(err, &serr) && serr.Code == CodeBusy
}

// KindOf returns the Kind of err if it is a *types.Error, and 0 otherwise.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}

	return 0
}

// CodeOf returns the engine status code of err if it is a *types.Error, and
// CodeOK otherwise.
func CodeOf(err error) Code {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Code
	}

	return CodeOK
}
