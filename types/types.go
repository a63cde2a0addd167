// Package types provides shared types and errors for the sqlitex library.
//
// This is a "leaf" package with no imports from other sqlitex packages,
// allowing it to be imported by any package without causing import cycles.
package types

import "strconv"

// Code is a status code reported by the SQLite engine.
//
// The numeric values are the engine's own result codes, so a Code taken from
// a returned error can be compared directly against the constants below.
type Code int32

// Engine result codes used by this library. The engine defines more; these
// are the ones the binding layer branches on or produces itself.
const (
	// CodeOK means the operation succeeded.
	CodeOK Code = 0
	// CodeError is the engine's generic failure code. It is also used for
	// failures raised by this layer itself (unknown parameter name,
	// out-of-range column index).
	CodeError Code = 1
	// CodeBusy means another session holds a lock on the store. Transient:
	// the operation can be retried once the other session releases it.
	CodeBusy Code = 5
	// CodeLocked means a lock is held within the same connection.
	CodeLocked Code = 6
	// CodeNoMem means the engine could not allocate memory.
	CodeNoMem Code = 7
	// CodeMismatch means a value's storage class did not match the one a
	// strict accessor asked for.
	CodeMismatch Code = 20
	// CodeMisuse means the engine API was used out of protocol, for example
	// stepping an already finalized statement.
	CodeMisuse Code = 21
	// CodeRange means a bind position was out of range.
	CodeRange Code = 25
	// CodeRow means a step produced a row that is now available for reading.
	CodeRow Code = 100
	// CodeDone means a step ran the statement to completion.
	CodeDone Code = 101
)

// String returns the engine's symbolic name for the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "SQLITE_OK"
	case CodeError:
		return "SQLITE_ERROR"
	case CodeBusy:
		return "SQLITE_BUSY"
	case CodeLocked:
		return "SQLITE_LOCKED"
	case CodeNoMem:
		return "SQLITE_NOMEM"
	case CodeMismatch:
		return "SQLITE_MISMATCH"
	case CodeMisuse:
		return "SQLITE_MISUSE"
	case CodeRange:
		return "SQLITE_RANGE"
	case CodeRow:
		return "SQLITE_ROW"
	case CodeDone:
		return "SQLITE_DONE"
	}

	return "SQLITE_CODE_" + strconv.Itoa(int(c))
}

// ColumnType tags the storage class of a column value.
//
// The values match the engine's fundamental datatype codes.
type ColumnType int32

const (
	// ColumnInteger is a 64-bit signed integer value.
	ColumnInteger ColumnType = 1
	// ColumnFloat is a 64-bit IEEE floating point value.
	ColumnFloat ColumnType = 2
	// ColumnText is a UTF-8 text value.
	ColumnText ColumnType = 3
	// ColumnBlob is an opaque byte string.
	ColumnBlob ColumnType = 4
	// ColumnNull is the SQL NULL value.
	ColumnNull ColumnType = 5
)

// String returns a human-readable name for the column type.
func (t ColumnType) String() string {
	switch t {
	case ColumnInteger:
		return "integer"
	case ColumnFloat:
		return "float"
	case ColumnText:
		return "text"
	case ColumnBlob:
		return "blob"
	case ColumnNull:
		return "null"
	}

	return "unknown"
}
