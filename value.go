package sqlitex

import (
	"github.com/rymis/sqlitex/types"
)

// Value is a non-owning view of one column of a statement's current row.
//
// A Value stays valid only while the row it was taken from is current: the
// owning statement's next Step, Exec or Close invalidates it. Accessors
// read through to the engine, so text and blob contents are copied out on
// access.
//
// The strict accessors (Int64, Float64, Text, Blob) fail with a type
// mismatch error unless the stored value has exactly the requested storage
// class. The Coerce accessors apply the engine's conversion rules instead
// and never fail.
type Value struct {
	stmt  *Stmt
	index int
}

// Type returns the storage class of the value as stored, before any
// coercion.
func (v Value) Type() types.ColumnType {
	return types.ColumnType(v.stmt.conn.eng.ColumnType(v.stmt.handle, v.index))
}

// IsInt reports whether the stored value is an INTEGER.
func (v Value) IsInt() bool { return v.Type() == types.ColumnInteger }

// IsFloat reports whether the stored value is a REAL.
func (v Value) IsFloat() bool { return v.Type() == types.ColumnFloat }

// IsText reports whether the stored value is TEXT.
func (v Value) IsText() bool { return v.Type() == types.ColumnText }

// IsBlob reports whether the stored value is a BLOB.
func (v Value) IsBlob() bool { return v.Type() == types.ColumnBlob }

// IsNull reports whether the stored value is NULL.
func (v Value) IsNull() bool { return v.Type() == types.ColumnNull }

// Int64 returns the value as a 64-bit integer.
//
// Returns:
//   - int64: The stored integer
//   - error: A type mismatch error unless the storage class is INTEGER
func (v Value) Int64() (int64, error) {
	if t := v.Type(); t != types.ColumnInteger {
		return 0, v.mismatch(t, types.ColumnInteger)
	}

	return v.stmt.conn.eng.ColumnInt64(v.stmt.handle, v.index), nil
}

// Float64 returns the value as a 64-bit float.
//
// Returns:
//   - float64: The stored float
//   - error: A type mismatch error unless the storage class is REAL
func (v Value) Float64() (float64, error) {
	if t := v.Type(); t != types.ColumnFloat {
		return 0, v.mismatch(t, types.ColumnFloat)
	}

	return v.stmt.conn.eng.ColumnDouble(v.stmt.handle, v.index), nil
}

// Text returns the value as a string. NULL is accepted and yields the empty
// string.
//
// Returns:
//   - string: The stored text, byte-exact even with embedded NULs
//   - error: A type mismatch error unless the storage class is TEXT or NULL
func (v Value) Text() (string, error) {
	switch t := v.Type(); t {
	case types.ColumnText:
		return v.stmt.conn.eng.ColumnText(v.stmt.handle, v.index), nil
	case types.ColumnNull:
		return "", nil
	default:
		return "", v.mismatch(t, types.ColumnText)
	}
}

// Blob returns the value as a byte string. NULL is accepted and yields nil.
//
// Returns:
//   - []byte: A copy of the stored bytes
//   - error: A type mismatch error unless the storage class is BLOB or NULL
func (v Value) Blob() ([]byte, error) {
	switch t := v.Type(); t {
	case types.ColumnBlob:
		return v.stmt.conn.eng.ColumnBlob(v.stmt.handle, v.index), nil
	case types.ColumnNull:
		return nil, nil
	default:
		return nil, v.mismatch(t, types.ColumnBlob)
	}
}

// CoerceInt64 returns the value as a 64-bit integer, applying the engine's
// conversion rules to non-integer storage classes. NULL coerces to 0.
func (v Value) CoerceInt64() int64 {
	return v.stmt.conn.eng.ColumnInt64(v.stmt.handle, v.index)
}

// CoerceFloat64 returns the value as a 64-bit float, applying the engine's
// conversion rules to non-float storage classes. NULL coerces to 0.
func (v Value) CoerceFloat64() float64 {
	return v.stmt.conn.eng.ColumnDouble(v.stmt.handle, v.index)
}

// CoerceText returns the value as a string, applying the engine's
// conversion rules to non-text storage classes. NULL coerces to the empty
// string. The result is byte-exact: embedded NULs and the engine-reported
// length are preserved.
func (v Value) CoerceText() string {
	return v.stmt.conn.eng.ColumnText(v.stmt.handle, v.index)
}

// CoerceBlob returns the value as a byte string, applying the engine's
// conversion rules to non-blob storage classes. NULL coerces to nil.
func (v Value) CoerceBlob() []byte {
	return v.stmt.conn.eng.ColumnBlob(v.stmt.handle, v.index)
}

func (v Value) mismatch(got, want types.ColumnType) error {
	return types.NewError(types.KindType, types.CodeMismatch,
		"column ", v.index, " holds ", got, ", not ", want)
}
