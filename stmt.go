package sqlitex

import (
	"fmt"

	"github.com/rymis/sqlitex/internal/engine"
	"github.com/rymis/sqlitex/types"
)

// Stmt is one compiled SQL statement with its bound parameters and, after a
// step, its current result row.
//
// A Stmt exclusively owns a native statement handle and must be closed
// exactly once; Close is idempotent. A statement borrows its connection and
// must be closed before the connection is.
type Stmt struct {
	conn   *Conn
	handle engine.Stmt
	closed bool
}

// Bind binds value at the 1-based parameter position pos.
//
// Accepted value types and their SQL storage classes:
//   - nil: NULL
//   - bool: INTEGER 0 or 1
//   - int, int32, int64: INTEGER
//   - float64: REAL
//   - string: TEXT
//   - []byte: BLOB (an empty non-nil slice binds a zero-length blob)
//
// Any other type is rejected with a bind error. Binding to a position that
// does not exist in the statement is also a bind error.
//
// Parameters:
//   - pos: 1-based parameter position
//   - value: The value to bind
//
// Returns:
//   - error: A bind error on rejection, nil on success
func (s *Stmt) Bind(pos int, value any) error {
	if s.closed {
		return types.NewError(types.KindBind, types.CodeMisuse, "bind failed: statement is closed")
	}

	eng := s.conn.eng

	var rc int32
	switch v := value.(type) {
	case nil:
		rc = eng.BindNull(s.handle, pos)
	case bool:
		n := int32(0)
		if v {
			n = 1
		}
		rc = eng.BindInt(s.handle, pos, n)
	case int:
		rc = eng.BindInt64(s.handle, pos, int64(v))
	case int32:
		rc = eng.BindInt(s.handle, pos, v)
	case int64:
		rc = eng.BindInt64(s.handle, pos, v)
	case float64:
		rc = eng.BindDouble(s.handle, pos, v)
	case string:
		rc = eng.BindText(s.handle, pos, v)
	case []byte:
		rc = eng.BindBlob(s.handle, pos, v)
	default:
		return types.NewError(types.KindBind, types.CodeError, "bind failed: unsupported type ", fmt.Sprintf("%T", value))
	}

	if rc != engine.OK {
		return types.NewError(types.KindBind, types.Code(rc), "bind failed: ", eng.ErrMsg())
	}

	return nil
}

// BindNamed binds value at the parameter with the given name. The name must
// include the prefix character used in the SQL text (":name", "@name" or
// "$name").
//
// Parameters:
//   - name: The parameter name as written in the SQL, prefix included
//   - value: The value to bind; same types as Bind
//
// Returns:
//   - error: A bind error when no parameter has that name or binding fails
func (s *Stmt) BindNamed(name string, value any) error {
	if s.closed {
		return types.NewError(types.KindBind, types.CodeMisuse, "bind failed: statement is closed")
	}

	pos := s.conn.eng.BindParameterIndex(s.handle, name)
	if pos == 0 {
		return types.NewError(types.KindBind, types.CodeError, "unknown parameter name '", name, "'")
	}

	return s.Bind(pos, value)
}

// Step advances the statement by one row.
//
// Returns:
//   - bool: true when a row is available for column access, false when the
//     result set is exhausted (or the statement produced no rows)
//   - error: A step error when the engine reports a failure
func (s *Stmt) Step() (bool, error) {
	if s.closed {
		return false, types.NewError(types.KindStep, types.CodeMisuse, "execution failed: statement is closed")
	}

	s.conn.config.Metrics.IncStepTotal()

	switch rc := s.conn.eng.Step(s.handle); rc {
	case engine.Row:
		return true, nil
	case engine.Done:
		return false, nil
	default:
		s.conn.config.Metrics.IncStepError()

		return false, types.NewError(types.KindStep, types.Code(rc), "execution failed: ", s.conn.eng.ErrMsg())
	}
}

// Exec runs the statement to its first result and returns that result as
// text.
//
// For statements that produce rows, the returned string is the first column
// of the first row, coerced to text; remaining rows are not consumed. For
// statements that produce no rows (INSERT, UPDATE, DDL) the empty string is
// returned.
//
// Returns:
//   - string: First column of the first row as text, or ""
//   - error: An execution error when the engine reports a failure
func (s *Stmt) Exec() (string, error) {
	if s.closed {
		return "", types.NewError(types.KindExec, types.CodeMisuse, "execution failed: statement is closed")
	}

	s.conn.config.Metrics.IncStepTotal()

	switch rc := s.conn.eng.Step(s.handle); rc {
	case engine.Done:
		return "", nil
	case engine.Row:
		if s.conn.eng.ColumnCount(s.handle) > 0 {
			return s.conn.eng.ColumnText(s.handle, 0), nil
		}

		return "", nil
	default:
		s.conn.config.Metrics.IncStepError()

		return "", types.NewError(types.KindExec, types.Code(rc), "execution failed: ", s.conn.eng.ErrMsg())
	}
}

// Rows returns a single-pass cursor over the statement's result rows.
//
// The cursor borrows the statement; it does not own the handle and does not
// close it. Iterating consumes the statement's remaining rows.
//
// Returns:
//   - *Rows: The row cursor
func (s *Stmt) Rows() *Rows {
	return &Rows{stmt: s}
}

// ColumnCount returns the number of columns in the statement's result set.
// Statements that produce no rows have zero columns.
func (s *Stmt) ColumnCount() int {
	if s.closed {
		return 0
	}

	return s.conn.eng.ColumnCount(s.handle)
}

// ColumnName returns the name of column i of the result set, or "" when i
// is out of range.
func (s *Stmt) ColumnName(i int) string {
	if s.closed || i < 0 || i >= s.ColumnCount() {
		return ""
	}

	return s.conn.eng.ColumnName(s.handle, i)
}

// Column returns a view of column i of the current row.
//
// The view is only valid while the current row is: the next Step, Exec or
// Close invalidates it. Column must only be called after a Step that
// returned true.
//
// Parameters:
//   - i: 0-based column index
//
// Returns:
//   - Value: A non-owning view of the column
//   - error: A range error when i is outside the result's columns
func (s *Stmt) Column(i int) (Value, error) {
	if s.closed || i < 0 || i >= s.ColumnCount() {
		return Value{}, types.NewError(types.KindRange, types.CodeError, "column index ", i, " is out of range")
	}

	return Value{stmt: s, index: i}, nil
}

// Close finalizes the statement and releases its native resources,
// including the buffers kept live for bound text and blob values. Close is
// idempotent and never returns an error.
//
// Returns:
//   - error: Always nil
func (s *Stmt) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	// Finalize reports the last step error, which the caller already saw.
	s.conn.eng.Finalize(s.handle)
	s.handle = 0

	return nil
}
