package sqlitex

// Rows is a lazy, single-pass cursor over a statement's result rows.
//
// Rows are produced on demand: each Next call performs one engine step, and
// rows already passed cannot be revisited. The cursor borrows its statement
// and is invalidated by the statement's Close; closing the statement, not
// the cursor, releases the native resources.
//
//	rows := stmt.Rows()
//	for rows.Next() {
//	    v, err := rows.Column(0)
//	    ...
//	}
//	if err := rows.Err(); err != nil {
//	    ...
//	}
type Rows struct {
	stmt *Stmt
	err  error
	done bool
}

// Next advances to the next row.
//
// Returns:
//   - bool: true when a row is available for column access; false when the
//     result set is exhausted or a step failed, after which Err reports the
//     failure
func (r *Rows) Next() bool {
	if r.done {
		return false
	}

	ok, err := r.stmt.Step()
	if err != nil {
		r.err = err
		r.done = true

		return false
	}
	if !ok {
		r.done = true

		return false
	}

	return true
}

// Err returns the step error that terminated iteration, or nil when the
// cursor ran to exhaustion.
func (r *Rows) Err() error {
	return r.err
}

// Column returns a view of column i of the current row. Valid only after a
// Next that returned true, and only until the following Next.
//
// Parameters:
//   - i: 0-based column index
//
// Returns:
//   - Value: A non-owning view of the column
//   - error: A range error when i is outside the result's columns
func (r *Rows) Column(i int) (Value, error) {
	return r.stmt.Column(i)
}

// ColumnCount returns the number of columns in the result set.
func (r *Rows) ColumnCount() int {
	return r.stmt.ColumnCount()
}
