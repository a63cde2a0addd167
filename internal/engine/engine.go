package engine

import (
	"unsafe"

	"modernc.org/libc"
	ctypes "modernc.org/libc/sys/types"
	sqlite3 "modernc.org/sqlite/lib"
)

// Result codes and type tags re-exported from the engine so callers do not
// import the generated library directly.
const (
	OK     = sqlite3.SQLITE_OK
	Row    = sqlite3.SQLITE_ROW
	Done   = sqlite3.SQLITE_DONE
	Busy   = sqlite3.SQLITE_BUSY
	NoMem  = sqlite3.SQLITE_NOMEM
	Misuse = sqlite3.SQLITE_MISUSE

	TypeInteger = sqlite3.SQLITE_INTEGER
	TypeFloat   = sqlite3.SQLITE_FLOAT
	TypeText    = sqlite3.SQLITE_TEXT
	TypeBlob    = sqlite3.SQLITE_BLOB
	TypeNull    = sqlite3.SQLITE_NULL
)

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// Stmt is a native prepared statement handle.
type Stmt uintptr

// Conn is one open database handle together with the libc thread-local
// state it runs on.
//
// The zero value is not usable; construct with Open. Close releases the
// native handle and the thread-local state exactly once.
type Conn struct {
	tls *libc.TLS
	db  uintptr

	// allocs holds C buffers (bound text/blob values) that must stay live
	// until the owning statement is finalized. SQLITE_STATIC binding is
	// used, so the engine reads these buffers in place.
	allocs map[Stmt][]uintptr
}

// Open opens or creates the database at path. The engine's reserved name
// ":memory:" selects an ephemeral in-memory store.
//
// On failure the returned Conn is nil and code/message describe the engine
// status; any partially allocated native state is released before return.
func Open(path string) (conn *Conn, code int32, message string) {
	tls := libc.NewTLS()

	zPath, err := libc.CString(path)
	if err != nil {
		tls.Close()
		return nil, NoMem, "out of memory"
	}
	defer libc.Xfree(tls, zPath)

	ppdb := libc.Xmalloc(tls, ctypes.Size_t(ptrSize))
	if ppdb == 0 {
		tls.Close()
		return nil, NoMem, "out of memory"
	}
	defer libc.Xfree(tls, ppdb)

	flags := int32(sqlite3.SQLITE_OPEN_READWRITE | sqlite3.SQLITE_OPEN_CREATE)
	rc := sqlite3.Xsqlite3_open_v2(tls, zPath, ppdb, flags, 0)
	db := *(*uintptr)(unsafe.Pointer(ppdb))

	if rc != OK {
		// The engine allocates a handle even on failure so the error
		// message can be read; it still must be closed.
		msg := "unable to open database"
		if db != 0 {
			msg = libc.GoString(sqlite3.Xsqlite3_errmsg(tls, db))
			sqlite3.Xsqlite3_close_v2(tls, db)
		}
		tls.Close()

		return nil, rc, msg
	}

	return &Conn{
		tls:    tls,
		db:     db,
		allocs: make(map[Stmt][]uintptr),
	}, OK, ""
}

// Close releases the native database handle and the thread-local state.
// Calling Close more than once is a no-op.
func (c *Conn) Close() int32 {
	if c.db == 0 {
		return OK
	}

	rc := sqlite3.Xsqlite3_close_v2(c.tls, c.db)
	c.db = 0
	c.tls.Close()
	c.tls = nil

	return rc
}

// ErrMsg returns the engine's message for the most recent failure on this
// connection.
func (c *Conn) ErrMsg() string {
	return libc.GoString(sqlite3.Xsqlite3_errmsg(c.tls, c.db))
}

// ErrCode returns the engine's extended result code for the most recent
// failure on this connection, masked to the primary code.
func (c *Conn) ErrCode() int32 {
	return sqlite3.Xsqlite3_errcode(c.tls, c.db)
}

// LastInsertRowID returns the rowid of the most recent successful INSERT.
func (c *Conn) LastInsertRowID() int64 {
	return sqlite3.Xsqlite3_last_insert_rowid(c.tls, c.db)
}

// Changes returns the number of rows modified by the most recently
// completed INSERT, UPDATE or DELETE.
func (c *Conn) Changes() int {
	return int(sqlite3.Xsqlite3_changes(c.tls, c.db))
}

// Prepare compiles one SQL statement. The SQL text is copied by the engine
// during compilation, so the C buffer is released before return.
func (c *Conn) Prepare(sql string) (Stmt, int32) {
	zSQL, err := libc.CString(sql)
	if err != nil {
		return 0, NoMem
	}
	defer libc.Xfree(c.tls, zSQL)

	ppStmt := libc.Xmalloc(c.tls, ctypes.Size_t(ptrSize))
	if ppStmt == 0 {
		return 0, NoMem
	}
	defer libc.Xfree(c.tls, ppStmt)

	pzTail := libc.Xmalloc(c.tls, ctypes.Size_t(ptrSize))
	if pzTail == 0 {
		return 0, NoMem
	}
	defer libc.Xfree(c.tls, pzTail)

	rc := sqlite3.Xsqlite3_prepare_v2(c.tls, c.db, zSQL, int32(len(sql)), ppStmt, pzTail)
	if rc != OK {
		return 0, rc
	}

	return Stmt(*(*uintptr)(unsafe.Pointer(ppStmt))), OK
}

// Finalize destroys the statement and releases the bound buffers that were
// kept alive for it. Safe to call with a zero handle.
func (c *Conn) Finalize(stmt Stmt) int32 {
	if stmt == 0 {
		return OK
	}

	rc := sqlite3.Xsqlite3_finalize(c.tls, uintptr(stmt))

	for _, p := range c.allocs[stmt] {
		libc.Xfree(c.tls, p)
	}
	delete(c.allocs, stmt)

	return rc
}

// Step advances the statement's cursor by one row.
func (c *Conn) Step(stmt Stmt) int32 {
	return sqlite3.Xsqlite3_step(c.tls, uintptr(stmt))
}

// BindInt binds a 32-bit integer at the 1-based position.
func (c *Conn) BindInt(stmt Stmt, pos int, v int32) int32 {
	return sqlite3.Xsqlite3_bind_int(c.tls, uintptr(stmt), int32(pos), v)
}

// BindInt64 binds a 64-bit integer at the 1-based position.
func (c *Conn) BindInt64(stmt Stmt, pos int, v int64) int32 {
	return sqlite3.Xsqlite3_bind_int64(c.tls, uintptr(stmt), int32(pos), v)
}

// BindDouble binds a 64-bit float at the 1-based position.
func (c *Conn) BindDouble(stmt Stmt, pos int, v float64) int32 {
	return sqlite3.Xsqlite3_bind_double(c.tls, uintptr(stmt), int32(pos), v)
}

// BindNull binds SQL NULL at the 1-based position.
func (c *Conn) BindNull(stmt Stmt, pos int) int32 {
	return sqlite3.Xsqlite3_bind_null(c.tls, uintptr(stmt), int32(pos))
}

// BindText binds a UTF-8 string at the 1-based position. The C copy of the
// string stays live until the statement is finalized.
func (c *Conn) BindText(stmt Stmt, pos int, v string) int32 {
	p, err := libc.CString(v)
	if err != nil {
		return NoMem
	}
	c.allocs[stmt] = append(c.allocs[stmt], p)

	return sqlite3.Xsqlite3_bind_text(c.tls, uintptr(stmt), int32(pos), p, int32(len(v)), 0)
}

// BindBlob binds a byte string at the 1-based position. The C copy of the
// bytes stays live until the statement is finalized. An empty slice binds a
// zero-length blob rather than NULL.
func (c *Conn) BindBlob(stmt Stmt, pos int, v []byte) int32 {
	if len(v) == 0 {
		return sqlite3.Xsqlite3_bind_zeroblob(c.tls, uintptr(stmt), int32(pos), 0)
	}

	p := libc.Xmalloc(c.tls, ctypes.Size_t(len(v)))
	if p == 0 {
		return NoMem
	}
	copy((*libc.RawMem)(unsafe.Pointer(p))[:len(v):len(v)], v)
	c.allocs[stmt] = append(c.allocs[stmt], p)

	return sqlite3.Xsqlite3_bind_blob(c.tls, uintptr(stmt), int32(pos), p, int32(len(v)), 0)
}

// BindParameterIndex resolves a named parameter (":name", "@name", "$name")
// to its 1-based position, or 0 when no parameter has that name.
func (c *Conn) BindParameterIndex(stmt Stmt, name string) int {
	zName, err := libc.CString(name)
	if err != nil {
		return 0
	}
	defer libc.Xfree(c.tls, zName)

	return int(sqlite3.Xsqlite3_bind_parameter_index(c.tls, uintptr(stmt), zName))
}

// ColumnCount returns the number of columns in the statement's result set.
func (c *Conn) ColumnCount(stmt Stmt) int {
	return int(sqlite3.Xsqlite3_column_count(c.tls, uintptr(stmt)))
}

// ColumnType returns the storage class tag of column i of the current row.
func (c *Conn) ColumnType(stmt Stmt, i int) int32 {
	return sqlite3.Xsqlite3_column_type(c.tls, uintptr(stmt), int32(i))
}

// ColumnName returns the name of column i of the result set.
func (c *Conn) ColumnName(stmt Stmt, i int) string {
	p := sqlite3.Xsqlite3_column_name(c.tls, uintptr(stmt), int32(i))
	if p == 0 {
		return ""
	}

	return libc.GoString(p)
}

// ColumnInt64 reads column i of the current row as a 64-bit integer,
// applying the engine's coercion rules.
func (c *Conn) ColumnInt64(stmt Stmt, i int) int64 {
	return sqlite3.Xsqlite3_column_int64(c.tls, uintptr(stmt), int32(i))
}

// ColumnDouble reads column i of the current row as a 64-bit float,
// applying the engine's coercion rules.
func (c *Conn) ColumnDouble(stmt Stmt, i int) float64 {
	return sqlite3.Xsqlite3_column_double(c.tls, uintptr(stmt), int32(i))
}

// ColumnText reads column i of the current row as text, applying the
// engine's coercion rules. A NULL storage pointer yields the empty string;
// otherwise exactly the engine-reported byte length is copied.
func (c *Conn) ColumnText(stmt Stmt, i int) string {
	p := sqlite3.Xsqlite3_column_text(c.tls, uintptr(stmt), int32(i))
	if p == 0 {
		return ""
	}
	n := int(sqlite3.Xsqlite3_column_bytes(c.tls, uintptr(stmt), int32(i)))
	if n == 0 {
		return ""
	}

	return string(libc.GoBytes(p, n))
}

// ColumnBlob reads column i of the current row as a byte string. A NULL
// storage pointer yields nil; otherwise exactly the engine-reported byte
// length is copied.
func (c *Conn) ColumnBlob(stmt Stmt, i int) []byte {
	p := sqlite3.Xsqlite3_column_blob(c.tls, uintptr(stmt), int32(i))
	if p == 0 {
		return nil
	}
	n := int(sqlite3.Xsqlite3_column_bytes(c.tls, uintptr(stmt), int32(i)))
	if n == 0 {
		return nil
	}

	out := make([]byte, n)
	copy(out, libc.GoBytes(p, n))

	return out
}
