package sqlitex

import (
	"sync/atomic"

	"github.com/rymis/sqlitex/internal/engine"
	"github.com/rymis/sqlitex/types"
)

// MemoryPath is the reserved path that opens an ephemeral in-memory store
// instead of a file-backed one.
const MemoryPath = ":memory:"

// Conn is one open database, file-backed or in-memory.
//
// Conn exclusively owns the native database handle and is the root owner of
// every Stmt and Tx derived from it: those borrow the connection and must
// be resolved or closed before the connection itself is closed.
//
// A Conn is not safe for concurrent use from multiple goroutines without
// external synchronization; no internal locking is performed.
type Conn struct {
	eng    *engine.Conn
	config *Config
	closed atomic.Bool
}

// Open opens or creates the backing store at path.
//
// Pass MemoryPath (":memory:") for an ephemeral in-memory store.
//
// Parameters:
//   - path: Filesystem path of the store, or MemoryPath
//   - opts: Optional configuration options
//
// Returns:
//   - *Conn: The open connection
//   - error: An open error carrying the engine status code on failure
func Open(path string, opts ...Option) (*Conn, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	// Options may set fields to nil explicitly; never run without defaults
	if config.Logger == nil || config.Metrics == nil || config.CommitRetry == nil {
		def := DefaultConfig()
		if config.Logger == nil {
			config.Logger = def.Logger
		}
		if config.Metrics == nil {
			config.Metrics = def.Metrics
		}
		if config.CommitRetry == nil {
			config.CommitRetry = def.CommitRetry
		}
	}

	eng, rc, msg := engine.Open(path)
	if rc != engine.OK {
		return nil, types.NewError(types.KindOpen, types.Code(rc), "sqlite3 error: ", msg)
	}

	return &Conn{
		eng:    eng,
		config: config,
	}, nil
}

// Prepare compiles sqlText into a statement and binds args in order
// starting at parameter position 1.
//
// Calling Prepare with no args is plain compilation; with args it is
// equivalent to compilation followed by positional Bind calls. If any bind
// fails, the statement is finalized and the bind error is returned.
//
// Parameters:
//   - sqlText: One SQL statement
//   - args: Optional positional parameter values
//
// Returns:
//   - *Stmt: The compiled statement; close it exactly once
//   - error: A prepare error (engine rejection) or bind error
func (c *Conn) Prepare(sqlText string, args ...any) (*Stmt, error) {
	if c.closed.Load() {
		return nil, types.NewError(types.KindPrepare, types.CodeMisuse, "prepare failed: connection is closed")
	}

	c.config.Metrics.IncPrepareTotal()

	handle, rc := c.eng.Prepare(sqlText)
	if rc != engine.OK {
		c.config.Metrics.IncPrepareError()

		return nil, types.NewError(types.KindPrepare, types.Code(rc), "prepare failed: ", c.eng.ErrMsg())
	}

	stmt := &Stmt{conn: c, handle: handle}

	for i, arg := range args {
		if err := stmt.Bind(i+1, arg); err != nil {
			stmt.Close()

			return nil, err
		}
	}

	return stmt, nil
}

// Begin issues BEGIN TRANSACTION and returns an owning transaction handle.
//
// Nested transactions are not supported: beginning a second transaction
// while one is open on this connection has undefined atomicity (no
// savepoint nesting is implemented).
//
// Returns:
//   - *Tx: The open transaction; resolve it exactly once
//   - error: A begin error carrying the engine status code on failure
func (c *Conn) Begin() (*Tx, error) {
	if c.closed.Load() {
		return nil, types.NewError(types.KindBegin, types.CodeMisuse, "can't begin transaction: connection is closed")
	}

	if code, msg := c.exec("BEGIN TRANSACTION;"); code != types.CodeOK {
		return nil, types.NewError(types.KindBegin, code, "can't begin transaction: ", msg)
	}

	return &Tx{conn: c}, nil
}

// Close closes the native database handle. Close is idempotent and never
// returns an error; an unclean close (for example with unfinalized
// statements still live) is reported through the logger.
//
// Returns:
//   - error: Always nil
func (c *Conn) Close() error {
	if c.closed.Swap(true) {
		return nil // Already closed
	}

	if rc := c.eng.Close(); rc != engine.OK {
		c.config.Logger.Warn("database close was not clean",
			"code", types.Code(rc).String(),
		)
	}

	return nil
}

// LastInsertRowID returns the rowid of the most recent successful INSERT
// on this connection.
func (c *Conn) LastInsertRowID() int64 {
	return c.eng.LastInsertRowID()
}

// Changes returns the number of rows modified by the most recently
// completed INSERT, UPDATE or DELETE on this connection.
func (c *Conn) Changes() int {
	return c.eng.Changes()
}

// exec compiles sql, steps it once and finalizes it, discarding any rows.
// Used for the transaction control statements, which produce no rows.
// Returns CodeOK on success, otherwise the engine status and its message.
func (c *Conn) exec(sql string) (types.Code, string) {
	handle, rc := c.eng.Prepare(sql)
	if rc != engine.OK {
		return types.Code(rc), c.eng.ErrMsg()
	}

	rc = c.eng.Step(handle)

	var msg string
	if rc != engine.Done {
		msg = c.eng.ErrMsg()
	}

	c.eng.Finalize(handle)

	if rc != engine.Done {
		return types.Code(rc), msg
	}

	return types.CodeOK, ""
}
