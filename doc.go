// Package sqlitex provides a typed binding layer over an embedded SQLite
// engine.
//
// The layer sits between application code and the engine's C-level API and
// gives callers owned connection, statement and transaction resources that
// are released exactly once, type-safe parameter binding and column
// extraction, a lazy single-pass row cursor, and transactions whose commit
// retries while the engine reports busy.
//
// The engine itself is the pure-Go build of SQLite from modernc.org/sqlite;
// no cgo is involved.
//
// # Basic Usage
//
//	conn, err := sqlitex.Open("app.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	stmt, err := conn.Prepare("INSERT INTO users VALUES (?, ?)", 1, "alice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := stmt.Exec(); err != nil {
//	    log.Fatal(err)
//	}
//	stmt.Close()
//
//	stmt, _ = conn.Prepare("SELECT name FROM users")
//	defer stmt.Close()
//	rows := stmt.Rows()
//	for rows.Next() {
//	    v, _ := rows.Column(0)
//	    fmt.Println(v.CoerceText())
//	}
//	if err := rows.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Transactions
//
// Conn.Begin issues BEGIN TRANSACTION and returns an owning handle. A
// transaction resolves exactly once, by Commit, by Rollback, or by the
// implicit commit in Close:
//
//	tx, err := conn.Begin()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tx.Close() // best-effort commit if not resolved explicitly
//
//	// ... statements ...
//
//	if err := tx.Commit(); err != nil {
//	    log.Fatal(err)
//	}
//
// Commit retries while the engine reports busy, by default immediately and
// indefinitely (see package policy). Tx.Close never returns an error; if
// its implicit commit fails, the failure is reported through the configured
// Logger and metrics only. Callers that must know whether the commit
// succeeded call Commit explicitly.
//
// Nested transactions are not supported: opening a second transaction on a
// connection whose transaction is still open has undefined atomicity.
//
// # Error Handling
//
// Every failure is a *types.Error carrying the failed operation (Kind), the
// engine status code (Code) and a message:
//
//	var serr *types.Error
//	if errors.As(err, &serr) {
//	    log.Printf("%s failed with %s: %s", serr.Kind, serr.Code, serr.Message)
//	}
//
// The code keeps transient conditions distinguishable: types.IsBusy(err)
// reports whether another session held a lock.
//
// # Concurrency
//
// All calls are synchronous and blocking, with no internal locking and no
// cancellation. A Conn and everything derived from it must not be used from
// multiple goroutines without external synchronization. Distinct
// connections are independent.
//
// # Resource Lifetime
//
// Conn owns the native database handle; Stmt owns a native statement
// handle and must be closed exactly once (Close is idempotent); Tx owns the
// open-transaction state. A Value is a non-owning view of one column of
// the statement's current row and is invalidated by the next Step or
// Close. Do not close a Conn while statements or transactions derived from
// it are live.
package sqlitex
