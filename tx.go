package sqlitex

import (
	"time"

	"github.com/rymis/sqlitex/types"
)

type txState int

const (
	txOpen txState = iota
	txCommitted
	txRolledBack
)

// Tx is one open transaction on a connection.
//
// A transaction resolves exactly once: by Commit, by Rollback, or by the
// implicit commit performed by Close. Resolving an already resolved
// transaction fails with a misuse code; Close after resolution is a no-op.
//
// A Tx borrows its connection and covers every statement executed on that
// connection while the transaction is open.
type Tx struct {
	conn  *Conn
	state txState
}

// Commit commits the transaction.
//
// While the engine reports busy (another session holds a conflicting lock),
// COMMIT is reissued according to the connection's retry policy. The
// default policy retries immediately and indefinitely, so under sustained
// contention Commit blocks until the competing session finishes. A bounded
// policy makes Commit fail with the busy code instead.
//
// Returns:
//   - error: A commit error when the engine rejects the commit, the retry
//     policy gives up, or the transaction is already resolved
func (t *Tx) Commit() error {
	if t.state != txOpen {
		return types.NewError(types.KindCommit, types.CodeMisuse, "commit failed: transaction already resolved")
	}

	t.conn.config.Metrics.IncCommitTotal()

	start := time.Now()
	attempt := 0

	for {
		code, msg := t.conn.exec("COMMIT TRANSACTION;")
		if code == types.CodeOK {
			t.state = txCommitted
			t.conn.config.Metrics.ObserveCommitDuration(time.Since(start).Seconds())

			return nil
		}

		if code != types.CodeBusy {
			t.conn.config.Metrics.IncCommitError()

			return types.NewError(types.KindCommit, code, "commit failed: ", msg)
		}

		// Busy leaves the transaction active, so COMMIT can be reissued.
		attempt++

		delay, retry := t.conn.config.CommitRetry.Next(attempt)
		if !retry {
			t.conn.config.Metrics.IncCommitError()

			return types.NewError(types.KindCommit, code, "commit failed: still busy after ", attempt, " attempts")
		}

		// Counted only once the policy grants the retry; a declined final
		// attempt is a commit error, not a retry.
		t.conn.config.Metrics.IncCommitBusyRetry()
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}

// Rollback rolls the transaction back, discarding its changes.
//
// Returns:
//   - error: A rollback error when the engine rejects the rollback or the
//     transaction is already resolved
func (t *Tx) Rollback() error {
	if t.state != txOpen {
		return types.NewError(types.KindRollback, types.CodeMisuse, "rollback failed: transaction already resolved")
	}

	t.conn.config.Metrics.IncRollbackTotal()

	if code, msg := t.conn.exec("ROLLBACK TRANSACTION;"); code != types.CodeOK {
		t.conn.config.Metrics.IncRollbackError()
		t.state = txRolledBack // The engine rolls back on failure anyway

		return types.NewError(types.KindRollback, code, "rollback failed: ", msg)
	}

	t.state = txRolledBack

	return nil
}

// Close resolves the transaction if it is still open, by committing it.
//
// Close never returns an error: a failed implicit commit is reported only
// through the connection's logger and metrics. Callers that need to know
// whether the commit succeeded must call Commit explicitly before Close.
// Close after Commit or Rollback is a no-op, which makes it safe to defer
// unconditionally.
//
// Returns:
//   - error: Always nil
func (t *Tx) Close() error {
	if t.state != txOpen {
		return nil
	}

	t.conn.config.Metrics.IncAutoCommitTotal()

	if err := t.Commit(); err != nil {
		t.conn.config.Metrics.IncAutoCommitError()
		t.conn.config.Logger.Warn("implicit commit on transaction close failed",
			"error", err,
		)
	}

	return nil
}
