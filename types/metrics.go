package types

// MetricsCollector defines methods for collecting operational metrics.
//
// Implementations should be thread-safe if the owning connection is shared
// behind external synchronization.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	import vmmetrics "github.com/rymis/sqlitex/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	conn, _ := sqlitex.Open("app.db", sqlitex.WithMetrics(collector))
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// ----------------------
	// Statements
	// ----------------------

	// IncPrepareTotal increments the statement compilation counter.
	IncPrepareTotal()

	// IncPrepareError increments the counter of rejected SQL compilations.
	IncPrepareError()

	// IncStepTotal increments the cursor advance counter.
	IncStepTotal()

	// IncStepError increments the counter of failed cursor advances.
	IncStepError()

	// ----------------------
	// Transactions
	// ----------------------

	// IncCommitTotal increments the commit attempt counter.
	IncCommitTotal()

	// IncCommitError increments the counter of commits that failed with a
	// non-busy status or exhausted a bounded retry policy.
	IncCommitError()

	// IncCommitBusyRetry increments the counter of COMMIT attempts that were
	// retried because the engine reported busy.
	IncCommitBusyRetry()

	// ObserveCommitDuration records the wall time of one commit in seconds,
	// including any busy retries.
	ObserveCommitDuration(seconds float64)

	// IncRollbackTotal increments the rollback counter.
	IncRollbackTotal()

	// IncRollbackError increments the counter of failed rollbacks.
	IncRollbackError()

	// IncAutoCommitTotal increments the counter of transactions resolved by
	// the implicit commit in Tx.Close.
	IncAutoCommitTotal()

	// IncAutoCommitError increments the counter of implicit commits that
	// failed. Close swallows the error itself, so this counter (and the
	// logger) is the only signal of the lost write.
	IncAutoCommitError()
}
