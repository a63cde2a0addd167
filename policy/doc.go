// Package policy provides pluggable commit retry policies for sqlitex.
//
// When COMMIT returns the engine's busy status, another session holds a
// lock on the store and the commit may succeed if reissued. The policy
// decides whether to reissue and how long to wait first.
//
// # Spin
//
// Spin retries unconditionally with no delay. This is the default and
// preserves the layer's original contract: commit never gives up on busy.
// Under sustained contention from another writer it can loop indefinitely;
// that liveness tradeoff is deliberate and documented rather than hidden.
//
//	conn, _ := sqlitex.Open("app.db") // Spin is the default
//
// # Backoff
//
// Backoff waits between attempts, doubling the delay up to a cap, and can
// bound the number of attempts. When it gives up, Commit surfaces a commit
// error carrying the busy code.
//
//	conn, _ := sqlitex.Open("app.db",
//	    sqlitex.WithCommitRetry(policy.NewBackoff(
//	        policy.WithBaseDelay(time.Millisecond),
//	        policy.WithMaxDelay(50*time.Millisecond),
//	        policy.WithMaxAttempts(100),
//	    )),
//	)
package policy
