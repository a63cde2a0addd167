package policy

import "time"

// CommitRetry decides how a transaction commit reacts to the engine's busy
// status.
//
// Next is consulted after each busy COMMIT attempt with the 1-based number
// of that attempt. It returns how long to wait before reissuing COMMIT and
// whether to reissue at all. Returning retry=false makes the commit fail
// with a commit error carrying the busy code.
type CommitRetry interface {
	// Next reports whether busy attempt n should be retried and how long to
	// wait before the retry.
	//
	// Parameters:
	//   - attempt: The 1-based number of the busy attempt just observed
	//
	// Returns:
	//   - delay: Time to sleep before reissuing COMMIT
	//   - retry: false to give up and surface the busy failure
	Next(attempt int) (delay time.Duration, retry bool)
}

// Spin retries COMMIT unconditionally with no delay.
//
// Commit loops until the engine stops reporting busy. Under sustained
// contention from another writer the loop does not terminate.
type Spin struct{}

// Compile-time assertion that Spin implements CommitRetry.
var _ CommitRetry = (*Spin)(nil)

// NewSpin creates the unconditional zero-delay retry policy.
//
// Returns:
//   - *Spin: A policy that always retries immediately
func NewSpin() *Spin {
	return &Spin{}
}

// Next always retries with zero delay.
func (s *Spin) Next(_ int) (time.Duration, bool) {
	return 0, true
}

// Backoff retries COMMIT with an exponentially growing delay and an
// optional bound on the number of attempts.
type Backoff struct {
	baseDelay   time.Duration
	maxDelay    time.Duration
	maxAttempts int
}

// Compile-time assertion that Backoff implements CommitRetry.
var _ CommitRetry = (*Backoff)(nil)

// BackoffOption configures a Backoff policy.
type BackoffOption func(*Backoff)

// WithBaseDelay sets the delay before the first retry.
//
// Parameters:
//   - d: The initial delay
//
// Returns:
//   - BackoffOption: Configuration option
func WithBaseDelay(d time.Duration) BackoffOption {
	return func(b *Backoff) {
		b.baseDelay = d
	}
}

// WithMaxDelay caps the per-retry delay. A cap below the base delay
// (including zero) is raised to the base delay, so setting only a small cap
// cannot silently disable the delay altogether.
//
// Parameters:
//   - d: The maximum delay between attempts
//
// Returns:
//   - BackoffOption: Configuration option
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *Backoff) {
		b.maxDelay = d
	}
}

// WithMaxAttempts bounds the number of busy attempts before the commit
// fails. Zero means unbounded.
//
// Parameters:
//   - n: Number of busy attempts to tolerate
//
// Returns:
//   - BackoffOption: Configuration option
func WithMaxAttempts(n int) BackoffOption {
	return func(b *Backoff) {
		b.maxAttempts = n
	}
}

// NewBackoff creates an exponential backoff retry policy.
//
// Defaults: baseDelay=1ms, maxDelay=100ms, unbounded attempts.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Backoff: A new backoff policy
func NewBackoff(opts ...BackoffOption) *Backoff {
	b := &Backoff{
		baseDelay: time.Millisecond,
		maxDelay:  100 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.maxDelay < b.baseDelay {
		b.maxDelay = b.baseDelay
	}

	return b
}

// Next doubles the delay per attempt up to the cap and gives up once the
// attempt bound is exceeded.
func (b *Backoff) Next(attempt int) (time.Duration, bool) {
	if b.maxAttempts > 0 && attempt >= b.maxAttempts {
		return 0, false
	}

	delay := b.baseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= b.maxDelay {
			delay = b.maxDelay
			break
		}
	}
	if delay > b.maxDelay {
		delay = b.maxDelay
	}

	return delay, true
}
