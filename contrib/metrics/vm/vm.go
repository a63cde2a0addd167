package vm

import (
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/rymis/sqlitex/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "sqlitex"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// All metrics are pre-created at initialization time for optimal performance.
// Thread-safe for concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	// Statement metrics
	prepareTotal  *metrics.Counter
	prepareErrors *metrics.Counter
	stepTotal     *metrics.Counter
	stepErrors    *metrics.Counter

	// Transaction metrics
	commitTotal      *metrics.Counter
	commitErrors     *metrics.Counter
	commitBusyRetry  *metrics.Counter
	commitDuration   *metrics.Histogram
	rollbackTotal    *metrics.Counter
	rollbackErrors   *metrics.Counter
	autoCommitTotal  *metrics.Counter
	autoCommitErrors *metrics.Counter
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set and registers it globally.
// All metrics are pre-created at initialization for optimal performance.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	conn, _ := sqlitex.Open("app.db",
//	    sqlitex.WithMetrics(collector),
//	)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "sqlitex",
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	// Statement metrics
	c.prepareTotal = c.set.NewCounter(p + "_prepare_total")
	c.prepareErrors = c.set.NewCounter(p + "_prepare_errors_total")
	c.stepTotal = c.set.NewCounter(p + "_step_total")
	c.stepErrors = c.set.NewCounter(p + "_step_errors_total")

	// Transaction metrics
	c.commitTotal = c.set.NewCounter(p + "_commit_total")
	c.commitErrors = c.set.NewCounter(p + "_commit_errors_total")
	c.commitBusyRetry = c.set.NewCounter(p + "_commit_busy_retries_total")
	c.commitDuration = c.set.NewHistogram(p + "_commit_duration_seconds")
	c.rollbackTotal = c.set.NewCounter(p + "_rollback_total")
	c.rollbackErrors = c.set.NewCounter(p + "_rollback_errors_total")
	c.autoCommitTotal = c.set.NewCounter(p + "_auto_commit_total")
	c.autoCommitErrors = c.set.NewCounter(p + "_auto_commit_errors_total")
}

func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns an HTTP handler that exposes metrics in Prometheus format.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
//
// Parameters:
//   - w: The writer to write metrics to
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// ----------------------
// Statements
// ----------------------

// IncPrepareTotal increments the statement compilation counter.
func (c *Collector) IncPrepareTotal() {
	c.prepareTotal.Inc()
}

// IncPrepareError increments the counter of rejected SQL compilations.
func (c *Collector) IncPrepareError() {
	c.prepareErrors.Inc()
}

// IncStepTotal increments the cursor advance counter.
func (c *Collector) IncStepTotal() {
	c.stepTotal.Inc()
}

// IncStepError increments the counter of failed cursor advances.
func (c *Collector) IncStepError() {
	c.stepErrors.Inc()
}

// ----------------------
// Transactions
// ----------------------

// IncCommitTotal increments the commit attempt counter.
func (c *Collector) IncCommitTotal() {
	c.commitTotal.Inc()
}

// IncCommitError increments the counter of failed commits.
func (c *Collector) IncCommitError() {
	c.commitErrors.Inc()
}

// IncCommitBusyRetry increments the counter of busy COMMIT retries.
func (c *Collector) IncCommitBusyRetry() {
	c.commitBusyRetry.Inc()
}

// ObserveCommitDuration records one commit's wall time in seconds.
func (c *Collector) ObserveCommitDuration(seconds float64) {
	c.commitDuration.Update(seconds)
}

// IncRollbackTotal increments the rollback counter.
func (c *Collector) IncRollbackTotal() {
	c.rollbackTotal.Inc()
}

// IncRollbackError increments the counter of failed rollbacks.
func (c *Collector) IncRollbackError() {
	c.rollbackErrors.Inc()
}

// IncAutoCommitTotal increments the counter of implicit commits performed
// when a transaction is closed unresolved.
func (c *Collector) IncAutoCommitTotal() {
	c.autoCommitTotal.Inc()
}

// IncAutoCommitError increments the counter of failed implicit commits.
func (c *Collector) IncAutoCommitError() {
	c.autoCommitErrors.Inc()
}
