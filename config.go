package sqlitex

import (
	"github.com/rymis/sqlitex/internal/logging"
	"github.com/rymis/sqlitex/internal/metrics"
	"github.com/rymis/sqlitex/policy"
	"github.com/rymis/sqlitex/types"
)

// Config holds configuration for a connection.
type Config struct {
	// Logger receives diagnostics, most importantly the outcome of
	// implicit commits performed by Tx.Close, which never fails loudly.
	Logger types.Logger

	// Metrics collects operation counters and commit timings.
	Metrics types.MetricsCollector

	// CommitRetry decides how Commit reacts to the engine's busy status.
	CommitRetry policy.CommitRetry
}

// DefaultConfig returns a Config with the library defaults.
//
// Defaults:
//   - Logger: no-op (discards all messages)
//   - Metrics: no-op (discards all metrics)
//   - CommitRetry: policy.NewSpin() — retry COMMIT unconditionally with no
//     delay while the engine reports busy. This preserves the layer's
//     original contract; under sustained contention it can loop forever.
//     Use policy.NewBackoff to opt into delays or an attempt bound.
//
// Returns:
//   - *Config: Configuration with default settings
func DefaultConfig() *Config {
	return &Config{
		Logger:      logging.NewNopLogger(),
		Metrics:     metrics.NewNopMetrics(),
		CommitRetry: policy.NewSpin(),
	}
}

// Option configures a Config.
type Option func(*Config)

// WithLogger sets the structured logger.
//
// If not set, a no-op logger is used that discards all messages.
// The logger interface is compatible with zap.SugaredLogger.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
//
// Example:
//
//	logger, _ := zap.NewProduction()
//	conn, _ := sqlitex.Open("app.db",
//	    sqlitex.WithLogger(logger.Sugar()),
//	)
func WithLogger(logger types.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// If not set, a no-op collector is used that discards all metrics.
// Use contrib/metrics/vm.New() for VictoriaMetrics integration.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - Option: Configuration option
//
// Example:
//
//	import vmmetrics "github.com/rymis/sqlitex/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	conn, _ := sqlitex.Open("app.db",
//	    sqlitex.WithMetrics(collector),
//	)
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *Config) {
		c.Metrics = collector
	}
}

// WithCommitRetry sets the commit retry policy.
//
// If not set, policy.NewSpin() is used: COMMIT is reissued immediately and
// indefinitely while the engine reports busy.
//
// Parameters:
//   - retry: The retry policy (e.g., policy.NewBackoff())
//
// Returns:
//   - Option: Configuration option
func WithCommitRetry(retry policy.CommitRetry) Option {
	return func(c *Config) {
		c.CommitRetry = retry
	}
}
