// Package metrics provides internal metrics utilities for sqlitex.
package metrics

import "github.com/rymis/sqlitex/types"

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// ----------------------
// Statements
// ----------------------

// IncPrepareTotal discards the metric.
func (m *NopMetrics) IncPrepareTotal() {}

// IncPrepareError discards the metric.
func (m *NopMetrics) IncPrepareError() {}

// IncStepTotal discards the metric.
func (m *NopMetrics) IncStepTotal() {}

// IncStepError discards the metric.
func (m *NopMetrics) IncStepError() {}

// ----------------------
// Transactions
// ----------------------

// IncCommitTotal discards the metric.
func (m *NopMetrics) IncCommitTotal() {}

// IncCommitError discards the metric.
func (m *NopMetrics) IncCommitError() {}

// IncCommitBusyRetry discards the metric.
func (m *NopMetrics) IncCommitBusyRetry() {}

// ObserveCommitDuration discards the metric.
func (m *NopMetrics) ObserveCommitDuration(_ float64) {}

// IncRollbackTotal discards the metric.
func (m *NopMetrics) IncRollbackTotal() {}

// IncRollbackError discards the metric.
func (m *NopMetrics) IncRollbackError() {}

// IncAutoCommitTotal discards the metric.
func (m *NopMetrics) IncAutoCommitTotal() {}

// IncAutoCommitError discards the metric.
func (m *NopMetrics) IncAutoCommitError() {}
