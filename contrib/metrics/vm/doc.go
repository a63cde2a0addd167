// Package vm provides a VictoriaMetrics-based implementation of the MetricsCollector interface.
//
// This package uses github.com/VictoriaMetrics/metrics for lightweight,
// high-performance Prometheus-compatible metrics collection.
//
// # Basic Usage
//
// Create a collector with default prefix "sqlitex":
//
//	collector := vm.New()
//	conn, _ := sqlitex.Open("app.db",
//	    sqlitex.WithMetrics(collector),
//	)
//
// # Custom Prefix
//
// Use WithPrefix to customize the metric name prefix:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//
// This produces metrics like:
//   - myapp_prepare_total
//   - myapp_commit_duration_seconds
//
// # Exposing Metrics
//
// Use the Handler method to expose metrics via HTTP:
//
//	http.HandleFunc("/metrics", collector.Handler)
//	http.ListenAndServe(":8080", nil)
//
// Or use WritePrometheus to write metrics to a custom writer:
//
//	collector.WritePrometheus(w)
//
// # Metrics Provided
//
// Statements:
//   - {prefix}_prepare_total - Counter of statement compilations
//   - {prefix}_prepare_errors_total - Counter of rejected compilations
//   - {prefix}_step_total - Counter of cursor advances
//   - {prefix}_step_errors_total - Counter of failed cursor advances
//
// Transactions:
//   - {prefix}_commit_total - Counter of commits
//   - {prefix}_commit_errors_total - Counter of failed commits
//   - {prefix}_commit_busy_retries_total - Counter of busy COMMIT retries
//   - {prefix}_commit_duration_seconds - Histogram of commit wall time,
//     busy retries included
//   - {prefix}_rollback_total - Counter of rollbacks
//   - {prefix}_rollback_errors_total - Counter of failed rollbacks
//   - {prefix}_auto_commit_total - Counter of implicit commits on close
//   - {prefix}_auto_commit_errors_total - Counter of failed implicit
//     commits; together with the logger this is the only signal of a write
//     lost by an unresolved transaction
//
// # Performance Notes
//
// This implementation pre-creates all metrics at initialization time
// using the NewXXX pattern (instead of GetOrCreateXXX) for optimal
// performance in hot paths, as recommended by the VictoriaMetrics documentation.
//
// The metrics are registered with a dedicated Set that is registered
// globally, allowing standard Prometheus scraping.
package vm
