package sqlitex

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rymis/sqlitex/types"
)

// captureLogger records log calls for assertions.
type captureLogger struct {
	mu   sync.Mutex
	warn []string
}

// Compile-time assertion.
var _ types.Logger = (*captureLogger)(nil)

func (l *captureLogger) Debug(string, ...any) {}
func (l *captureLogger) Info(string, ...any)  {}
func (l *captureLogger) Error(string, ...any) {}
func (l *captureLogger) Fatal(string, ...any) {}

func (l *captureLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warn = append(l.warn, msg)
}

func (l *captureLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.warn...)
}

// countMetrics counts collector calls for assertions.
type countMetrics struct {
	prepareTotal    atomic.Int64
	prepareErrors   atomic.Int64
	stepTotal       atomic.Int64
	stepErrors      atomic.Int64
	commitTotal     atomic.Int64
	commitErrors    atomic.Int64
	busyRetries     atomic.Int64
	commitDurations atomic.Int64
	rollbackTotal   atomic.Int64
	rollbackErrors  atomic.Int64
	autoTotal       atomic.Int64
	autoErrors      atomic.Int64
}

// Compile-time assertion.
var _ types.MetricsCollector = (*countMetrics)(nil)

func (m *countMetrics) IncPrepareTotal()              { m.prepareTotal.Add(1) }
func (m *countMetrics) IncPrepareError()              { m.prepareErrors.Add(1) }
func (m *countMetrics) IncStepTotal()                 { m.stepTotal.Add(1) }
func (m *countMetrics) IncStepError()                 { m.stepErrors.Add(1) }
func (m *countMetrics) IncCommitTotal()               { m.commitTotal.Add(1) }
func (m *countMetrics) IncCommitError()               { m.commitErrors.Add(1) }
func (m *countMetrics) IncCommitBusyRetry()           { m.busyRetries.Add(1) }
func (m *countMetrics) ObserveCommitDuration(float64) { m.commitDurations.Add(1) }
func (m *countMetrics) IncRollbackTotal()             { m.rollbackTotal.Add(1) }
func (m *countMetrics) IncRollbackError()             { m.rollbackErrors.Add(1) }
func (m *countMetrics) IncAutoCommitTotal()           { m.autoTotal.Add(1) }
func (m *countMetrics) IncAutoCommitError()           { m.autoErrors.Add(1) }

// openTestConn opens an in-memory database that is closed when the test ends.
func openTestConn(t *testing.T, opts ...Option) *Conn {
	t.Helper()

	conn, err := Open(MemoryPath, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// mustExec prepares and runs one statement, failing the test on any error.
func mustExec(t *testing.T, conn *Conn, sql string, args ...any) {
	t.Helper()

	stmt, err := conn.Prepare(sql, args...)
	require.NoError(t, err)
	defer stmt.Close()

	_, err = stmt.Exec()
	require.NoError(t, err)
}
