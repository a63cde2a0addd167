package sqlitex

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rymis/sqlitex/types"
)

func TestOpenMemory(t *testing.T) {
	conn, err := Open(MemoryPath)
	require.NoError(t, err)
	require.NotNil(t, conn)
	require.NoError(t, conn.Close())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	conn, err := Open(path)
	require.NoError(t, err)
	mustExec(t, conn, "CREATE TABLE t (x INTEGER)")
	mustExec(t, conn, "INSERT INTO t VALUES (42)")
	require.NoError(t, conn.Close())

	// The data survives reopening
	conn, err = Open(path)
	require.NoError(t, err)
	defer conn.Close()

	stmt, err := conn.Prepare("SELECT x FROM t")
	require.NoError(t, err)
	defer stmt.Close()

	got, err := stmt.Exec()
	require.NoError(t, err)
	require.Equal(t, "42", got)
}

func TestOpenFailure(t *testing.T) {
	// A path inside a directory that does not exist cannot be created
	_, err := Open(filepath.Join(t.TempDir(), "no", "such", "dir", "test.db"))
	require.Error(t, err)

	var serr *types.Error
	require.ErrorAs(t, err, &serr)
	require.Equal(t, types.KindOpen, serr.Kind)
	require.NotEqual(t, types.CodeOK, serr.Code)
	require.Contains(t, err.Error(), "sqlitex: open")
}

func TestPrepareRejectsInvalidSQL(t *testing.T) {
	conn := openTestConn(t)

	_, err := conn.Prepare("NOT VALID SQL")
	require.Error(t, err)
	require.Equal(t, types.KindPrepare, types.KindOf(err))
	require.Contains(t, err.Error(), "prepare failed")
}

func TestPrepareBindsArgs(t *testing.T) {
	conn := openTestConn(t)
	mustExec(t, conn, "CREATE TABLE t (a INTEGER, b TEXT)")
	mustExec(t, conn, "INSERT INTO t VALUES (?, ?)", 7, "seven")

	stmt, err := conn.Prepare("SELECT b FROM t WHERE a = ?", 7)
	require.NoError(t, err)
	defer stmt.Close()

	got, err := stmt.Exec()
	require.NoError(t, err)
	require.Equal(t, "seven", got)
}

func TestPrepareBindFailureReleasesStatement(t *testing.T) {
	conn := openTestConn(t)
	mustExec(t, conn, "CREATE TABLE t (a INTEGER)")

	// The second position does not exist
	_, err := conn.Prepare("INSERT INTO t VALUES (?)", 1, 2)
	require.Error(t, err)
	require.Equal(t, types.KindBind, types.KindOf(err))
}

func TestCloseIdempotent(t *testing.T) {
	conn, err := Open(MemoryPath)
	require.NoError(t, err)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	// Operations on a closed connection fail cleanly instead of crashing
	_, err = conn.Prepare("SELECT 1")
	require.Error(t, err)
	require.Equal(t, types.KindPrepare, types.KindOf(err))

	_, err = conn.Begin()
	require.Error(t, err)
	require.Equal(t, types.KindBegin, types.KindOf(err))
}

func TestLastInsertRowIDAndChanges(t *testing.T) {
	conn := openTestConn(t)
	mustExec(t, conn, "CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, v TEXT)")

	mustExec(t, conn, "INSERT INTO t VALUES (NULL, 'a')")
	require.Equal(t, int64(1), conn.LastInsertRowID())

	mustExec(t, conn, "INSERT INTO t VALUES (NULL, 'b')")
	require.Equal(t, int64(2), conn.LastInsertRowID())

	mustExec(t, conn, "UPDATE t SET v = 'x'")
	require.Equal(t, 2, conn.Changes())

	mustExec(t, conn, "DELETE FROM t WHERE id = 1")
	require.Equal(t, 1, conn.Changes())
}

func TestPrepareMetrics(t *testing.T) {
	m := &countMetrics{}
	conn := openTestConn(t, WithMetrics(m))

	mustExec(t, conn, "CREATE TABLE t (x INTEGER)")
	_, err := conn.Prepare("NOT VALID SQL")
	require.Error(t, err)

	require.Equal(t, int64(2), m.prepareTotal.Load())
	require.Equal(t, int64(1), m.prepareErrors.Load())
}

func TestOptionNilFieldsFallBackToDefaults(t *testing.T) {
	conn, err := Open(MemoryPath,
		WithLogger(nil),
		WithMetrics(nil),
		WithCommitRetry(nil),
	)
	require.NoError(t, err)
	defer conn.Close()

	mustExec(t, conn, "CREATE TABLE t (x INTEGER)")

	tx, err := conn.Begin()
	require.NoError(t, err)
	mustExec(t, conn, "INSERT INTO t VALUES (1)")
	require.NoError(t, tx.Commit())
}
