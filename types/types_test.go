package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewErrorConcatenatesParts(t *testing.T) {
	err := NewError(KindBind, CodeError, "unknown parameter name '", ":nope", "'")
	require.Equal(t, "unknown parameter name ':nope'", err.Message)
	require.Equal(t, KindBind, err.Kind)
	require.Equal(t, CodeError, err.Code)
}

func TestNewErrorHeterogeneousParts(t *testing.T) {
	err := NewError(KindRange, CodeError, "column index ", 7, " is out of range")
	require.Equal(t, "column index 7 is out of range", err.Message)
}

func TestErrorString(t *testing.T) {
	err := NewError(KindCommit, CodeBusy, "commit failed")
	require.Equal(t, "sqlitex: commit: commit failed (SQLITE_BUSY)", err.Error())
}

func TestIsBusy(t *testing.T) {
	require.True(t, IsBusy(NewError(KindCommit, CodeBusy, "commit failed")))
	require.False(t, IsBusy(NewError(KindCommit, CodeError, "commit failed")))
	require.False(t, IsBusy(errors.New("plain error")))
	require.False(t, IsBusy(nil))
}

func TestIsBusyWrapped(t *testing.T) {
	err := fmt.Errorf("resolving transaction: %w", NewError(KindCommit, CodeBusy, "commit failed"))
	require.True(t, IsBusy(err))
}

func TestKindOfAndCodeOf(t *testing.T) {
	err := NewError(KindStep, CodeMisuse, "execution failed")
	require.Equal(t, KindStep, KindOf(err))
	require.Equal(t, CodeMisuse, CodeOf(err))

	require.Equal(t, Kind(0), KindOf(errors.New("plain")))
	require.Equal(t, CodeOK, CodeOf(nil))
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "SQLITE_BUSY", CodeBusy.String())
	require.Equal(t, "SQLITE_DONE", CodeDone.String())
	require.Equal(t, "SQLITE_CODE_42", Code(42).String())
}

func TestColumnTypeString(t *testing.T) {
	require.Equal(t, "integer", ColumnInteger.String())
	require.Equal(t, "null", ColumnNull.String())
	require.Equal(t, "unknown", ColumnType(99).String())
}
