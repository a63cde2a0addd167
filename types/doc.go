// Package types provides shared types and error definitions for the sqlitex library.
//
// This is a leaf package with zero sqlitex imports to prevent import cycles.
// All packages in sqlitex can safely import this package.
//
// # Types
//
// Code is the status code reported by the SQLite engine. The values are the
// engine's own result codes, so transient conditions stay distinguishable
// from permanent ones:
//
//	const (
//	    CodeOK   Code = 0
//	    CodeBusy Code = 5
//	    CodeRow  Code = 100
//	    CodeDone Code = 101
//	)
//
// ColumnType tags the storage class of one column of the current row:
//
//	const (
//	    ColumnInteger ColumnType = 1
//	    ColumnFloat   ColumnType = 2
//	    ColumnText    ColumnType = 3
//	    ColumnBlob    ColumnType = 4
//	    ColumnNull    ColumnType = 5
//	)
//
// # Errors
//
// Every failure is reported as a *types.Error carrying a Kind (which
// operation failed), the engine status Code, and a message. Inspect errors
// with errors.As:
//
//	var serr *types.Error
//	if errors.As(err, &serr) && serr.Code == types.CodeBusy {
//	    // transient: another session holds the lock
//	}
package types
