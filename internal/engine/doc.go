// Package engine binds sqlitex to the SQLite C API.
//
// The engine is the pure-Go build of SQLite from modernc.org/sqlite/lib,
// called through a modernc.org/libc thread-local state. This package owns
// all of the C-side memory management: statement text and bound text/blob
// buffers are allocated with the C allocator and released when the owning
// statement is finalized.
//
// Every call returns the raw engine result code; mapping codes to typed
// errors is the caller's job. The package deliberately mirrors the C
// surface (open/close, prepare/bind/step/finalize, column accessors) and
// adds nothing else.
//
// A Conn and the statements derived from it are not safe for concurrent
// use. The thread-local state is per-connection, so distinct connections
// may be used from distinct goroutines.
package engine
