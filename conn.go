package slite

/*
#cgo LDFLAGS: -lsqlite3
#include <stdlib.h>
#include <sqlite3.h>
*/
import "C"
import (
	"unsafe"
)

// Conn is a single connection to a SQLite database. It wraps exactly one
// native handle and is not safe for concurrent use.
//
// https://www.sqlite.org/c3ref/sqlite3.html
type Conn struct {
	cDB *C.sqlite3

	// pool is a weak back-reference to the pool this connection was issued
	// from, nil for connections opened directly.
	pool *Pool
}

// Open opens or creates a database at the given path. If flags request
// neither read-only nor read-write access, read-write is implied.
//
// https://www.sqlite.org/c3ref/open.html
func Open(path string, flags OpenFlags) (*Conn, error) {
	if flags&(OpenReadOnly|OpenReadWrite) == 0 {
		flags |= OpenReadWrite
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	var cDB *C.sqlite3
	rc := C.sqlite3_open_v2(cPath, &cDB, C.int(flags), nil)
	if rc != C.SQLITE_OK {
		err := newError(int(rc), errMsg(cDB))
		// A handle can be allocated even when open fails; it still has to
		// be closed. A secondary close failure is ignored.
		if cDB != nil {
			_ = C.sqlite3_close_v2(cDB)
		}
		return nil, err
	}

	return &Conn{cDB: cDB}, nil
}

// errMsg returns the engine's message for the most recent failure on the
// handle, or "" for a nil handle.
func errMsg(cDB *C.sqlite3) string {
	if cDB == nil {
		return ""
	}
	return C.GoString(C.sqlite3_errmsg(cDB))
}

// error builds a typed error for a native result code returned by a call on
// this connection.
func (c *Conn) error(rc C.int) *Error {
	return newError(int(rc), errMsg(c.cDB))
}

// Execute runs SQL with no parameters and no result capture. The engine
// executes it directly without a persistent compiled form; use it for
// pragmas, DDL and other administrative statements.
//
// https://www.sqlite.org/c3ref/exec.html
func (c *Conn) Execute(sql string) error {
	cSQL := C.CString(sql)
	defer C.free(unsafe.Pointer(cSQL))

	rc := C.sqlite3_exec(c.cDB, cSQL, nil, nil, nil)
	if rc != C.SQLITE_OK {
		return c.error(rc)
	}
	return nil
}

// Exec compiles the SQL, binds the given parameters positionally, drives
// the statement to completion and finalizes it, discarding any rows it
// produces.
func (c *Conn) Exec(sql string, args ...any) error {
	stmt, err := c.Prepare(sql)
	if err != nil {
		return err
	}
	defer stmt.Finalize()

	if err := stmt.Bind(args...); err != nil {
		return err
	}
	return stmt.StepToCompletion()
}

// Prepare compiles SQL text into a reusable prepared statement bound to
// this connection. The statement must not outlive the connection and must
// be finalized exactly once.
//
// https://www.sqlite.org/c3ref/prepare.html
func (c *Conn) Prepare(sql string) (*Stmt, error) {
	cSQL := C.CString(sql)
	defer C.free(unsafe.Pointer(cSQL))

	var cStmt *C.sqlite3_stmt
	rc := C.sqlite3_prepare_v2(c.cDB, cSQL, C.int(-1), &cStmt, nil)
	if rc != C.SQLITE_OK {
		err := c.error(rc)
		if cStmt != nil {
			_ = C.sqlite3_finalize(cStmt)
		}
		return nil, err
	}

	return &Stmt{conn: c, cStmt: cStmt}, nil
}

// QueryRow prepares the SQL, binds the parameters and advances once.
// It returns nil when the query produced no rows; the statement is
// finalized automatically in that case. Otherwise the caller owns the
// returned row and must release it with Row.Close.
func (c *Conn) QueryRow(sql string, args ...any) (*Row, error) {
	stmt, err := c.Prepare(sql)
	if err != nil {
		return nil, err
	}

	if err := stmt.Bind(args...); err != nil {
		stmt.Finalize()
		return nil, err
	}

	hasRow, err := stmt.Step()
	if err != nil {
		stmt.Finalize()
		return nil, err
	}
	if !hasRow {
		stmt.Finalize()
		return nil, nil
	}

	return &Row{stmt: stmt, owned: true}, nil
}

// Query prepares the SQL and binds the parameters, deferring the first
// step. The caller drives the returned sequence and owns its single
// Close call; rows yielded from it must not be released individually.
func (c *Conn) Query(sql string, args ...any) (*Rows, error) {
	stmt, err := c.Prepare(sql)
	if err != nil {
		return nil, err
	}

	if err := stmt.Bind(args...); err != nil {
		stmt.Finalize()
		return nil, err
	}

	return &Rows{stmt: stmt}, nil
}

// Changes returns the number of rows modified, inserted or deleted by the
// most recently completed statement on this connection.
//
// https://www.sqlite.org/c3ref/changes.html
func (c *Conn) Changes() int64 {
	return int64(C.sqlite3_changes(c.cDB))
}

// LastInsertRowID returns the rowid of the most recent successful INSERT
// on this connection.
//
// https://www.sqlite.org/c3ref/last_insert_rowid.html
func (c *Conn) LastInsertRowID() int64 {
	return int64(C.sqlite3_last_insert_rowid(c.cDB))
}

// LastErrorMsg returns the engine's human-readable description of the most
// recent failure on this connection, or the engine's "not an error"
// sentinel if none occurred yet.
//
// https://www.sqlite.org/c3ref/errcode.html
func (c *Conn) LastErrorMsg() string {
	return errMsg(c.cDB)
}

// SetBusyTimeout configures how long an operation blocked on a lock waits
// before failing with a busy error.
//
// https://www.sqlite.org/c3ref/busy_timeout.html
func (c *Conn) SetBusyTimeout(ms int) error {
	rc := C.sqlite3_busy_timeout(c.cDB, C.int(ms))
	if rc != C.SQLITE_OK {
		return c.error(rc)
	}
	return nil
}

// Begin starts a deferred transaction.
func (c *Conn) Begin() error {
	return c.Execute("BEGIN")
}

// BeginExclusive starts an exclusive transaction.
func (c *Conn) BeginExclusive() error {
	return c.Execute("BEGIN EXCLUSIVE")
}

// Commit commits the current transaction.
func (c *Conn) Commit() error {
	return c.Execute("COMMIT")
}

// Rollback rolls back the current transaction. It never surfaces a
// failure: it is meant to be called unconditionally from a deferred
// cleanup path, where a rollback error has no useful handler.
func (c *Conn) Rollback() {
	_ = c.Execute("ROLLBACK")
}

// Close releases the native handle, ignoring any close-time failure.
// Closing invalidates every statement derived from this connection.
func (c *Conn) Close() {
	_ = c.CloseChecked()
}

// CloseChecked releases the native handle and surfaces the failure, if
// any, instead of swallowing it.
//
// https://www.sqlite.org/c3ref/close.html
func (c *Conn) CloseChecked() error {
	if c.cDB == nil {
		return nil
	}

	rc := C.sqlite3_close_v2(c.cDB)
	if rc != C.SQLITE_OK {
		return c.error(rc)
	}
	c.cDB = nil
	return nil
}

// Release returns the connection to the pool it was issued from, or closes
// it if it is not pool-owned.
func (c *Conn) Release() {
	if c.pool != nil {
		c.pool.Release(c)
		return
	}
	c.Close()
}
