package slite

/*
#include <stdlib.h>
#include <sqlite3.h>

// Helpers around the bind destructor argument: SQLITE_TRANSIENT makes the
// engine copy the buffer before the call returns, so Go memory never has to
// outlive the bind.
static int slite_bind_text(sqlite3_stmt *stmt, int index, const char *value, int n) {
	return sqlite3_bind_text(stmt, index, value, n, SQLITE_TRANSIENT);
}
static int slite_bind_blob(sqlite3_stmt *stmt, int index, const void *value, int n) {
	return sqlite3_bind_blob(stmt, index, value, n, SQLITE_TRANSIENT);
}
*/
import "C"
import (
	"unsafe"
)

// Blob marks a byte sequence that must bind and compare as opaque binary
// data. A bare []byte binds as TEXT; wrap it in Blob to bypass that
// default.
type Blob []byte

// Stmt is one compiled query tied to the connection that produced it. It
// must not outlive its connection, and every code path that creates one
// must guarantee exactly one Finalize.
//
// https://www.sqlite.org/c3ref/stmt.html
type Stmt struct {
	conn  *Conn
	cStmt *C.sqlite3_stmt
}

// Bind binds the given values at their 1-based positional placeholders, in
// the order given. Supported shapes: nil, all integer widths, floats,
// bool, string, []byte (as TEXT), Blob (as BLOB), and pointers to any of
// those for nullable binds. Anything else fails with an unsupported-type
// error before any native call is made.
func (s *Stmt) Bind(args ...any) error {
	for i, arg := range args {
		if err := s.bindValue(i+1, arg); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stmt) bindValue(index int, value any) error {
	switch v := value.(type) {
	case nil:
		return s.bindNull(index)
	case int:
		return s.bindInt64(index, int64(v))
	case int8:
		return s.bindInt64(index, int64(v))
	case int16:
		return s.bindInt64(index, int64(v))
	case int32:
		return s.bindInt64(index, int64(v))
	case int64:
		return s.bindInt64(index, v)
	case uint:
		return s.bindInt64(index, int64(v))
	case uint8:
		return s.bindInt64(index, int64(v))
	case uint16:
		return s.bindInt64(index, int64(v))
	case uint32:
		return s.bindInt64(index, int64(v))
	case uint64:
		return s.bindInt64(index, int64(v))
	case float32:
		return s.bindFloat64(index, float64(v))
	case float64:
		return s.bindFloat64(index, v)
	case bool:
		if v {
			return s.bindInt64(index, 1)
		}
		return s.bindInt64(index, 0)
	case string:
		return s.bindText(index, v)
	case Blob:
		return s.bindBlob(index, v)
	case []byte:
		return s.bindText(index, string(v))
	case *int:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	case *int32:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	case *int64:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	case *float64:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	case *bool:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	case *string:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	case *[]byte:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	case *Blob:
		if v == nil {
			return s.bindNull(index)
		}
		return s.bindValue(index, *v)
	default:
		return errUnsupportedType(value)
	}
}

func (s *Stmt) bindNull(index int) error {
	rc := C.sqlite3_bind_null(s.cStmt, C.int(index))
	if rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	return nil
}

func (s *Stmt) bindInt64(index int, value int64) error {
	rc := C.sqlite3_bind_int64(s.cStmt, C.int(index), C.sqlite3_int64(value))
	if rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	return nil
}

func (s *Stmt) bindFloat64(index int, value float64) error {
	rc := C.sqlite3_bind_double(s.cStmt, C.int(index), C.double(value))
	if rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	return nil
}

func (s *Stmt) bindText(index int, value string) error {
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))

	rc := C.slite_bind_text(s.cStmt, C.int(index), cValue, C.int(len(value)))
	if rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	return nil
}

func (s *Stmt) bindBlob(index int, value []byte) error {
	// A zero-length blob still has to store as a blob, not as NULL.
	if len(value) == 0 {
		rc := C.sqlite3_bind_zeroblob(s.cStmt, C.int(index), 0)
		if rc != C.SQLITE_OK {
			return s.conn.error(rc)
		}
		return nil
	}

	rc := C.slite_bind_blob(s.cStmt, C.int(index), unsafe.Pointer(&value[0]), C.int(len(value)))
	if rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	return nil
}

// ReadOnly reports whether the statement makes no direct changes to the
// database.
//
// https://www.sqlite.org/c3ref/stmt_readonly.html
func (s *Stmt) ReadOnly() bool {
	return C.sqlite3_stmt_readonly(s.cStmt) != 0
}

// ColumnCount returns the number of columns the statement produces, or
// zero for statements that return no data.
func (s *Stmt) ColumnCount() int {
	return int(C.sqlite3_column_count(s.cStmt))
}

// ColumnName returns the name of the result column at the given index.
func (s *Stmt) ColumnName(index int) string {
	return C.GoString(C.sqlite3_column_name(s.cStmt, C.int(index)))
}

// Step advances one row. It returns true if a row is available and false
// once the statement is exhausted; any other native outcome surfaces as a
// typed error.
//
// https://www.sqlite.org/c3ref/step.html
func (s *Stmt) Step() (bool, error) {
	rc := C.sqlite3_step(s.cStmt)
	switch rc {
	case C.SQLITE_ROW:
		return true, nil
	case C.SQLITE_DONE:
		return false, nil
	}
	return false, s.conn.error(rc)
}

// StepToCompletion drives the statement to exhaustion, discarding any
// intermediate rows. Some administrative statements legitimately produce
// rows on the way to completion.
func (s *Stmt) StepToCompletion() error {
	for {
		hasRow, err := s.Step()
		if err != nil {
			return err
		}
		if !hasRow {
			return nil
		}
	}
}

// Reset rewinds the statement and clears its bindings so it can be
// executed again.
func (s *Stmt) Reset() error {
	if rc := C.sqlite3_reset(s.cStmt); rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	if rc := C.sqlite3_clear_bindings(s.cStmt); rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	return nil
}

// Finalize releases the compiled form. It is safe to call more than once;
// only the first call reaches the engine.
//
// https://www.sqlite.org/c3ref/finalize.html
func (s *Stmt) Finalize() error {
	if s.cStmt == nil {
		return nil
	}

	rc := C.sqlite3_finalize(s.cStmt)
	s.cStmt = nil
	if rc != C.SQLITE_OK {
		return s.conn.error(rc)
	}
	return nil
}
