package slite

/*
#include <sqlite3.h>
*/
import "C"
import (
	"unsafe"

	"github.com/orsinium-labs/enum"
)

// ColumnType classifies the native storage class of a column in the
// current result row.
//
// https://www.sqlite.org/c3ref/column_blob.html
type ColumnType enum.Member[string]

var (
	TypeInt     = ColumnType{Value: "int"}
	TypeFloat   = ColumnType{Value: "float"}
	TypeText    = ColumnType{Value: "text"}
	TypeBlob    = ColumnType{Value: "blob"}
	TypeNull    = ColumnType{Value: "null"}
	TypeUnknown = ColumnType{Value: "unknown"}
)

// Row is a cursor view over a statement's current result tuple. It is
// valid only until the next step or finalize.
//
// A row returned by Conn.QueryRow is owned by the caller and must be
// released with Close. A row yielded by Rows.Next is owned by the
// sequence and must not be released individually.
type Row struct {
	stmt  *Stmt
	owned bool
}

// Int returns the column at the given zero-based index as a 64-bit
// integer.
func (r *Row) Int(index int) int64 {
	return int64(C.sqlite3_column_int64(r.stmt.cStmt, C.int(index)))
}

// Float returns the column as a double-precision float.
func (r *Row) Float(index int) float64 {
	return float64(C.sqlite3_column_double(r.stmt.cStmt, C.int(index)))
}

// Bool returns the column as a boolean: any nonzero integer is true.
func (r *Row) Bool(index int) bool {
	return r.Int(index) != 0
}

// Text returns the column as a string. The bytes are copied out of the
// engine's buffer.
func (r *Row) Text(index int) string {
	cText := (*C.char)(unsafe.Pointer(C.sqlite3_column_text(r.stmt.cStmt, C.int(index))))
	if cText == nil {
		return ""
	}
	length := C.sqlite3_column_bytes(r.stmt.cStmt, C.int(index))
	return C.GoStringN(cText, length)
}

// Blob returns the column as a byte slice. The bytes are copied out of
// the engine's buffer.
func (r *Row) Blob(index int) []byte {
	length := C.sqlite3_column_bytes(r.stmt.cStmt, C.int(index))
	if length <= 0 {
		if r.ColumnType(index) == TypeBlob {
			return []byte{}
		}
		return nil
	}
	cBlob := C.sqlite3_column_blob(r.stmt.cStmt, C.int(index))
	if cBlob == nil {
		return nil
	}
	return C.GoBytes(cBlob, length)
}

// RawText returns the column's text bytes without copying. The engine
// guarantees the buffer is null-terminated; it is only valid until the
// next step or finalize.
func (r *Row) RawText(index int) []byte {
	cText := C.sqlite3_column_text(r.stmt.cStmt, C.int(index))
	if cText == nil {
		return nil
	}
	length := C.sqlite3_column_bytes(r.stmt.cStmt, C.int(index))
	return unsafe.Slice((*byte)(unsafe.Pointer(cText)), int(length))
}

// TextLen returns the byte length of the column value.
func (r *Row) TextLen(index int) int {
	return int(C.sqlite3_column_bytes(r.stmt.cStmt, C.int(index)))
}

// ColumnCount returns the number of columns in the result row.
func (r *Row) ColumnCount() int {
	return int(C.sqlite3_column_count(r.stmt.cStmt))
}

// ColumnName returns the name of the column at the given index.
func (r *Row) ColumnName(index int) string {
	return C.GoString(C.sqlite3_column_name(r.stmt.cStmt, C.int(index)))
}

// ColumnType returns the native storage class of the column.
func (r *Row) ColumnType(index int) ColumnType {
	switch C.sqlite3_column_type(r.stmt.cStmt, C.int(index)) {
	case C.SQLITE_INTEGER:
		return TypeInt
	case C.SQLITE_FLOAT:
		return TypeFloat
	case C.SQLITE_TEXT:
		return TypeText
	case C.SQLITE_BLOB:
		return TypeBlob
	case C.SQLITE_NULL:
		return TypeNull
	}
	return TypeUnknown
}

func (r *Row) isNull(index int) bool {
	return r.ColumnType(index) == TypeNull
}

// NullableInt returns nil if the column is NULL, otherwise a pointer to
// the same value Int would return. The other Nullable accessors behave
// the same way for their types.
func (r *Row) NullableInt(index int) *int64 {
	if r.isNull(index) {
		return nil
	}
	v := r.Int(index)
	return &v
}

func (r *Row) NullableFloat(index int) *float64 {
	if r.isNull(index) {
		return nil
	}
	v := r.Float(index)
	return &v
}

func (r *Row) NullableBool(index int) *bool {
	if r.isNull(index) {
		return nil
	}
	v := r.Bool(index)
	return &v
}

func (r *Row) NullableText(index int) *string {
	if r.isNull(index) {
		return nil
	}
	v := r.Text(index)
	return &v
}

func (r *Row) NullableBlob(index int) *[]byte {
	if r.isNull(index) {
		return nil
	}
	v := r.Blob(index)
	return &v
}

// Close releases the statement backing a caller-owned row. Calling it on
// a row yielded from a Rows sequence is a misuse; the sequence owns
// finalization.
func (r *Row) Close() error {
	if !r.owned {
		return &Error{
			Kind:    KindMisuse,
			Code:    codeMisuse,
			Message: "row is owned by its sequence",
		}
	}
	return r.stmt.Finalize()
}

// Column reads the column at the given index as T, dispatching on the
// requested type. Supported: int64, int, float64, bool, string, []byte,
// Blob, and pointers to any of those for nullable reads. An unsupported T
// fails with an unsupported-type error.
func Column[T any](r *Row, index int) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *int64:
		*p = r.Int(index)
	case *int:
		*p = int(r.Int(index))
	case *float64:
		*p = r.Float(index)
	case *bool:
		*p = r.Bool(index)
	case *string:
		*p = r.Text(index)
	case *[]byte:
		*p = r.Blob(index)
	case *Blob:
		*p = Blob(r.Blob(index))
	case **int64:
		*p = r.NullableInt(index)
	case **float64:
		*p = r.NullableFloat(index)
	case **bool:
		*p = r.NullableBool(index)
	case **string:
		*p = r.NullableText(index)
	case **[]byte:
		*p = r.NullableBlob(index)
	default:
		return out, errUnsupportedType(out)
	}
	return out, nil
}

// Rows is a forward-only, single-pass iterator over a statement's result
// rows. One step failure is recorded in a sticky slot: every later Next
// returns nil without re-raising, and the caller checks Err once the loop
// ends. The sequence owns finalization of the underlying statement.
type Rows struct {
	stmt *Stmt
	row  Row
	err  error
}

// Next advances the sequence and returns the next row view, or nil on
// exhaustion or failure. The returned row is only valid until the next
// call to Next or Close.
func (rs *Rows) Next() *Row {
	if rs.err != nil {
		return nil
	}

	hasRow, err := rs.stmt.Step()
	if err != nil {
		rs.err = err
		return nil
	}
	if !hasRow {
		return nil
	}

	rs.row = Row{stmt: rs.stmt}
	return &rs.row
}

// ColumnCount returns the number of columns in the result. It is valid
// before the first call to Next.
func (rs *Rows) ColumnCount() int {
	return rs.stmt.ColumnCount()
}

// ColumnName returns the name of the result column at the given index. It
// is valid before the first call to Next.
func (rs *Rows) ColumnName(index int) string {
	return rs.stmt.ColumnName(index)
}

// Err returns the failure that stopped iteration, if any. It remains
// queryable after the loop ends and after Close.
func (rs *Rows) Err() error {
	return rs.err
}

// Close finalizes the underlying statement. It must be called exactly
// once per sequence; extra calls are no-ops.
func (rs *Rows) Close() error {
	return rs.stmt.Finalize()
}
