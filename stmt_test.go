package slite

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindRoundTrip(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE vals (v)"))

	// Binds the value into a fresh single-column table and reads it back.
	readBack := func(t *testing.T, value any) *Row {
		t.Helper()
		require.NoError(t, conn.Execute("DELETE FROM vals"))
		require.NoError(t, conn.Exec("INSERT INTO vals (v) VALUES (?1)", value))

		row, err := conn.QueryRow("SELECT v FROM vals")
		require.NoError(t, err)
		require.NotNil(t, row)
		t.Cleanup(func() { row.Close() })
		return row
	}

	t.Run("PositiveInteger", func(t *testing.T) {
		row := readBack(t, int64(9007199254740993))
		assert.EqualValues(t, 9007199254740993, row.Int(0))
		assert.Equal(t, TypeInt, row.ColumnType(0))
	})

	t.Run("NegativeInteger", func(t *testing.T) {
		row := readBack(t, -42)
		assert.EqualValues(t, -42, row.Int(0))
	})

	t.Run("SmallIntWidths", func(t *testing.T) {
		row := readBack(t, int8(-8))
		assert.EqualValues(t, -8, row.Int(0))
		row = readBack(t, uint16(65535))
		assert.EqualValues(t, 65535, row.Int(0))
	})

	t.Run("Float", func(t *testing.T) {
		row := readBack(t, 3.1415)
		assert.Equal(t, 3.1415, row.Float(0))
		assert.Equal(t, TypeFloat, row.ColumnType(0))
	})

	t.Run("BooleanTrue", func(t *testing.T) {
		row := readBack(t, true)
		assert.True(t, row.Bool(0))
		assert.EqualValues(t, 1, row.Int(0))
	})

	t.Run("BooleanFalse", func(t *testing.T) {
		row := readBack(t, false)
		assert.False(t, row.Bool(0))
	})

	t.Run("Text", func(t *testing.T) {
		value := "héllo wörld " + uuid.NewString()
		row := readBack(t, value)
		assert.Equal(t, value, row.Text(0))
		assert.Equal(t, TypeText, row.ColumnType(0))
	})

	t.Run("EmptyText", func(t *testing.T) {
		row := readBack(t, "")
		assert.Equal(t, "", row.Text(0))
		assert.Equal(t, TypeText, row.ColumnType(0))
		assert.Equal(t, 0, row.TextLen(0))
	})

	t.Run("Blob", func(t *testing.T) {
		value := Blob{0x00, 0x01, 0xfe, 0xff}
		row := readBack(t, value)
		assert.Equal(t, []byte(value), row.Blob(0))
		assert.Equal(t, TypeBlob, row.ColumnType(0))
	})

	t.Run("EmptyBlob", func(t *testing.T) {
		row := readBack(t, Blob{})
		assert.Equal(t, []byte{}, row.Blob(0))
		assert.Equal(t, TypeBlob, row.ColumnType(0))
	})

	t.Run("BytesDefaultToText", func(t *testing.T) {
		row := readBack(t, []byte("raw bytes"))
		assert.Equal(t, "raw bytes", row.Text(0))
		assert.Equal(t, TypeText, row.ColumnType(0))
	})

	t.Run("Null", func(t *testing.T) {
		row := readBack(t, nil)
		assert.Equal(t, TypeNull, row.ColumnType(0))
	})

	t.Run("NullablePointerSet", func(t *testing.T) {
		v := int64(7)
		row := readBack(t, &v)
		assert.EqualValues(t, 7, row.Int(0))
		assert.Equal(t, TypeInt, row.ColumnType(0))
	})

	t.Run("NullablePointerNil", func(t *testing.T) {
		row := readBack(t, (*string)(nil))
		assert.Equal(t, TypeNull, row.ColumnType(0))
	})
}

func TestBlobMarkerComparison(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE b (id INTEGER PRIMARY KEY, data)"))

	payload := []byte("payload")
	require.NoError(t, conn.Exec("INSERT INTO b (id, data) VALUES (1, ?1)", payload))
	require.NoError(t, conn.Exec("INSERT INTO b (id, data) VALUES (2, ?1)", Blob(payload)))

	t.Run("EqualityMatchesStorageClass", func(t *testing.T) {
		row, err := conn.QueryRow("SELECT id FROM b WHERE data = ?1", Blob(payload))
		require.NoError(t, err)
		require.NotNil(t, row)
		defer row.Close()
		assert.EqualValues(t, 2, row.Int(0))
	})

	t.Run("TextEqualityMatchesTextRow", func(t *testing.T) {
		row, err := conn.QueryRow("SELECT id FROM b WHERE data = ?1", "payload")
		require.NoError(t, err)
		require.NotNil(t, row)
		defer row.Close()
		assert.EqualValues(t, 1, row.Int(0))
	})
}

func TestBindUnsupportedType(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE t (v)"))

	err := conn.Exec("INSERT INTO t (v) VALUES (?1)", struct{ A int }{A: 1})
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindUnsupportedType, e.Kind)
}

func TestStep(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE t (id INTEGER PRIMARY KEY)"))
	require.NoError(t, conn.Exec("INSERT INTO t (id) VALUES (1), (2), (3)"))

	t.Run("RowThenDone", func(t *testing.T) {
		stmt, err := conn.Prepare("SELECT id FROM t WHERE id = 1")
		require.NoError(t, err)
		defer stmt.Finalize()

		hasRow, err := stmt.Step()
		require.NoError(t, err)
		assert.True(t, hasRow)

		hasRow, err = stmt.Step()
		require.NoError(t, err)
		assert.False(t, hasRow)
	})

	t.Run("StepToCompletion", func(t *testing.T) {
		stmt, err := conn.Prepare("SELECT id FROM t")
		require.NoError(t, err)
		defer stmt.Finalize()
		assert.NoError(t, stmt.StepToCompletion())
	})
}

func TestStmtReset(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE t (val TEXT)"))

	stmt, err := conn.Prepare("INSERT INTO t (val) VALUES (?1)")
	require.NoError(t, err)
	defer stmt.Finalize()

	for _, val := range []string{"first", "second"} {
		require.NoError(t, stmt.Bind(val))
		require.NoError(t, stmt.StepToCompletion())
		require.NoError(t, stmt.Reset())
	}

	row, err := conn.QueryRow("SELECT COUNT(*) FROM t")
	require.NoError(t, err)
	defer row.Close()
	assert.EqualValues(t, 2, row.Int(0))
}

func TestFinalizeIsIdempotent(t *testing.T) {
	conn := openTestConn(t)

	stmt, err := conn.Prepare("SELECT 1")
	require.NoError(t, err)
	assert.NoError(t, stmt.Finalize())
	assert.NoError(t, stmt.Finalize())
}
