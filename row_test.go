package slite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableAccessors(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE n (i INTEGER, f REAL, b INTEGER, s TEXT, d BLOB)"))
	require.NoError(t, conn.Exec(
		"INSERT INTO n (i, f, b, s, d) VALUES (?1, ?2, ?3, ?4, ?5)",
		int64(-5), 2.5, true, "text", Blob("blob"),
	))
	require.NoError(t, conn.Exec(
		"INSERT INTO n (i, f, b, s, d) VALUES (NULL, NULL, NULL, NULL, NULL)",
	))

	t.Run("ValuesMatchNonNullableAccessors", func(t *testing.T) {
		row, err := conn.QueryRow("SELECT i, f, b, s, d FROM n WHERE i IS NOT NULL")
		require.NoError(t, err)
		require.NotNil(t, row)
		defer row.Close()

		require.NotNil(t, row.NullableInt(0))
		assert.Equal(t, row.Int(0), *row.NullableInt(0))
		require.NotNil(t, row.NullableFloat(1))
		assert.Equal(t, row.Float(1), *row.NullableFloat(1))
		require.NotNil(t, row.NullableBool(2))
		assert.Equal(t, row.Bool(2), *row.NullableBool(2))
		require.NotNil(t, row.NullableText(3))
		assert.Equal(t, row.Text(3), *row.NullableText(3))
		require.NotNil(t, row.NullableBlob(4))
		assert.Equal(t, row.Blob(4), *row.NullableBlob(4))
	})

	t.Run("NullColumnsReturnAbsent", func(t *testing.T) {
		row, err := conn.QueryRow("SELECT i, f, b, s, d FROM n WHERE i IS NULL")
		require.NoError(t, err)
		require.NotNil(t, row)
		defer row.Close()

		assert.Nil(t, row.NullableInt(0))
		assert.Nil(t, row.NullableFloat(1))
		assert.Nil(t, row.NullableBool(2))
		assert.Nil(t, row.NullableText(3))
		assert.Nil(t, row.NullableBlob(4))
	})
}

func TestColumnMetadata(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE m (id INTEGER, name TEXT)"))
	require.NoError(t, conn.Exec("INSERT INTO m (id, name) VALUES (1, 'ada')"))

	row, err := conn.QueryRow("SELECT id, name FROM m")
	require.NoError(t, err)
	require.NotNil(t, row)
	defer row.Close()

	assert.Equal(t, 2, row.ColumnCount())
	assert.Equal(t, "id", row.ColumnName(0))
	assert.Equal(t, "name", row.ColumnName(1))
	assert.Equal(t, TypeInt, row.ColumnType(0))
	assert.Equal(t, TypeText, row.ColumnType(1))
	assert.Equal(t, 3, row.TextLen(1))
	assert.Equal(t, []byte("ada"), row.RawText(1))
}

func TestGenericColumn(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE g (i INTEGER, f REAL, s TEXT, d BLOB, n TEXT)"))
	require.NoError(t, conn.Exec(
		"INSERT INTO g (i, f, s, d, n) VALUES (?1, ?2, ?3, ?4, NULL)",
		int64(12), 0.5, "str", Blob{1, 2},
	))

	row, err := conn.QueryRow("SELECT i, f, s, d, n FROM g")
	require.NoError(t, err)
	require.NotNil(t, row)
	defer row.Close()

	t.Run("ScalarTypes", func(t *testing.T) {
		i, err := Column[int64](row, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 12, i)

		f, err := Column[float64](row, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.5, f)

		s, err := Column[string](row, 2)
		require.NoError(t, err)
		assert.Equal(t, "str", s)

		d, err := Column[Blob](row, 3)
		require.NoError(t, err)
		assert.Equal(t, Blob{1, 2}, d)

		b, err := Column[bool](row, 0)
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("NullableTypes", func(t *testing.T) {
		n, err := Column[*string](row, 4)
		require.NoError(t, err)
		assert.Nil(t, n)

		i, err := Column[*int64](row, 0)
		require.NoError(t, err)
		require.NotNil(t, i)
		assert.EqualValues(t, 12, *i)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		_, err := Column[complex128](row, 0)
		require.Error(t, err)

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, KindUnsupportedType, e.Kind)
	})
}

func TestRows(t *testing.T) {
	conn := openTestConn(t)
	require.NoError(t, conn.Execute("CREATE TABLE seq (id INTEGER, name TEXT)"))
	require.NoError(t, conn.Exec("INSERT INTO seq (id, name) VALUES (3, 'four')"))
	require.NoError(t, conn.Exec("INSERT INTO seq (id, name) VALUES (1, 'two')"))

	t.Run("YieldsRowsInOrder", func(t *testing.T) {
		rows, err := conn.Query("SELECT id, name FROM seq ORDER BY id")
		require.NoError(t, err)
		defer rows.Close()

		row := rows.Next()
		require.NotNil(t, row)
		assert.EqualValues(t, 1, row.Int(0))
		assert.Equal(t, "two", row.Text(1))

		row = rows.Next()
		require.NotNil(t, row)
		assert.EqualValues(t, 3, row.Int(0))
		assert.Equal(t, "four", row.Text(1))

		assert.Nil(t, rows.Next())
		assert.NoError(t, rows.Err())
	})

	t.Run("YieldedRowsRefuseClose", func(t *testing.T) {
		rows, err := conn.Query("SELECT id FROM seq")
		require.NoError(t, err)
		defer rows.Close()

		row := rows.Next()
		require.NotNil(t, row)
		assert.Error(t, row.Close())
	})

	t.Run("EmptyResult", func(t *testing.T) {
		rows, err := conn.Query("SELECT id FROM seq WHERE id = ?1", 99)
		require.NoError(t, err)
		defer rows.Close()

		assert.Nil(t, rows.Next())
		assert.NoError(t, rows.Err())
	})
}

func TestRowsStickyError(t *testing.T) {
	conn := openTestConn(t)

	// The first row steps fine; the second raises an integer overflow at
	// evaluation time.
	rows, err := conn.Query("SELECT 1 UNION ALL SELECT abs(-9223372036854775808)")
	require.NoError(t, err)
	defer rows.Close()

	row := rows.Next()
	require.NotNil(t, row)
	assert.EqualValues(t, 1, row.Int(0))

	// The failing step records the error and yields no row.
	assert.Nil(t, rows.Next())
	require.Error(t, rows.Err())

	// A consumer that keeps iterating terminates without spinning and
	// without losing the recorded error.
	for i := 0; i < 3; i++ {
		assert.Nil(t, rows.Next())
	}
	require.Error(t, rows.Err())

	// Finalize reports the failed evaluation too; the sticky slot is
	// still queryable afterwards.
	assert.Error(t, rows.Close())
	assert.Error(t, rows.Err())
}
