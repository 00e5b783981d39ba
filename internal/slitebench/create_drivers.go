package slitebench

import (
	"database/sql"
	"fmt"
	"os"
	"path"

	_ "github.com/mattn/go-sqlite3"
	"github.com/slitedb/slite"
	_ "modernc.org/sqlite"
)

// benchDriver abstracts the drivers under test so every benchmark runs the
// same workload against each of them.
type benchDriver interface {
	Name() string
	Exec(query string) error
	InsertUser(email string, avatar []byte) (int64, error)
	InsertUsersTx(emails []string) (int64, error)
	ScanUsers() (int, error)
	Close() error
}

func createDrivers(dir string) ([]benchDriver, error) {
	slitePool, err := createSliteDriver(dir)
	if err != nil {
		return nil, fmt.Errorf("error opening slitedb/slite db: %w", err)
	}

	mattnDb, err := createSQLDriver(dir, "mattn go-sqlite3", "sqlite3")
	if err != nil {
		return nil, fmt.Errorf("error opening mattn/go-sqlite3 db: %w", err)
	}

	moderncDb, err := createSQLDriver(dir, "modernc sqlite", "sqlite")
	if err != nil {
		return nil, fmt.Errorf("error opening modernc.org/sqlite db: %w", err)
	}

	return []benchDriver{slitePool, mattnDb, moderncDb}, nil
}

func createSliteDriver(dir string) (*sliteDriver, error) {
	dbPath := path.Join(dir, "slite", "bench.db")
	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Println("slitedb/slite db path:", dbPath)

	pool, err := slite.NewPool(slite.PoolConfig{
		Size: 10,
		Path: dbPath,
		OnFirstConnection: func(conn *slite.Conn) error {
			return conn.Execute("PRAGMA journal_mode = WAL")
		},
		OnConnection: func(conn *slite.Conn) error {
			return conn.SetBusyTimeout(10_000)
		},
	})
	if err != nil {
		return nil, err
	}

	return &sliteDriver{pool: pool}, nil
}

func createSQLDriver(dir, name, driverName string) (*sqlDriver, error) {
	dbPath := path.Join(dir, driverName, "bench.db")
	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Printf("%s db path: %s\n", name, dbPath)

	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &sqlDriver{name: name, db: db}, nil
}

// sliteDriver runs the workloads through a slite connection pool.
type sliteDriver struct {
	pool *slite.Pool
}

func (d *sliteDriver) Name() string { return "slitedb/slite" }

func (d *sliteDriver) Exec(query string) error {
	conn := d.pool.Acquire()
	defer conn.Release()
	return conn.Execute(query)
}

func (d *sliteDriver) InsertUser(email string, avatar []byte) (int64, error) {
	conn := d.pool.Acquire()
	defer conn.Release()

	err := conn.Exec(
		"INSERT INTO users (created, email, active, avatar) VALUES (?1, ?2, ?3, ?4)",
		nowUnix(), email, true, slite.Blob(avatar),
	)
	if err != nil {
		return 0, err
	}
	return conn.Changes(), nil
}

func (d *sliteDriver) InsertUsersTx(emails []string) (int64, error) {
	conn := d.pool.Acquire()
	defer conn.Release()

	if err := conn.Begin(); err != nil {
		return 0, err
	}

	stmt, err := conn.Prepare(
		"INSERT INTO users (created, email, active, avatar) VALUES (?1, ?2, ?3, ?4)",
	)
	if err != nil {
		conn.Rollback()
		return 0, err
	}
	defer stmt.Finalize()

	var total int64
	for _, email := range emails {
		if err := stmt.Bind(nowUnix(), email, true, slite.Blob{}); err != nil {
			conn.Rollback()
			return 0, err
		}
		if err := stmt.StepToCompletion(); err != nil {
			conn.Rollback()
			return 0, err
		}
		if err := stmt.Reset(); err != nil {
			conn.Rollback()
			return 0, err
		}
		total += conn.Changes()
	}

	if err := conn.Commit(); err != nil {
		conn.Rollback()
		return 0, err
	}
	return total, nil
}

func (d *sliteDriver) ScanUsers() (int, error) {
	conn := d.pool.Acquire()
	defer conn.Release()

	rows, err := conn.Query("SELECT id, created, email, active FROM users ORDER BY id")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for row := rows.Next(); row != nil; row = rows.Next() {
		_ = row.Int(0)
		_ = row.Int(1)
		_ = row.Text(2)
		_ = row.Bool(3)
		count++
	}
	return count, rows.Err()
}

func (d *sliteDriver) Close() error {
	d.pool.Close()
	return nil
}

// sqlDriver runs the workloads through a database/sql driver.
type sqlDriver struct {
	name string
	db   *sql.DB
}

func (d *sqlDriver) Name() string { return d.name }

func (d *sqlDriver) Exec(query string) error {
	_, err := d.db.Exec(query)
	return err
}

func (d *sqlDriver) InsertUser(email string, avatar []byte) (int64, error) {
	res, err := d.db.Exec(
		"INSERT INTO users (created, email, active, avatar) VALUES (?, ?, ?, ?)",
		nowUnix(), email, 1, avatar,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *sqlDriver) InsertUsersTx(emails []string) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(
		"INSERT INTO users (created, email, active, avatar) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	var total int64
	for _, email := range emails {
		res, err := stmt.Exec(nowUnix(), email, 1, []byte{})
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		total += affected
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return total, nil
}

func (d *sqlDriver) ScanUsers() (int, error) {
	rows, err := d.db.Query("SELECT id, created, email, active FROM users ORDER BY id")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id, created, active int
		var email string
		if err := rows.Scan(&id, &created, &email, &active); err != nil {
			return 0, err
		}
		count++
	}
	return count, rows.Err()
}

func (d *sqlDriver) Close() error {
	return d.db.Close()
}
