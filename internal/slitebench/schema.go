package slitebench

import "time"

// recreateSchema drops and recreates the benchmark table.
func recreateSchema(d benchDriver) error {
	stmts := []string{
		`DROP TABLE IF EXISTS users`,

		`CREATE TABLE users (
			id INTEGER PRIMARY KEY NOT NULL,
			created INTEGER NOT NULL,
			email TEXT NOT NULL,
			active INTEGER NOT NULL,
			avatar BLOB
		)`,
		`CREATE INDEX users_created ON users(created)`,
	}

	for _, s := range stmts {
		if err := d.Exec(s); err != nil {
			return err
		}
	}

	return nil
}

func nowUnix() int64 {
	return time.Now().Unix()
}
