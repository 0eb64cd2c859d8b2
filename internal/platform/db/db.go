package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// OpenPostgres opens a Postgres connection pool via the pgx stdlib
// driver and verifies connectivity.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	pg, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	pg.SetMaxOpenConns(10)
	pg.SetMaxIdleConns(10)
	pg.SetConnMaxLifetime(30 * time.Minute)

	if err := pg.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return pg, nil
}

// OpenSQLite opens a local SQLite database file and verifies it is
// usable. The file is created if it does not exist.
func OpenSQLite(path string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", path, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", path, err)
	}

	return lite, nil
}
