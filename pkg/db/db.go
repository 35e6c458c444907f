// Package db opens the SQL database used by the response sink.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// DB wraps a database connection.
type DB struct {
	*sql.DB
	driver string
	dsn    string
}

// Open opens the database for driver and applies migrations. For sqlite the
// data source is a file path whose directory is created if needed.
func Open(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite:
		if dir := filepath.Dir(dsn); dsn != ":memory:" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create db directory: %w", err)
			}
		}
	case DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if driver == DriverSQLite {
		pragmas := []string{
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
			"PRAGMA busy_timeout = 5000",
		}
		for _, pragma := range pragmas {
			if _, err := conn.Exec(pragma); err != nil {
				conn.Close()
				return nil, fmt.Errorf("execute pragma %q: %w", pragma, err)
			}
		}
	}

	d := &DB{DB: conn, driver: driver, dsn: dsn}
	if err := d.Migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Driver returns the driver name.
func (d *DB) Driver() string {
	return d.driver
}

// Migrate creates the responses table. The DDL is valid for both drivers.
func (d *DB) Migrate() error {
	_, err := d.Exec(`
	CREATE TABLE IF NOT EXISTS responses (
		id VARCHAR(36) PRIMARY KEY,
		sheet_range VARCHAR(255) NOT NULL,
		row_values TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`)
	return err
}

// SqlConn returns a go-zero sqlx.SqlConn wrapping the underlying database.
// This provides automatic circuit breaking and tracing on every query.
func (d *DB) SqlConn() sqlx.SqlConn {
	if d.driver == DriverSQLite {
		return sqlx.NewSqlConnFromDB(d.DB, sqlx.WithAcceptable(sqliteAcceptable))
	}
	return sqlx.NewSqlConnFromDB(d.DB)
}

// sqliteAcceptable tells the circuit breaker that "database is locked" errors
// are transient and should not trip the breaker.
func sqliteAcceptable(err error) bool {
	return err == nil || strings.Contains(err.Error(), "database is locked")
}
