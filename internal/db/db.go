package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// sqlitePragmas are appended to plain SQLite paths so every connection
// gets foreign keys and WAL without the caller spelling them out.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"

// Init opens the user store. driver is "sqlite" (default) or "pgx";
// connection is a file path or a postgres DSN.
func Init(driver, connection string) (*sqlx.DB, error) {
	if driver == "sqlite" {
		connection = sqliteConnection(connection)

		dir := filepath.Dir(strings.SplitN(connection, "?", 2)[0])
		if dir != "." {
			err := os.MkdirAll(dir, 0755)
			if err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	database, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// A handful of connections covers this API: every request issues a
	// single short statement against the users table.
	database.SetMaxOpenConns(10)
	database.SetMaxIdleConns(2)
	database.SetConnMaxLifetime(30 * time.Minute)

	slog.Info("database connected", "driver", driver)
	return database, nil
}

// sqliteConnection adds the default pragmas unless the DSN is the
// in-memory form or already carries options.
func sqliteConnection(connection string) string {
	if connection == ":memory:" || strings.Contains(connection, "?") {
		return connection
	}
	return connection + "?" + sqlitePragmas
}

// Close is nil-safe so callers can defer it unconditionally.
func Close(database *sqlx.DB) error {
	if database == nil {
		return nil
	}
	return database.Close()
}
