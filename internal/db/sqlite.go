package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"budget-app-go/pkg/logger"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// NewSQLite opens the database file at path, creating its directory, and
// brings the schema up to date. The pool holds a single connection.
func NewSQLite(path string, log logger.Logger) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	log.Info("db: opening sqlite", "path", path)
	sqlDB, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err := MigrateSQLite(path); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Info("db: connected")
	return sqlDB, nil
}
