package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // "sqlite3", requiere cgo
	_ "modernc.org/sqlite"          // "sqlite", 100% Go
)

const (
	driverModernc = "sqlite"
	driverMattn   = "sqlite3"
)

// openSQLite abre una única conexión para toda la vida del proceso.
func openSQLite(ctx context.Context, driver, path string) (*sql.DB, error) {
	var dsn string
	switch driver {
	case driverMattn:
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	default:
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return db, nil
}
