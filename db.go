// db.go
//
// SQLite access for the calibrated station database.
// Responsibilities:
//   - Opening the station database read path with safe defaults
//     (WAL, busy timeout, foreign keys).
//   - Reading station rows for the catalog loader.
//
// The station database is produced offline by the calibration tool; this
// process only ever reads it.

package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/austinblanke891/metrodupe/internal/catalog"
)

// openStationDB opens a SQLite station database file.
func openStationDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// stationRowsFromDB reads all catalog rows from a station database file.
func stationRowsFromDB(ctx context.Context, dsn string) ([]catalog.Row, error) {
	db, err := openStationDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open station db: %w", err)
	}
	defer db.Close()
	return catalog.LoadSQLite(ctx, db)
}
