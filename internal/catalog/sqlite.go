// internal/catalog/sqlite.go
//
// SQLite catalog source. The calibration tool can export its station
// database as a SQLite file with a `stations` table; this reads it back as
// raw rows for Load. Coordinates come back as text so that the same
// per-row drop rules apply regardless of source.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// LoadSQLite reads all rows from the stations table. Row-level scan
// failures skip the row; query failure is fatal since it means the file is
// not a station database at all.
func LoadSQLite(ctx context.Context, db *sql.DB) ([]Row, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name, CAST(fx AS TEXT), CAST(fy AS TEXT), COALESCE(lines,'')
		 FROM stations ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Name, &r.FX, &r.FY, &r.Lines); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
