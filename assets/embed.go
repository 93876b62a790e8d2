// assets/embed.go
//
// Embedded default station catalog so the server runs with no external
// files configured. The real, fully calibrated database is supplied via
// CATALOG_FILE (CSV) or CATALOG_DB (SQLite); this sample covers central
// London well enough for development and tests.

package assets

import (
	"bytes"
	"embed"
	"io"
)

//go:embed stations.csv
var FS embed.FS

// StationsCSV returns a reader over the embedded default catalog.
func StationsCSV() (io.Reader, error) {
	b, err := FS.ReadFile("stations.csv")
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}
