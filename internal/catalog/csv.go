// internal/catalog/csv.go
//
// CSV catalog source. The expected shape matches the calibration tool's
// export: a header row of name,fx,fy,lines with line identifiers separated
// by ";". Rows that cannot be parsed are skipped, never fatal.

package catalog

import (
	"encoding/csv"
	"io"
	"strings"
)

// ParseCSV reads catalog rows from r. Only an unreadable header is an
// error; individual malformed records are dropped silently, matching the
// load contract in Load.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, they get dropped below
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	col := columnIndex(header)

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		row := Row{
			Name:  field(rec, col.name),
			FX:    field(rec, col.fx),
			FY:    field(rec, col.fy),
			Lines: field(rec, col.lines),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// columns holds header positions; -1 means the column is absent.
type columns struct{ name, fx, fy, lines int }

func columnIndex(header []string) columns {
	c := columns{name: -1, fx: -1, fy: -1, lines: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			c.name = i
		case "fx":
			c.fx = i
		case "fy":
			c.fy = i
		case "lines":
			c.lines = i
		}
	}
	return c
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
