// internal/catalog/catalog.go
//
// Immutable in-memory station catalog.
// Responsibilities:
//   - Define the Station record (display name, normalized map position, lines).
//   - Build a Catalog from raw rows, dropping malformed entries.
//   - O(1) lookup by normalized key, plus a name list sorted for autocomplete.
//
// Notes:
//   - Normalization (Normalize/CleanDisplay) lives here because the station
//     key is derived from it; the resolver reuses the same functions so that
//     queries and catalog identities can never drift apart.
//   - A Catalog is built once at startup and read-only afterwards; it is safe
//     to share across sessions without locking.

package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Station is a single entry on the map.
type Station struct {
	Name  string   // Display name, already cleaned (see CleanDisplay).
	FX    float64  // Horizontal position in [0,1] of the full map image.
	FY    float64  // Vertical position in [0,1] of the full map image.
	Lines []string // Lowercased line identifiers, sorted, no duplicates.
}

// Key returns the station's normalized identity (lowercase alphanumerics
// of its display name). Two distinct stations never share a key.
func (s Station) Key() string { return Normalize(s.Name) }

// Catalog is the full read-only station set.
type Catalog struct {
	byKey   map[string]Station
	ordered []Station // insertion order, the deterministic fallback-scan order
	names   []string  // display names sorted alphabetically
}

// Row is one raw record from a catalog source (CSV file, SQLite table).
// Coordinates are kept as strings so that unparsable values can be dropped
// per-row instead of failing the whole load.
type Row struct {
	Name  string
	FX    string
	FY    string
	Lines string // ";"-delimited line identifiers
}

// Normalize reduces s to its canonical matching form: every character that
// is not an ASCII letter or digit is stripped, the rest lowercased.
// Total over all inputs; Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// CleanDisplay tidies a raw display name: apostrophes (smart or straight)
// are removed, "&" becomes "and", and runs of whitespace collapse to one
// space.
func CleanDisplay(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("’", "", "'", "", "&", "and").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// NormalizeLines lowercases, trims, de-duplicates, and sorts a line list.
// Empty entries are dropped.
func NormalizeLines(lines []string) []string {
	set := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			set[l] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Load builds a Catalog from raw rows.
//
// Drop rules (silent, per-row):
//   - cleaned name is empty
//   - fx or fy fails to parse, or falls outside [0,1]
//
// Duplicate normalized keys resolve last-write-wins, so a later row for the
// same station replaces the earlier one deterministically. A zero-valid-row
// load yields an empty catalog, which is a legal state; callers must check
// Empty() before starting a round.
func Load(rows []Row) *Catalog {
	c := &Catalog{byKey: make(map[string]Station, len(rows))}
	for _, r := range rows {
		s, ok := parseRow(r)
		if !ok {
			continue
		}
		key := s.Key()
		if prev, dup := c.byKey[key]; dup {
			// Replace in place to keep insertion order stable.
			for i := range c.ordered {
				if c.ordered[i].Key() == prev.Key() {
					c.ordered[i] = s
					break
				}
			}
		} else {
			c.ordered = append(c.ordered, s)
		}
		c.byKey[key] = s
	}
	c.names = make([]string, 0, len(c.ordered))
	for _, s := range c.ordered {
		c.names = append(c.names, s.Name)
	}
	sort.Strings(c.names)
	return c
}

// parseRow converts a raw row into a Station, reporting whether it is valid.
func parseRow(r Row) (Station, bool) {
	name := CleanDisplay(r.Name)
	if name == "" {
		return Station{}, false
	}
	fx, okx := parseFraction(r.FX)
	fy, oky := parseFraction(r.FY)
	if !okx || !oky {
		return Station{}, false
	}
	var lines []string
	if r.Lines != "" {
		lines = NormalizeLines(strings.Split(r.Lines, ";"))
	}
	return Station{Name: name, FX: fx, FY: fy, Lines: lines}, true
}

// parseFraction parses a normalized coordinate and checks it lies in [0,1].
func parseFraction(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 1 {
		return 0, false
	}
	return v, true
}

// Empty reports whether the catalog holds no stations.
func (c *Catalog) Empty() bool { return len(c.ordered) == 0 }

// Len returns the number of stations.
func (c *Catalog) Len() int { return len(c.ordered) }

// Lookup finds a station by normalized key.
func (c *Catalog) Lookup(key string) (Station, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// Names returns all display names sorted alphabetically. The returned slice
// is shared; callers must not mutate it.
func (c *Catalog) Names() []string { return c.names }

// Stations returns every station in insertion (load) order. This order is
// the documented tie-break for fallback name resolution.
func (c *Catalog) Stations() []Station { return c.ordered }
