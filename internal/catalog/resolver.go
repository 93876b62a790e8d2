// internal/catalog/resolver.go
//
// Free-text guess resolution and autocomplete over the catalog.
// Responsibilities:
//   - Alias substitution for common misspellings/shorthands.
//   - Exact lookup by normalized key, with a documented O(n) fallback scan.
//   - Prefix suggestions for the typeahead box.
//   - Line-overlap queries used for the same-line hint.
//
// The fallback scan compares the query against each station's normalized
// display name and its cleaned-name variant, in catalog insertion order.
// That order is the deterministic tie-break; it is part of the contract,
// not an accident of map iteration.

package catalog

import (
	"sort"
	"strings"
)

// aliases maps the normalized form of an input to the canonical display
// name the player meant. Keys must already be in Normalize form.
var aliases = map[string]string{
	"towerhamlets":        "Tower Hill",
	"stpauls":             "St Pauls",
	"kingscross":          "Kings Cross St. Pancras",
	"kingscrossstpancras": "Kings Cross St. Pancras",
	"tottenhamcrtrd":      "Tottenham Court Road",
	"tottenhamcourtrd":    "Tottenham Court Road",
}

// AliasName substitutes a known alias for q, or returns q unchanged.
func AliasName(q string) string {
	if canon, ok := aliases[Normalize(q)]; ok {
		return canon
	}
	return q
}

// Resolve matches free text against the catalog.
//
// Steps: alias substitution, normalization, exact key hit, then a linear
// fallback over stations in insertion order. Blank input never matches.
// The bool result is false when nothing matched; that is a normal outcome,
// not an error.
func (c *Catalog) Resolve(raw string) (Station, bool) {
	q := AliasName(raw)
	nq := Normalize(q)
	if nq == "" {
		return Station{}, false
	}
	if s, ok := c.byKey[nq]; ok {
		return s, true
	}
	for _, s := range c.ordered {
		if Normalize(s.Name) == nq || Normalize(CleanDisplay(s.Name)) == nq {
			return s, true
		}
	}
	return Station{}, false
}

// PrefixSuggestions returns up to limit display names that start with the
// typed text, case-insensitively, sorted case-insensitively. Empty input
// yields nothing; suggesting the whole catalog for an empty box is worse
// than suggesting nothing.
func PrefixSuggestions(raw string, names []string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(raw))
	if q == "" || limit <= 0 {
		return nil
	}
	var matches []string
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), q) {
			matches = append(matches, n)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return strings.ToLower(matches[i]) < strings.ToLower(matches[j])
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// SameLine reports whether two stations share at least one line.
func SameLine(a, b Station) bool { return len(OverlappingLines(a, b)) > 0 }

// OverlappingLines returns the sorted intersection of two stations' lines.
func OverlappingLines(a, b Station) []string {
	set := make(map[string]struct{}, len(a.Lines))
	for _, l := range a.Lines {
		set[l] = struct{}{}
	}
	var out []string
	for _, l := range b.Lines {
		if _, ok := set[l]; ok {
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
