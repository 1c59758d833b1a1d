package spp

import "strings"

// columnSpec declares how one canonical field resolves against a CSV
// header: either an exact (case-insensitive, trimmed) alias match, or a
// substring match when substring is non-empty. Lifting the resolution
// into a declarative table keeps every loader on one code path instead
// of repeating inline header scans.
type columnSpec struct {
	canon     string
	aliases   []string
	substring string
}

// Alias tables per instance file. Matching is case-insensitive on
// trimmed, BOM-stripped header cells; when several headers match the
// same spec, the last one wins (mirrors sequential header scanning).
var (
	legsSchema = []columnSpec{
		{canon: "leg", aliases: []string{"leg_id", "leg"}},
	}

	pairingsSchema = []columnSpec{
		{canon: "index", aliases: []string{"pairing_index", "index"}},
		{canon: "id", aliases: []string{"pairing_id", "id"}},
		{canon: "base", aliases: []string{"base"}},
		{canon: "legs", aliases: []string{"legs_semicolon", "legs", "legs_list"}},
	}

	incidenceSchema = []columnSpec{
		{canon: "leg", aliases: []string{"leg_index", "leg"}},
		{canon: "pairing", aliases: []string{"pairing_index", "pairing"}},
	}

	costsSchema = []columnSpec{
		{canon: "index", aliases: []string{"pairing_index", "index"}},
		{canon: "id", aliases: []string{"pairing_id", "id"}},
		{canon: "cost", substring: "cost"},
	}
)

// resolveColumns maps canonical field names to header positions.
// Unmatched fields are simply absent from the result; each loader
// decides which absences are fatal.
//
// Complexity: O(len(header) · len(schema)).
func resolveColumns(header []string, schema []columnSpec) map[string]int {
	out := make(map[string]int, len(schema))
	for pos, h := range header {
		low := normalizeHeader(h)
		for _, spec := range schema {
			if spec.matches(low) {
				out[spec.canon] = pos
			}
		}
	}

	return out
}

// matches reports whether a normalized header cell satisfies the spec.
func (s columnSpec) matches(low string) bool {
	if s.substring != "" {
		return strings.Contains(low, s.substring)
	}
	for _, a := range s.aliases {
		if low == a {
			return true
		}
	}

	return false
}

// normalizeHeader trims whitespace, strips a UTF-8 BOM if present
// (spreadsheet exports routinely carry one on the first cell) and
// lowercases the header name.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}
