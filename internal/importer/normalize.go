package importer

import "strings"

// NormalizeHeader canonicalizes a raw column header for fuzzy matching
// against a user mapping. Source files arrive with BOM artifacts,
// stray carriage returns, non-breaking spaces, and human-entered
// variants ("Price Per Month", "price_per_month", " price.per.month ");
// all of them must normalize to the same string.
//
// Steps: strip BOM, strip CR, NBSP to space, trim, lowercase, drop
// parentheses and periods, collapse whitespace runs to a single
// underscore. Pure and total: empty input returns "".
func NormalizeHeader(header string) string {
	s := strings.ReplaceAll(header, "\uFEFF", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '.':
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), "_")
}
