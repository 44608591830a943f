package importer

import (
	"strconv"
	"strings"
)

// syntheticIDSep separates the key parts. The system this replaces
// concatenated them bare, so "AB"+"C" and "A"+"BC" collided; the
// delimiter removes that ambiguity.
const syntheticIDSep = "|"

// SyntheticID derives a stable fallback key from customer id, ship
// address, and the LMI revenue attribute. It exists so that repeated
// imports of the same physical row merge instead of duplicating when
// the source data has no natural unique id.
//
// All three parts must be present (a zero revLmi counts as absent);
// otherwise ok is false and the record keeps an empty key.
// Deterministic: identical inputs always produce the identical key.
func SyntheticID(idCustomer, shipAddress string, revLmi int64) (string, bool) {
	id := strings.TrimSpace(idCustomer)
	addr := strings.TrimSpace(shipAddress)
	if id == "" || addr == "" || revLmi == 0 {
		return "", false
	}
	return id + syntheticIDSep + addr + syntheticIDSep + strconv.FormatInt(revLmi, 10), true
}
