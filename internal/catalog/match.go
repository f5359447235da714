package catalog

import "carddex/internal/imghash"

// Match is the nearest catalog entry for a query fingerprint.
type Match struct {
	Entry    Entry
	Distance int
}

// Match scans the catalog for the entry of the query's promo class with the
// minimum Hamming distance to fp. Ties keep the first-encountered entry.
// The second return value is false when no entry of the class exists or the
// best distance exceeds maxDistance; the best candidate is still returned
// for diagnostics.
func (c *Catalog) Match(fp imghash.Fingerprint, promo bool, maxDistance int) (Match, bool) {
	best := Match{Distance: imghash.Bits + 1}
	found := false
	for _, entry := range c.entries {
		if entry.Promo != promo {
			continue
		}
		distance := fp.Distance(entry.Fingerprint)
		if distance < best.Distance {
			best = Match{Entry: entry, Distance: distance}
			found = true
		}
	}
	if !found || best.Distance > maxDistance {
		return best, false
	}
	return best, true
}
