package catalog

import "carddex/internal/imghash"

// Entry is one online card with its fingerprint and pack-appearance facts.
// PackURL is set only for pack-specific cards.
type Entry struct {
	URL          string
	ImageURL     string
	Fingerprint  imghash.Fingerprint
	Promo        bool
	PackURL      string
	PackSpecific bool
}

// Catalog holds the entries for one set-processing run, in build order:
// regular cards in first-seen page order, then the promo pool.
type Catalog struct {
	entries []Entry
}

// Add appends an entry.
func (c *Catalog) Add(entry Entry) {
	c.entries = append(c.entries, entry)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in build order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}
