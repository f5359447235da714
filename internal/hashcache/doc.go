// Package hashcache persists fingerprints of online card thumbnails in a
// SQLite database keyed by image URL, so repeated runs skip refetching
// thumbnails that have not changed. The cache is best-effort: it can be
// disabled, and lookup or store failures degrade to a fetch, never an
// aborted run.
package hashcache
