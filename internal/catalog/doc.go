// Package catalog builds the in-memory catalog of a set's online cards and
// matches local fingerprints against it.
//
// A build scans every pack listing of the set first, so pack specificity is
// decided by a card's global appearance count, then fingerprints each
// distinct card thumbnail once and appends the promo pool as a separate
// match class. Matching is a linear nearest-neighbour scan under a Hamming
// distance threshold, partitioned by promo class.
package catalog
