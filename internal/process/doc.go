// Package process orchestrates a set-processing run: it builds the set's
// online catalog, fingerprints and matches every local image, derives card
// records, and merges per-set results into the cross-set databases.
//
// Failures follow a strict taxonomy. Configuration problems (unknown set,
// missing expansion mapping, missing asset folder) abort only the affected
// set. Per-item fetch, decode, or format problems skip that item with a
// typed reason carried on the run report. A best match above the distance
// threshold is an unmatched outcome, not an error. Nothing aborts a batch
// run over multiple sets.
package process
