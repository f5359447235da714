// Package cards owns the card record model and the pure derivation logic
// around it: local filename key and class parsing, metadata derivation from
// a matched catalog entry, numeric card-number sorting, and the ordered JSON
// collection the database files are written from.
package cards
