// Package sets carries the static card set configuration: expansion
// identifiers, sub-pack structure with suffix letters, rarity codes, and the
// declarative overrides for sets whose initials or short name do not follow
// the usual derivation.
//
// The tables are exposed as immutable values passed into the processing
// engine, so tests can inject synthetic libraries instead of relying on
// process-wide state.
package sets
