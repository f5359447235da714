package process

import "carddex/internal/cards"

// Aggregate accumulates per-set results into the cross-set databases. Key
// collisions across sets are not expected but must not fail: later sets
// overwrite earlier entries.
type Aggregate struct {
	Regular *cards.Collection
	Promo   *cards.Collection
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Regular: cards.NewCollection(),
		Promo:   cards.NewCollection(),
	}
}

// Add merges a set's sorted collections into the aggregate.
func (a *Aggregate) Add(result *Result) {
	if result == nil {
		return
	}
	a.Regular.Merge(result.Regular)
	a.Promo.Merge(result.Promo)
}

// Sort orders both aggregate collections by the numeric card-number rule.
func (a *Aggregate) Sort(stripTokens []string) {
	a.Regular.Sort(stripTokens)
	a.Promo.Sort(stripTokens)
}
