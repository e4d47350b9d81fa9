package service

import (
	"errors"
	"sort"

	"github.com/guttosm/shipping-service/internal/carrier"
	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/samber/lo"
)

// ErrAllCarriersUnavailable is returned when no usable quote exists, either
// because every carrier failed or because filtering removed every quote.
// It is distinct from oversized and must never degrade to zero-cost
// shipping.
var ErrAllCarriersUnavailable = errors.New("no usable quote from any carrier")

// Comparator ranks carrier quotes and selects the cheapest.
type Comparator interface {
	// Select applies the filter, ranks the remaining quotes cheapest first,
	// and returns the winner plus the full ranking. An empty result set
	// returns ErrAllCarriersUnavailable.
	Select(quotes []model.Quote, filter *carrier.Filter) (model.Quote, []model.Quote, error)
}

// PriceComparator implements Comparator: rank by price ascending, ties
// broken by shortest minimum ETA, then carrier name lexical order so the
// result is deterministic.
type PriceComparator struct{}

// NewPriceComparator creates a new PriceComparator.
func NewPriceComparator() *PriceComparator {
	return &PriceComparator{}
}

// Select implements Comparator. Filtering always happens before ranking;
// filtering to an empty set is equivalent to every carrier being
// unavailable.
func (c *PriceComparator) Select(quotes []model.Quote, filter *carrier.Filter) (model.Quote, []model.Quote, error) {
	usable := lo.Filter(quotes, func(q model.Quote, _ int) bool {
		return filter.AllowsCarrier(q.Carrier) && filter.AllowsLevel(q.ServiceLevel)
	})
	if len(usable) == 0 {
		return model.Quote{}, nil, ErrAllCarriersUnavailable
	}

	ranked := make([]model.Quote, len(usable))
	copy(ranked, usable)
	sort.SliceStable(ranked, func(i, j int) bool {
		if cmp := ranked[i].Price.Cmp(ranked[j].Price); cmp != 0 {
			return cmp < 0
		}
		if ranked[i].ETAMinDays != ranked[j].ETAMinDays {
			return ranked[i].ETAMinDays < ranked[j].ETAMinDays
		}
		return ranked[i].Carrier < ranked[j].Carrier
	})

	return ranked[0], ranked, nil
}
