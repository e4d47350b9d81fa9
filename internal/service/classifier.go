// Package service contains the business logic for the shipping service.
package service

import (
	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/samber/lo"
)

// Classifier selects a box/satchel tier for a single item, or reports the
// item as oversized. Classification is a pure, deterministic lookup.
type Classifier interface {
	// Classify returns the smallest tier of the given service class that
	// fits the item. The second return is false when no tier fits.
	Classify(item model.Item, level model.ServiceClass) (model.Tier, bool)

	// Tiers returns the catalog, ordered smallest first.
	Tiers() []model.Tier
}

// TierClassifier implements Classifier over an immutable, ordered tier
// catalog. The catalog is read-only reference data, safe to share across
// concurrent estimates.
type TierClassifier struct {
	tiers []model.Tier
}

// NewTierClassifier creates a classifier over a copy of the given catalog,
// sorted smallest first. A nil or empty catalog falls back to the
// compiled-in defaults.
func NewTierClassifier(tiers []model.Tier) *TierClassifier {
	if len(tiers) == 0 {
		tiers = model.DefaultTiers()
	}
	owned := make([]model.Tier, len(tiers))
	copy(owned, tiers)
	model.SortTiers(owned)
	return &TierClassifier{tiers: owned}
}

// Classify linear-scans the catalog in ascending size order and returns the
// first tier of the requested service class that fits. Both the item's and
// each tier's dimension triples are compared largest-to-largest, so rotated
// items classify identically.
func (c *TierClassifier) Classify(item model.Item, level model.ServiceClass) (model.Tier, bool) {
	if level == "" {
		level = model.ServiceRegular
	}
	for _, tier := range c.tiers {
		if tier.ServiceClass != level {
			continue
		}
		if tier.Fits(item) {
			return tier, true
		}
	}
	return model.Tier{}, false
}

// Tiers returns a copy of the catalog.
func (c *TierClassifier) Tiers() []model.Tier {
	out := make([]model.Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// TiersForLevel returns the catalog entries of one service class, ordered
// smallest first.
func (c *TierClassifier) TiersForLevel(level model.ServiceClass) []model.Tier {
	return lo.Filter(c.tiers, func(t model.Tier, _ int) bool {
		return t.ServiceClass == level
	})
}
