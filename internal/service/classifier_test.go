//go:build !integration

package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shipping-service/internal/domain/model"
)

func TestTierClassifier_Classify(t *testing.T) {
	classifier := NewTierClassifier(nil)

	tests := []struct {
		name     string
		item     model.Item
		level    model.ServiceClass
		wantCode string
		wantOK   bool
	}{
		{
			name:     "small hinge fits the smallest satchel",
			item:     model.Item{WeightKg: 0.3, LengthCm: 15, WidthCm: 8, HeightCm: 4, Quantity: 1},
			level:    model.ServiceRegular,
			wantCode: "AUS_PARCEL_REGULAR_SATCHEL_500GMS",
			wantOK:   true,
		},
		{
			name:     "rotated item classifies the same as upright",
			item:     model.Item{WeightKg: 0.3, LengthCm: 4, WidthCm: 15, HeightCm: 8, Quantity: 1},
			level:    model.ServiceRegular,
			wantCode: "AUS_PARCEL_REGULAR_SATCHEL_500GMS",
			wantOK:   true,
		},
		{
			name:     "weight pushes past the 3kg satchel into the small box",
			item:     model.Item{WeightKg: 4.5, LengthCm: 20, WidthCm: 15, HeightCm: 10, Quantity: 1},
			level:    model.ServiceRegular,
			wantCode: "AUS_PARCEL_REGULAR_BOX_SMALL",
			wantOK:   true,
		},
		{
			name:     "heavy item lands in the large box",
			item:     model.Item{WeightKg: 14, LengthCm: 38, WidthCm: 28, HeightCm: 16, Quantity: 1},
			level:    model.ServiceRegular,
			wantCode: "AUS_PARCEL_REGULAR_BOX_LARGE",
			wantOK:   true,
		},
		{
			name:   "motor exceeding every tier is oversized",
			item:   model.Item{WeightKg: 50, LengthCm: 200, WidthCm: 40, HeightCm: 40, Quantity: 1},
			level:  model.ServiceRegular,
			wantOK: false,
		},
		{
			name:   "too long for any tier even though light",
			item:   model.Item{WeightKg: 0.2, LengthCm: 60, WidthCm: 5, HeightCm: 2, Quantity: 1},
			level:  model.ServiceRegular,
			wantOK: false,
		},
		{
			name:     "express class uses express tiers only",
			item:     model.Item{WeightKg: 0.3, LengthCm: 15, WidthCm: 8, HeightCm: 4, Quantity: 1},
			level:    model.ServiceExpress,
			wantCode: "AUS_PARCEL_EXPRESS_SATCHEL_500GMS",
			wantOK:   true,
		},
		{
			name:   "express class has no box tiers for heavy items",
			item:   model.Item{WeightKg: 14, LengthCm: 38, WidthCm: 28, HeightCm: 16, Quantity: 1},
			level:  model.ServiceExpress,
			wantOK: false,
		},
		{
			name:     "empty level defaults to regular",
			item:     model.Item{WeightKg: 0.3, LengthCm: 15, WidthCm: 8, HeightCm: 4, Quantity: 1},
			level:    "",
			wantCode: "AUS_PARCEL_REGULAR_SATCHEL_500GMS",
			wantOK:   true,
		},
		{
			name:     "exact boundary weight still fits",
			item:     model.Item{WeightKg: 0.5, LengthCm: 35.5, WidthCm: 22.5, HeightCm: 8, Quantity: 1},
			level:    model.ServiceRegular,
			wantCode: "AUS_PARCEL_REGULAR_SATCHEL_500GMS",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := classifier.Classify(tt.item, tt.level)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, tier.Code)
			}
		})
	}
}

func TestTierClassifier_SmallestTierWins(t *testing.T) {
	// Two tiers both fit; the classifier must return the smaller one
	// regardless of input order.
	big := model.Tier{
		Code: "BIG", MaxWeightKg: 10, LengthCm: 50, WidthCm: 40, HeightCm: 30,
		ServiceClass: model.ServiceRegular, PackagingCost: decimal.NewFromFloat(3),
	}
	small := model.Tier{
		Code: "SMALL", MaxWeightKg: 2, LengthCm: 20, WidthCm: 15, HeightCm: 10,
		ServiceClass: model.ServiceRegular, PackagingCost: decimal.NewFromFloat(1),
	}

	classifier := NewTierClassifier([]model.Tier{big, small})

	tier, ok := classifier.Classify(model.Item{WeightKg: 1, LengthCm: 10, WidthCm: 10, HeightCm: 5, Quantity: 1}, model.ServiceRegular)
	require.True(t, ok)
	assert.Equal(t, "SMALL", tier.Code)
}

func TestTierClassifier_EmptyCatalogFallsBack(t *testing.T) {
	classifier := NewTierClassifier([]model.Tier{})
	assert.Len(t, classifier.Tiers(), len(model.DefaultTiers()))
}

func TestTierClassifier_TiersReturnsCopy(t *testing.T) {
	classifier := NewTierClassifier(nil)
	tiers := classifier.Tiers()
	tiers[0].Code = "MUTATED"

	fresh := classifier.Tiers()
	assert.NotEqual(t, "MUTATED", fresh[0].Code)
}

func TestTierClassifier_TiersForLevel(t *testing.T) {
	classifier := NewTierClassifier(nil)

	regular := classifier.TiersForLevel(model.ServiceRegular)
	express := classifier.TiersForLevel(model.ServiceExpress)

	assert.NotEmpty(t, regular)
	assert.NotEmpty(t, express)
	for _, tier := range regular {
		assert.Equal(t, model.ServiceRegular, tier.ServiceClass)
	}
	for _, tier := range express {
		assert.Equal(t, model.ServiceExpress, tier.ServiceClass)
	}
}
