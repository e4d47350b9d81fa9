//go:build !integration

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shipping-service/internal/carrier"
	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/i18n"
)

// stubCarrier is a canned-response carrier client for resolver tests.
type stubCarrier struct {
	name   string
	quotes []model.Quote
	err    error
	calls  atomic.Int64
	delay  time.Duration
}

func (s *stubCarrier) Name() string { return s.name }

func (s *stubCarrier) ValidatePostcode(postcode string) error {
	if len(postcode) != 4 {
		return fmt.Errorf("%w: %q", model.ErrInvalidPostcode, postcode)
	}
	return nil
}

func (s *stubCarrier) GetQuotes(ctx context.Context, req carrier.Request, filter *carrier.Filter) ([]model.Quote, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, carrier.Unavailable(s.name, ctx.Err())
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.quotes, nil
}

func stubQuote(carrierName string, price float64, etaMin int) model.Quote {
	return model.Quote{
		Carrier:      carrierName,
		Service:      "Standard",
		Price:        decimal.NewFromFloat(price),
		Currency:     "AUD",
		ETAMinDays:   etaMin,
		ETAMaxDays:   etaMin + 2,
		ServiceLevel: model.ServiceRegular,
	}
}

func smallItemRequest() model.ShipmentRequest {
	return model.ShipmentRequest{
		OriginPostcode: "3220",
		DestPostcode:   "2000",
		Items: []model.Item{
			{WeightKg: 0.3, LengthCm: 15, WidthCm: 8, HeightCm: 4, Quantity: 1},
		},
	}
}

func TestRateResolver_Estimate_SelectsCheapest(t *testing.T) {
	auspost := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	interparcel := &stubCarrier{name: "Interparcel", quotes: []model.Quote{stubQuote("Interparcel", 9.50, 3)}}

	resolver := NewRateResolver(WithCarriers(auspost, interparcel))

	estimate, err := resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusQuoteSelected, estimate.Status)
	require.NotNil(t, estimate.Selected)
	assert.Equal(t, "Interparcel", estimate.Selected.Carrier)
	assert.True(t, estimate.Selected.Price.Equal(decimal.NewFromFloat(9.50)))
	assert.Len(t, estimate.Quotes, 2)
	assert.NotEmpty(t, estimate.ID)
}

func TestRateResolver_Estimate_Breakdown(t *testing.T) {
	auspost := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(WithCarriers(auspost))

	estimate, err := resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)
	require.NotNil(t, estimate.Breakdown)

	// Smallest regular satchel costs 0.75; total = 13.40 + 0.75.
	assert.Equal(t, "13.40", estimate.Breakdown.Postage.StringFixed(2))
	assert.Equal(t, "0.75", estimate.Breakdown.Packaging.StringFixed(2))
	assert.Equal(t, "14.15", estimate.Breakdown.Total.StringFixed(2))
	// GST is one eleventh of the GST-inclusive total.
	assert.Equal(t, "1.29", estimate.Breakdown.GST.StringFixed(2))
	assert.Equal(t, "AUD", estimate.Breakdown.Currency)
}

func TestRateResolver_Estimate_OneCarrierDownCheapestStillWins(t *testing.T) {
	down := &stubCarrier{name: "Australia Post", err: carrier.Unavailable("Australia Post", context.DeadlineExceeded)}
	up := &stubCarrier{name: "Interparcel", quotes: []model.Quote{stubQuote("Interparcel", 9.50, 3)}}

	resolver := NewRateResolver(WithCarriers(down, up))

	estimate, err := resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusQuoteSelected, estimate.Status)
	require.NotNil(t, estimate.Selected)
	assert.Equal(t, "Interparcel", estimate.Selected.Carrier)
	assert.True(t, estimate.Selected.Price.Equal(decimal.NewFromFloat(9.50)))
}

func TestRateResolver_Estimate_AllCarriersDown(t *testing.T) {
	down1 := &stubCarrier{name: "Australia Post", err: carrier.Unavailable("Australia Post", context.DeadlineExceeded)}
	down2 := &stubCarrier{name: "Interparcel", err: carrier.Unavailable("Interparcel", context.DeadlineExceeded)}

	resolver := NewRateResolver(WithCarriers(down1, down2))

	estimate, err := resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusAllCarriersUnavailable, estimate.Status)
	// The retry message comes from the translator.
	assert.Equal(t, i18n.GetTranslator().Translate(i18n.ErrKeyCarriersUnavailable, i18n.DefaultLocale), estimate.Message)
	assert.Contains(t, estimate.Message, "try again")
	// Never a zero-cost fallback.
	assert.Nil(t, estimate.Selected)
	assert.Nil(t, estimate.Breakdown)
}

func TestRateResolver_Estimate_Oversized(t *testing.T) {
	notCalled := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(
		WithCarriers(notCalled),
		WithContactPhone("03 5555 1234"),
	)

	req := model.ShipmentRequest{
		OriginPostcode: "3220",
		DestPostcode:   "2000",
		Items: []model.Item{
			{WeightKg: 50, LengthCm: 200, WidthCm: 40, HeightCm: 40, Quantity: 1},
		},
	}

	estimate, err := resolver.Estimate(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusOversized, estimate.Status)
	assert.Contains(t, estimate.Message, i18n.GetTranslator().Translate(i18n.ErrKeyOversized, i18n.DefaultLocale))
	assert.Contains(t, estimate.Message, "03 5555 1234")
	assert.Nil(t, estimate.Selected)
	// No carrier is contacted for an oversized cart.
	assert.Equal(t, int64(0), notCalled.calls.Load())
}

func TestRateResolver_Estimate_MixedCartOversized(t *testing.T) {
	notCalled := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(WithCarriers(notCalled))

	// One classifiable item plus one oversized item: the whole cart is
	// oversized.
	req := model.ShipmentRequest{
		OriginPostcode: "3220",
		DestPostcode:   "2000",
		Items: []model.Item{
			{WeightKg: 0.3, LengthCm: 15, WidthCm: 8, HeightCm: 4, Quantity: 1},
			{WeightKg: 50, LengthCm: 200, WidthCm: 40, HeightCm: 40, Quantity: 1},
		},
	}

	estimate, err := resolver.Estimate(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOversized, estimate.Status)
	assert.Equal(t, int64(0), notCalled.calls.Load())
}

func TestRateResolver_Estimate_ValidationErrors(t *testing.T) {
	resolver := NewRateResolver()

	tests := []struct {
		name    string
		req     model.ShipmentRequest
		wantErr error
	}{
		{
			name:    "no items",
			req:     model.ShipmentRequest{OriginPostcode: "3220", DestPostcode: "2000"},
			wantErr: model.ErrNoItems,
		},
		{
			name: "zero weight",
			req: model.ShipmentRequest{
				OriginPostcode: "3220",
				DestPostcode:   "2000",
				Items:          []model.Item{{WeightKg: 0, LengthCm: 10, WidthCm: 10, HeightCm: 10, Quantity: 1}},
			},
			wantErr: model.ErrInvalidWeight,
		},
		{
			name: "negative dimension",
			req: model.ShipmentRequest{
				OriginPostcode: "3220",
				DestPostcode:   "2000",
				Items:          []model.Item{{WeightKg: 1, LengthCm: -10, WidthCm: 10, HeightCm: 10, Quantity: 1}},
			},
			wantErr: model.ErrInvalidDimensions,
		},
		{
			name: "zero quantity",
			req: model.ShipmentRequest{
				OriginPostcode: "3220",
				DestPostcode:   "2000",
				Items:          []model.Item{{WeightKg: 1, LengthCm: 10, WidthCm: 10, HeightCm: 10, Quantity: 0}},
			},
			wantErr: model.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Estimate(context.Background(), tt.req, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRateResolver_Estimate_InvalidPostcode(t *testing.T) {
	stub := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(WithCarriers(stub))

	tests := []struct {
		name   string
		mutate func(*model.ShipmentRequest)
	}{
		{"malformed destination", func(r *model.ShipmentRequest) { r.DestPostcode = "ABC" }},
		{"malformed origin", func(r *model.ShipmentRequest) { r.OriginPostcode = "32" }},
		{"empty destination", func(r *model.ShipmentRequest) { r.DestPostcode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := smallItemRequest()
			tt.mutate(&req)

			estimate, err := resolver.Estimate(context.Background(), req, nil)

			// A bad postcode is a validation error, never a carrier outage.
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidPostcode)
			assert.NotEqual(t, model.StatusAllCarriersUnavailable, estimate.Status)
		})
	}

	// Rejected before any carrier call.
	assert.Equal(t, int64(0), stub.calls.Load())
}

func TestRateResolver_Estimate_QuantityExpandsParcels(t *testing.T) {
	var gotParcels int
	capture := &captureCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}, parcels: &gotParcels}
	resolver := NewRateResolver(WithCarriers(capture))

	req := model.ShipmentRequest{
		OriginPostcode: "3220",
		DestPostcode:   "2000",
		Items: []model.Item{
			{WeightKg: 0.3, LengthCm: 15, WidthCm: 8, HeightCm: 4, Quantity: 3},
		},
	}

	estimate, err := resolver.Estimate(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusQuoteSelected, estimate.Status)
	assert.Equal(t, 3, gotParcels)

	// Packaging cost accrues per parcel: three satchels at 0.75.
	require.NotNil(t, estimate.Breakdown)
	assert.Equal(t, "2.25", estimate.Breakdown.Packaging.StringFixed(2))
}

// captureCarrier records the parcel count it was asked to quote.
type captureCarrier struct {
	name    string
	quotes  []model.Quote
	parcels *int
}

func (c *captureCarrier) Name() string                           { return c.name }
func (c *captureCarrier) ValidatePostcode(postcode string) error { return nil }

func (c *captureCarrier) GetQuotes(ctx context.Context, req carrier.Request, filter *carrier.Filter) ([]model.Quote, error) {
	*c.parcels = len(req.Parcels)
	return c.quotes, nil
}

func TestRateResolver_Estimate_CacheHit(t *testing.T) {
	stub := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(
		WithCarriers(stub),
		WithEstimateCache(10, time.Minute),
	)

	first, err := resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)
	second, err := resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), stub.calls.Load())
}

func TestRateResolver_Estimate_FilteredRequestsBypassCache(t *testing.T) {
	stub := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(
		WithCarriers(stub),
		WithEstimateCache(10, time.Minute),
	)

	filter := &carrier.Filter{Carriers: []string{"Australia Post"}}
	_, err := resolver.Estimate(context.Background(), smallItemRequest(), filter)
	require.NoError(t, err)
	_, err = resolver.Estimate(context.Background(), smallItemRequest(), filter)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stub.calls.Load())
}

func TestRateResolver_InvalidateCache(t *testing.T) {
	stub := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(
		WithCarriers(stub),
		WithEstimateCache(10, time.Minute),
	)

	_, err := resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)

	resolver.InvalidateCache()

	_, err = resolver.Estimate(context.Background(), smallItemRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stub.calls.Load())
}

func TestRateResolver_EstimateWithTiers(t *testing.T) {
	stub := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(WithCarriers(stub))

	// A catalog whose only tier is too small for the item.
	tiny := []model.Tier{{
		Code: "TINY", MaxWeightKg: 0.1, LengthCm: 5, WidthCm: 5, HeightCm: 5,
		ServiceClass: model.ServiceRegular, PackagingCost: decimal.NewFromFloat(0.50),
	}}

	estimate, err := resolver.EstimateWithTiers(context.Background(), smallItemRequest(), nil, tiny)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOversized, estimate.Status)

	// An empty catalog falls back to the configured one.
	estimate, err = resolver.EstimateWithTiers(context.Background(), smallItemRequest(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusQuoteSelected, estimate.Status)
}

func TestRateResolver_EstimateWithTiers_NeverCached(t *testing.T) {
	stub := &stubCarrier{name: "Australia Post", quotes: []model.Quote{stubQuote("Australia Post", 13.40, 2)}}
	resolver := NewRateResolver(
		WithCarriers(stub),
		WithEstimateCache(10, time.Minute),
	)

	tiers := model.DefaultTiers()
	_, err := resolver.EstimateWithTiers(context.Background(), smallItemRequest(), nil, tiers)
	require.NoError(t, err)
	_, err = resolver.EstimateWithTiers(context.Background(), smallItemRequest(), nil, tiers)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stub.calls.Load())
}

func TestRateResolver_Estimate_ExpressFilterUsesExpressTiers(t *testing.T) {
	stub := &stubCarrier{name: "Australia Post", quotes: []model.Quote{
		func() model.Quote {
			q := stubQuote("Australia Post", 19.90, 1)
			q.Service = "Express Post"
			q.ServiceLevel = model.ServiceExpress
			return q
		}(),
	}}
	resolver := NewRateResolver(WithCarriers(stub))

	filter := &carrier.Filter{ServiceLevel: model.ServiceExpress}
	estimate, err := resolver.Estimate(context.Background(), smallItemRequest(), filter)
	require.NoError(t, err)

	assert.Equal(t, model.StatusQuoteSelected, estimate.Status)
	require.NotNil(t, estimate.Selected)
	assert.Equal(t, model.ServiceExpress, estimate.Selected.ServiceLevel)
}
