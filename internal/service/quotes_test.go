//go:build !integration

package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/mocks"
	"github.com/guttosm/shipping-service/internal/repository"
)

func selectedEstimate() model.Estimate {
	selected := model.Quote{
		Carrier:    "Interparcel",
		Service:    "Standard",
		Price:      decimal.NewFromFloat(9.50),
		Currency:   "AUD",
		ETAMinDays: 3,
		ETAMaxDays: 7,
	}
	breakdown := model.NewCostBreakdown(selected.Price, decimal.NewFromFloat(1.50), "AUD")
	return model.Estimate{
		ID:        "est-123",
		Status:    model.StatusQuoteSelected,
		Selected:  &selected,
		Breakdown: &breakdown,
	}
}

func TestQuotesService_RecordSelected(t *testing.T) {
	mockRepo := new(mocks.MockQuotesRepositoryInterface)
	mockRepo.Test(t)

	var captured *repository.SelectedQuoteDocument
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.SelectedQuoteDocument")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*repository.SelectedQuoteDocument)
		}).
		Return(nil).Once()

	svc := NewQuotesService(mockRepo)
	req := model.ShipmentRequest{
		OriginPostcode: "3220",
		DestPostcode:   "2000",
		Items:          []model.Item{{WeightKg: 0.3, LengthCm: 15, WidthCm: 8, HeightCm: 4, Quantity: 2}},
	}

	err := svc.RecordSelected(context.Background(), selectedEstimate(), req)
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "est-123", captured.EstimateID)
	assert.Equal(t, "Interparcel", captured.Carrier)
	assert.Equal(t, "3220", captured.OriginPostcode)
	assert.Equal(t, "2000", captured.DestPostcode)
	assert.Equal(t, 2, captured.ParcelCount)
	assert.Equal(t, "9.50", captured.Postage)
	assert.Equal(t, "1.50", captured.Packaging)
	assert.Equal(t, "11.00", captured.Total)
	assert.Equal(t, "1.00", captured.GST)
	assert.Equal(t, "AUD", captured.Currency)
	mockRepo.AssertExpectations(t)
}

func TestQuotesService_RecordSelected_SkipsNonSelected(t *testing.T) {
	mockRepo := new(mocks.MockQuotesRepositoryInterface)
	mockRepo.Test(t)

	svc := NewQuotesService(mockRepo)
	estimate := model.Estimate{ID: "est-1", Status: model.StatusAllCarriersUnavailable}

	err := svc.RecordSelected(context.Background(), estimate, model.ShipmentRequest{})
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestQuotesService_RecordSelected_NilRepository(t *testing.T) {
	svc := NewQuotesService(nil)
	err := svc.RecordSelected(context.Background(), selectedEstimate(), model.ShipmentRequest{})
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestQuotesService_Query(t *testing.T) {
	mockRepo := new(mocks.MockQuotesRepositoryInterface)
	mockRepo.Test(t)

	want := []*repository.SelectedQuoteDocument{{EstimateID: "est-1"}}
	opts := repository.QuoteQueryOptions{Carrier: "Interparcel", Limit: 10}
	mockRepo.On("Query", mock.Anything, opts).Return(want, nil).Once()

	svc := NewQuotesService(mockRepo)
	got, err := svc.Query(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	mockRepo.AssertExpectations(t)
}
