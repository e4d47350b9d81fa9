package service

import (
	"context"

	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/repository"
)

// QuotesService records resolved estimates for reporting.
type QuotesService interface {
	RecordSelected(ctx context.Context, estimate model.Estimate, req model.ShipmentRequest) error
	Query(ctx context.Context, opts repository.QuoteQueryOptions) ([]*repository.SelectedQuoteDocument, error)
}

// QuotesServiceImpl implements QuotesService.
type QuotesServiceImpl struct {
	quotesRepo repository.QuotesRepositoryInterface
}

// NewQuotesService creates a new quotes service.
func NewQuotesService(quotesRepo repository.QuotesRepositoryInterface) QuotesService {
	return &QuotesServiceImpl{
		quotesRepo: quotesRepo,
	}
}

// RecordSelected stores the selected quote of a resolved estimate.
func (s *QuotesServiceImpl) RecordSelected(ctx context.Context, estimate model.Estimate, req model.ShipmentRequest) error {
	if s.quotesRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if estimate.Selected == nil || estimate.Breakdown == nil {
		return nil
	}

	doc := &repository.SelectedQuoteDocument{
		EstimateID:     estimate.ID,
		Carrier:        estimate.Selected.Carrier,
		Service:        estimate.Selected.Service,
		OriginPostcode: req.OriginPostcode,
		DestPostcode:   req.DestPostcode,
		ParcelCount:    req.ParcelCount(),
		Postage:        estimate.Breakdown.Postage.StringFixed(2),
		Packaging:      estimate.Breakdown.Packaging.StringFixed(2),
		GST:            estimate.Breakdown.GST.StringFixed(2),
		Total:          estimate.Breakdown.Total.StringFixed(2),
		Currency:       estimate.Breakdown.Currency,
		ETAMinDays:     estimate.Selected.ETAMinDays,
		ETAMaxDays:     estimate.Selected.ETAMaxDays,
	}
	return s.quotesRepo.Create(ctx, doc)
}

// Query returns stored selected quotes matching the filter.
func (s *QuotesServiceImpl) Query(ctx context.Context, opts repository.QuoteQueryOptions) ([]*repository.SelectedQuoteDocument, error) {
	if s.quotesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.quotesRepo.Query(ctx, opts)
}
