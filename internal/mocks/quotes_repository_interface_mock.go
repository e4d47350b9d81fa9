// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/shipping-service/internal/repository"
)

type MockQuotesRepositoryInterface struct {
	mock.Mock
}

func (m *MockQuotesRepositoryInterface) Create(ctx context.Context, doc *repository.SelectedQuoteDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockQuotesRepositoryInterface) Query(ctx context.Context, opts repository.QuoteQueryOptions) ([]*repository.SelectedQuoteDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.SelectedQuoteDocument), args.Error(1)
}

func (m *MockQuotesRepositoryInterface) Count(ctx context.Context, opts repository.QuoteQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
