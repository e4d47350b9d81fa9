// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/shipping-service/internal/repository"
)

type MockTiersRepositoryInterface struct {
	mock.Mock
}

func (m *MockTiersRepositoryInterface) GetActive(ctx context.Context) (*repository.TierConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TierConfig), args.Error(1)
}

func (m *MockTiersRepositoryInterface) Create(ctx context.Context, tiers []repository.TierDocument, createdBy string) (*repository.TierConfig, error) {
	args := m.Called(ctx, tiers, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TierConfig), args.Error(1)
}

func (m *MockTiersRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, tiers []repository.TierDocument, updatedBy string) (*repository.TierConfig, error) {
	args := m.Called(ctx, id, tiers, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TierConfig), args.Error(1)
}

func (m *MockTiersRepositoryInterface) List(ctx context.Context, limit int) ([]repository.TierConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TierConfig), args.Error(1)
}
