//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/mocks"
	"github.com/guttosm/shipping-service/internal/repository"
)

func TestInitializeDefaultTiers(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockTiersRepositoryInterface)
		wantError bool
	}{
		{
			name: "no active catalog creates built-in tiers",
			setupMock: func(m *mocks.MockTiersRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				cfg := &repository.TierConfig{
					ID:     primitive.NewObjectID(),
					Tiers:  repository.TierDocumentsFromModels(model.DefaultTiers()),
					Active: true,
				}
				m.On("Create", mock.Anything, mock.Anything, "system").Return(cfg, nil).Once()
			},
			wantError: false,
		},
		{
			name: "active catalog exists skips creation",
			setupMock: func(m *mocks.MockTiersRepositoryInterface) {
				active := &repository.TierConfig{
					ID:     primitive.NewObjectID(),
					Tiers:  repository.TierDocumentsFromModels(model.DefaultTiers()),
					Active: true,
				}
				m.On("GetActive", mock.Anything).Return(active, nil).Once()
			},
			wantError: false,
		},
		{
			name: "get active error",
			setupMock: func(m *mocks.MockTiersRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name: "create error",
			setupMock: func(m *mocks.MockTiersRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.Anything, "system").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockTiersRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := initializeDefaultTiers(mockRepo)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
