package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/shipping-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// TiersService provides tier catalog operations.
type TiersService interface {
	GetActive(ctx context.Context) (*repository.TierConfig, error)
	Create(ctx context.Context, tiers []repository.TierDocument, createdBy string) (*repository.TierConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, tiers []repository.TierDocument, updatedBy string) (*repository.TierConfig, error)
	List(ctx context.Context, limit int) ([]repository.TierConfig, error)
}

// TiersServiceImpl implements TiersService.
type TiersServiceImpl struct {
	tiersRepo repository.TiersRepositoryInterface
}

// NewTiersService creates a new tier catalog service.
func NewTiersService(tiersRepo repository.TiersRepositoryInterface) TiersService {
	if tiersRepo == nil {
		return &TiersServiceImpl{}
	}
	return &TiersServiceImpl{
		tiersRepo: tiersRepo,
	}
}

func (s *TiersServiceImpl) GetActive(ctx context.Context) (*repository.TierConfig, error) {
	if s.tiersRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.tiersRepo.GetActive(ctx)
}

func (s *TiersServiceImpl) Create(ctx context.Context, tiers []repository.TierDocument, createdBy string) (*repository.TierConfig, error) {
	if s.tiersRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.tiersRepo.Create(ctx, tiers, createdBy)
}

func (s *TiersServiceImpl) Update(ctx context.Context, id primitive.ObjectID, tiers []repository.TierDocument, updatedBy string) (*repository.TierConfig, error) {
	if s.tiersRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.tiersRepo.Update(ctx, id, tiers, updatedBy)
}

func (s *TiersServiceImpl) List(ctx context.Context, limit int) ([]repository.TierConfig, error) {
	if s.tiersRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.tiersRepo.List(ctx, limit)
}
