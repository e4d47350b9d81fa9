// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TiersRepositoryInterface defines the interface for tier catalog repository operations.
type TiersRepositoryInterface interface {
	GetActive(ctx context.Context) (*TierConfig, error)
	Create(ctx context.Context, tiers []TierDocument, createdBy string) (*TierConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, tiers []TierDocument, updatedBy string) (*TierConfig, error)
	List(ctx context.Context, limit int) ([]TierConfig, error)
}

// QuotesRepositoryInterface defines the interface for selected quote repository operations.
type QuotesRepositoryInterface interface {
	Create(ctx context.Context, doc *SelectedQuoteDocument) error
	Query(ctx context.Context, opts QuoteQueryOptions) ([]*SelectedQuoteDocument, error)
	Count(ctx context.Context, opts QuoteQueryOptions) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
