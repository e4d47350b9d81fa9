// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/shipping-service/internal/circuitbreaker"
)

// TiersRepositoryWithCircuitBreaker wraps TiersRepository with circuit breaker protection.
type TiersRepositoryWithCircuitBreaker struct {
	repo           *TiersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTiersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTiersRepositoryWithCircuitBreaker(repo *TiersRepository, cb *circuitbreaker.CircuitBreaker) *TiersRepositoryWithCircuitBreaker {
	return &TiersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active tier catalog with circuit breaker protection.
func (r *TiersRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*TierConfig, error) {
	var result *TierConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil to use the built-in catalog
		return nil, nil
	}
	return result, err
}

// Create stores a new tier catalog with circuit breaker protection.
func (r *TiersRepositoryWithCircuitBreaker) Create(ctx context.Context, tiers []TierDocument, createdBy string) (*TierConfig, error) {
	var result *TierConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, tiers, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing tier catalog with circuit breaker protection.
func (r *TiersRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, tiers []TierDocument, updatedBy string) (*TierConfig, error) {
	var result *TierConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, tiers, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns tier catalog history with circuit breaker protection.
func (r *TiersRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]TierConfig, error) {
	var result []TierConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TiersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// QuotesRepositoryWithCircuitBreaker wraps QuotesRepository with circuit breaker protection.
type QuotesRepositoryWithCircuitBreaker struct {
	repo           *QuotesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewQuotesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewQuotesRepositoryWithCircuitBreaker(repo *QuotesRepository, cb *circuitbreaker.CircuitBreaker) *QuotesRepositoryWithCircuitBreaker {
	return &QuotesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a selected quote with circuit breaker protection.
// If circuit is open, silently fails (quote persistence is non-critical).
func (r *QuotesRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *SelectedQuoteDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (quote persistence is non-critical)
		return nil
	}
	return err
}

// Query retrieves selected quotes with circuit breaker protection.
func (r *QuotesRepositoryWithCircuitBreaker) Query(ctx context.Context, opts QuoteQueryOptions) ([]*SelectedQuoteDocument, error) {
	var result []*SelectedQuoteDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of selected quotes with circuit breaker protection.
func (r *QuotesRepositoryWithCircuitBreaker) Count(ctx context.Context, opts QuoteQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *QuotesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
