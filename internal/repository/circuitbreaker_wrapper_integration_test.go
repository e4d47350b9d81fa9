//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shipping-service/internal/circuitbreaker"
	"github.com/guttosm/shipping-service/internal/domain/model"
)

func TestTiersRepositoryWithCircuitBreaker_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewTiersRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewTiersRepositoryWithCircuitBreaker(repo, cb)

	// Create initial catalog
	docs := TierDocumentsFromModels(model.DefaultTiers())
	config, err := wrappedRepo.Create(ctx, docs, "test-user")
	require.NoError(t, err)
	require.NotNil(t, config)

	// Update via circuit breaker wrapper
	updated := docs[:2]
	updatedConfig, err := wrappedRepo.Update(ctx, config.ID, updated, "test-updater")
	require.NoError(t, err)
	assert.NotNil(t, updatedConfig)
	assert.Len(t, updatedConfig.Tiers, 2)
	assert.Equal(t, config.Version+1, updatedConfig.Version)
}

func TestTiersRepositoryWithCircuitBreaker_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewTiersRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewTiersRepositoryWithCircuitBreaker(repo, cb)

	// Create some catalogs
	docs := TierDocumentsFromModels(model.DefaultTiers())
	_, _ = wrappedRepo.Create(ctx, docs, "user1")
	_, _ = wrappedRepo.Create(ctx, docs[:3], "user2")

	// List via circuit breaker wrapper
	configs, err := wrappedRepo.List(ctx, 10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(configs), 2)
}

func TestTiersRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewTiersRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewTiersRepositoryWithCircuitBreaker(repo, cb)

	// Get circuit breaker
	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	// Verify stats
	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}

func TestQuotesRepositoryWithCircuitBreaker_CreateAndQuery(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewQuotesRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewQuotesRepositoryWithCircuitBreaker(repo, cb)

	doc := &SelectedQuoteDocument{
		EstimateID:     "est-cb-1",
		Carrier:        "Australia Post",
		Service:        "Parcel Post",
		OriginPostcode: "3220",
		DestPostcode:   "2000",
		ParcelCount:    1,
		Postage:        "12.50",
		Packaging:      "1.50",
		GST:            "1.27",
		Total:          "14.00",
		Currency:       "AUD",
		ETAMinDays:     2,
		ETAMaxDays:     4,
	}

	err := wrappedRepo.Create(ctx, doc)
	require.NoError(t, err)

	quotes, err := wrappedRepo.Query(ctx, QuoteQueryOptions{EstimateID: "est-cb-1"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "14.00", quotes[0].Total)

	count, err := wrappedRepo.Count(ctx, QuoteQueryOptions{EstimateID: "est-cb-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLogsRepositoryWithCircuitBreaker_CreateMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	entries := []*LogEntryDocument{
		{
			Level:     "info",
			Message:   "Entry 1",
			RequestID: "req-1",
			Timestamp: time.Now(),
		},
		{
			Level:     "error",
			Message:   "Entry 2",
			RequestID: "req-2",
			Timestamp: time.Now(),
		},
	}

	err := wrappedRepo.CreateMany(ctx, entries)
	assert.NoError(t, err)
}

func TestLogsRepositoryWithCircuitBreaker_Query(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	entry := &LogEntryDocument{
		Level:     "info",
		Message:   "Test query",
		RequestID: "query-test-id",
		Timestamp: time.Now(),
	}
	_ = wrappedRepo.Create(ctx, entry)

	// Query via circuit breaker wrapper
	opts := LogQueryOptions{
		RequestID: "query-test-id",
	}
	entries, err := wrappedRepo.Query(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 1)
}

func TestLogsRepositoryWithCircuitBreaker_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "info",
		Message:   "Count test 1",
		Timestamp: time.Now(),
	})
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "error",
		Message:   "Count test 2",
		Timestamp: time.Now(),
	})

	// Count via circuit breaker wrapper
	count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(2))

	// Count with filter
	opts := LogQueryOptions{
		Level: "info",
	}
	countFiltered, err := wrappedRepo.Count(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countFiltered, int64(1))
}

func TestLogsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Get circuit breaker
	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	// Verify stats
	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}
