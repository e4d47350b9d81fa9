// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shipping-service/config"
	"github.com/guttosm/shipping-service/internal/circuitbreaker"
	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/repository"
	"github.com/guttosm/shipping-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	TiersRepo            repository.TiersRepositoryInterface
	QuotesRepo           repository.QuotesRepositoryInterface
	LoggingService       service.LoggingService
	TiersCircuitBreaker  *circuitbreaker.CircuitBreaker
	QuotesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	tiersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-tiers",
	})

	quotesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-quotes",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	tiersRepo := repository.NewTiersRepository(db)
	tiersRepoWithCB := repository.NewTiersRepositoryWithCircuitBreaker(tiersRepo, tiersCB)

	quotesRepo := repository.NewQuotesRepository(db)
	quotesRepoWithCB := repository.NewQuotesRepositoryWithCircuitBreaker(quotesRepo, quotesCB)

	// Initialize default tier catalog if none exists
	if err := initializeDefaultTiers(tiersRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default tier catalog")
	}

	return &DatabaseComponents{
		TiersRepo:            tiersRepoWithCB,
		QuotesRepo:           quotesRepoWithCB,
		LoggingService:       loggingService,
		TiersCircuitBreaker:  tiersCB,
		QuotesCircuitBreaker: quotesCB,
		LogsCircuitBreaker:   logsCB,
	}
}

// initializeDefaultTiers creates the built-in tier catalog if none exists.
func initializeDefaultTiers(repo repository.TiersRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		// No active catalog, create the built-in one
		docs := repository.TierDocumentsFromModels(model.DefaultTiers())
		_, err := repo.Create(ctx, docs, "system")
		if err != nil {
			return err
		}
		log.Info().Int("tier_count", len(docs)).Msg("Created default tier catalog")
	}

	return nil
}
