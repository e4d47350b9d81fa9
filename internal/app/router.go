// Package app provides router configuration.
package app

import (
	"strings"

	"github.com/guttosm/shipping-service/config"
	"github.com/guttosm/shipping-service/internal/http"
	"github.com/guttosm/shipping-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var tiersService service.TiersService
	var quotesService service.QuotesService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.TiersRepo != nil {
			tiersService = service.NewTiersService(dbComponents.TiersRepo)
		}
		if dbComponents.QuotesRepo != nil {
			quotesService = service.NewQuotesService(dbComponents.QuotesRepo)
		}
	}

	handler := http.NewHandler(
		serviceComponents.Resolver,
		tiersService,
		http.WithOriginPostcode(cfg.Shipping.OriginPostcode),
	)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.TiersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_tiers", dbComponents.TiersCircuitBreaker)
		}
		if dbComponents.QuotesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_quotes", dbComponents.QuotesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}
	for name, cb := range serviceComponents.CircuitBreakers {
		key := "carrier_" + strings.ReplaceAll(strings.ToLower(name), " ", "_")
		healthHandler.RegisterCircuitBreaker(key, cb)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
		TiersService:   tiersService,
		QuotesService:  quotesService,
		Resolver:       serviceComponents.Resolver,
		OriginPostcode: cfg.Shipping.OriginPostcode,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
