// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/shipping-service/config"
	"github.com/guttosm/shipping-service/internal/http"
	"github.com/guttosm/shipping-service/internal/service"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	var quotesService service.QuotesService
	if dbComponents != nil && dbComponents.QuotesRepo != nil {
		quotesService = service.NewQuotesService(dbComponents.QuotesRepo)
	}

	// Initialize carrier clients and the rate resolver
	serviceComponents := InitializeServices(cfg, quotesService)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
