// Package main is the entry point for the shipping-service application.
//
// @title           Shipping Service API
// @version         1.0.0
// @description     API for resolving shipping rates for garage door parts.
//
//	This service classifies cart items into packaging tiers, requests quotes
//	from the configured carriers, and returns the cheapest usable rate with a
//	GST-inclusive cost breakdown.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/shipping-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Shipping
// @tag.description Shipping estimate operations
//
// @tag.name        Tiers
// @tag.description Packaging tier catalog management
//
// @tag.name        Quotes
// @tag.description Selected quote reporting
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/shipping-service/docs" // swagger docs

	"github.com/guttosm/shipping-service/config"
	"github.com/guttosm/shipping-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
