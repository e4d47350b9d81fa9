// Package app provides service initialization.
package app

import (
	"github.com/guttosm/shipping-service/config"
	"github.com/guttosm/shipping-service/internal/carrier"
	"github.com/guttosm/shipping-service/internal/circuitbreaker"
	"github.com/guttosm/shipping-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Resolver        service.Resolver
	Carriers        []carrier.Client
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeServices builds the carrier clients and the rate resolver.
// Each carrier client is wrapped with its own circuit breaker so a failing
// carrier degrades gracefully instead of being hammered.
func InitializeServices(cfg config.Config, quotesService service.QuotesService) *ServiceComponents {
	clients := buildCarrierClients(cfg.Carriers)

	breakers := make(map[string]*circuitbreaker.CircuitBreaker, len(clients))
	wrapped := make([]carrier.Client, 0, len(clients))
	for _, client := range clients {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.Carriers.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.Carriers.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.Carriers.CircuitBreakerTimeout,
			Name:             "carrier-" + client.Name(),
		})
		breakers[client.Name()] = cb
		wrapped = append(wrapped, carrier.NewClientWithCircuitBreaker(client, cb))
	}

	opts := []service.ResolverOption{
		service.WithCarriers(wrapped...),
		service.WithContactPhone(cfg.Shipping.ContactPhone),
	}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithEstimateCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	if quotesService != nil {
		opts = append(opts, service.WithQuotesService(quotesService))
	}

	return &ServiceComponents{
		Resolver:        service.NewRateResolver(opts...),
		Carriers:        wrapped,
		CircuitBreakers: breakers,
	}
}

// buildCarrierClients creates the raw carrier clients from configuration.
func buildCarrierClients(cfg config.CarriersConfig) []carrier.Client {
	var clients []carrier.Client

	if cfg.AusPost.Enabled {
		retry := carrier.DefaultRetryConfig()
		if cfg.AusPost.Timeout > 0 {
			retry.Timeout = cfg.AusPost.Timeout
		}
		retry.MaxRetries = cfg.AusPost.MaxRetries
		clients = append(clients, carrier.NewAusPost(carrier.AusPostConfig{
			BaseURL: cfg.AusPost.BaseURL,
			APIKey:  cfg.AusPost.APIKey,
			Retry:   retry,
		}))
	}

	if cfg.Interparcel.Enabled {
		retry := carrier.DefaultRetryConfig()
		if cfg.Interparcel.Timeout > 0 {
			retry.Timeout = cfg.Interparcel.Timeout
		}
		retry.MaxRetries = cfg.Interparcel.MaxRetries
		clients = append(clients, carrier.NewInterparcel(carrier.InterparcelConfig{
			BaseURL:    cfg.Interparcel.BaseURL,
			APIKey:     cfg.Interparcel.APIKey,
			APIVersion: cfg.Interparcel.APIVersion,
			Retry:      retry,
		}))
	}

	return clients
}
