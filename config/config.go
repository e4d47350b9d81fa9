// Package config provides configuration management for the shipping service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Carriers CarriersConfig
	Shipping ShippingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CacheConfig holds estimate cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// CarrierConfig holds configuration for a single carrier client.
type CarrierConfig struct {
	Enabled    bool
	BaseURL    string
	APIKey     string
	APIVersion string
	Timeout    time.Duration
	MaxRetries uint64
}

// CarriersConfig holds configuration for all carrier clients.
type CarriersConfig struct {
	AusPost     CarrierConfig
	Interparcel CarrierConfig
	// CircuitBreaker configuration shared by all carrier clients
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// ShippingConfig holds domain-level shipping configuration.
type ShippingConfig struct {
	// OriginPostcode is the warehouse postcode used when requests omit one.
	OriginPostcode string
	// ContactPhone is shown in oversized-cart messages.
	ContactPhone string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "shipping_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Carriers: CarriersConfig{
			AusPost: CarrierConfig{
				Enabled:    getEnvBool("AUSPOST_ENABLED", true),
				BaseURL:    getEnv("AUSPOST_BASE_URL", ""),
				APIKey:     getEnv("AUSPOST_API_KEY", ""),
				Timeout:    getEnvDuration("AUSPOST_TIMEOUT", 10*time.Second),
				MaxRetries: uint64(getEnvInt("AUSPOST_MAX_RETRIES", 2)),
			},
			Interparcel: CarrierConfig{
				Enabled:    getEnvBool("INTERPARCEL_ENABLED", true),
				BaseURL:    getEnv("INTERPARCEL_BASE_URL", ""),
				APIKey:     getEnv("INTERPARCEL_API_KEY", ""),
				APIVersion: getEnv("INTERPARCEL_API_VERSION", "1"),
				Timeout:    getEnvDuration("INTERPARCEL_TIMEOUT", 10*time.Second),
				MaxRetries: uint64(getEnvInt("INTERPARCEL_MAX_RETRIES", 2)),
			},
			CircuitBreakerFailureThreshold: getEnvInt("CARRIER_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CARRIER_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CARRIER_CB_TIMEOUT", 30*time.Second),
		},
		Shipping: ShippingConfig{
			OriginPostcode: getEnv("ORIGIN_POSTCODE", "3220"),
			ContactPhone:   getEnv("CONTACT_PHONE", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
