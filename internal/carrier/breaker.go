// Circuit breaker wrapper for carrier clients.
package carrier

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/shipping-service/internal/circuitbreaker"
	"github.com/guttosm/shipping-service/internal/domain/model"
)

// ClientWithCircuitBreaker wraps a carrier client with circuit breaker
// protection. Repeated transient failures open the circuit so a dead
// carrier stops delaying estimates; an open circuit surfaces as
// KindUnavailable, which the resolver treats as no quote from that carrier.
type ClientWithCircuitBreaker struct {
	client         Client
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewClientWithCircuitBreaker creates a new client wrapper with circuit breaker.
func NewClientWithCircuitBreaker(client Client, cb *circuitbreaker.CircuitBreaker) *ClientWithCircuitBreaker {
	return &ClientWithCircuitBreaker{
		client:         client,
		circuitBreaker: cb,
	}
}

// Name returns the wrapped carrier's name.
func (c *ClientWithCircuitBreaker) Name() string {
	return c.client.Name()
}

// ValidatePostcode delegates to the wrapped client; validation is local and
// needs no protection.
func (c *ClientWithCircuitBreaker) ValidatePostcode(postcode string) error {
	return c.client.ValidatePostcode(postcode)
}

// GetQuotes executes the quote call with circuit breaker protection.
// Rejections and parse errors do not trip the breaker; only transient
// unavailability counts as a failure.
func (c *ClientWithCircuitBreaker) GetQuotes(ctx context.Context, req Request, filter *Filter) ([]model.Quote, error) {
	var quotes []model.Quote
	var callErr error

	err := c.circuitBreaker.Execute(ctx, func() error {
		quotes, callErr = c.client.GetQuotes(ctx, req, filter)
		if callErr != nil && !Retryable(callErr) {
			// Carrier answered; not a breaker failure.
			return nil
		}
		return callErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, Unavailable(c.client.Name(), fmt.Errorf("circuit open"))
	}
	if callErr != nil {
		return nil, callErr
	}
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (c *ClientWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}
