// Package i18n provides internationalization support for the shipping service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidPostcode indicates an unusable postcode.
	ErrKeyInvalidPostcode = "error.validation.postcode"
	// ErrKeyInvalidItems indicates invalid cart items.
	ErrKeyInvalidItems = "error.validation.items"
	// ErrKeyCarriersUnavailable indicates no carrier produced a usable quote.
	ErrKeyCarriersUnavailable = "error.carriers_unavailable"
	// ErrKeyOversized indicates an item exceeds every catalog tier.
	ErrKeyOversized = "error.oversized"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyEstimateResolved indicates a successfully resolved estimate.
	SuccessKeyEstimateResolved = "success.estimate_resolved"
)
