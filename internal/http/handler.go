package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shipping-service/internal/carrier"
	"github.com/guttosm/shipping-service/internal/domain/dto"
	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/i18n"
	"github.com/guttosm/shipping-service/internal/middleware"
	"github.com/guttosm/shipping-service/internal/service"
)

// tiersCache provides thread-safe caching of the active tier catalog.
type tiersCache struct {
	tiers     atomic.Value // holds []model.Tier
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newTiersCache creates a new tier catalog cache with the given TTL.
func newTiersCache(ttl time.Duration) *tiersCache {
	c := &tiersCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if cache is expired/empty.
func (c *tiersCache) get() []model.Tier {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if tiers := c.tiers.Load(); tiers != nil {
				if t, ok := tiers.([]model.Tier); ok {
					return t
				}
			}
		}
	}
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *tiersCache) set(tiers []model.Tier) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.tiers.Store(tiers)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *tiersCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for shipping estimate routes.
type Handler struct {
	resolver       service.Resolver
	tiersService   service.TiersService
	tiersCache     *tiersCache
	originPostcode string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithTiersCacheTTL sets the TTL for active catalog caching.
func WithTiersCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.tiersCache = newTiersCache(ttl)
	}
}

// WithOriginPostcode sets the warehouse postcode used when requests omit one.
func WithOriginPostcode(postcode string) HandlerOption {
	return func(h *Handler) {
		h.originPostcode = postcode
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(resolver service.Resolver, tiersService service.TiersService, opts ...HandlerOption) *Handler {
	h := &Handler{
		resolver:     resolver,
		tiersService: tiersService,
		tiersCache:   newTiersCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getTiers retrieves the active tier catalog from cache or database.
func (h *Handler) getTiers(ctx context.Context) []model.Tier {
	// Check cache first
	if tiers := h.tiersCache.get(); tiers != nil {
		return tiers
	}

	// Cache miss - fetch from database
	if h.tiersService == nil {
		return nil
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.tiersService.GetActive(ctx)
	if err != nil || config == nil || len(config.Tiers) == 0 {
		return nil
	}

	tiers := config.Models()

	// Cache the result
	h.tiersCache.set(tiers)
	return tiers
}

// InvalidateTiersCache invalidates the active catalog cache.
// Call this when the tier catalog is updated.
func (h *Handler) InvalidateTiersCache() {
	h.tiersCache.invalidate()
	if h.resolver != nil {
		h.resolver.InvalidateCache()
	}
}

// Estimate handles POST /api/estimate requests.
//
// @Summary      Resolve a shipping estimate
// @Description  Classifies each cart item into a packaging tier, fans out to the configured carriers, and returns the cheapest usable quote with a GST-inclusive cost breakdown. Oversized carts and carrier outages are reported in the response status rather than as HTTP errors.
// @Tags         Shipping
// @Accept       json
// @Produce      json
// @Param        request body dto.EstimateRequest true "Cart and destination"
// @Success      200 {object} dto.SuccessResponse "Resolved estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Security     ApiKeyAuth
// @Router       /api/estimate [post]
func (h *Handler) Estimate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	shipment := toShipmentRequest(req, h.originPostcode)
	filter := toCarrierFilter(req.Filter)

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "estimate", "Shipping estimate requested", map[string]interface{}{
				"dest_postcode": shipment.DestPostcode,
				"item_count":    len(shipment.Items),
				"has_filter":    filter != nil,
			})
		}
	}

	var (
		estimate model.Estimate
		err      error
	)
	if tiers := h.getTiers(c.Request.Context()); len(tiers) > 0 {
		estimate, err = h.resolver.EstimateWithTiers(c.Request.Context(), shipment, filter, tiers)
	} else {
		estimate, err = h.resolver.Estimate(c.Request.Context(), shipment, filter)
	}
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidPostcode):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPostcode, err)
		case errors.Is(err, model.ErrNoItems), errors.Is(err, model.ErrInvalidWeight),
			errors.Is(err, model.ErrInvalidDimensions), errors.Is(err, model.ErrInvalidQuantity):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidItems, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(toEstimateResponse(estimate))
}

// toShipmentRequest converts the API request into the domain shipment.
func toShipmentRequest(req dto.EstimateRequest, defaultOrigin string) model.ShipmentRequest {
	origin := req.OriginPostcode
	if origin == "" {
		origin = defaultOrigin
	}

	items := make([]model.Item, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, model.Item{
			WeightKg: it.WeightKg,
			LengthCm: it.LengthCm,
			WidthCm:  it.WidthCm,
			HeightCm: it.HeightCm,
			Quantity: qty,
		})
	}

	return model.ShipmentRequest{
		OriginPostcode: origin,
		DestPostcode:   req.DestPostcode,
		Items:          items,
	}
}

// toCarrierFilter converts the optional API filter into the domain filter.
func toCarrierFilter(f *dto.FilterRequest) *carrier.Filter {
	if f == nil {
		return nil
	}
	return &carrier.Filter{
		Carriers:     f.Carriers,
		ServiceLevel: model.ServiceClass(f.ServiceLevel),
	}
}

// toEstimateResponse converts a resolved estimate into its API shape.
func toEstimateResponse(estimate model.Estimate) dto.EstimateResponse {
	resp := dto.EstimateResponse{
		EstimateID: estimate.ID,
		Status:     string(estimate.Status),
		Message:    estimate.Message,
	}

	if estimate.Selected != nil {
		q := toQuoteResponse(*estimate.Selected)
		resp.Quote = &q
	}
	if estimate.Breakdown != nil {
		resp.Breakdown = &dto.BreakdownResponse{
			Postage:   estimate.Breakdown.Postage.StringFixed(2),
			Packaging: estimate.Breakdown.Packaging.StringFixed(2),
			GST:       estimate.Breakdown.GST.StringFixed(2),
			Total:     estimate.Breakdown.Total.StringFixed(2),
			Currency:  estimate.Breakdown.Currency,
		}
	}
	for _, q := range estimate.Quotes {
		resp.Quotes = append(resp.Quotes, toQuoteResponse(q))
	}

	return resp
}

func toQuoteResponse(q model.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		Carrier:    q.Carrier,
		Service:    q.Service,
		Price:      q.Price.StringFixed(2),
		Currency:   q.Currency,
		ETAMinDays: q.ETAMinDays,
		ETAMaxDays: q.ETAMaxDays,
	}
}
