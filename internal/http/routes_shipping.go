package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/shipping-service/internal/service"
)

// ShippingRoutes handles shipping-related route registration.
type ShippingRoutes struct {
	handler       *Handler
	tiersHandler  *TiersHandler
	quotesHandler *QuotesHandler
}

// NewShippingRoutes creates a new ShippingRoutes instance. Tier catalog and
// quote reporting routes are only registered when their services are present.
func NewShippingRoutes(handler *Handler, tiersService service.TiersService, quotesService service.QuotesService) *ShippingRoutes {
	r := &ShippingRoutes{
		handler: handler,
	}
	if tiersService != nil {
		r.tiersHandler = NewTiersHandler(tiersService, handler)
	}
	if quotesService != nil {
		r.quotesHandler = NewQuotesHandler(quotesService)
	}
	return r
}

// Register registers the shipping routes.
func (r *ShippingRoutes) Register(rg *gin.RouterGroup) {
	rg.POST("/estimate", r.handler.Estimate)

	if r.tiersHandler != nil {
		rg.GET("/tiers", r.tiersHandler.GetActiveTiers)
		rg.PUT("/tiers", r.tiersHandler.UpdateTiers)
		rg.GET("/tiers/history", r.tiersHandler.ListTiers)
	}

	if r.quotesHandler != nil {
		rg.GET("/quotes", r.quotesHandler.ListQuotes)
	}
}

// GetHandler returns the underlying estimate handler.
func (r *ShippingRoutes) GetHandler() *Handler {
	return r.handler
}
