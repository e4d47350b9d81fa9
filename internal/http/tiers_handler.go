package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/shipping-service/internal/domain/dto"
	"github.com/guttosm/shipping-service/internal/i18n"
	"github.com/guttosm/shipping-service/internal/middleware"
	"github.com/guttosm/shipping-service/internal/repository"
	"github.com/guttosm/shipping-service/internal/service"
)

// TiersHandler provides HTTP handlers for tier catalog routes.
type TiersHandler struct {
	tiersService service.TiersService
	handler      *Handler
}

// NewTiersHandler creates a new TiersHandler instance. The estimate handler
// is optional; when present its caches are invalidated on catalog updates.
func NewTiersHandler(tiersService service.TiersService, handler *Handler) *TiersHandler {
	return &TiersHandler{
		tiersService: tiersService,
		handler:      handler,
	}
}

// GetActiveTiers handles GET /api/tiers requests.
//
// @Summary      Get active tier catalog
// @Description  Returns the currently active packaging tier catalog
// @Tags         Tiers
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active tier catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "No active catalog found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/tiers [get]
func (h *TiersHandler) GetActiveTiers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.tiersService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"tiers":      config.Tiers,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateTiers handles PUT /api/tiers requests.
//
// @Summary      Update tier catalog
// @Description  Replaces the active packaging tier catalog
// @Tags         Tiers
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateTiersRequest true "Tier catalog"
// @Success      200 {object} dto.SuccessResponse "Updated tier catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/tiers [put]
func (h *TiersHandler) UpdateTiers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if len(req.Tiers) == 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	docs := make([]repository.TierDocument, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		if _, err := decimal.NewFromString(t.PackagingCost); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		docs = append(docs, repository.TierDocument{
			Code:          t.Code,
			Name:          t.Name,
			MaxWeightKg:   t.MaxWeightKg,
			LengthCm:      t.LengthCm,
			WidthCm:       t.WidthCm,
			HeightCm:      t.HeightCm,
			Satchel:       t.Satchel,
			ServiceClass:  t.ServiceClass,
			PackagingCost: t.PackagingCost,
		})
	}

	config, err := h.tiersService.Create(c.Request.Context(), docs, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.handler != nil {
		h.handler.InvalidateTiersCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_tiers", "Tier catalog updated", map[string]interface{}{
				"tier_count": len(req.Tiers),
				"version":    config.Version,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"tiers":      config.Tiers,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListTiers handles GET /api/tiers/history requests.
//
// @Summary      List tier catalog history
// @Description  Returns all tier catalog configurations (history)
// @Tags         Tiers
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Tier catalog history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/tiers/history [get]
func (h *TiersHandler) ListTiers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.tiersService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
