package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shipping-service/internal/i18n"
	"github.com/guttosm/shipping-service/internal/repository"
	"github.com/guttosm/shipping-service/internal/service"
)

// QuotesHandler provides HTTP handlers for selected quote reporting.
type QuotesHandler struct {
	quotesService service.QuotesService
}

// NewQuotesHandler creates a new QuotesHandler instance.
func NewQuotesHandler(quotesService service.QuotesService) *QuotesHandler {
	return &QuotesHandler{
		quotesService: quotesService,
	}
}

// ListQuotes handles GET /api/quotes requests.
//
// @Summary      List selected quotes
// @Description  Returns recently selected quotes for reporting, newest first
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        carrier query string false "Filter by carrier name"
// @Param        estimate_id query string false "Filter by estimate ID"
// @Param        since query string false "RFC3339 lower bound on selection time"
// @Param        limit query int false "Limit number of results (default 50)"
// @Success      200 {object} dto.SuccessResponse "Selected quotes"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/quotes [get]
func (h *QuotesHandler) ListQuotes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts := repository.QuoteQueryOptions{
		Carrier:    c.Query("carrier"),
		EstimateID: c.Query("estimate_id"),
		Limit:      50,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			opts.Limit = l
		}
	}

	if sinceStr := c.Query("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		opts.StartTime = &since
	}

	docs, err := h.quotesService.Query(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(docs)
}
