package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shipping-service/internal/carrier"
	"github.com/guttosm/shipping-service/internal/domain/dto"
	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubCarrier is a canned carrier client for handler tests.
type stubCarrier struct {
	name   string
	quotes []model.Quote
	err    error
}

func (s *stubCarrier) Name() string { return s.name }

func (s *stubCarrier) ValidatePostcode(postcode string) error {
	if len(postcode) != 4 {
		return fmt.Errorf("%w: %q", model.ErrInvalidPostcode, postcode)
	}
	return nil
}

func (s *stubCarrier) GetQuotes(_ context.Context, _ carrier.Request, _ *carrier.Filter) ([]model.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quotes, nil
}

func stubQuote(carrierName, svc, price string, etaMin, etaMax int) model.Quote {
	return model.Quote{
		Carrier:      carrierName,
		Service:      svc,
		Price:        decimal.RequireFromString(price),
		Currency:     "AUD",
		ETAMinDays:   etaMin,
		ETAMaxDays:   etaMax,
		ServiceLevel: model.ServiceRegular,
	}
}

func twoCarriers() []carrier.Client {
	return []carrier.Client{
		&stubCarrier{name: carrier.AusPostName, quotes: []model.Quote{
			stubQuote(carrier.AusPostName, "Parcel Post", "13.40", 2, 4),
		}},
		&stubCarrier{name: carrier.InterparcelName, quotes: []model.Quote{
			stubQuote(carrier.InterparcelName, "Standard", "9.50", 1, 3),
		}},
	}
}

func setupRouter(clients ...carrier.Client) *gin.Engine {
	resolver := service.NewRateResolver(
		service.WithCarriers(clients...),
		service.WithContactPhone("03 5555 0100"),
	)
	handler := NewHandler(resolver, nil, WithOriginPostcode("3220")) // nil means tiers from MongoDB are disabled
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

func postEstimate(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEstimate(t *testing.T, w *httptest.ResponseRecorder) dto.EstimateResponse {
	t.Helper()

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotZero(t, resp.Timestamp)

	dataBytes, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var estimate dto.EstimateResponse
	require.NoError(t, json.Unmarshal(dataBytes, &estimate))
	return estimate
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name           string
		clients        []carrier.Client
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "cheapest quote selected",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				estimate := decodeEstimate(t, w)
				assert.NotEmpty(t, estimate.EstimateID)
				assert.Equal(t, string(model.StatusQuoteSelected), estimate.Status)
				require.NotNil(t, estimate.Quote)
				assert.Equal(t, carrier.InterparcelName, estimate.Quote.Carrier)
				assert.Equal(t, "9.50", estimate.Quote.Price)
				require.NotNil(t, estimate.Breakdown)
				assert.Equal(t, "9.50", estimate.Breakdown.Postage)
				assert.Equal(t, "0.75", estimate.Breakdown.Packaging)
				assert.Equal(t, "10.25", estimate.Breakdown.Total)
				assert.Equal(t, "0.93", estimate.Breakdown.GST)
				assert.Equal(t, "AUD", estimate.Breakdown.Currency)
				assert.Len(t, estimate.Quotes, 2)
			},
		},
		{
			name:           "carrier filter narrows selection",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}], "filter": {"carriers": ["Australia Post"]}}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				estimate := decodeEstimate(t, w)
				assert.Equal(t, string(model.StatusQuoteSelected), estimate.Status)
				require.NotNil(t, estimate.Quote)
				assert.Equal(t, carrier.AusPostName, estimate.Quote.Carrier)
				assert.Equal(t, "13.40", estimate.Quote.Price)
			},
		},
		{
			name:           "oversized cart reported in status",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "3000", "items": [{"weight_kg": 40, "length_cm": 250, "width_cm": 60, "height_cm": 40}]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				estimate := decodeEstimate(t, w)
				assert.Equal(t, string(model.StatusOversized), estimate.Status)
				assert.Nil(t, estimate.Quote)
				assert.Nil(t, estimate.Breakdown)
				assert.Contains(t, estimate.Message, "03 5555 0100")
			},
		},
		{
			name: "all carriers unavailable reported in status",
			clients: []carrier.Client{
				&stubCarrier{name: carrier.AusPostName, err: carrier.Unavailable(carrier.AusPostName, fmt.Errorf("connection refused"))},
				&stubCarrier{name: carrier.InterparcelName, err: carrier.Unavailable(carrier.InterparcelName, fmt.Errorf("timeout"))},
			},
			body:           `{"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				estimate := decodeEstimate(t, w)
				assert.Equal(t, string(model.StatusAllCarriersUnavailable), estimate.Status)
				assert.Nil(t, estimate.Quote)
				assert.NotEmpty(t, estimate.Message)
			},
		},
		{
			name:           "invalid JSON",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": }`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing destination postcode",
			clients:        twoCarriers(),
			body:           `{"items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed destination postcode",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "ABC", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty items",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "3000", "items": []}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero weight item",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "3000", "items": [{"weight_kg": 0, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative dimension",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": -15, "width_cm": 8, "height_cm": 4}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid service level in filter",
			clients:        twoCarriers(),
			body:           `{"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}], "filter": {"service_level": "overnight"}}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(tt.clients...)
			w := postEstimate(router, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.RequestID)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestEstimate_QuantityExpansion(t *testing.T) {
	router := setupRouter(twoCarriers()...)
	body := `{"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4, "quantity": 3}]}`

	w := postEstimate(router, body)

	assert.Equal(t, http.StatusOK, w.Code)
	estimate := decodeEstimate(t, w)
	assert.Equal(t, string(model.StatusQuoteSelected), estimate.Status)
	require.NotNil(t, estimate.Breakdown)
	// Three 500g satchels at 0.75 each.
	assert.Equal(t, "2.25", estimate.Breakdown.Packaging)
	assert.Equal(t, "11.75", estimate.Breakdown.Total)
}

// captureCarrier records the request it receives before delegating to the stub.
type captureCarrier struct {
	*stubCarrier
	captured *carrier.Request
}

func (c *captureCarrier) GetQuotes(ctx context.Context, req carrier.Request, filter *carrier.Filter) ([]model.Quote, error) {
	*c.captured = req
	return c.stubCarrier.GetQuotes(ctx, req, filter)
}

func TestEstimate_OriginPostcode(t *testing.T) {
	var captured carrier.Request
	client := &captureCarrier{
		stubCarrier: &stubCarrier{name: carrier.AusPostName, quotes: []model.Quote{
			stubQuote(carrier.AusPostName, "Parcel Post", "13.40", 2, 4),
		}},
		captured: &captured,
	}
	resolver := service.NewRateResolver(service.WithCarriers(client))
	handler := NewHandler(resolver, nil, WithOriginPostcode("3220"))
	router := NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())

	t.Run("default origin from config", func(t *testing.T) {
		w := postEstimate(router, `{"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3220", captured.OriginPostcode)
		assert.Equal(t, "3000", captured.DestPostcode)
	})

	t.Run("request origin wins", func(t *testing.T) {
		w := postEstimate(router, `{"origin_postcode": "2000", "dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2000", captured.OriginPostcode)
	})
}
