package carrier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// AusPostName is the display name used in quotes and filters.
const AusPostName = "Australia Post"

// defaultAusPostBaseURL is the production digital API host.
const defaultAusPostBaseURL = "https://digitalapi.auspost.com.au"

// auspostPostcodePattern matches Australian 4-digit postcodes.
var auspostPostcodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// deliveryDaysPattern extracts a day range from delivery-time text such as
// "Delivered in 2-4 business days".
var deliveryDaysPattern = regexp.MustCompile(`([0-9]+)(?:\s*-\s*([0-9]+))?`)

// AusPostConfig holds the single-carrier calculator configuration.
type AusPostConfig struct {
	BaseURL string
	// APIKey is sent in the AUTH-KEY header.
	APIKey string
	Retry  RetryConfig
}

// AusPost is the Australia Post domestic parcel rate calculator client.
// The API quotes one parcel per call, so a multi-parcel shipment is quoted
// parcel by parcel and summed into a single aggregate quote. Per-parcel
// pricing is linear in the number of identical parcels.
type AusPost struct {
	cfg    AusPostConfig
	client *http.Client
}

// AusPostOption configures an AusPost client.
type AusPostOption func(*AusPost)

// WithAusPostHTTPClient injects a custom HTTP client (used by tests).
func WithAusPostHTTPClient(c *http.Client) AusPostOption {
	return func(a *AusPost) {
		a.client = c
	}
}

// NewAusPost creates a new Australia Post rate client.
func NewAusPost(cfg AusPostConfig, opts ...AusPostOption) *AusPost {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAusPostBaseURL
	}
	if cfg.Retry.Timeout == 0 {
		cfg.Retry = DefaultRetryConfig()
	}

	a := &AusPost{
		cfg:    cfg,
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the carrier display name.
func (a *AusPost) Name() string {
	return AusPostName
}

// ValidatePostcode checks the carrier's 4-digit numeric postcode format.
func (a *AusPost) ValidatePostcode(postcode string) error {
	if !auspostPostcodePattern.MatchString(postcode) {
		return fmt.Errorf("%w: %q", model.ErrInvalidPostcode, postcode)
	}
	return nil
}

// auspostResponse is the calculator's success payload.
type auspostResponse struct {
	PostageResult struct {
		Service      string `json:"service"`
		TotalCost    string `json:"total_cost"`
		DeliveryTime string `json:"delivery_time"`
	} `json:"postage_result"`
}

// auspostErrorResponse is the calculator's error payload.
type auspostErrorResponse struct {
	Error struct {
		ErrorMessage string `json:"errorMessage"`
	} `json:"error"`
}

// GetQuotes quotes each parcel against the rate calculator and sums the
// results into one aggregate quote. The shipment's ETA is that of its
// slowest parcel.
func (a *AusPost) GetQuotes(ctx context.Context, req Request, filter *Filter) ([]model.Quote, error) {
	if !filter.AllowsCarrier(AusPostName) {
		return nil, nil
	}
	if err := a.ValidatePostcode(req.OriginPostcode); err != nil {
		return nil, err
	}
	if err := a.ValidatePostcode(req.DestPostcode); err != nil {
		return nil, err
	}
	if len(req.Parcels) == 0 {
		return nil, nil
	}

	level := req.Parcels[0].Tier.ServiceClass
	if !filter.AllowsLevel(level) {
		return nil, nil
	}

	total := decimal.Zero
	etaMin, etaMax := 0, 0
	serviceName := ""
	allSatchel := true

	for _, parcel := range req.Parcels {
		result, err := a.quoteParcel(ctx, req, parcel)
		if err != nil {
			return nil, err
		}

		price, err := decimal.NewFromString(result.PostageResult.TotalCost)
		if err != nil {
			return nil, ParseError(AusPostName, fmt.Errorf("total_cost %q: %w", result.PostageResult.TotalCost, err))
		}
		total = total.Add(price)

		minDays, maxDays := parseDeliveryDays(result.PostageResult.DeliveryTime)
		if minDays > etaMin {
			etaMin = minDays
		}
		if maxDays > etaMax {
			etaMax = maxDays
		}
		if serviceName == "" {
			serviceName = result.PostageResult.Service
		}
		if !parcel.Tier.Satchel {
			allSatchel = false
		}
	}

	return []model.Quote{{
		Carrier:      AusPostName,
		Service:      serviceName,
		Price:        total,
		Currency:     "AUD",
		ETAMinDays:   etaMin,
		ETAMaxDays:   etaMax,
		Satchel:      allSatchel,
		ServiceLevel: level,
	}}, nil
}

// quoteParcel issues one rate-calculator call with retry.
func (a *AusPost) quoteParcel(ctx context.Context, req Request, parcel Parcel) (*auspostResponse, error) {
	var result *auspostResponse

	err := doWithRetry(ctx, AusPostName, a.cfg.Retry, func(ctx context.Context) error {
		var attemptErr error
		result, attemptErr = a.calculate(ctx, req, parcel)
		return attemptErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// calculate performs a single GET against the postage calculator.
func (a *AusPost) calculate(ctx context.Context, req Request, parcel Parcel) (*auspostResponse, error) {
	params := url.Values{}
	params.Set("from_postcode", req.OriginPostcode)
	params.Set("to_postcode", req.DestPostcode)
	params.Set("length", formatDim(parcel.Item.LengthCm))
	params.Set("width", formatDim(parcel.Item.WidthCm))
	params.Set("height", formatDim(parcel.Item.HeightCm))
	params.Set("weight", formatDim(parcel.Item.WeightKg))
	params.Set("service_code", parcel.Tier.Code)

	endpoint := a.cfg.BaseURL + "/postage/parcel/domestic/calculate.json?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, Unavailable(AusPostName, err)
	}
	httpReq.Header.Set("AUTH-KEY", a.cfg.APIKey)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, Unavailable(AusPostName, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
		var result auspostResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, ParseError(AusPostName, err)
		}
		if result.PostageResult.TotalCost == "" {
			return nil, ParseError(AusPostName, fmt.Errorf("missing postage_result"))
		}
		return &result, nil

	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, Unavailable(AusPostName, fmt.Errorf("status %d", resp.StatusCode))

	default:
		// Carrier-reported error: surface the carrier's own message.
		var apiErr auspostErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error.ErrorMessage == "" {
			return nil, ParseError(AusPostName, fmt.Errorf("status %d with unexpected body", resp.StatusCode))
		}
		return nil, Rejected(AusPostName, apiErr.Error.ErrorMessage)
	}
}

// formatDim renders a dimension or weight without trailing zeros.
func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseDeliveryDays extracts the ETA day range from the carrier's
// delivery-time text. A single number yields an equal min and max.
func parseDeliveryDays(text string) (minDays, maxDays int) {
	match := deliveryDaysPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, 0
	}
	minDays, _ = strconv.Atoi(match[1])
	maxDays = minDays
	if match[2] != "" {
		maxDays, _ = strconv.Atoi(match[2])
	}
	return minDays, maxDays
}
