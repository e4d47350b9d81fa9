package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// InterparcelName is the display name of the multi-carrier aggregator.
// Quotes returned through it carry the underlying carrier's own name.
const InterparcelName = "Interparcel"

// defaultInterparcelBaseURL is the production aggregator host.
const defaultInterparcelBaseURL = "https://api.interparcel.com"

// interparcelPostcodePattern matches Australian 4-digit postcodes. The
// aggregator ships internationally but this service only quotes domestic AU.
var interparcelPostcodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// InterparcelConfig holds the aggregator client configuration.
type InterparcelConfig struct {
	BaseURL string
	// APIKey is sent in the X-Interparcel-Auth header.
	APIKey string
	// APIVersion is sent in the X-Interparcel-API-Version header.
	APIVersion string
	Retry      RetryConfig
}

// Interparcel is the multi-carrier aggregator client. One call quotes the
// whole shipment as a parcel list and returns many competing services.
// Multi-parcel pricing is the aggregator's own and is not guaranteed to be
// linear in parcel count.
type Interparcel struct {
	cfg    InterparcelConfig
	client *http.Client
}

// InterparcelOption configures an Interparcel client.
type InterparcelOption func(*Interparcel)

// WithInterparcelHTTPClient injects a custom HTTP client (used by tests).
func WithInterparcelHTTPClient(c *http.Client) InterparcelOption {
	return func(i *Interparcel) {
		i.client = c
	}
}

// NewInterparcel creates a new aggregator client.
func NewInterparcel(cfg InterparcelConfig, opts ...InterparcelOption) *Interparcel {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultInterparcelBaseURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "1"
	}
	if cfg.Retry.Timeout == 0 {
		cfg.Retry = DefaultRetryConfig()
	}

	i := &Interparcel{
		cfg:    cfg,
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Name returns the aggregator display name.
func (i *Interparcel) Name() string {
	return InterparcelName
}

// ValidatePostcode checks the 4-digit numeric AU postcode format.
func (i *Interparcel) ValidatePostcode(postcode string) error {
	if !interparcelPostcodePattern.MatchString(postcode) {
		return fmt.Errorf("%w: %q", model.ErrInvalidPostcode, postcode)
	}
	return nil
}

// interparcelAddress is the aggregator's address object. Only postcode and
// country matter for domestic quoting.
type interparcelAddress struct {
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// interparcelParcel is one parcel in the quote request body.
type interparcelParcel struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// interparcelFilter narrows the aggregator's result set server side.
type interparcelFilter struct {
	Carriers     []string `json:"carriers,omitempty"`
	ServiceLevel string   `json:"serviceLevel,omitempty"`
}

// interparcelRequest is the POST body of the quote endpoint.
type interparcelRequest struct {
	Collection interparcelAddress  `json:"collection"`
	Delivery   interparcelAddress  `json:"delivery"`
	Parcels    []interparcelParcel `json:"parcels"`
	Filter     *interparcelFilter  `json:"filter,omitempty"`
}

// interparcelService is one competing service in the response.
type interparcelService struct {
	Carrier      string  `json:"carrier"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	DeliveryDays struct {
		Min int `json:"min"`
		Max int `json:"max"`
	} `json:"deliveryDays"`
	ServiceLevel string `json:"serviceLevel"`
	PickupType   string `json:"pickupType"`
}

// interparcelResponse is the quote endpoint's payload. Status 1 is success.
type interparcelResponse struct {
	Status       int                  `json:"status"`
	ErrorMessage string               `json:"errorMessage"`
	Services     []interparcelService `json:"services"`
}

// GetQuotes issues a single multi-parcel quote call and normalizes every
// returned service into a model.Quote.
func (i *Interparcel) GetQuotes(ctx context.Context, req Request, filter *Filter) ([]model.Quote, error) {
	if err := i.ValidatePostcode(req.OriginPostcode); err != nil {
		return nil, err
	}
	if err := i.ValidatePostcode(req.DestPostcode); err != nil {
		return nil, err
	}
	if len(req.Parcels) == 0 {
		return nil, nil
	}

	body := interparcelRequest{
		Collection: interparcelAddress{Postcode: req.OriginPostcode, Country: "AU"},
		Delivery:   interparcelAddress{Postcode: req.DestPostcode, Country: "AU"},
		Parcels:    make([]interparcelParcel, 0, len(req.Parcels)),
	}
	for _, parcel := range req.Parcels {
		body.Parcels = append(body.Parcels, interparcelParcel{
			Weight: parcel.Item.WeightKg,
			Length: parcel.Item.LengthCm,
			Width:  parcel.Item.WidthCm,
			Height: parcel.Item.HeightCm,
		})
	}
	if filter != nil && (len(filter.Carriers) > 0 || filter.ServiceLevel != "") {
		body.Filter = &interparcelFilter{
			Carriers:     filter.Carriers,
			ServiceLevel: string(filter.ServiceLevel),
		}
	}

	var result *interparcelResponse
	err := doWithRetry(ctx, InterparcelName, i.cfg.Retry, func(ctx context.Context) error {
		var attemptErr error
		result, attemptErr = i.quote(ctx, body)
		return attemptErr
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]model.Quote, 0, len(result.Services))
	for _, svc := range result.Services {
		level := model.ServiceRegular
		if model.ServiceClass(svc.ServiceLevel) == model.ServiceExpress {
			level = model.ServiceExpress
		}
		currency := svc.Currency
		if currency == "" {
			currency = "AUD"
		}
		quotes = append(quotes, model.Quote{
			Carrier:      svc.Carrier,
			Service:      svc.Name,
			Price:        decimal.NewFromFloat(svc.Price).Round(2),
			Currency:     currency,
			ETAMinDays:   svc.DeliveryDays.Min,
			ETAMaxDays:   svc.DeliveryDays.Max,
			ServiceLevel: level,
		})
	}
	return quotes, nil
}

// quote performs a single POST against the aggregator.
func (i *Interparcel) quote(ctx context.Context, body interparcelRequest) (*interparcelResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, Unavailable(InterparcelName, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, i.cfg.BaseURL+"/quote", bytes.NewReader(payload))
	if err != nil {
		return nil, Unavailable(InterparcelName, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Interparcel-Auth", i.cfg.APIKey)
	httpReq.Header.Set("X-Interparcel-API-Version", i.cfg.APIVersion)

	resp, err := i.client.Do(httpReq)
	if err != nil {
		return nil, Unavailable(InterparcelName, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, Unavailable(InterparcelName, fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, Rejected(InterparcelName, fmt.Sprintf("status %d", resp.StatusCode))
	}

	var result interparcelResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, ParseError(InterparcelName, err)
	}
	if result.Status != 1 {
		message := result.ErrorMessage
		if message == "" {
			message = fmt.Sprintf("aggregator status %d", result.Status)
		}
		return nil, Rejected(InterparcelName, message)
	}
	return &result, nil
}
