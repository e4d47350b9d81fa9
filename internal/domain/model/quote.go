package model

import (
	"github.com/shopspring/decimal"
)

// gstDivisor derives the GST portion of a GST-inclusive AUD amount (10% GST).
var gstDivisor = decimal.NewFromInt(11)

// Quote is a carrier's price/ETA offer for one shipment request, normalized
// across carriers so comparison is carrier-agnostic. Quotes are created per
// request, never mutated, and discarded after comparison.
//
// @Description Normalized carrier quote
// @Example {"carrier": "Australia Post", "service": "Parcel Post", "price": "13.40", "currency": "AUD", "eta_min_days": 2, "eta_max_days": 4}
type Quote struct {
	Carrier string `json:"carrier" example:"Australia Post"`
	Service string `json:"service" example:"Parcel Post"`
	// Price is the GST-inclusive postage cost.
	Price      decimal.Decimal `json:"price" swaggertype:"string" example:"13.40"`
	Currency   string          `json:"currency" example:"AUD"`
	ETAMinDays int             `json:"eta_min_days" example:"2"`
	ETAMaxDays int             `json:"eta_max_days" example:"4"`
	Satchel    bool            `json:"satchel"`
	// ServiceLevel is the carrier-agnostic speed tier of this service.
	ServiceLevel ServiceClass `json:"service_level" example:"regular"`
}

// CostBreakdown splits a selected quote's total into its postage, packaging,
// and GST portions. All amounts are GST-inclusive AUD; the GST portion is
// one eleventh of the total.
type CostBreakdown struct {
	Postage   decimal.Decimal `json:"postage" swaggertype:"string" example:"13.40"`
	Packaging decimal.Decimal `json:"packaging" swaggertype:"string" example:"1.50"`
	GST       decimal.Decimal `json:"gst" swaggertype:"string" example:"1.35"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"14.90"`
	Currency  string          `json:"currency" example:"AUD"`
}

// NewCostBreakdown builds a breakdown from a postage price and a packaging
// cost, both GST-inclusive.
func NewCostBreakdown(postage, packaging decimal.Decimal, currency string) CostBreakdown {
	total := postage.Add(packaging)
	return CostBreakdown{
		Postage:   postage,
		Packaging: packaging,
		GST:       total.Div(gstDivisor).Round(2),
		Total:     total,
		Currency:  currency,
	}
}

// EstimateStatus tracks a shipping-estimate request through its lifecycle.
type EstimateStatus string

const (
	// StatusPending is the initial state before classification.
	StatusPending EstimateStatus = "pending"
	// StatusClassified means every item matched a catalog tier.
	StatusClassified EstimateStatus = "classified"
	// StatusQuotesRequested means carrier calls are in flight.
	StatusQuotesRequested EstimateStatus = "quotes_requested"
	// StatusQuoteSelected is terminal: checkout may proceed.
	StatusQuoteSelected EstimateStatus = "quote_selected"
	// StatusAllCarriersUnavailable is terminal: checkout blocked, retry allowed.
	StatusAllCarriersUnavailable EstimateStatus = "all_carriers_unavailable"
	// StatusOversized is terminal: checkout blocked, manual quote required.
	StatusOversized EstimateStatus = "oversized"
)

// Terminal reports whether the status ends the estimate lifecycle.
func (s EstimateStatus) Terminal() bool {
	switch s {
	case StatusQuoteSelected, StatusAllCarriersUnavailable, StatusOversized:
		return true
	}
	return false
}

// Retryable reports whether the customer may retry the estimate
// automatically. Oversized requires manual contact, never an automatic
// retry.
func (s EstimateStatus) Retryable() bool {
	return s == StatusAllCarriersUnavailable
}

// Estimate is the outcome of one shipping-estimate request. Exactly one
// selected quote exists when the status is quote_selected; Selected and
// Breakdown are nil otherwise.
type Estimate struct {
	ID     string         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status EstimateStatus `json:"status" example:"quote_selected"`
	// Selected is the cheapest usable quote.
	Selected  *Quote         `json:"selected,omitempty"`
	Breakdown *CostBreakdown `json:"breakdown,omitempty"`
	// Quotes lists every usable quote, ranked cheapest first.
	Quotes []Quote `json:"quotes,omitempty"`
	// Message is the user-facing explanation for non-success outcomes.
	Message string `json:"message,omitempty"`
}
