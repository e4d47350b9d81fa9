// Package model defines the core domain entities for the shipping service.
package model

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
)

var (
	// ErrInvalidWeight is returned when an item's weight is zero or negative.
	ErrInvalidWeight = errors.New("item weight must be greater than zero")
	// ErrInvalidDimensions is returned when any item dimension is zero or negative.
	ErrInvalidDimensions = errors.New("item dimensions must be greater than zero")
	// ErrInvalidQuantity is returned when an item's quantity is less than one.
	ErrInvalidQuantity = errors.New("item quantity must be at least one")
	// ErrNoItems is returned when a shipment request contains no items.
	ErrNoItems = errors.New("shipment must contain at least one item")
	// ErrInvalidPostcode is returned when a postcode fails syntactic validation.
	ErrInvalidPostcode = errors.New("invalid postcode")
)

// Item represents a physical shippable item.
// Dimensions are outer dimensions in centimetres, weight in kilograms.
// Items are immutable once added to a shipment request.
//
// @Description Shippable item with physical dimensions and quantity
// @Example {"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4, "quantity": 1}
type Item struct {
	WeightKg float64 `json:"weight_kg" example:"0.3"`
	LengthCm float64 `json:"length_cm" example:"15"`
	WidthCm  float64 `json:"width_cm" example:"8"`
	HeightCm float64 `json:"height_cm" example:"4"`
	// Quantity is the number of identical parcels this line expands to.
	Quantity int `json:"quantity" example:"1"`
}

// Validate rejects items with non-positive weight, dimensions, or quantity.
// Validation happens before any classification or network call.
func (i Item) Validate() error {
	if i.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if i.LengthCm <= 0 || i.WidthCm <= 0 || i.HeightCm <= 0 {
		return ErrInvalidDimensions
	}
	if i.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// DimsDescending returns the item's dimensions sorted largest first.
// Tier matching compares sorted triples so a rotated item classifies
// the same as an upright one.
func (i Item) DimsDescending() [3]float64 {
	dims := [3]float64{i.LengthCm, i.WidthCm, i.HeightCm}
	sort.Sort(sort.Reverse(sort.Float64Slice(dims[:])))
	return dims
}

// ShipmentRequest describes one shipment to be quoted: an origin/destination
// postcode pair and the items to ship. Constructed fresh per estimate call.
type ShipmentRequest struct {
	OriginPostcode string `json:"origin_postcode" example:"3220"`
	DestPostcode   string `json:"dest_postcode" example:"3000"`
	Items          []Item `json:"items"`
}

// Validate checks the request's items. Postcode syntax is carrier-specific
// and validated by each carrier client.
func (r ShipmentRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for idx, item := range r.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	return nil
}

// ParcelCount returns the total number of parcels after quantity expansion.
func (r ShipmentRequest) ParcelCount() int {
	count := 0
	for _, item := range r.Items {
		count += item.Quantity
	}
	return count
}

// Parcels expands the request's items into individual single-unit parcels.
func (r ShipmentRequest) Parcels() []Item {
	parcels := make([]Item, 0, r.ParcelCount())
	for _, item := range r.Items {
		unit := item
		unit.Quantity = 1
		for n := 0; n < item.Quantity; n++ {
			parcels = append(parcels, unit)
		}
	}
	return parcels
}

// Digest returns a stable hash of the request suitable as a cache key.
func (r ShipmentRequest) Digest() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s", r.OriginPostcode, r.DestPostcode)
	for _, item := range r.Items {
		fmt.Fprintf(h, "|%g:%g:%g:%g:%d", item.WeightKg, item.LengthCm, item.WidthCm, item.HeightCm, item.Quantity)
	}
	return h.Sum64()
}
