// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// ItemRequest represents a single cart line in an estimate request.
//
// @Description A cart item with weight, dimensions, and quantity
type ItemRequest struct {
	// WeightKg is the weight of a single unit in kilograms. Must be greater than 0.
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0" example:"0.3"`
	// LengthCm is the length of a single unit in centimetres. Must be greater than 0.
	LengthCm float64 `json:"length_cm" binding:"required,gt=0" example:"15"`
	// WidthCm is the width of a single unit in centimetres. Must be greater than 0.
	WidthCm float64 `json:"width_cm" binding:"required,gt=0" example:"8"`
	// HeightCm is the height of a single unit in centimetres. Must be greater than 0.
	HeightCm float64 `json:"height_cm" binding:"required,gt=0" example:"4"`
	// Quantity is the number of units ordered. Defaults to 1.
	Quantity int `json:"quantity,omitempty" example:"2" minimum:"1"`
} // @name ItemRequest

// FilterRequest narrows which carrier services are considered.
//
// @Description Optional constraints applied before quote ranking
type FilterRequest struct {
	// Carriers restricts quotes to the named carriers. Empty means all.
	Carriers []string `json:"carriers,omitempty" example:"Australia Post"`
	// ServiceLevel restricts quotes to "regular" or "express".
	ServiceLevel string `json:"service_level,omitempty" binding:"omitempty,oneof=regular express" example:"express"`
} // @name FilterRequest

// EstimateRequest represents the JSON request body for the estimate endpoint.
//
// @Description Request to resolve the cheapest shipping rate for a cart
// @Example {"dest_postcode": "3000", "items": [{"weight_kg": 0.3, "length_cm": 15, "width_cm": 8, "height_cm": 4}]}
type EstimateRequest struct {
	// OriginPostcode overrides the configured warehouse postcode.
	OriginPostcode string `json:"origin_postcode,omitempty" example:"3220"`
	// DestPostcode is the delivery postcode. Required.
	DestPostcode string `json:"dest_postcode" binding:"required" example:"3000"`
	// Items are the cart lines to ship. At least one is required.
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
	// Filter optionally narrows carriers or service level.
	Filter *FilterRequest `json:"filter,omitempty"`
} // @name EstimateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingItems is returned when the request has no items.
	ErrMissingItems = &ValidationError{
		Field:   "items",
		Message: "at least one item is required",
	}

	// ErrMissingDestPostcode is returned when the destination postcode is absent.
	ErrMissingDestPostcode = &ValidationError{
		Field:   "dest_postcode",
		Message: "destination postcode is required",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *EstimateRequest) Validate() error {
	if r.DestPostcode == "" {
		return ErrMissingDestPostcode
	}
	if len(r.Items) == 0 {
		return ErrMissingItems
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// TierRequest represents a single tier in a catalog update.
type TierRequest struct {
	// Code is the carrier service code for the tier.
	Code string `json:"code" binding:"required"`
	// Name is the human-readable tier name.
	Name string `json:"name" binding:"required"`
	// MaxWeightKg is the weight ceiling in kilograms.
	MaxWeightKg float64 `json:"max_weight_kg" binding:"required,gt=0"`
	// LengthCm, WidthCm, HeightCm are the internal dimensions.
	LengthCm float64 `json:"length_cm" binding:"required,gt=0"`
	WidthCm  float64 `json:"width_cm" binding:"required,gt=0"`
	HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
	// Satchel marks soft packaging.
	Satchel bool `json:"satchel"`
	// ServiceClass is "regular" or "express".
	ServiceClass string `json:"service_class" binding:"required,oneof=regular express"`
	// PackagingCost is the cost of the packaging itself, as a decimal string.
	PackagingCost string `json:"packaging_cost" binding:"required"`
} // @name TierRequest

// UpdateTiersRequest represents the JSON request body for replacing the tier catalog.
type UpdateTiersRequest struct {
	// Tiers is the full replacement catalog.
	Tiers []TierRequest `json:"tiers" binding:"required,min=1,dive"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateTiersRequest
