package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ServiceClass is a carrier-agnostic speed tier.
type ServiceClass string

const (
	// ServiceRegular is the standard delivery speed.
	ServiceRegular ServiceClass = "regular"
	// ServiceExpress is the expedited delivery speed.
	ServiceExpress ServiceClass = "express"
)

// Valid reports whether the service class is a known value.
func (s ServiceClass) Valid() bool {
	return s == ServiceRegular || s == ServiceExpress
}

// Tier is one entry of the box/satchel catalog: a carrier service code with
// its maximum weight and inner dimensions. Tiers are read-only reference
// data, shared safely across concurrent estimates.
//
// @Description Box or satchel shipping tier with size limits
// @Example {"code": "AUS_PARCEL_REGULAR_SATCHEL_500GMS", "max_weight_kg": 0.5, "length_cm": 35.5, "width_cm": 22.5, "height_cm": 8}
type Tier struct {
	// Code is the carrier service code sent with rate requests.
	Code string `json:"code" example:"AUS_PARCEL_REGULAR_SATCHEL_3KG"`
	// Name is the human-readable tier name.
	Name        string  `json:"name" example:"Regular Satchel 3kg"`
	MaxWeightKg float64 `json:"max_weight_kg" example:"3"`
	LengthCm    float64 `json:"length_cm" example:"39"`
	WidthCm     float64 `json:"width_cm" example:"27"`
	HeightCm    float64 `json:"height_cm" example:"12"`
	// Satchel marks flexible mailing bag tiers (cheaper than rigid boxes).
	Satchel      bool         `json:"satchel"`
	ServiceClass ServiceClass `json:"service_class" example:"regular"`
	// PackagingCost is the GST-inclusive cost of the box or satchel itself.
	PackagingCost decimal.Decimal `json:"packaging_cost" swaggertype:"string" example:"1.50"`
}

// DimsDescending returns the tier's inner dimensions sorted largest first.
func (t Tier) DimsDescending() [3]float64 {
	dims := [3]float64{t.LengthCm, t.WidthCm, t.HeightCm}
	sort.Sort(sort.Reverse(sort.Float64Slice(dims[:])))
	return dims
}

// Fits reports whether the item fits this tier: weight within the tier's
// maximum and each descending-sorted item dimension within the corresponding
// tier dimension. Comparing sorted triples makes the check rotation-proof.
func (t Tier) Fits(item Item) bool {
	if item.WeightKg > t.MaxWeightKg {
		return false
	}
	itemDims := item.DimsDescending()
	tierDims := t.DimsDescending()
	for i := range itemDims {
		if itemDims[i] > tierDims[i] {
			return false
		}
	}
	return true
}

// volume returns the tier's inner volume, used to order the catalog
// smallest first.
func (t Tier) volume() float64 {
	return t.LengthCm * t.WidthCm * t.HeightCm
}

// DefaultTiers returns the compiled-in catalog, ordered smallest first
// within each service class. Codes follow the Australia Post domestic
// parcel service codes.
func DefaultTiers() []Tier {
	return []Tier{
		{Code: "AUS_PARCEL_REGULAR_SATCHEL_500GMS", Name: "Regular Satchel 500g", MaxWeightKg: 0.5, LengthCm: 35.5, WidthCm: 22.5, HeightCm: 8, Satchel: true, ServiceClass: ServiceRegular, PackagingCost: decimal.NewFromFloat(0.75)},
		{Code: "AUS_PARCEL_REGULAR_SATCHEL_3KG", Name: "Regular Satchel 3kg", MaxWeightKg: 3, LengthCm: 39, WidthCm: 27, HeightCm: 12, Satchel: true, ServiceClass: ServiceRegular, PackagingCost: decimal.NewFromFloat(1.50)},
		{Code: "AUS_PARCEL_REGULAR_SATCHEL_5KG", Name: "Regular Satchel 5kg", MaxWeightKg: 5, LengthCm: 51, WidthCm: 43.5, HeightCm: 15, Satchel: true, ServiceClass: ServiceRegular, PackagingCost: decimal.NewFromFloat(2.25)},
		{Code: "AUS_PARCEL_REGULAR_BOX_SMALL", Name: "Regular Box Small", MaxWeightKg: 5, LengthCm: 22, WidthCm: 16, HeightCm: 12, Satchel: false, ServiceClass: ServiceRegular, PackagingCost: decimal.NewFromFloat(1.95)},
		{Code: "AUS_PARCEL_REGULAR_BOX_MEDIUM", Name: "Regular Box Medium", MaxWeightKg: 10, LengthCm: 31, WidthCm: 22.5, HeightCm: 16, Satchel: false, ServiceClass: ServiceRegular, PackagingCost: decimal.NewFromFloat(2.95)},
		{Code: "AUS_PARCEL_REGULAR_BOX_LARGE", Name: "Regular Box Large", MaxWeightKg: 16, LengthCm: 40, WidthCm: 30, HeightCm: 18, Satchel: false, ServiceClass: ServiceRegular, PackagingCost: decimal.NewFromFloat(3.95)},
		{Code: "AUS_PARCEL_REGULAR_BOX_EXTRA_LARGE", Name: "Regular Box Extra Large", MaxWeightKg: 22, LengthCm: 44, WidthCm: 34, HeightCm: 28, Satchel: false, ServiceClass: ServiceRegular, PackagingCost: decimal.NewFromFloat(4.95)},
		{Code: "AUS_PARCEL_EXPRESS_SATCHEL_500GMS", Name: "Express Satchel 500g", MaxWeightKg: 0.5, LengthCm: 35.5, WidthCm: 22.5, HeightCm: 8, Satchel: true, ServiceClass: ServiceExpress, PackagingCost: decimal.NewFromFloat(0.75)},
		{Code: "AUS_PARCEL_EXPRESS_SATCHEL_3KG", Name: "Express Satchel 3kg", MaxWeightKg: 3, LengthCm: 39, WidthCm: 27, HeightCm: 12, Satchel: true, ServiceClass: ServiceExpress, PackagingCost: decimal.NewFromFloat(1.50)},
		{Code: "AUS_PARCEL_EXPRESS_SATCHEL_5KG", Name: "Express Satchel 5kg", MaxWeightKg: 5, LengthCm: 51, WidthCm: 43.5, HeightCm: 15, Satchel: true, ServiceClass: ServiceExpress, PackagingCost: decimal.NewFromFloat(2.25)},
	}
}

// SortTiers orders a tier slice smallest first: by max weight, then inner
// volume, satchels before boxes on exact ties. Classification depends on
// this order so the first match is the smallest usable tier.
func SortTiers(tiers []Tier) {
	sort.SliceStable(tiers, func(i, j int) bool {
		if tiers[i].MaxWeightKg != tiers[j].MaxWeightKg {
			return tiers[i].MaxWeightKg < tiers[j].MaxWeightKg
		}
		if tiers[i].volume() != tiers[j].volume() {
			return tiers[i].volume() < tiers[j].volume()
		}
		return tiers[i].Satchel && !tiers[j].Satchel
	})
}
