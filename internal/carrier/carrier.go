// Package carrier abstracts outbound carrier rate APIs behind one client
// interface. Carrier-specific request/response shapes live only in the
// concrete adapters; every adapter normalizes into model.Quote so the
// comparator stays carrier-agnostic.
package carrier

import (
	"context"

	"github.com/guttosm/shipping-service/internal/domain/model"
)

// Parcel is one classified parcel: the physical item plus the catalog tier
// it was matched to. The tier supplies the carrier service code.
type Parcel struct {
	Item model.Item
	Tier model.Tier
}

// Request is a quote request for one shipment, already classified.
type Request struct {
	OriginPostcode string
	DestPostcode   string
	Parcels        []Parcel
}

// Filter narrows the services a carrier should quote. A nil filter means
// all services.
type Filter struct {
	// Carriers restricts results to the named carriers.
	Carriers []string
	// ServiceLevel restricts results to one speed tier.
	ServiceLevel model.ServiceClass
}

// AllowsCarrier reports whether the filter permits the named carrier.
func (f *Filter) AllowsCarrier(name string) bool {
	if f == nil || len(f.Carriers) == 0 {
		return true
	}
	for _, c := range f.Carriers {
		if c == name {
			return true
		}
	}
	return false
}

// AllowsLevel reports whether the filter permits the given service level.
func (f *Filter) AllowsLevel(level model.ServiceClass) bool {
	if f == nil || f.ServiceLevel == "" {
		return true
	}
	return f.ServiceLevel == level
}

// Client is the single interface every carrier adapter implements.
type Client interface {
	// Name returns the carrier's display name, used in quotes and filters.
	Name() string

	// ValidatePostcode performs the carrier's own syntactic postcode check.
	ValidatePostcode(postcode string) error

	// GetQuotes issues the rate request and returns normalized quotes.
	// Errors are typed: *Error with KindUnavailable (retryable),
	// KindRejected, or KindParse.
	GetQuotes(ctx context.Context, req Request, filter *Filter) ([]model.Quote, error)
}
