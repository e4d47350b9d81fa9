package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/shipping-service/internal/carrier"
	"github.com/guttosm/shipping-service/internal/domain/model"
	"github.com/guttosm/shipping-service/internal/i18n"
	"github.com/guttosm/shipping-service/internal/metrics"
	"github.com/guttosm/shipping-service/internal/service/cache"
)

// Resolver is the internal consumer interface for shipping estimates: one
// call taking a shipment request and optional filter, returning the
// selected quote with its cost breakdown or a terminal non-success state.
type Resolver interface {
	// Estimate resolves a shipment request against the configured catalog.
	Estimate(ctx context.Context, req model.ShipmentRequest, filter *carrier.Filter) (model.Estimate, error)

	// EstimateWithTiers resolves against a caller-supplied catalog instead
	// of the configured one (used when the active catalog comes from the
	// database).
	EstimateWithTiers(ctx context.Context, req model.ShipmentRequest, filter *carrier.Filter, tiers []model.Tier) (model.Estimate, error)

	// InvalidateCache clears the estimate cache (useful when the tier
	// catalog changes).
	InvalidateCache()
}

// ResolverOption configures a RateResolver.
type ResolverOption func(*RateResolver)

// RateResolver implements Resolver. An estimate moves through
// pending -> classified -> quotes_requested and ends in exactly one of
// quote_selected, all_carriers_unavailable, or oversized. Carrier calls are
// fanned out concurrently; per-carrier failures are recorded individually
// and only an empty quote set fails the estimate.
type RateResolver struct {
	classifier   *TierClassifier
	comparator   Comparator
	clients      []carrier.Client
	cache        cache.Cache
	quotes       QuotesService
	contactPhone string
}

// NewRateResolver creates a new RateResolver with the given options.
func NewRateResolver(opts ...ResolverOption) *RateResolver {
	r := &RateResolver{
		classifier: NewTierClassifier(nil),
		comparator: NewPriceComparator(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithCarriers sets the carrier clients to fan out to.
func WithCarriers(clients ...carrier.Client) ResolverOption {
	return func(r *RateResolver) {
		r.clients = clients
	}
}

// WithTiers sets a custom default tier catalog.
func WithTiers(tiers []model.Tier) ResolverOption {
	return func(r *RateResolver) {
		if len(tiers) > 0 {
			r.classifier = NewTierClassifier(tiers)
		}
	}
}

// WithComparator injects a custom quote comparator.
func WithComparator(c Comparator) ResolverOption {
	return func(r *RateResolver) {
		r.comparator = c
	}
}

// WithEstimateCache enables estimate caching with the specified capacity and TTL.
func WithEstimateCache(capacity int, ttl time.Duration) ResolverOption {
	return func(r *RateResolver) {
		if capacity > 0 {
			r.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) ResolverOption {
	return func(r *RateResolver) {
		r.cache = c
	}
}

// WithQuotesService enables persistence of selected quotes.
func WithQuotesService(qs QuotesService) ResolverOption {
	return func(r *RateResolver) {
		r.quotes = qs
	}
}

// WithContactPhone sets the phone number shown in oversized messages.
func WithContactPhone(phone string) ResolverOption {
	return func(r *RateResolver) {
		r.contactPhone = phone
	}
}

// Estimate resolves a shipment request against the configured catalog.
func (r *RateResolver) Estimate(ctx context.Context, req model.ShipmentRequest, filter *carrier.Filter) (model.Estimate, error) {
	return r.estimate(ctx, req, filter, r.classifier, true)
}

// EstimateWithTiers resolves against a caller-supplied catalog. Results are
// not cached because the catalog may differ between calls.
func (r *RateResolver) EstimateWithTiers(ctx context.Context, req model.ShipmentRequest, filter *carrier.Filter, tiers []model.Tier) (model.Estimate, error) {
	if len(tiers) == 0 {
		return r.Estimate(ctx, req, filter)
	}
	return r.estimate(ctx, req, filter, NewTierClassifier(tiers), false)
}

// estimate is the unified resolution path.
func (r *RateResolver) estimate(ctx context.Context, req model.ShipmentRequest, filter *carrier.Filter, classifier *TierClassifier, cacheable bool) (model.Estimate, error) {
	if err := req.Validate(); err != nil {
		return model.Estimate{}, err
	}

	// Postcode syntax is carrier-specific; a postcode no configured carrier
	// accepts is a validation error, rejected before any carrier call.
	for _, cl := range r.clients {
		if err := cl.ValidatePostcode(req.OriginPostcode); err != nil {
			return model.Estimate{}, err
		}
		if err := cl.ValidatePostcode(req.DestPostcode); err != nil {
			return model.Estimate{}, err
		}
	}

	// Filtered estimates are never cached: the key is the request alone.
	cacheable = cacheable && filter == nil && r.cache != nil
	if cacheable {
		if est, ok := r.cache.Get(req.Digest()); ok {
			return est, nil
		}
	}

	start := time.Now()
	estimate := model.Estimate{
		ID:     uuid.New().String(),
		Status: model.StatusPending,
	}

	level := model.ServiceRegular
	if filter != nil && filter.ServiceLevel != "" {
		level = filter.ServiceLevel
	}

	parcels := make([]carrier.Parcel, 0, req.ParcelCount())
	packaging := decimal.Zero
	for _, unit := range req.Parcels() {
		tier, ok := classifier.Classify(unit, level)
		if !ok {
			estimate.Status = model.StatusOversized
			estimate.Message = r.oversizedMessage()
			metrics.RecordEstimate(time.Since(start), string(model.StatusOversized))
			log.Info().
				Str("estimate_id", estimate.ID).
				Float64("weight_kg", unit.WeightKg).
				Msg("Item exceeds every catalog tier, estimate is oversized")
			return estimate, nil
		}
		parcels = append(parcels, carrier.Parcel{Item: unit, Tier: tier})
		packaging = packaging.Add(tier.PackagingCost)
	}
	estimate.Status = model.StatusClassified

	estimate.Status = model.StatusQuotesRequested
	quotes, carrierErrs := r.fanOut(ctx, carrier.Request{
		OriginPostcode: req.OriginPostcode,
		DestPostcode:   req.DestPostcode,
		Parcels:        parcels,
	}, filter)

	selected, ranked, err := r.comparator.Select(quotes, filter)
	if err != nil {
		estimate.Status = model.StatusAllCarriersUnavailable
		estimate.Message = i18n.GetTranslator().Translate(i18n.ErrKeyCarriersUnavailable, i18n.DefaultLocale)
		metrics.RecordEstimate(time.Since(start), string(model.StatusAllCarriersUnavailable))
		log.Warn().
			Str("estimate_id", estimate.ID).
			AnErr("carrier_errors", carrierErrs).
			Msg("No usable quote from any carrier")
		return estimate, nil
	}

	estimate.Status = model.StatusQuoteSelected
	estimate.Selected = &selected
	estimate.Quotes = ranked
	breakdown := model.NewCostBreakdown(selected.Price, packaging, selected.Currency)
	estimate.Breakdown = &breakdown

	metrics.RecordEstimate(time.Since(start), string(model.StatusQuoteSelected))
	r.recordSelected(estimate, req)

	if cacheable {
		r.cache.Set(req.Digest(), estimate)
	}
	return estimate, nil
}

// fanOut queries every carrier concurrently and joins the results. Each
// client enforces its own per-attempt timeout, so one slow carrier never
// blocks the others; cancellation of ctx abandons all in-flight calls.
func (r *RateResolver) fanOut(ctx context.Context, req carrier.Request, filter *carrier.Filter) ([]model.Quote, error) {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		all  []model.Quote
		errs *multierror.Error
	)

	for _, client := range r.clients {
		wg.Add(1)
		go func(cl carrier.Client) {
			defer wg.Done()

			start := time.Now()
			quotes, err := cl.GetQuotes(ctx, req, filter)
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				metrics.RecordCarrierQuote(cl.Name(), elapsed, errResult(err))
				log.Warn().
					Str("carrier", cl.Name()).
					Err(err).
					Msg("Carrier returned no usable quote")
				errs = multierror.Append(errs, err)
				return
			}

			metrics.RecordCarrierQuote(cl.Name(), elapsed, "success")
			all = append(all, quotes...)
		}(client)
	}
	wg.Wait()

	return all, errs.ErrorOrNil()
}

// errResult maps a carrier error to its metrics label.
func errResult(err error) string {
	switch {
	case carrier.IsKind(err, carrier.KindUnavailable):
		return "unavailable"
	case carrier.IsKind(err, carrier.KindRejected):
		return "rejected"
	case carrier.IsKind(err, carrier.KindParse):
		return "parse_error"
	default:
		return "error"
	}
}

// recordSelected persists the selected quote asynchronously. Persistence is
// best effort and never blocks or fails the estimate.
func (r *RateResolver) recordSelected(estimate model.Estimate, req model.ShipmentRequest) {
	if r.quotes == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.quotes.RecordSelected(ctx, estimate, req); err != nil {
			log.Warn().Err(err).Str("estimate_id", estimate.ID).Msg("Failed to persist selected quote")
		}
	}()
}

// oversizedMessage builds the manual-quote escalation message. Estimates are
// stored payloads, so the message uses the default locale.
func (r *RateResolver) oversizedMessage() string {
	msg := i18n.GetTranslator().Translate(i18n.ErrKeyOversized, i18n.DefaultLocale)
	if r.contactPhone == "" {
		return msg
	}
	return fmt.Sprintf("%s (call %s)", msg, r.contactPhone)
}

// InvalidateCache clears the estimate cache.
func (r *RateResolver) InvalidateCache() {
	if r.cache != nil {
		r.cache.Clear()
	}
}
