// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SelectedQuoteDocument represents a resolved estimate stored for reporting.
// Monetary values are kept as strings to avoid BSON float drift.
type SelectedQuoteDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EstimateID     string             `bson:"estimate_id" json:"estimate_id"`
	Carrier        string             `bson:"carrier" json:"carrier"`
	Service        string             `bson:"service" json:"service"`
	OriginPostcode string             `bson:"origin_postcode" json:"origin_postcode"`
	DestPostcode   string             `bson:"dest_postcode" json:"dest_postcode"`
	ParcelCount    int                `bson:"parcel_count" json:"parcel_count"`
	Postage        string             `bson:"postage" json:"postage"`
	Packaging      string             `bson:"packaging" json:"packaging"`
	GST            string             `bson:"gst" json:"gst"`
	Total          string             `bson:"total" json:"total"`
	Currency       string             `bson:"currency" json:"currency"`
	ETAMinDays     int                `bson:"eta_min_days" json:"eta_min_days"`
	ETAMaxDays     int                `bson:"eta_max_days" json:"eta_max_days"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// QuotesRepository provides methods for selected quote persistence.
type QuotesRepository struct {
	collection *mongo.Collection
}

// NewQuotesRepository creates a new quotes repository.
func NewQuotesRepository(db *MongoDB) *QuotesRepository {
	return &QuotesRepository{
		collection: db.Quotes,
	}
}

// Create inserts a selected quote document.
func (r *QuotesRepository) Create(ctx context.Context, doc *SelectedQuoteDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// QuoteQueryOptions provides options for querying selected quotes.
type QuoteQueryOptions struct {
	EstimateID string
	Carrier    string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}

// Query returns selected quote documents matching the filter, newest first.
func (r *QuotesRepository) Query(ctx context.Context, opts QuoteQueryOptions) ([]*SelectedQuoteDocument, error) {
	filter := bson.M{}

	if opts.EstimateID != "" {
		filter["estimate_id"] = opts.EstimateID
	}
	if opts.Carrier != "" {
		filter["carrier"] = opts.Carrier
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["created_at"] = timeFilter
	}

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*SelectedQuoteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Count returns the count of selected quote documents matching the filter.
func (r *QuotesRepository) Count(ctx context.Context, opts QuoteQueryOptions) (int64, error) {
	filter := bson.M{}

	if opts.EstimateID != "" {
		filter["estimate_id"] = opts.EstimateID
	}
	if opts.Carrier != "" {
		filter["carrier"] = opts.Carrier
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["created_at"] = timeFilter
	}

	return r.collection.CountDocuments(ctx, filter)
}
