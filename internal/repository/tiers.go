// Package repository provides data access for the shipping service.
package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/shipping-service/internal/domain/model"
)

// TierDocument is the stored form of a single catalog tier. Monetary values
// are kept as strings to avoid BSON float drift.
type TierDocument struct {
	Code          string  `bson:"code" json:"code"`
	Name          string  `bson:"name" json:"name"`
	MaxWeightKg   float64 `bson:"max_weight_kg" json:"max_weight_kg"`
	LengthCm      float64 `bson:"length_cm" json:"length_cm"`
	WidthCm       float64 `bson:"width_cm" json:"width_cm"`
	HeightCm      float64 `bson:"height_cm" json:"height_cm"`
	Satchel       bool    `bson:"satchel" json:"satchel"`
	ServiceClass  string  `bson:"service_class" json:"service_class"`
	PackagingCost string  `bson:"packaging_cost" json:"packaging_cost"`
}

// TierConfig represents a tier catalog configuration document. Exactly one
// document is active at a time; superseded catalogs are kept for history.
type TierConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Tiers     []TierDocument         `bson:"tiers" json:"tiers"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Models converts the stored tiers into domain tiers. Unparseable packaging
// costs fall back to zero rather than failing the whole catalog.
func (c *TierConfig) Models() []model.Tier {
	tiers := make([]model.Tier, 0, len(c.Tiers))
	for _, doc := range c.Tiers {
		cost, err := decimal.NewFromString(doc.PackagingCost)
		if err != nil {
			cost = decimal.Zero
		}
		tiers = append(tiers, model.Tier{
			Code:          doc.Code,
			Name:          doc.Name,
			MaxWeightKg:   doc.MaxWeightKg,
			LengthCm:      doc.LengthCm,
			WidthCm:       doc.WidthCm,
			HeightCm:      doc.HeightCm,
			Satchel:       doc.Satchel,
			ServiceClass:  model.ServiceClass(doc.ServiceClass),
			PackagingCost: cost,
		})
	}
	return tiers
}

// TierDocumentsFromModels converts domain tiers into their stored form.
func TierDocumentsFromModels(tiers []model.Tier) []TierDocument {
	docs := make([]TierDocument, 0, len(tiers))
	for _, t := range tiers {
		docs = append(docs, TierDocument{
			Code:          t.Code,
			Name:          t.Name,
			MaxWeightKg:   t.MaxWeightKg,
			LengthCm:      t.LengthCm,
			WidthCm:       t.WidthCm,
			HeightCm:      t.HeightCm,
			Satchel:       t.Satchel,
			ServiceClass:  string(t.ServiceClass),
			PackagingCost: t.PackagingCost.StringFixed(2),
		})
	}
	return docs
}

// TiersRepository provides methods for tier catalog operations.
type TiersRepository struct {
	collection *mongo.Collection
}

// NewTiersRepository creates a new tier catalog repository.
func NewTiersRepository(db *MongoDB) *TiersRepository {
	return &TiersRepository{
		collection: db.Tiers,
	}
}

// GetActive returns the active tier catalog configuration.
func (r *TiersRepository) GetActive(ctx context.Context) (*TierConfig, error) {
	var config TierConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active catalog found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates the current catalog and stores a new active one.
func (r *TiersRepository) Create(ctx context.Context, tiers []TierDocument, createdBy string) (*TierConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := TierConfig{
		ID:        primitive.NewObjectID(),
		Tiers:     tiers,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Update replaces the tiers of an existing catalog configuration.
func (r *TiersRepository) Update(ctx context.Context, id primitive.ObjectID, tiers []TierDocument, updatedBy string) (*TierConfig, error) {
	var current TierConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"tiers":      tiers,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config TierConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns tier catalog configurations, newest first.
func (r *TiersRepository) List(ctx context.Context, limit int) ([]TierConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []TierConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
