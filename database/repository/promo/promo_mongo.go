package promoRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/sHubh-blip/hd-booking/database"
	"github.com/sHubh-blip/hd-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPromoRepo implements PromoRepository using MongoDB.
type MongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo creates a new instance of PromoRepository using MongoDB.
func NewMongoPromoRepo() PromoRepository {
	coll := database.DB().Collection("promocodes")
	repo := &MongoPromoRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPromoRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetValidByCode returns the valid promo with the given uppercase code, or
// (nil, nil) when absent.
func (r *MongoPromoRepo) GetValidByCode(code string) (*models.PromoCode, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var promo models.PromoCode
	filter := bson.M{"code": code, "valid": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&promo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch promo code %s: %w", code, err)
	}
	return &promo, nil
}

// Insert stores a new promo code document.
func (r *MongoPromoRepo) Insert(promo *models.PromoCode) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	promo.CreatedAt = now
	promo.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, promo); err != nil {
		return fmt.Errorf("failed to insert promo code: %w", err)
	}
	return nil
}

// DeleteAll wipes the promo codes collection.
func (r *MongoPromoRepo) DeleteAll() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear promo codes: %w", err)
	}
	return nil
}

// ExpireOutdated flips valid=false on codes whose expiry date has passed.
func (r *MongoPromoRepo) ExpireOutdated(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"valid":      true,
		"expiryDate": bson.M{"$ne": nil, "$lt": now},
	}
	update := bson.M{"$set": bson.M{"valid": false, "updatedAt": now}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire outdated promo codes: %w", err)
	}
	return res.ModifiedCount, nil
}
