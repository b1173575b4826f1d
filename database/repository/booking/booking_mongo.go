package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB. It holds both
// the bookings and experiences collections because confirming a booking spans
// the two documents.
type MongoBookingRepo struct {
	bookingColl    *mongo.Collection
	experienceColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		bookingColl:    db.Collection("bookings"),
		experienceColl: db.Collection("experiences"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique index on refId is load-bearing: reference uniqueness rests on it, not
// on any pre-insert check.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "refId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "experienceId", Value: 1}}},
	}

	if _, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByRefID returns the booking with the given reference code, or (nil, nil)
// when absent.
func (r *MongoBookingRepo) GetByRefID(refID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"refId": refID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with refId %s: %w", refID, err)
	}
	return &booking, nil
}
