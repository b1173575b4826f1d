package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/sHubh-blip/hd-booking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// slotDecrementPipeline builds an aggregation-pipeline update that decrements
// the matching slot's available count and derives soldOut from the result.
// The surrounding filter guarantees the matched slot had enough capacity, so
// available never goes negative.
func slotDecrementPipeline(date, timeOfDay string, quantity int) mongo.Pipeline {
	newAvailable := bson.D{{Key: "$subtract", Value: bson.A{"$$s.available", quantity}}}

	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "slots", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$slots"},
				{Key: "as", Value: "s"},
				{Key: "in", Value: bson.D{{Key: "$cond", Value: bson.D{
					{Key: "if", Value: bson.D{{Key: "$and", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$$s.date", date}}},
						bson.D{{Key: "$eq", Value: bson.A{"$$s.time", timeOfDay}}},
					}}}},
					{Key: "then", Value: bson.D{{Key: "$mergeObjects", Value: bson.A{
						"$$s",
						bson.D{
							{Key: "available", Value: newAvailable},
							{Key: "soldOut", Value: bson.D{{Key: "$lte", Value: bson.A{newAvailable, 0}}}},
						},
					}}}},
					{Key: "else", Value: "$$s"},
				}}}},
			}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}
}

// CreateConfirmed inserts the booking and decrements the matched slot's
// availability in a single multi-document transaction. The slot filter
// re-checks capacity, so two concurrent checkouts racing for the last units
// cannot both commit.
func (r *MongoBookingRepo) CreateConfirmed(ctx context.Context, booking *models.Booking) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	booking.CreatedAt = time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateRefID
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}

		filter := bson.M{
			"id": booking.ExperienceID,
			"slots": bson.M{
				"$elemMatch": bson.M{
					"date":      booking.Date,
					"time":      booking.Time,
					"soldOut":   false,
					"available": bson.M{"$gte": booking.Quantity},
				},
			},
		}

		res, err := r.experienceColl.UpdateOne(sc, filter, slotDecrementPipeline(booking.Date, booking.Time, booking.Quantity))
		if err != nil {
			return fmt.Errorf("decrement slot availability failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
