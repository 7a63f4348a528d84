// internal/interface/repository/booking_repo.go
package repository

import (
	"context"
	"fmt"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepository implements the BookingRepository interface
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new MongoDB booking repository
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	collection := db.Collection("bookings")

	// Create indexes for better performance
	ctx := context.Background()

	// Index on status for the admin dashboard filter
	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	// Index on createdAt for sorting
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		statusIndex,
		createdAtIndex,
	})

	return &MongoBookingRepository{
		collection: collection,
	}
}

// Create inserts a booking and returns the id assigned by MongoDB
func (r *MongoBookingRepository) Create(ctx context.Context, booking *entity.Booking) (string, error) {
	if booking.Status == "" {
		booking.Status = entity.BookingPending
	}

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	booking.ID = oid

	return oid.Hex(), nil
}

// FindByID finds a booking by its hex id
func (r *MongoBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrNotFound
	}

	var booking entity.Booking
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// List returns all bookings, newest first
func (r *MongoBookingRepository) List(ctx context.Context) ([]*entity.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus updates just the status field
func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.ErrNotFound
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
	)

	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// Delete removes a booking. Deleting an id that no longer exists is not an
// error.
func (r *MongoBookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
