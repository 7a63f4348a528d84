// internal/interface/repository/message_repo.go
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

// MongoMessageRepository implements the MessageRepository interface
type MongoMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoMessageRepository creates a new MongoDB contact message repository
func NewMongoMessageRepository(db *mongo.Database) repository.MessageRepository {
	collection := db.Collection("messages")

	ctx := context.Background()

	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		statusIndex,
		createdAtIndex,
	})

	return &MongoMessageRepository{
		collection: collection,
	}
}

// Create inserts a contact message and returns the assigned id
func (r *MongoMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) (string, error) {
	if msg.Status == "" {
		msg.Status = entity.MessageUnread
	}

	result, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	msg.ID = oid

	return oid.Hex(), nil
}

// FindByID finds a contact message by its hex id
func (r *MongoMessageRepository) FindByID(ctx context.Context, id string) (*entity.ContactMessage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrNotFound
	}

	var msg entity.ContactMessage
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&msg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// List returns all contact messages, newest first
func (r *MongoMessageRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*entity.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// UpdateStatus updates just the status field
func (r *MongoMessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
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

// Delete removes a contact message. Missing ids are ignored.
func (r *MongoMessageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
