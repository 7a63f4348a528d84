package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact message status
const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

// ContactMessage represents a message submitted through the contact form
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
