package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking represents a guest booking request for the property
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	CheckIn         time.Time          `bson:"checkIn" json:"checkIn"`
	CheckOut        time.Time          `bson:"checkOut" json:"checkOut"`
	Guests          int                `bson:"guests" json:"guests"`
	SpecialRequests string             `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	Nights          int                `bson:"nights" json:"nights"`
	PricePerNight   int64              `bson:"pricePerNight" json:"pricePerNight"`
	TotalPrice      int64              `bson:"totalPrice" json:"totalPrice"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// ShortRef returns the short display form of the booking id used in
// guest-facing emails, the last 8 hex characters uppercased.
func (b *Booking) ShortRef() string {
	hex := b.ID.Hex()
	if len(hex) > 8 {
		hex = hex[len(hex)-8:]
	}
	return strings.ToUpper(hex)
}
