package templates

import (
	"strings"
	"testing"
	"time"

	"haven-booking-service/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testProperty = Property{
	Name:    "Kilimani Haven",
	Email:   "kilimani.haven@gmail.com",
	Phone:   "+254 713 908 113",
	Address: "Golden Mango Heights, Kilimani, Nairobi, Kenya",
}

func testBooking(t *testing.T) *entity.Booking {
	t.Helper()
	id, err := primitive.ObjectIDFromHex("665f0c2b9a1b4c001f8d1234")
	if err != nil {
		t.Fatalf("ObjectIDFromHex: %v", err)
	}
	return &entity.Booking{
		ID:            id,
		Name:          "Jane Wanjiku",
		Email:         "jane@example.com",
		Phone:         "+254 700 000 000",
		CheckIn:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Guests:        2,
		Nights:        3,
		PricePerNight: 6000,
		TotalPrice:    18000,
		Status:        entity.BookingPending,
	}
}

func TestBuildBookingEmailConfirmed(t *testing.T) {
	mail := BuildBookingEmail(testBooking(t), entity.BookingConfirmed, testProperty)

	if mail.To != "jane@example.com" {
		t.Errorf("To = %q", mail.To)
	}
	if mail.From != "Kilimani Haven <kilimani.haven@gmail.com>" {
		t.Errorf("From = %q", mail.From)
	}
	if !strings.Contains(mail.Subject, "Confirmed") {
		t.Errorf("Subject = %q, want confirmation wording", mail.Subject)
	}

	for _, want := range []string{
		"#1F8D1234",
		"Sunday, June 1, 2025",
		"Wednesday, June 4, 2025",
		"KSH 18,000",
		"KSH 6,000",
		">3<", // nights in the details table
		"Payment:",
		"Check-in Time",
	} {
		if !strings.Contains(mail.HTML, want) {
			t.Errorf("confirmed HTML missing %q", want)
		}
	}

	for _, want := range []string{"#1F8D1234", "KSH 18,000", "Nights: 3", "confirmed"} {
		if !strings.Contains(mail.Text, want) {
			t.Errorf("confirmed text missing %q", want)
		}
	}
}

func TestBuildBookingEmailCancelled(t *testing.T) {
	mail := BuildBookingEmail(testBooking(t), entity.BookingCancelled, testProperty)

	if strings.Contains(mail.Subject, "Confirmed") {
		t.Errorf("Subject = %q, cancelled email must not read as confirmed", mail.Subject)
	}
	if !strings.Contains(mail.HTML, "Alternative Options") {
		t.Error("cancelled HTML missing alternative-options section")
	}
	if strings.Contains(mail.HTML, "Payment:") {
		t.Error("cancelled HTML must omit payment instructions")
	}
	if !strings.Contains(mail.HTML, "KSH 18,000") {
		t.Error("cancelled HTML still shows the quoted total")
	}
}

func TestBuildBookingEmailSpecialRequests(t *testing.T) {
	booking := testBooking(t)

	mail := BuildBookingEmail(booking, entity.BookingConfirmed, testProperty)
	if strings.Contains(mail.HTML, "Special Requests") {
		t.Error("special-requests row must be omitted when empty")
	}
	if strings.Contains(mail.Text, "Special Requests") {
		t.Error("special-requests line must be omitted when empty")
	}

	booking.SpecialRequests = "Late check-in, around 9 PM"
	mail = BuildBookingEmail(booking, entity.BookingConfirmed, testProperty)
	if !strings.Contains(mail.HTML, "Late check-in, around 9 PM") {
		t.Error("special requests missing from HTML")
	}
	if !strings.Contains(mail.Text, "Late check-in, around 9 PM") {
		t.Error("special requests missing from text")
	}
}

func TestBuildBookingEmailDeterministic(t *testing.T) {
	a := BuildBookingEmail(testBooking(t), entity.BookingConfirmed, testProperty)
	b := BuildBookingEmail(testBooking(t), entity.BookingConfirmed, testProperty)

	if a.HTML != b.HTML || a.Text != b.Text || a.Subject != b.Subject {
		t.Error("payload assembly must be deterministic")
	}
}
