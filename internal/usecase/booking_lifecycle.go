package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/internal/domain/repository"
	"haven-booking-service/pkg/logger"
	"haven-booking-service/pkg/metrics"
	"haven-booking-service/templates"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Pricing holds the derived charges for a stay
type Pricing struct {
	Nights     int   `json:"nights"`
	TotalPrice int64 `json:"totalPrice"`
}

// BookingInput carries a prospective booking from the booking form
type BookingInput struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests"`
}

// TransitionResult reports the two independent outcomes of a booking
// transition. A failed email never rolls back the status change; it is
// surfaced here so the operator can contact the guest manually.
type TransitionResult struct {
	Booking       *entity.Booking
	StatusUpdated bool
	EmailSent     bool
	EmailErr      error
}

// BookingLifecycle owns the booking-request state machine: submission into
// pending, operator transitions to confirmed or cancelled, and the guest
// notification that follows a transition.
type BookingLifecycle struct {
	bookingRepo   repository.BookingRepository
	mailRepo      repository.MailRepository
	property      templates.Property
	pricePerNight int64
	logger        logger.Logger
	metrics       *metrics.Metrics
}

// NewBookingLifecycle creates a new booking lifecycle usecase
func NewBookingLifecycle(
	bookingRepo repository.BookingRepository,
	mailRepo repository.MailRepository,
	property templates.Property,
	pricePerNight int64,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *BookingLifecycle {
	return &BookingLifecycle{
		bookingRepo:   bookingRepo,
		mailRepo:      mailRepo,
		property:      property,
		pricePerNight: pricePerNight,
		logger:        logger,
		metrics:       metrics,
	}
}

// ComputePricing derives nights and total price for a date range. A missing
// date or a reversed range yields zero nights and zero price rather than an
// error, so the booking form can show a live quote while it is incomplete.
func ComputePricing(checkIn, checkOut time.Time, pricePerNight int64) Pricing {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Pricing{}
	}

	nights := int(dateOnly(checkOut).Sub(dateOnly(checkIn)) / (24 * time.Hour))
	if nights < 0 {
		nights = 0
	}

	return Pricing{
		Nights:     nights,
		TotalPrice: int64(nights) * pricePerNight,
	}
}

// Quote returns the pricing preview for the configured nightly rate
func (l *BookingLifecycle) Quote(checkIn, checkOut time.Time) Pricing {
	return ComputePricing(checkIn, checkOut, l.pricePerNight)
}

// SubmitBookingRequest validates the input, computes pricing and creates the
// booking in the pending state. No email is sent at submission time.
func (l *BookingLifecycle) SubmitBookingRequest(ctx context.Context, input BookingInput) (*entity.Booking, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pricing := ComputePricing(input.CheckIn, input.CheckOut, l.pricePerNight)

	booking := &entity.Booking{
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		CheckIn:         input.CheckIn.UTC(),
		CheckOut:        input.CheckOut.UTC(),
		Guests:          input.Guests,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Nights:          pricing.Nights,
		PricePerNight:   l.pricePerNight,
		TotalPrice:      pricing.TotalPrice,
		Status:          entity.BookingPending,
		CreatedAt:       now,
	}

	id, err := l.bookingRepo.Create(ctx, booking)
	if err != nil {
		l.metrics.ErrorsCount.WithLabelValues("booking_create").Inc()
		return nil, &entity.PersistenceError{Op: "create booking", Err: err}
	}

	l.metrics.BookingsCreated.Inc()
	l.logger.Info("Booking request created",
		"bookingId", id,
		"checkIn", booking.CheckIn.Format("2006-01-02"),
		"checkOut", booking.CheckOut.Format("2006-01-02"),
		"nights", booking.Nights,
		"totalPrice", booking.TotalPrice)

	return booking, nil
}

// TransitionBooking moves a pending booking to confirmed or cancelled, then
// sends the guest notification. The status update commits first; the email
// is best effort and its failure only degrades the result.
func (l *BookingLifecycle) TransitionBooking(ctx context.Context, id, newStatus string) (*TransitionResult, error) {
	if newStatus != entity.BookingConfirmed && newStatus != entity.BookingCancelled {
		return nil, &entity.ValidationError{Field: "status", Reason: "must be confirmed or cancelled"}
	}

	booking, err := l.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingPending {
		return nil, entity.ErrInvalidStateTransition
	}

	if err := l.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		l.metrics.ErrorsCount.WithLabelValues("booking_transition").Inc()
		return nil, &entity.PersistenceError{Op: "update booking status", Err: err}
	}

	booking.Status = newStatus
	l.metrics.BookingTransitions.WithLabelValues(newStatus).Inc()
	l.logger.Info("Booking transitioned", "bookingId", id, "status", newStatus)

	result := &TransitionResult{
		Booking:       booking,
		StatusUpdated: true,
	}

	mail := templates.BuildBookingEmail(booking, newStatus, l.property)
	if _, err := l.mailRepo.Send(ctx, mail); err != nil {
		l.metrics.EmailsFailed.Inc()
		l.logger.Warn("Booking updated but email failed, contact customer manually",
			"bookingId", id,
			"guestEmail", booking.Email,
			"error", err)
		result.EmailErr = err
		return result, nil
	}

	l.metrics.EmailsSent.Inc()
	result.EmailSent = true
	return result, nil
}

// ListBookings returns every booking, newest first
func (l *BookingLifecycle) ListBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := l.bookingRepo.List(ctx)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

// DeleteBooking removes a booking unconditionally. Deleting an id that no
// longer exists is a success.
func (l *BookingLifecycle) DeleteBooking(ctx context.Context, id string) error {
	if err := l.bookingRepo.Delete(ctx, id); err != nil {
		l.metrics.ErrorsCount.WithLabelValues("booking_delete").Inc()
		return &entity.PersistenceError{Op: "delete booking", Err: err}
	}
	l.logger.Info("Booking deleted", "bookingId", id)
	return nil
}

func validateBookingInput(input BookingInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &entity.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return &entity.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if !emailPattern.MatchString(email) {
		return &entity.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	if strings.TrimSpace(input.Phone) == "" {
		return &entity.ValidationError{Field: "phone", Reason: "must not be empty"}
	}

	if input.Guests < 1 {
		return &entity.ValidationError{Field: "guests", Reason: "must be at least 1"}
	}

	if input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return &entity.ValidationError{Field: "dates", Reason: "check-in and check-out are required"}
	}

	if !dateOnly(input.CheckOut).After(dateOnly(input.CheckIn)) {
		return &entity.ValidationError{Field: "checkOut", Reason: "must be after check-in"}
	}

	if dateOnly(input.CheckIn).Before(dateOnly(time.Now().UTC())) {
		return &entity.ValidationError{Field: "checkIn", Reason: "must not be in the past"}
	}

	return nil
}

// dateOnly truncates a timestamp to its UTC calendar date. Pricing counts
// whole days regardless of time of day.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
