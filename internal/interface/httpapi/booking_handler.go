package httpapi

import (
	"errors"
	"net/http"
	"time"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP
type BookingHandler struct {
	lifecycle *usecase.BookingLifecycle
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(lifecycle *usecase.BookingLifecycle) *BookingHandler {
	return &BookingHandler{lifecycle: lifecycle}
}

type bookingRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type quoteRequest struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// POST /v1/bookings
func (h *BookingHandler) Submit(c *gin.Context) {
	var in bookingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, err := parseDate(in.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn: " + err.Error()})
		return
	}
	checkOut, err := parseDate(in.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOut: " + err.Error()})
		return
	}

	booking, err := h.lifecycle.SubmitBookingRequest(c.Request.Context(), usecase.BookingInput{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          in.Guests,
		SpecialRequests: in.SpecialRequests,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// POST /v1/bookings/quote
func (h *BookingHandler) Quote(c *gin.Context) {
	var in quoteRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Incomplete or reversed ranges quote as zero, matching the form's
	// incremental entry.
	checkIn, _ := parseDate(in.CheckIn)
	checkOut, _ := parseDate(in.CheckOut)

	c.JSON(http.StatusOK, h.lifecycle.Quote(checkIn, checkOut))
}

// GET /v1/admin/bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.lifecycle.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// POST /v1/admin/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, entity.BookingConfirmed)
}

// POST /v1/admin/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, entity.BookingCancelled)
}

func (h *BookingHandler) transition(c *gin.Context, newStatus string) {
	result, err := h.lifecycle.TransitionBooking(c.Request.Context(), c.Param("id"), newStatus)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"booking":       result.Booking,
		"statusUpdated": result.StatusUpdated,
		"emailSent":     result.EmailSent,
	}
	if result.EmailErr != nil {
		resp["warning"] = "booking updated but email failed, contact customer manually"
	}

	c.JSON(http.StatusOK, resp)
}

// DELETE /v1/admin/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.lifecycle.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseDate accepts the booking form's plain dates and full timestamps
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("must be YYYY-MM-DD or RFC 3339")
	}
	return t, nil
}

// writeError maps domain errors onto HTTP statuses
func writeError(c *gin.Context, err error) {
	var validationErr *entity.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, entity.ErrInvalidStateTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "booking is not pending"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
