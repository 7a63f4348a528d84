package usecase

import (
	"context"
	"errors"
	"sort"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/pkg/logger"
	"haven-booking-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookingRepo is an in-memory BookingRepository
type fakeBookingRepo struct {
	bookings  map[string]*entity.Booking
	createErr error
	updateErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	booking.ID = primitive.NewObjectID()
	copied := *booking
	r.bookings[booking.ID.Hex()] = &copied
	return booking.ID.Hex(), nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(ctx context.Context) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		copied := *b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	b, ok := r.bookings[id]
	if !ok {
		return entity.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

// fakeMessageRepo is an in-memory MessageRepository
type fakeMessageRepo struct {
	messages  map[string]*entity.ContactMessage
	createErr error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*entity.ContactMessage)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *entity.ContactMessage) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	msg.ID = primitive.NewObjectID()
	copied := *msg
	r.messages[msg.ID.Hex()] = &copied
	return msg.ID.Hex(), nil
}

func (r *fakeMessageRepo) FindByID(ctx context.Context, id string) (*entity.ContactMessage, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMessageRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	var out []*entity.ContactMessage
	for _, m := range r.messages {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeMessageRepo) UpdateStatus(ctx context.Context, id, status string) error {
	m, ok := r.messages[id]
	if !ok {
		return entity.ErrNotFound
	}
	m.Status = status
	return nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	delete(r.messages, id)
	return nil
}

// fakeMailRepo records sent notifications
type fakeMailRepo struct {
	sent    []*entity.EmailNotification
	sendErr error
}

func (r *fakeMailRepo) Send(ctx context.Context, mail *entity.EmailNotification) (string, error) {
	if r.sendErr != nil {
		return "", &entity.NotificationError{Err: r.sendErr}
	}
	r.sent = append(r.sent, mail)
	return "msg-1", nil
}

// fakeAdminRepo is an in-memory AdminRepository
type fakeAdminRepo struct {
	admins map[string]*entity.AdminUser
	nextID uint
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*entity.AdminUser)}
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	a, ok := r.admins[email]
	if !ok {
		return nil, entity.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAdminRepo) Create(ctx context.Context, user *entity.AdminUser) error {
	if _, exists := r.admins[user.Email]; exists {
		return errors.New("duplicate email")
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.admins[user.Email] = &copied
	return nil
}

func (r *fakeAdminRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

func testMetrics() *metrics.Metrics {
	return metrics.NewMetrics("test", prometheus.NewRegistry())
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (n nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return n
}
