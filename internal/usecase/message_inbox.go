package usecase

import (
	"context"
	"strings"
	"time"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/internal/domain/repository"
	"haven-booking-service/pkg/logger"
	"haven-booking-service/pkg/metrics"
)

// MessageInput carries a contact form submission
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// MessageInbox handles contact messages: submission, the unread/read flag
// and deletion.
type MessageInbox struct {
	messageRepo repository.MessageRepository
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewMessageInbox creates a new message inbox usecase
func NewMessageInbox(messageRepo repository.MessageRepository, logger logger.Logger, metrics *metrics.Metrics) *MessageInbox {
	return &MessageInbox{
		messageRepo: messageRepo,
		logger:      logger,
		metrics:     metrics,
	}
}

// SubmitMessage validates and stores a contact message as unread
func (m *MessageInbox) SubmitMessage(ctx context.Context, input MessageInput) (*entity.ContactMessage, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, &entity.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, &entity.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &entity.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	if strings.TrimSpace(input.Message) == "" {
		return nil, &entity.ValidationError{Field: "message", Reason: "must not be empty"}
	}

	msg := &entity.ContactMessage{
		Name:      strings.TrimSpace(input.Name),
		Email:     email,
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		Status:    entity.MessageUnread,
		CreatedAt: time.Now().UTC(),
	}

	id, err := m.messageRepo.Create(ctx, msg)
	if err != nil {
		m.metrics.ErrorsCount.WithLabelValues("message_create").Inc()
		return nil, &entity.PersistenceError{Op: "create message", Err: err}
	}

	m.metrics.MessagesReceived.Inc()
	m.logger.Info("Contact message received", "messageId", id, "from", msg.Email)

	return msg, nil
}

// ListMessages returns every contact message, newest first
func (m *MessageInbox) ListMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := m.messageRepo.List(ctx)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "list messages", Err: err}
	}
	return messages, nil
}

// MarkMessageRead flags a message as read. Marking an already-read message
// is a no-op success.
func (m *MessageInbox) MarkMessageRead(ctx context.Context, id string) error {
	msg, err := m.messageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if msg.Status == entity.MessageRead {
		return nil
	}

	if err := m.messageRepo.UpdateStatus(ctx, id, entity.MessageRead); err != nil {
		m.metrics.ErrorsCount.WithLabelValues("message_read").Inc()
		return &entity.PersistenceError{Op: "update message status", Err: err}
	}

	m.logger.Info("Message marked read", "messageId", id)
	return nil
}

// DeleteMessage removes a contact message unconditionally
func (m *MessageInbox) DeleteMessage(ctx context.Context, id string) error {
	if err := m.messageRepo.Delete(ctx, id); err != nil {
		m.metrics.ErrorsCount.WithLabelValues("message_delete").Inc()
		return &entity.PersistenceError{Op: "delete message", Err: err}
	}
	m.logger.Info("Message deleted", "messageId", id)
	return nil
}
