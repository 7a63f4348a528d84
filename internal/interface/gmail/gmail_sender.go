package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/internal/domain/repository"
	"haven-booking-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender sends transactional email through the Gmail API. It implements
// the MailRepository interface.
type GmailSender struct {
	gmailService *gmail.Service
	logger       logger.Logger
}

// NewGmailSender creates a new Gmail sender
func NewGmailSender(ctx context.Context, tokenSource oauth2.TokenSource, logger logger.Logger) (*GmailSender, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailSender{
		gmailService: service,
		logger:       logger,
	}, nil
}

var _ repository.MailRepository = (*GmailSender)(nil)

// Send delivers the notification and returns the Gmail message id
func (s *GmailSender) Send(ctx context.Context, mail *entity.EmailNotification) (string, error) {
	raw := base64.URLEncoding.EncodeToString([]byte(buildMIMEMessage(mail)))

	msg, err := s.gmailService.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		s.logger.Error("Failed to send email", "to", mail.To, "error", err)
		return "", &entity.NotificationError{Err: err}
	}

	s.logger.Info("Email sent",
		"to", mail.To,
		"subject", mail.Subject,
		"messageId", msg.Id)

	return msg.Id, nil
}

// buildMIMEMessage assembles an RFC 2822 multipart/alternative message with
// a plain-text part and an HTML part.
func buildMIMEMessage(mail *entity.EmailNotification) string {
	const boundary = "haven-mail-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", mail.From)
	fmt.Fprintf(&b, "To: %s\r\n", mail.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mail.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(mail.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(mail.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return b.String()
}
