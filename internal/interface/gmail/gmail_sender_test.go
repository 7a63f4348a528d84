package gmail

import (
	"strings"
	"testing"

	"haven-booking-service/internal/domain/entity"
)

func TestBuildMIMEMessage(t *testing.T) {
	mail := &entity.EmailNotification{
		From:    "Kilimani Haven <kilimani.haven@gmail.com>",
		To:      "jane@example.com",
		Subject: "Your Booking is Confirmed - Kilimani Haven",
		HTML:    "<p>Confirmed</p>",
		Text:    "Confirmed",
	}

	raw := buildMIMEMessage(mail)

	for _, want := range []string{
		"From: Kilimani Haven <kilimani.haven@gmail.com>\r\n",
		"To: jane@example.com\r\n",
		"Subject: Your Booking is Confirmed - Kilimani Haven\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: multipart/alternative",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"<p>Confirmed</p>",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("MIME message missing %q", want)
		}
	}

	// Both parts and the closing boundary marker must be present
	if strings.Count(raw, "--haven-mail-boundary") != 3 {
		t.Errorf("boundary count = %d, want 2 parts plus terminator", strings.Count(raw, "--haven-mail-boundary"))
	}
	if !strings.HasSuffix(raw, "--haven-mail-boundary--\r\n") {
		t.Error("MIME message must end with the closing boundary")
	}
}
