package templates

import (
	"fmt"
	"strings"

	"haven-booking-service/internal/domain/entity"
	"haven-booking-service/pkg/utils"
)

// Property holds the fixed property details rendered into guest emails
type Property struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// FromAddress returns the sender header for outgoing mail
func (p Property) FromAddress() string {
	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}

// BuildBookingEmail assembles the guest notification for a confirmed or
// cancelled booking. It is deterministic given its inputs and performs no
// I/O; outcome selects the template branch.
func BuildBookingEmail(booking *entity.Booking, outcome string, property Property) *entity.EmailNotification {
	confirmed := outcome == entity.BookingConfirmed

	var subject string
	if confirmed {
		subject = fmt.Sprintf("Your Booking is Confirmed - %s", property.Name)
	} else {
		subject = fmt.Sprintf("Booking Update - %s", property.Name)
	}

	return &entity.EmailNotification{
		From:    property.FromAddress(),
		To:      booking.Email,
		Subject: subject,
		HTML:    buildHTML(booking, confirmed, property),
		Text:    buildText(booking, confirmed, property),
	}
}

func buildHTML(b *entity.Booking, confirmed bool, p Property) string {
	checkIn := utils.FormatEmailDate(b.CheckIn)
	checkOut := utils.FormatEmailDate(b.CheckOut)

	var sb strings.Builder

	headerColor := "#10B981"
	headline := "Booking Confirmed!"
	if !confirmed {
		headerColor = "#EF4444"
		headline = "Booking Update"
	}

	sb.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"></head><body>")
	fmt.Fprintf(&sb, `<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;color:#333">`)
	fmt.Fprintf(&sb, `<div style="background:%s;color:white;padding:30px;text-align:center"><h1>%s</h1><p>Dear %s</p></div>`,
		headerColor, headline, b.Name)
	sb.WriteString(`<div style="background:#f9f9f9;padding:30px">`)

	if confirmed {
		fmt.Fprintf(&sb, "<p>Great news! Your booking request has been confirmed. We're excited to host you at %s!</p>", p.Name)
		sb.WriteString("<p><strong>Your reservation is now secured for the dates below.</strong></p>")
	} else {
		fmt.Fprintf(&sb, "<p>Thank you for your interest in %s. Unfortunately, we're unable to accommodate your booking request for the selected dates.</p>", p.Name)
		sb.WriteString("<p>This could be due to existing reservations or maintenance schedules. We apologize for any inconvenience.</p>")
	}

	sb.WriteString(`<div style="background:white;padding:20px;margin:20px 0"><h3>Booking Details</h3>`)
	sb.WriteString(detailRowHTML("Booking ID", "#"+b.ShortRef()))
	sb.WriteString(detailRowHTML("Guest Name", b.Name))
	sb.WriteString(detailRowHTML("Check-in", checkIn))
	sb.WriteString(detailRowHTML("Check-out", checkOut))
	sb.WriteString(detailRowHTML("Number of Guests", fmt.Sprintf("%d", b.Guests)))
	sb.WriteString(detailRowHTML("Number of Nights", fmt.Sprintf("%d", b.Nights)))
	if b.SpecialRequests != "" {
		sb.WriteString(detailRowHTML("Special Requests", b.SpecialRequests))
	}
	fmt.Fprintf(&sb, `<div style="background:#f0f9ff;padding:15px;margin:15px 0"><strong>Total Amount: %s</strong><br><small>Rate: %s per night</small></div>`,
		utils.FormatKSH(b.TotalPrice), utils.FormatKSH(b.PricePerNight))
	sb.WriteString("</div>")

	if confirmed {
		sb.WriteString("<h3>Important Information</h3>")
		sb.WriteString("<p><strong>Check-in Time:</strong> 3:00 PM - 8:00 PM</p>")
		sb.WriteString("<p><strong>Check-out Time:</strong> 11:00 AM</p>")
		sb.WriteString("<p><strong>Payment:</strong> We'll contact you within 24 hours to arrange payment and provide detailed check-in instructions.</p>")
		fmt.Fprintf(&sb, "<p><strong>Location:</strong> %s</p>", p.Address)
	} else {
		sb.WriteString("<h3>Alternative Options</h3>")
		sb.WriteString("<p>We'd love to help you find alternative dates that work for both of us. Please feel free to:</p>")
		sb.WriteString("<ul><li>Contact us to discuss alternative dates</li>")
		sb.WriteString("<li>Submit a new booking request for different dates</li>")
		sb.WriteString("<li>Join our waitlist in case of cancellations</li></ul>")
	}

	sb.WriteString("<h3>Contact Information</h3>")
	fmt.Fprintf(&sb, "<p><strong>Phone:</strong> %s</p>", p.Phone)
	fmt.Fprintf(&sb, "<p><strong>Email:</strong> %s</p>", p.Email)
	fmt.Fprintf(&sb, "<p><strong>Address:</strong> %s</p>", p.Address)

	fmt.Fprintf(&sb, `<div style="text-align:center;margin-top:30px;color:#666;font-size:14px"><p>Thank you for choosing %s!</p>`, p.Name)
	sb.WriteString("<p>This is an automated email. Please do not reply directly to this message.</p></div>")
	sb.WriteString("</div></div></body></html>")

	return sb.String()
}

func detailRowHTML(label, value string) string {
	return fmt.Sprintf(`<div style="padding:8px 0;border-bottom:1px solid #eee"><span style="font-weight:bold;color:#666">%s:</span> <span>%s</span></div>`,
		label, value)
}

func buildText(b *entity.Booking, confirmed bool, p Property) string {
	checkIn := utils.FormatEmailDate(b.CheckIn)
	checkOut := utils.FormatEmailDate(b.CheckOut)

	var sb strings.Builder

	if confirmed {
		fmt.Fprintf(&sb, "Booking Confirmed - %s\n\n", p.Name)
		fmt.Fprintf(&sb, "Dear %s,\n\n", b.Name)
		sb.WriteString("Great news! Your booking request has been confirmed.\n\n")
	} else {
		fmt.Fprintf(&sb, "Booking Update - %s\n\n", p.Name)
		fmt.Fprintf(&sb, "Dear %s,\n\n", b.Name)
		sb.WriteString("Thank you for your interest. Unfortunately, we cannot accommodate your booking for the selected dates.\n\n")
	}

	sb.WriteString("Booking Details:\n")
	fmt.Fprintf(&sb, "- Booking ID: #%s\n", b.ShortRef())
	fmt.Fprintf(&sb, "- Check-in: %s\n", checkIn)
	fmt.Fprintf(&sb, "- Check-out: %s\n", checkOut)
	fmt.Fprintf(&sb, "- Guests: %d\n", b.Guests)
	fmt.Fprintf(&sb, "- Nights: %d\n", b.Nights)
	if b.SpecialRequests != "" {
		fmt.Fprintf(&sb, "- Special Requests: %s\n", b.SpecialRequests)
	}
	fmt.Fprintf(&sb, "- Total Amount: %s\n\n", utils.FormatKSH(b.TotalPrice))

	if confirmed {
		sb.WriteString("We'll contact you within 24 hours to arrange payment and provide detailed check-in instructions.\n\n")
	}

	fmt.Fprintf(&sb, "Contact us: %s | %s\n\n", p.Phone, p.Email)
	fmt.Fprintf(&sb, "Thank you for choosing %s!\n", p.Name)

	return sb.String()
}
