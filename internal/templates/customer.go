package templates

import (
	"fmt"
	"html"

	"github.com/estatedesk/lead-notification-service/internal/domain"
)

// RenderCustomerMeetingEmail produces the customer-facing meeting confirmation.
// The copy addresses the lead directly and deliberately carries no internal
// CRM link.
func RenderCustomerMeetingEmail(ev domain.NotificationEvent) Email {
	name := ev.LeadName
	if name == "" {
		name = "there"
	}

	content := join(
		fmt.Sprintf("<p>Dear %s,</p>", html.EscapeString(name)),
		"<p>Your meeting with our team has been confirmed. We look forward to seeing you.</p>",
		row("Meeting", ev.MeetingTitle),
		row("Date & Time", ev.MeetingDate),
		"<p>If you need to reschedule, simply reply to this email and our team will assist you.</p>",
		"<p>Warm regards,<br/>The EstateDesk Team</p>",
	)

	return Email{
		Subject: fmt.Sprintf("Meeting Confirmed: %s", orDash(ev.MeetingTitle)),
		HTML:    wrap("Your Meeting is Confirmed", content, false),
	}
}
