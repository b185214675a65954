package templates

import (
	"fmt"
	"strings"

	"github.com/estatedesk/lead-notification-service/internal/domain"
)

// RenderWhatsAppMessage produces the condensed plain-text message sent over
// WhatsApp. Each event type is written out independently of the HTML email,
// trading the detail blocks for something readable on a phone.
func RenderWhatsAppMessage(ev domain.NotificationEvent) string {
	switch ev.Type {
	case domain.EventLeadCreated:
		return lines(
			"🏠 *New Lead*",
			field("Name", ev.LeadName),
			field("Phone", ev.LeadPhone),
			field("Source", ev.LeadSource),
			field("Interest", ev.LeadInterest),
		)
	case domain.EventLeadAssigned:
		return lines(
			"👤 *Lead Assigned*",
			field("Lead", ev.LeadName),
			field("To", firstNonEmpty(ev.AssignedToName, ev.AssignedTo)),
		)
	case domain.EventStatusChanged:
		return lines(
			"🔄 *Status Update*",
			field("Lead", ev.LeadName),
			fmt.Sprintf("%s ➜ %s", orDash(ev.OldStatus), orDash(ev.NewStatus)),
		)
	case domain.EventNoteAdded:
		return lines(
			"📝 *Note Added*",
			field("Lead", ev.LeadName),
			field("Note", ev.Note),
		)
	case domain.EventFollowupScheduled:
		return lines(
			"⏰ *Follow-up Scheduled*",
			field("Lead", ev.LeadName),
			field("What", ev.FollowupTitle),
			field("When", ev.FollowupDate),
		)
	case domain.EventFollowupCompleted:
		return lines(
			"✅ *Follow-up Done*",
			field("Lead", ev.LeadName),
			field("What", ev.FollowupTitle),
		)
	case domain.EventMeetingScheduled:
		return lines(
			"📅 *Meeting Scheduled*",
			field("Lead", ev.LeadName),
			field("Meeting", ev.MeetingTitle),
			field("When", ev.MeetingDate),
		)
	default:
		return lines(
			"🔔 *CRM Notification*",
			field("Lead", ev.LeadName),
		)
	}
}

// RenderCustomerWhatsAppMessage is the customer-facing meeting confirmation
// for WhatsApp.
func RenderCustomerWhatsAppMessage(ev domain.NotificationEvent) string {
	name := ev.LeadName
	if name == "" {
		name = "there"
	}
	return lines(
		fmt.Sprintf("Hi %s! 👋", name),
		"Your meeting with EstateDesk is confirmed:",
		field("Meeting", ev.MeetingTitle),
		field("When", ev.MeetingDate),
		"See you there! 🏠",
	)
}

func lines(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

func field(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}
