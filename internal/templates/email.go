// Package templates renders the notification content for every channel.
// All renderers are pure functions over the canonical event shape.
package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/estatedesk/lead-notification-service/internal/domain"
)

const crmLeadsURL = "https://crm.estatedesk.in/leads"

// styleBlock is shared by every internal email so the templates stay visually
// consistent without an external stylesheet.
const styleBlock = `<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #1f2937; margin: 0; background: #f3f4f6; }
  .card { max-width: 560px; margin: 24px auto; background: #ffffff; border-radius: 8px; overflow: hidden; }
  .header { background: #1e3a5f; color: #ffffff; padding: 20px 24px; }
  .header h2 { margin: 0; font-size: 18px; }
  .content { padding: 24px; }
  .row { padding: 6px 0; border-bottom: 1px solid #f3f4f6; }
  .label { color: #6b7280; font-size: 13px; }
  .value { font-size: 15px; }
  .status { display: inline-block; padding: 2px 10px; border-radius: 12px; background: #eef2ff; font-size: 13px; }
  .cta { display: inline-block; margin-top: 16px; padding: 10px 18px; background: #1e3a5f; color: #ffffff; text-decoration: none; border-radius: 6px; }
  .footer { padding: 16px 24px; color: #9ca3af; font-size: 12px; border-top: 1px solid #f3f4f6; }
</style>`

// Email is a rendered subject/body pair.
type Email struct {
	Subject string
	HTML    string
}

// RenderInternalEmail produces the team-facing email for an event. Unknown
// event types get a generic notification rather than an error.
func RenderInternalEmail(ev domain.NotificationEvent) Email {
	switch ev.Type {
	case domain.EventLeadCreated:
		return Email{
			Subject: fmt.Sprintf("New Lead: %s", orDash(ev.LeadName)),
			HTML: wrap("New Lead Received", join(
				leadRows(ev),
				row("Source", ev.LeadSource),
				row("Interest", ev.LeadInterest),
			), true),
		}
	case domain.EventLeadAssigned:
		return Email{
			Subject: fmt.Sprintf("Lead Assigned: %s", orDash(ev.LeadName)),
			HTML: wrap("Lead Assigned", join(
				leadRows(ev),
				row("Assigned To", firstNonEmpty(ev.AssignedToName, ev.AssignedTo)),
			), true),
		}
	case domain.EventStatusChanged:
		return Email{
			Subject: fmt.Sprintf("Status Update: %s", orDash(ev.LeadName)),
			HTML: wrap("Lead Status Changed", join(
				leadRows(ev),
				beforeAfter(ev.OldStatus, ev.NewStatus),
			), true),
		}
	case domain.EventNoteAdded:
		return Email{
			Subject: fmt.Sprintf("Note Added: %s", orDash(ev.LeadName)),
			HTML: wrap("New Note on Lead", join(
				leadRows(ev),
				row("Note", ev.Note),
			), true),
		}
	case domain.EventFollowupScheduled:
		return Email{
			Subject: fmt.Sprintf("Follow-up Scheduled: %s", orDash(ev.LeadName)),
			HTML: wrap("Follow-up Scheduled", join(
				leadRows(ev),
				row("Follow-up", ev.FollowupTitle),
				row("When", ev.FollowupDate),
			), true),
		}
	case domain.EventFollowupCompleted:
		return Email{
			Subject: fmt.Sprintf("Follow-up Completed: %s", orDash(ev.LeadName)),
			HTML: wrap("Follow-up Completed", join(
				leadRows(ev),
				row("Follow-up", ev.FollowupTitle),
			), true),
		}
	case domain.EventMeetingScheduled:
		return Email{
			Subject: fmt.Sprintf("Meeting Scheduled: %s", orDash(ev.LeadName)),
			HTML: wrap("Meeting Scheduled", join(
				leadRows(ev),
				meetingDetail(ev.MeetingTitle, ev.MeetingDate),
			), true),
		}
	default:
		return Email{
			Subject: fmt.Sprintf("CRM Notification: %s", orDash(ev.LeadName)),
			HTML:    wrap("CRM Notification", leadRows(ev), true),
		}
	}
}

func wrap(title, content string, withCTA bool) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head>")
	b.WriteString(styleBlock)
	b.WriteString("</head><body><div class=\"card\">")
	b.WriteString(fmt.Sprintf("<div class=\"header\"><h2>%s</h2></div>", html.EscapeString(title)))
	b.WriteString("<div class=\"content\">")
	b.WriteString(content)
	if withCTA {
		b.WriteString(fmt.Sprintf("<a class=\"cta\" href=\"%s\">Open in CRM</a>", crmLeadsURL))
	}
	b.WriteString("</div>")
	b.WriteString("<div class=\"footer\">EstateDesk CRM &middot; automated notification</div>")
	b.WriteString("</div></body></html>")
	return b.String()
}

func leadRows(ev domain.NotificationEvent) string {
	return join(
		row("Lead", ev.LeadName),
		row("Email", ev.LeadEmail),
		row("Phone", ev.LeadPhone),
	)
}

func row(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(
		"<div class=\"row\"><span class=\"label\">%s</span><br/><span class=\"value\">%s</span></div>",
		html.EscapeString(label), html.EscapeString(value),
	)
}

func beforeAfter(oldValue, newValue string) string {
	return fmt.Sprintf(
		"<div class=\"row\"><span class=\"label\">Status</span><br/>"+
			"<span class=\"status\">%s</span> &rarr; <span class=\"status\">%s</span></div>",
		html.EscapeString(orDash(oldValue)), html.EscapeString(orDash(newValue)),
	)
}

func meetingDetail(title, date string) string {
	return join(
		row("Meeting", title),
		row("Scheduled For", date),
	)
}

func join(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
