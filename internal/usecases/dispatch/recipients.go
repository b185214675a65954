package dispatch

import (
	"strings"

	"github.com/estatedesk/lead-notification-service/internal/domain"
)

// hardcodedAdminEmails always receive internal notifications, independent of
// whatever the settings UI holds. They back-stop a misconfigured or empty
// recipients row.
var hardcodedAdminEmails = []string{
	"sales@estatedesk.in",
	"admin@estatedesk.in",
}

// legacyDenylist holds addresses of departed staff that keep resurfacing in
// old settings rows. They are removed from every computed list, no matter
// which source contributed them.
var legacyDenylist = map[string]struct{}{
	"deepak.ex@estatedesk.in":  {},
	"alerts@oldcrm.example.in": {},
}

// RecipientSet is the structured output of recipient resolution, consumed
// uniformly by the email and WhatsApp executors.
type RecipientSet struct {
	// Emails is the internal recipient list, deduplicated, blanks dropped,
	// denylist applied.
	Emails []string
	// Phones is the WhatsApp target list for the internal team.
	Phones []string
	// Customer carries the lead's own contact details for the customer
	// channel, used only for meeting events.
	Customer CustomerTarget
	// Disabled marks a short-circuited dispatch: the per-event toggle is off
	// and the event type does not bypass it.
	Disabled bool
}

// CustomerTarget is the lead's own contact information.
type CustomerTarget struct {
	Email  string
	Phone  string
	Notify bool
}

// ResolveRecipients computes who gets notified for the event.
//
// meeting_scheduled always resolves regardless of the per-event toggle; every
// other type short-circuits to a disabled no-op when toggled off. Composition
// is type-specific: all events notify admins plus the assignee, and meetings
// additionally pull in managers (both the configured list and live role
// holders). The lead's own contact never joins the internal list; it is
// returned separately as the customer target.
func ResolveRecipients(ev domain.NotificationEvent, settings domain.Settings, managerEmails []string) RecipientSet {
	if ev.Type != domain.EventMeetingScheduled && !settings.EventEnabled(ev.Type) {
		return RecipientSet{Disabled: true, Emails: []string{}}
	}

	emails := make([]string, 0, 8)
	emails = append(emails, hardcodedAdminEmails...)
	emails = append(emails, settings.Recipients.AdminEmails...)
	emails = append(emails, ev.AssignedTo)

	if ev.Type == domain.EventMeetingScheduled {
		emails = append(emails, settings.Recipients.ManagerEmails...)
		emails = append(emails, managerEmails...)
	}

	phones := make([]string, 0, 4)
	phones = append(phones, settings.WhatsApp.AdminPhones...)
	if ev.Type == domain.EventMeetingScheduled {
		phones = append(phones, settings.WhatsApp.TeamPhones...)
	}

	set := RecipientSet{
		Emails: dedupe(applyDenylist(emails)),
		Phones: dedupe(phones),
	}

	if ev.Type == domain.EventMeetingScheduled {
		set.Customer = CustomerTarget{
			Email:  ev.LeadEmail,
			Phone:  ev.LeadPhone,
			Notify: ev.NotifyCustomer,
		}
	}

	return set
}

func applyDenylist(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if _, blocked := legacyDenylist[strings.ToLower(strings.TrimSpace(v))]; blocked {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	kept := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, v)
	}
	return kept
}
