package domain

import "encoding/json"

// Setting names as stored in the notification_settings table.
const (
	SettingEmailNotifications    = "email_notifications"
	SettingRecipients            = "notification_recipients"
	SettingWhatsAppNotifications = "whatsapp_notifications"
)

// EmailSettings configures the transactional email channel.
type EmailSettings struct {
	Enabled   bool   `json:"enabled"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
}

// RecipientSettings holds the admin/manager email lists and the per-event
// toggles maintained through the settings UI.
type RecipientSettings struct {
	AdminEmails   []string        `json:"admin_emails"`
	ManagerEmails []string        `json:"manager_emails"`
	Events        map[string]bool `json:"events"`
}

// WhatsAppSettings configures the WhatsApp channel. APIURL and APIKey may be
// empty, in which case sends are stubbed out and recorded as skipped.
type WhatsAppSettings struct {
	Enabled     bool     `json:"enabled"`
	APIURL      string   `json:"api_url"`
	APIKey      string   `json:"api_key"`
	AdminPhones []string `json:"admin_phones"`
	TeamPhones  []string `json:"team_phones"`
}

// Settings is the parsed view of the notification_settings rows a dispatch
// consumes. Missing rows or fields fall back to defaults rather than erroring.
type Settings struct {
	Email      EmailSettings
	Recipients RecipientSettings
	WhatsApp   WhatsAppSettings
}

// SettingsFromRaw parses the loosely-typed JSON blobs stored per setting name.
// Unparseable or absent blobs leave the defaults in place.
func SettingsFromRaw(raw map[string]json.RawMessage) Settings {
	s := defaultSettings()

	if blob, ok := raw[SettingEmailNotifications]; ok {
		var email EmailSettings
		if err := json.Unmarshal(blob, &email); err == nil {
			if email.FromName == "" {
				email.FromName = s.Email.FromName
			}
			if email.FromEmail == "" {
				email.FromEmail = s.Email.FromEmail
			}
			s.Email = email
		}
	}

	if blob, ok := raw[SettingRecipients]; ok {
		var rec RecipientSettings
		if err := json.Unmarshal(blob, &rec); err == nil {
			s.Recipients = rec
		}
	}

	if blob, ok := raw[SettingWhatsAppNotifications]; ok {
		var wa WhatsAppSettings
		if err := json.Unmarshal(blob, &wa); err == nil {
			s.WhatsApp = wa
		}
	}

	return s
}

func defaultSettings() Settings {
	return Settings{
		Email: EmailSettings{
			Enabled:   true,
			FromName:  DefaultFromName,
			FromEmail: DefaultFromEmail,
		},
		Recipients: RecipientSettings{},
		WhatsApp:   WhatsAppSettings{},
	}
}

// Default sender identity used when the email_notifications row is absent or
// leaves the fields blank.
const (
	DefaultFromName  = "EstateDesk CRM"
	DefaultFromEmail = "notifications@estatedesk.in"
)

// EventEnabled reports whether notifications for the given event type are
// switched on. Explicit toggles win; otherwise every type defaults to enabled
// except note_added, which is opt-in.
func (s Settings) EventEnabled(t EventType) bool {
	if v, ok := s.Recipients.Events[string(t)]; ok {
		return v
	}
	return t != EventNoteAdded
}
