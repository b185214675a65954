package domain

// EventType identifies a lead-lifecycle change that can trigger notifications.
type EventType string

const (
	EventLeadCreated       EventType = "lead_created"
	EventLeadAssigned      EventType = "lead_assigned"
	EventStatusChanged     EventType = "status_changed"
	EventNoteAdded         EventType = "note_added"
	EventFollowupScheduled EventType = "followup_scheduled"
	EventFollowupCompleted EventType = "followup_completed"
	EventMeetingScheduled  EventType = "meeting_scheduled"
)

// KnownEventTypes lists every event type the dispatcher understands.
var KnownEventTypes = []EventType{
	EventLeadCreated,
	EventLeadAssigned,
	EventStatusChanged,
	EventNoteAdded,
	EventFollowupScheduled,
	EventFollowupCompleted,
	EventMeetingScheduled,
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	for _, known := range KnownEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NotificationEvent is the canonical, snake_case shape of a dispatch request.
// Callers submit payloads in either snake_case or camelCase; the normalizer in
// the dispatch use case merges both variants into this record. Every field
// except Type is optional and zero values are handled permissively downstream.
type NotificationEvent struct {
	Type EventType `json:"type"`

	LeadID       string `json:"lead_id"`
	LeadName     string `json:"lead_name"`
	LeadEmail    string `json:"lead_email"`
	LeadPhone    string `json:"lead_phone"`
	LeadSource   string `json:"lead_source"`
	LeadInterest string `json:"lead_interest"`

	AssignedTo     string `json:"assigned_to"`
	AssignedToName string `json:"assigned_to_name"`

	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`

	Note string `json:"note"`

	FollowupTitle string `json:"followup_title"`
	FollowupDate  string `json:"followup_date"`

	MeetingTitle string `json:"meeting_title"`
	MeetingDate  string `json:"meeting_date"`

	NotifyCustomer bool `json:"notify_customer"`
}
