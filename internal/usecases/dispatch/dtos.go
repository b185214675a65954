package dispatch

import "github.com/estatedesk/lead-notification-service/internal/domain"

// RawEvent is the inbound dispatch payload. Callers submit either snake_case
// (the CRM UI) or camelCase (the edge triggers), so both variants are bound
// here and merged by Normalize with snake_case precedence.
type RawEvent struct {
	Type string `json:"type"`

	LeadID      string `json:"lead_id"`
	LeadIDAlt   string `json:"leadId"`
	LeadName    string `json:"lead_name"`
	LeadNameAlt string `json:"leadName"`

	LeadEmail    string `json:"lead_email"`
	LeadEmailAlt string `json:"leadEmail"`
	LeadPhone    string `json:"lead_phone"`
	LeadPhoneAlt string `json:"leadPhone"`

	LeadSource      string `json:"lead_source"`
	LeadSourceAlt   string `json:"leadSource"`
	LeadInterest    string `json:"lead_interest"`
	LeadInterestAlt string `json:"leadInterest"`

	AssignedTo        string `json:"assigned_to"`
	AssignedToAlt     string `json:"assignedTo"`
	AssignedToName    string `json:"assigned_to_name"`
	AssignedToNameAlt string `json:"assignedToName"`

	OldStatus    string `json:"old_status"`
	OldStatusAlt string `json:"oldStatus"`
	NewStatus    string `json:"new_status"`
	NewStatusAlt string `json:"newStatus"`

	Note string `json:"note"`

	FollowupTitle    string `json:"followup_title"`
	FollowupTitleAlt string `json:"followupTitle"`
	FollowupDate     string `json:"followup_date"`
	FollowupDateAlt  string `json:"followupDate"`

	MeetingTitle    string `json:"meeting_title"`
	MeetingTitleAlt string `json:"meetingTitle"`
	MeetingDate     string `json:"meeting_date"`
	MeetingDateAlt  string `json:"meetingDate"`

	NotifyCustomer    *bool `json:"notify_customer"`
	NotifyCustomerAlt *bool `json:"notifyCustomer"`
}

// CustomerNotified reports which customer-facing channels were used.
type CustomerNotified struct {
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

// DebugInfo echoes raw channel results when the caller asks for them.
type DebugInfo struct {
	Email    domain.EmailResult      `json:"email"`
	WhatsApp []domain.WhatsAppResult `json:"whatsapp"`
}

// Response is the dispatch reply body.
type Response struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message"`
	Recipients       []string          `json:"recipients"`
	WhatsAppSent     int               `json:"whatsapp_sent"`
	CustomerNotified *CustomerNotified `json:"customer_notified,omitempty"`
	Debug            *DebugInfo        `json:"debug,omitempty"`
}

// ErrorResponse is the top-level failure reply body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
