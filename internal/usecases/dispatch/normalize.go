package dispatch

import "github.com/estatedesk/lead-notification-service/internal/domain"

// Normalize merges the two inbound naming conventions into the canonical
// snake_case event. When a field is present in both variants the snake_case
// value wins. Pure function; missing fields stay zero and are handled
// permissively downstream.
func Normalize(raw RawEvent) domain.NotificationEvent {
	return domain.NotificationEvent{
		Type:           domain.EventType(raw.Type),
		LeadID:         pick(raw.LeadID, raw.LeadIDAlt),
		LeadName:       pick(raw.LeadName, raw.LeadNameAlt),
		LeadEmail:      pick(raw.LeadEmail, raw.LeadEmailAlt),
		LeadPhone:      pick(raw.LeadPhone, raw.LeadPhoneAlt),
		LeadSource:     pick(raw.LeadSource, raw.LeadSourceAlt),
		LeadInterest:   pick(raw.LeadInterest, raw.LeadInterestAlt),
		AssignedTo:     pick(raw.AssignedTo, raw.AssignedToAlt),
		AssignedToName: pick(raw.AssignedToName, raw.AssignedToNameAlt),
		OldStatus:      pick(raw.OldStatus, raw.OldStatusAlt),
		NewStatus:      pick(raw.NewStatus, raw.NewStatusAlt),
		Note:           raw.Note,
		FollowupTitle:  pick(raw.FollowupTitle, raw.FollowupTitleAlt),
		FollowupDate:   pick(raw.FollowupDate, raw.FollowupDateAlt),
		MeetingTitle:   pick(raw.MeetingTitle, raw.MeetingTitleAlt),
		MeetingDate:    pick(raw.MeetingDate, raw.MeetingDateAlt),
		NotifyCustomer: pickBool(raw.NotifyCustomer, raw.NotifyCustomerAlt),
	}
}

func pick(snake, camel string) string {
	if snake != "" {
		return snake
	}
	return camel
}

func pickBool(snake, camel *bool) bool {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return false
}
