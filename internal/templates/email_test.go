package templates

import (
	"testing"

	"github.com/estatedesk/lead-notification-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderInternalEmail(t *testing.T) {
	tests := []struct {
		name          string
		event         domain.NotificationEvent
		wantSubject   string
		wantInBody    []string
		wantNotInBody []string
	}{
		{
			name: "lead created",
			event: domain.NotificationEvent{
				Type:       domain.EventLeadCreated,
				LeadName:   "Jane Doe",
				LeadEmail:  "jane@x.com",
				LeadSource: "facebook",
			},
			wantSubject: "New Lead: Jane Doe",
			wantInBody:  []string{"Jane Doe", "jane@x.com", "facebook", crmLeadsURL},
		},
		{
			name: "status changed renders before and after",
			event: domain.NotificationEvent{
				Type:      domain.EventStatusChanged,
				LeadName:  "Ravi",
				OldStatus: "contacted",
				NewStatus: "site_visit",
			},
			wantSubject: "Status Update: Ravi",
			wantInBody:  []string{"contacted", "site_visit", "&rarr;"},
		},
		{
			name: "meeting scheduled includes detail block",
			event: domain.NotificationEvent{
				Type:         domain.EventMeetingScheduled,
				LeadName:     "John",
				MeetingTitle: "Site Visit",
				MeetingDate:  "Jan 1, 2025 10:00 AM",
			},
			wantSubject: "Meeting Scheduled: John",
			wantInBody:  []string{"Site Visit", "Jan 1, 2025 10:00 AM"},
		},
		{
			name:        "unknown type falls back to generic",
			event:       domain.NotificationEvent{Type: "mystery", LeadName: "X"},
			wantSubject: "CRM Notification: X",
			wantInBody:  []string{"CRM Notification"},
		},
		{
			name: "values are html escaped",
			event: domain.NotificationEvent{
				Type:     domain.EventNoteAdded,
				LeadName: "Eve",
				Note:     "<script>alert(1)</script>",
			},
			wantSubject:   "Note Added: Eve",
			wantInBody:    []string{"&lt;script&gt;"},
			wantNotInBody: []string{"<script>alert(1)</script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderInternalEmail(tt.event)
			assert.Equal(t, tt.wantSubject, got.Subject)
			for _, want := range tt.wantInBody {
				assert.Contains(t, got.HTML, want)
			}
			for _, notWant := range tt.wantNotInBody {
				assert.NotContains(t, got.HTML, notWant)
			}
		})
	}
}

func TestRenderInternalEmailSharedSkeleton(t *testing.T) {
	for _, et := range domain.KnownEventTypes {
		got := RenderInternalEmail(domain.NotificationEvent{Type: et, LeadName: "L"})
		assert.Contains(t, got.HTML, "<style>", "event %s should carry the shared style block", et)
		assert.Contains(t, got.HTML, "class=\"footer\"", "event %s should carry the footer", et)
	}
}

func TestRenderCustomerMeetingEmail(t *testing.T) {
	ev := domain.NotificationEvent{
		Type:         domain.EventMeetingScheduled,
		LeadName:     "John",
		MeetingTitle: "Site Visit",
		MeetingDate:  "Jan 1, 2025 10:00 AM",
	}

	got := RenderCustomerMeetingEmail(ev)

	assert.Equal(t, "Meeting Confirmed: Site Visit", got.Subject)
	assert.Contains(t, got.HTML, "Dear John")
	assert.Contains(t, got.HTML, "Site Visit")
	assert.NotContains(t, got.HTML, crmLeadsURL, "customer email must not link to the CRM")
}

func TestRenderCustomerMeetingEmailNoName(t *testing.T) {
	got := RenderCustomerMeetingEmail(domain.NotificationEvent{Type: domain.EventMeetingScheduled})
	assert.Contains(t, got.HTML, "Dear there")
}
