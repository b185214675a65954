package domain

import "time"

// LeadStatusNew is the status assigned to leads created through the webhook.
const LeadStatusNew = "new"

// Lead is a prospective customer captured from a portal, social channel, or
// website form.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"`
	Interest  string    `json:"interest"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// APIKey is a bearer credential identifying an external integration source
// allowed to submit leads.
type APIKey struct {
	Key    string
	Source string
	Active bool
}
