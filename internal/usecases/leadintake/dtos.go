package leadintake

// WebhookInput is the lead payload submitted by external integrations.
type WebhookInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Source   string `json:"source"`
	Interest string `json:"interest"`
}

// WebhookOutput acknowledges an accepted lead.
type WebhookOutput struct {
	Success bool   `json:"success"`
	LeadID  string `json:"lead_id"`
	Source  string `json:"source"`
}

// ErrorResponse is the failure reply body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
