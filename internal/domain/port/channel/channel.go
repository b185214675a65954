package channel

import (
	"context"

	"github.com/estatedesk/lead-notification-service/internal/domain"
)

// Credentials carries provider credentials that are configured per dispatch
// rather than at process start (the WhatsApp provider URL/key live in the
// notification_settings table and are read on every request).
type Credentials struct {
	APIURL string
	APIKey string
}

// Message is one outbound send request. Email channels deliver a single
// message addressed to every target; phone channels deliver per target.
type Message struct {
	FromName    string
	FromEmail   string
	Subject     string
	Body        string
	Targets     []string
	Credentials Credentials
}

// Delivery is the per-target outcome of a send.
type Delivery struct {
	Target     string                `json:"target"`
	Status     domain.DeliveryStatus `json:"status"`
	ProviderID string                `json:"provider_id,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// Channel is implemented by every delivery executor. Send never returns an
// error: failures are captured per delivery so one channel's problems cannot
// abort the rest of a dispatch.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) []Delivery
}
