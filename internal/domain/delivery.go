package domain

// DeliveryStatus records the outcome of one delivery attempt on one channel.
type DeliveryStatus string

const (
	DeliverySent          DeliveryStatus = "sent"
	DeliveryFailed        DeliveryStatus = "failed"
	DeliverySkippedNoAPI  DeliveryStatus = "skipped_no_api"
	DeliveryInvalidNumber DeliveryStatus = "invalid_number"
	DeliveryError         DeliveryStatus = "error"
	DeliveryDisabled      DeliveryStatus = "disabled"
)

// EmailResult is the outcome of the internal (or customer) email send.
type EmailResult struct {
	Status     DeliveryStatus `json:"status"`
	ProviderID string         `json:"provider_id,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// WhatsAppResult is the per-phone outcome of a WhatsApp send.
type WhatsAppResult struct {
	Phone  string         `json:"phone"`
	Status DeliveryStatus `json:"status"`
	Error  string         `json:"error,omitempty"`
}

// CustomerResult groups the outcomes of the customer-facing channels used for
// meeting confirmations.
type CustomerResult struct {
	Email    *EmailResult    `json:"email,omitempty"`
	WhatsApp *WhatsAppResult `json:"whatsapp,omitempty"`
}

// DispatchOutcome aggregates every per-channel result of one dispatch. It is
// persisted to the integration log and published to the dispatch event stream.
type DispatchOutcome struct {
	EventType     EventType        `json:"event_type"`
	Recipients    []string         `json:"recipients"`
	Email         EmailResult      `json:"email"`
	WhatsApp      []WhatsAppResult `json:"whatsapp"`
	Customer      CustomerResult   `json:"customer"`
	WhatsAppSent  int              `json:"whatsapp_sent"`
	Disabled      bool             `json:"disabled"`
	CorrelationID string           `json:"correlation_id"`
}
