package store

import (
	"context"
	"encoding/json"

	"github.com/estatedesk/lead-notification-service/internal/domain"
)

// SettingsStore reads the notification_settings rows consumed on every
// dispatch.
type SettingsStore interface {
	LoadSettings(ctx context.Context) (domain.Settings, error)
}

// UserStore resolves the profile emails of users holding the manager role.
type UserStore interface {
	ListManagerEmails(ctx context.Context) ([]string, error)
}

// IntegrationLogEntry is one audit row recording an attempted dispatch and
// its aggregated outcome.
type IntegrationLogEntry struct {
	ID              string
	IntegrationType string
	LeadID          *string
	Request         json.RawMessage
	Response        json.RawMessage
	Error           string
}

// IntegrationLogStore persists dispatch audit rows.
type IntegrationLogStore interface {
	SaveLog(ctx context.Context, entry IntegrationLogEntry) error
}

// LeadStore persists leads created through the integration webhook.
type LeadStore interface {
	CreateLead(ctx context.Context, lead *domain.Lead) error
}

// APIKeyStore authenticates integration bearer keys.
type APIKeyStore interface {
	FindActiveKey(ctx context.Context, key string) (*domain.APIKey, error)
	TouchKey(ctx context.Context, key string) error
}
