package leadintake

import (
	"context"
	"errors"
	"time"

	"github.com/estatedesk/lead-notification-service/internal/domain"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/store"
	"github.com/estatedesk/lead-notification-service/internal/observability/metrics"
	"github.com/estatedesk/lead-notification-service/internal/usecases/dispatch"
	"github.com/estatedesk/lead-notification-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnauthorized is returned when the bearer key is unknown or inactive.
var ErrUnauthorized = errors.New("unknown or inactive api key")

// UseCaseInterface is the contract the webhook handler depends on.
type UseCaseInterface interface {
	Execute(ctx context.Context, apiKey string, input WebhookInput) (WebhookOutput, error)
}

// UseCase authenticates an integration key, persists the incoming lead, and
// triggers the lead_created notification in-process.
type UseCase struct {
	keys       store.APIKeyStore
	leads      store.LeadStore
	dispatcher dispatch.UseCaseInterface
}

func NewUseCase(keys store.APIKeyStore, leads store.LeadStore, dispatcher dispatch.UseCaseInterface) *UseCase {
	return &UseCase{keys: keys, leads: leads, dispatcher: dispatcher}
}

func (u *UseCase) Execute(ctx context.Context, apiKey string, input WebhookInput) (WebhookOutput, error) {
	key, err := u.keys.FindActiveKey(ctx, apiKey)
	if err != nil || key == nil || !key.Active {
		if err != nil {
			logger.L().Warn("api key lookup failed", zap.Error(err))
		}
		return WebhookOutput{}, ErrUnauthorized
	}

	source := input.Source
	if source == "" {
		source = key.Source
	}

	lead := &domain.Lead{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Source:    source,
		Interest:  input.Interest,
		Status:    domain.LeadStatusNew,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.leads.CreateLead(ctx, lead); err != nil {
		return WebhookOutput{}, err
	}

	// Key usage tracking is best effort.
	if err := u.keys.TouchKey(ctx, apiKey); err != nil {
		logger.L().Warn("failed to update api key last_used_at", zap.Error(err))
	}

	metrics.LeadsIngested.WithLabelValues(source).Inc()

	// A notification problem never rolls back an already persisted lead.
	if _, err := u.dispatcher.Execute(ctx, dispatch.RawEvent{
		Type:         string(domain.EventLeadCreated),
		LeadID:       lead.ID,
		LeadName:     lead.Name,
		LeadEmail:    lead.Email,
		LeadPhone:    lead.Phone,
		LeadSource:   lead.Source,
		LeadInterest: lead.Interest,
	}, false); err != nil {
		logger.L().Error("lead_created dispatch failed after intake",
			zap.String("leadID", lead.ID),
			zap.Error(err),
		)
	}

	return WebhookOutput{Success: true, LeadID: lead.ID, Source: source}, nil
}
