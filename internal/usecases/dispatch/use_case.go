package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/estatedesk/lead-notification-service/internal/domain"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/channel"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/store"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/stream"
	"github.com/estatedesk/lead-notification-service/internal/observability/metrics"
	"github.com/estatedesk/lead-notification-service/internal/templates"
	"github.com/estatedesk/lead-notification-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IntegrationType is the label stamped on every audit row this dispatcher
// writes, kept for compatibility with the CRM's integration log views.
const IntegrationType = "resend_email"

// UseCaseInterface is the contract the HTTP handler depends on.
type UseCaseInterface interface {
	Execute(ctx context.Context, raw RawEvent, debug bool) (Response, error)
}

// UseCase runs one dispatch: normalize, check enablement, resolve recipients,
// render, fan out to the channels, write the audit row, publish the outcome.
type UseCase struct {
	settings  store.SettingsStore
	users     store.UserStore
	logs      store.IntegrationLogStore
	channels  map[string]channel.Channel
	publisher stream.Publisher
}

func NewUseCase(
	settings store.SettingsStore,
	users store.UserStore,
	logs store.IntegrationLogStore,
	channels map[string]channel.Channel,
	publisher stream.Publisher,
) *UseCase {
	return &UseCase{
		settings:  settings,
		users:     users,
		logs:      logs,
		channels:  channels,
		publisher: publisher,
	}
}

// Execute processes one notification event. Individual channel failures are
// captured in the outcome and never abort the remaining channels; the only
// way Execute fails outright is a panic, which the HTTP layer converts to a
// 500 response.
func (u *UseCase) Execute(ctx context.Context, raw RawEvent, debug bool) (Response, error) {
	start := time.Now()
	ev := Normalize(raw)

	settings := u.loadSettings(ctx)
	managers := u.loadManagers(ctx, ev)

	recipients := ResolveRecipients(ev, settings, managers)
	if recipients.Disabled {
		logger.L().Info("notifications disabled for event type, skipping",
			zap.String("eventType", string(ev.Type)),
		)
		metrics.DispatchesTotal.WithLabelValues(string(ev.Type), "disabled").Inc()
		metrics.ObserveDispatch(string(ev.Type), true, start)
		return Response{
			Success:    true,
			Message:    fmt.Sprintf("notifications disabled for %s", ev.Type),
			Recipients: []string{},
		}, nil
	}

	outcome := domain.DispatchOutcome{
		EventType:     ev.Type,
		Recipients:    recipients.Emails,
		CorrelationID: uuid.NewString(),
	}

	// Fixed sequence: internal email, customer channels, team WhatsApp. The
	// sends are independent; ordering is an implementation choice and not a
	// correctness requirement.
	outcome.Email = u.sendInternalEmail(ctx, ev, settings, recipients)
	u.sendCustomerChannels(ctx, ev, settings, recipients, &outcome)
	outcome.WhatsApp = u.sendTeamWhatsApp(ctx, ev, settings, recipients)

	for _, r := range outcome.WhatsApp {
		if r.Status == domain.DeliverySent {
			outcome.WhatsAppSent++
		}
	}

	u.writeAuditLog(ctx, raw, ev, outcome)
	u.publishOutcome(ctx, outcome)

	success := outcome.Email.Status != domain.DeliveryFailed && outcome.Email.Status != domain.DeliveryError
	metrics.DispatchesTotal.WithLabelValues(string(ev.Type), dispatchOutcomeLabel(success)).Inc()
	metrics.ObserveDispatch(string(ev.Type), success, start)

	resp := Response{
		Success:      true,
		Message:      fmt.Sprintf("Notification processed for %d recipient(s)", len(recipients.Emails)),
		Recipients:   recipients.Emails,
		WhatsAppSent: outcome.WhatsAppSent,
	}
	if ev.Type == domain.EventMeetingScheduled {
		resp.CustomerNotified = &CustomerNotified{
			Email:    outcome.Customer.Email != nil && outcome.Customer.Email.Status == domain.DeliverySent,
			WhatsApp: outcome.Customer.WhatsApp != nil && outcome.Customer.WhatsApp.Status == domain.DeliverySent,
		}
	}
	if debug {
		resp.Debug = &DebugInfo{Email: outcome.Email, WhatsApp: outcome.WhatsApp}
	}
	return resp, nil
}

// loadSettings falls back to defaults when the settings read fails; a broken
// settings table should degrade to the hardcoded admin list, not block
// notifications.
func (u *UseCase) loadSettings(ctx context.Context) domain.Settings {
	settings, err := u.settings.LoadSettings(ctx)
	if err != nil {
		logger.L().Warn("failed to load notification settings, using defaults", zap.Error(err))
		return domain.SettingsFromRaw(nil)
	}
	return settings
}

func (u *UseCase) loadManagers(ctx context.Context, ev domain.NotificationEvent) []string {
	// Managers only join meeting notifications; skip the query otherwise.
	if ev.Type != domain.EventMeetingScheduled {
		return nil
	}
	managers, err := u.users.ListManagerEmails(ctx)
	if err != nil {
		logger.L().Warn("failed to list manager emails", zap.Error(err))
		return nil
	}
	return managers
}

func (u *UseCase) sendInternalEmail(ctx context.Context, ev domain.NotificationEvent, settings domain.Settings, recipients RecipientSet) domain.EmailResult {
	ch, ok := u.channels["resend_email"]
	if !ok || !settings.Email.Enabled {
		return domain.EmailResult{Status: domain.DeliveryDisabled}
	}
	if len(recipients.Emails) == 0 {
		return domain.EmailResult{Status: domain.DeliveryError, Error: "no recipients"}
	}

	rendered := templates.RenderInternalEmail(ev)
	deliveries := ch.Send(ctx, channel.Message{
		FromName:  settings.Email.FromName,
		FromEmail: settings.Email.FromEmail,
		Subject:   rendered.Subject,
		Body:      rendered.HTML,
		Targets:   recipients.Emails,
	})
	return emailResultFrom(deliveries)
}

func (u *UseCase) sendCustomerChannels(ctx context.Context, ev domain.NotificationEvent, settings domain.Settings, recipients RecipientSet, outcome *domain.DispatchOutcome) {
	if ev.Type != domain.EventMeetingScheduled || !recipients.Customer.Notify {
		return
	}

	if emailCh, ok := u.channels["resend_email"]; ok && settings.Email.Enabled && recipients.Customer.Email != "" {
		rendered := templates.RenderCustomerMeetingEmail(ev)
		deliveries := emailCh.Send(ctx, channel.Message{
			FromName:  settings.Email.FromName,
			FromEmail: settings.Email.FromEmail,
			Subject:   rendered.Subject,
			Body:      rendered.HTML,
			Targets:   []string{recipients.Customer.Email},
		})
		result := emailResultFrom(deliveries)
		outcome.Customer.Email = &result
	}

	if waCh, ok := u.channels["whatsapp"]; ok && settings.WhatsApp.Enabled && recipients.Customer.Phone != "" {
		deliveries := waCh.Send(ctx, channel.Message{
			Body:    templates.RenderCustomerWhatsAppMessage(ev),
			Targets: []string{recipients.Customer.Phone},
			Credentials: channel.Credentials{
				APIURL: settings.WhatsApp.APIURL,
				APIKey: settings.WhatsApp.APIKey,
			},
		})
		if len(deliveries) > 0 {
			result := domain.WhatsAppResult{
				Phone:  deliveries[0].Target,
				Status: deliveries[0].Status,
				Error:  deliveries[0].Error,
			}
			outcome.Customer.WhatsApp = &result
			metrics.DeliveriesTotal.WithLabelValues("whatsapp", string(result.Status)).Inc()
		}
	}
}

func (u *UseCase) sendTeamWhatsApp(ctx context.Context, ev domain.NotificationEvent, settings domain.Settings, recipients RecipientSet) []domain.WhatsAppResult {
	ch, ok := u.channels["whatsapp"]
	if !ok || !settings.WhatsApp.Enabled || len(recipients.Phones) == 0 {
		return nil
	}

	deliveries := ch.Send(ctx, channel.Message{
		Body:    templates.RenderWhatsAppMessage(ev),
		Targets: recipients.Phones,
		Credentials: channel.Credentials{
			APIURL: settings.WhatsApp.APIURL,
			APIKey: settings.WhatsApp.APIKey,
		},
	})

	results := make([]domain.WhatsAppResult, 0, len(deliveries))
	for _, d := range deliveries {
		results = append(results, domain.WhatsAppResult{Phone: d.Target, Status: d.Status, Error: d.Error})
		metrics.DeliveriesTotal.WithLabelValues("whatsapp", string(d.Status)).Inc()
	}
	return results
}

// writeAuditLog records the dispatch regardless of the delivery results.
// Failures here are logged and swallowed so audit problems never fail the
// request.
func (u *UseCase) writeAuditLog(ctx context.Context, raw RawEvent, ev domain.NotificationEvent, outcome domain.DispatchOutcome) {
	request, err := json.Marshal(raw)
	if err != nil {
		request = []byte("{}")
	}
	response, err := json.Marshal(outcome)
	if err != nil {
		response = []byte("{}")
	}

	entry := store.IntegrationLogEntry{
		ID:              outcome.CorrelationID,
		IntegrationType: IntegrationType,
		Request:         request,
		Response:        response,
	}
	if ev.LeadID != "" {
		leadID := ev.LeadID
		entry.LeadID = &leadID
	}
	if outcome.Email.Status == domain.DeliveryFailed || outcome.Email.Status == domain.DeliveryError {
		entry.Error = outcome.Email.Error
	}

	if err := u.logs.SaveLog(ctx, entry); err != nil {
		logger.L().Warn("failed to write integration log",
			zap.String("correlationID", outcome.CorrelationID),
			zap.Error(err),
		)
	}
}

func (u *UseCase) publishOutcome(ctx context.Context, outcome domain.DispatchOutcome) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.PublishDispatch(ctx, outcome); err != nil {
		logger.L().Warn("failed to publish dispatch outcome",
			zap.String("correlationID", outcome.CorrelationID),
			zap.Error(err),
		)
	}
}

func emailResultFrom(deliveries []channel.Delivery) domain.EmailResult {
	if len(deliveries) == 0 {
		return domain.EmailResult{Status: domain.DeliveryError, Error: "no delivery result"}
	}
	d := deliveries[0]
	result := domain.EmailResult{Status: d.Status, ProviderID: d.ProviderID, Error: d.Error}
	metrics.DeliveriesTotal.WithLabelValues("resend_email", string(d.Status)).Inc()
	return result
}

func dispatchOutcomeLabel(success bool) string {
	if success {
		return "sent"
	}
	return "error"
}
