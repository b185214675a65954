// Package whatsapp implements the WhatsApp delivery channel. Provider
// credentials are stored in the whatsapp_notifications settings row and
// passed in with each message rather than configured at startup.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/estatedesk/lead-notification-service/configs"
	"github.com/estatedesk/lead-notification-service/internal/app/registry"
	"github.com/estatedesk/lead-notification-service/internal/domain"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/channel"
	"github.com/estatedesk/lead-notification-service/pkg/logger"
	"go.uber.org/zap"
)

const ChannelName = "whatsapp"

// Service implements channel.Channel for WhatsApp.
type Service struct {
	client *http.Client
}

type providerPayload struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

// NewServiceFactory builds the WhatsApp channel.
func NewServiceFactory(cfg *configs.Config) (channel.Channel, error) {
	return &Service{client: &http.Client{Timeout: 15 * time.Second}}, nil
}

func init() {
	if err := registry.RegisterChannelFactory(ChannelName, NewServiceFactory); err != nil {
		panic(fmt.Sprintf("failed to register channel factory '%s': %v", ChannelName, err))
	}
}

func (s *Service) Name() string { return ChannelName }

// Send delivers the message to each target phone independently. A target that
// strips down to no digits is recorded as invalid without any provider call.
// When provider credentials are absent, every target is recorded as skipped
// and the content is only logged; the integration is live but the provider
// hookup is still pending.
func (s *Service) Send(ctx context.Context, msg channel.Message) []channel.Delivery {
	deliveries := make([]channel.Delivery, 0, len(msg.Targets))

	for _, raw := range msg.Targets {
		digits := stripNonDigits(raw)
		if digits == "" {
			deliveries = append(deliveries, channel.Delivery{
				Target: raw,
				Status: domain.DeliveryInvalidNumber,
			})
			continue
		}

		if msg.Credentials.APIURL == "" || msg.Credentials.APIKey == "" {
			logger.L().Warn("whatsapp provider not configured, message not sent",
				zap.String("phone", digits),
				zap.String("message", msg.Body),
			)
			deliveries = append(deliveries, channel.Delivery{
				Target: digits,
				Status: domain.DeliverySkippedNoAPI,
			})
			continue
		}

		deliveries = append(deliveries, s.deliver(ctx, msg.Credentials, digits, msg.Body))
	}

	return deliveries
}

func (s *Service) deliver(ctx context.Context, creds channel.Credentials, phone, text string) channel.Delivery {
	payload, err := json.Marshal(providerPayload{Number: phone, Message: text})
	if err != nil {
		return channel.Delivery{Target: phone, Status: domain.DeliveryError, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, creds.APIURL, bytes.NewReader(payload))
	if err != nil {
		return channel.Delivery{Target: phone, Status: domain.DeliveryError, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", creds.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.L().Error("whatsapp send request failed",
			zap.String("phone", phone),
			zap.Error(err),
		)
		return channel.Delivery{Target: phone, Status: domain.DeliveryError, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.L().Warn("whatsapp provider returned non-OK status",
			zap.String("phone", phone),
			zap.Int("status", resp.StatusCode),
		)
		return channel.Delivery{
			Target: phone,
			Status: domain.DeliveryFailed,
			Error:  fmt.Sprintf("provider status %d", resp.StatusCode),
		}
	}

	return channel.Delivery{Target: phone, Status: domain.DeliverySent}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
