// Package email implements the transactional email channel backed by the
// Resend HTTP API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
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

const ChannelName = "resend_email"

const defaultEndpoint = "https://api.resend.com/emails"

// ResendService implements channel.Channel against the Resend API.
type ResendService struct {
	apiKey    string
	endpoint  string
	fromName  string
	fromEmail string
	client    *http.Client
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// NewResendServiceFactory builds the Resend channel from configuration.
func NewResendServiceFactory(cfg *configs.Config) (channel.Channel, error) {
	if cfg.ResendAPIKey == "" {
		return nil, errors.New("RESEND_API_KEY cannot be empty")
	}

	fromName := cfg.EmailFromName
	if fromName == "" {
		fromName = domain.DefaultFromName
	}
	fromEmail := cfg.EmailFromAddress
	if fromEmail == "" {
		fromEmail = domain.DefaultFromEmail
	}

	return &ResendService{
		apiKey:    cfg.ResendAPIKey,
		endpoint:  defaultEndpoint,
		fromName:  fromName,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func init() {
	if err := registry.RegisterChannelFactory(ChannelName, NewResendServiceFactory); err != nil {
		panic(fmt.Sprintf("failed to register channel factory '%s': %v", ChannelName, err))
	}
}

// Name returns the channel name, which doubles as the integration log label.
func (s *ResendService) Name() string { return ChannelName }

// Send delivers one message addressed to every target. It returns a single
// delivery record covering the whole send, matching how the provider treats
// a multi-recipient message.
func (s *ResendService) Send(ctx context.Context, msg channel.Message) []channel.Delivery {
	target := strings.Join(msg.Targets, ",")

	if len(msg.Targets) == 0 {
		return []channel.Delivery{{Target: target, Status: domain.DeliveryError, Error: "no recipients"}}
	}

	fromName := msg.FromName
	if fromName == "" {
		fromName = s.fromName
	}
	fromEmail := msg.FromEmail
	if fromEmail == "" {
		fromEmail = s.fromEmail
	}

	body := sendRequest{
		From:    fmt.Sprintf("%s <%s>", fromName, fromEmail),
		To:      msg.Targets,
		Subject: msg.Subject,
		HTML:    msg.Body,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return []channel.Delivery{{Target: target, Status: domain.DeliveryError, Error: err.Error()}}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return []channel.Delivery{{Target: target, Status: domain.DeliveryError, Error: err.Error()}}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.L().Error("email send request failed",
			zap.String("channel", ChannelName),
			zap.Int("recipients", len(msg.Targets)),
			zap.Error(err),
		)
		return []channel.Delivery{{Target: target, Status: domain.DeliveryError, Error: err.Error()}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.L().Error("email provider returned non-OK status",
			zap.String("channel", ChannelName),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return []channel.Delivery{{
			Target: target,
			Status: domain.DeliveryFailed,
			Error:  fmt.Sprintf("provider status %d", resp.StatusCode),
		}}
	}

	var parsed sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		// Delivered, but the provider id is unavailable.
		logger.L().Warn("could not decode email provider response", zap.Error(err))
	}

	logger.L().Info("email sent",
		zap.String("channel", ChannelName),
		zap.Int("recipients", len(msg.Targets)),
		zap.String("providerID", parsed.ID),
	)
	return []channel.Delivery{{Target: target, Status: domain.DeliverySent, ProviderID: parsed.ID}}
}
