package dispatch

import (
	"github.com/estatedesk/lead-notification-service/internal/domain/port/channel"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/store"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/stream"
)

func NewDispatch(
	settings store.SettingsStore,
	users store.UserStore,
	logs store.IntegrationLogStore,
	channels map[string]channel.Channel,
	publisher stream.Publisher,
) *Handler {
	useCase := NewUseCase(settings, users, logs, channels, publisher)
	return NewHandler(useCase)
}
