package leadintake

import (
	"github.com/estatedesk/lead-notification-service/internal/domain/port/store"
	"github.com/estatedesk/lead-notification-service/internal/usecases/dispatch"
)

func NewLeadIntake(keys store.APIKeyStore, leads store.LeadStore, dispatcher dispatch.UseCaseInterface) *Handler {
	useCase := NewUseCase(keys, leads, dispatcher)
	return NewHandler(useCase)
}
