package stream

import (
	"context"

	"github.com/estatedesk/lead-notification-service/internal/domain"
)

// Publisher emits dispatch outcomes to an event stream for downstream
// analytics. Implementations are best-effort: the dispatcher logs publish
// failures and carries on.
type Publisher interface {
	PublishDispatch(ctx context.Context, outcome domain.DispatchOutcome) error
	Close() error
}
