package leadintake

import (
	"errors"
	"net/http"
	"strings"

	"github.com/estatedesk/lead-notification-service/internal/observability/tracing"
	"github.com/estatedesk/lead-notification-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	useCase UseCaseInterface
}

func NewHandler(useCase UseCaseInterface) *Handler {
	return &Handler{useCase: useCase}
}

// Handle accepts a lead submission authenticated with a bearer API key.
func (h *Handler) Handle(c *gin.Context) {
	ctx, span := tracing.Tracer.Start(c.Request.Context(), "LeadIntakeHandler.Handle")
	defer span.End()

	apiKey := bearerToken(c.GetHeader("Authorization"))
	if apiKey == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Error: "missing bearer token"})
		return
	}

	var input WebhookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Error: "invalid request payload: " + err.Error()})
		return
	}

	output, err := h.useCase.Execute(ctx, apiKey, input)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Success: false, Error: "invalid api key"})
			return
		}
		logger.L().Error("lead intake failed",
			zap.String("traceID", tracing.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Error: "failed to create lead"})
		return
	}

	c.JSON(http.StatusCreated, output)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
