package dispatch

import (
	"net/http"

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

// Handle accepts a notification event and runs the dispatch synchronously.
// Malformed payloads and unexpected failures both come back as a 500 with
// {"success": false, "error": ...}; per-channel delivery problems do not,
// they are reported inside a 200 response.
func (h *Handler) Handle(c *gin.Context) {
	ctx, span := tracing.Tracer.Start(c.Request.Context(), "DispatchHandler.Handle")
	defer span.End()

	var raw RawEvent
	if err := c.ShouldBindJSON(&raw); err != nil {
		logger.L().Warn("rejecting malformed dispatch payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "invalid request payload: " + err.Error(),
		})
		return
	}

	debug := c.Query("debug") == "1" || c.Query("debug") == "true"

	resp, err := h.useCase.Execute(ctx, raw, debug)
	if err != nil {
		logger.L().Error("dispatch failed",
			zap.String("eventType", raw.Type),
			zap.String("traceID", tracing.TraceIDFromContext(ctx)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "failed to process notification",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
