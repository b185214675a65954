package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/estatedesk/lead-notification-service/configs"
	"github.com/estatedesk/lead-notification-service/internal/app/middleware"
	"github.com/estatedesk/lead-notification-service/internal/app/registry"
	"github.com/estatedesk/lead-notification-service/internal/domain/port/channel"
	portstream "github.com/estatedesk/lead-notification-service/internal/domain/port/stream"
	_ "github.com/estatedesk/lead-notification-service/internal/infrastructure/channel/email"
	_ "github.com/estatedesk/lead-notification-service/internal/infrastructure/channel/whatsapp"
	"github.com/estatedesk/lead-notification-service/internal/infrastructure/store"
	"github.com/estatedesk/lead-notification-service/internal/infrastructure/stream"
	"github.com/estatedesk/lead-notification-service/internal/observability/metrics"
	"github.com/estatedesk/lead-notification-service/internal/observability/tracing"
	"github.com/estatedesk/lead-notification-service/internal/usecases/dispatch"
	"github.com/estatedesk/lead-notification-service/internal/usecases/leadintake"
	"github.com/estatedesk/lead-notification-service/pkg/logger"
)

func main() {
	if err := logger.Initialize(false); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	cfg, err := configs.NewConfig(".")
	if err != nil {
		logger.L().Fatal("Failed to load config", zap.Error(err))
	}

	shutdownTracer, err := tracing.InitTracer(cfg)
	if err != nil {
		logger.L().Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.L().Error("Error shutting down tracer", zap.Error(err))
		}
	}()

	db, err := store.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	channels := buildChannels(cfg)

	var publisher portstream.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := stream.NewKafkaPublisher(stream.Config{
			Brokers:    cfg.KafkaBrokers,
			Topic:      cfg.KafkaDispatchTopic,
			MaxRetries: cfg.PublishMaxRetries,
			BaseDelay:  time.Duration(cfg.PublishBaseDelayMs) * time.Millisecond,
		})
		if err != nil {
			logger.L().Fatal("Failed to initialize Kafka publisher", zap.Error(err))
		}
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.L().Error("Error closing Kafka publisher", zap.Error(err))
			}
		}()
		publisher = kafkaPublisher
	} else {
		logger.L().Info("Kafka brokers not configured, dispatch outcomes will not be published")
	}

	dispatchUseCase := dispatch.NewUseCase(
		store.NewSettingsRepository(db),
		store.NewUserRepository(db),
		store.NewIntegrationLogRepository(db),
		channels,
		publisher,
	)
	dispatchHandler := dispatch.NewHandler(dispatchUseCase)
	intakeHandler := leadintake.NewLeadIntake(
		store.NewAPIKeyRepository(db),
		store.NewLeadRepository(db),
		dispatchUseCase,
	)

	srv := gin.New()
	srv.Use(gin.Logger())
	srv.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L().Error("panic recovered in handler", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dispatch.ErrorResponse{
			Success: false,
			Error:   "internal server error",
		})
	}))
	srv.Use(otelgin.Middleware(cfg.OtelServiceName))
	srv.Use(middleware.CORS())
	srv.Use(middleware.RequestMetrics())

	srv.POST("/api/notifications/dispatch", dispatchHandler.Handle)
	srv.POST("/api/leads/webhook", intakeHandler.Handle)
	srv.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))
	srv.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpServer := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: srv,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L().Info("Server starting", zap.String("address", cfg.ServerAddress))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("Error during server shutdown", zap.Error(err))
	}
	logger.L().Info("Server stopped")
}

// buildChannels constructs every configured delivery channel through the
// registry. A channel whose factory fails (for example a missing provider
// key) is skipped with a warning so the remaining channels still run.
func buildChannels(cfg *configs.Config) map[string]channel.Channel {
	channels := make(map[string]channel.Channel, len(cfg.EnabledChannels))
	for _, name := range cfg.EnabledChannels {
		factory, err := registry.GetChannelFactory(name)
		if err != nil {
			logger.L().Warn("unknown channel, skipping", zap.String("channel", name), zap.Error(err))
			continue
		}
		ch, err := factory(cfg)
		if err != nil {
			logger.L().Warn("failed to initialize channel, skipping",
				zap.String("channel", name),
				zap.Error(err),
			)
			continue
		}
		channels[name] = ch
		logger.L().Info("channel initialized", zap.String("channel", name))
	}
	return channels
}
