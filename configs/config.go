package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	DatabaseDSN string `mapstructure:"DATABASE_DSN"`

	ResendAPIKey     string `mapstructure:"RESEND_API_KEY"`
	EmailFromName    string `mapstructure:"EMAIL_FROM_NAME"`
	EmailFromAddress string `mapstructure:"EMAIL_FROM_ADDRESS"`

	EnabledChannels []string `mapstructure:"ENABLED_CHANNELS"`

	KafkaBrokers       []string `mapstructure:"KAFKA_BROKERS"`
	KafkaDispatchTopic string   `mapstructure:"KAFKA_DISPATCH_TOPIC"`
	PublishMaxRetries  int      `mapstructure:"PUBLISH_MAX_RETRIES"`
	PublishBaseDelayMs int      `mapstructure:"PUBLISH_BASE_DELAY_MS"`

	OtelEndpoint    string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelInsecure    bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OtelServiceName string `mapstructure:"OTEL_SERVICE_NAME"`
}

var cfg *Config

// NewConfig loads configuration from a .env file (resolved relative to the
// module root) and the process environment. Environment variables win over
// file values.
func NewConfig(path string) (*Config, error) {
	basePath, err := GetBasePath(path)
	if err != nil {
		return nil, fmt.Errorf("error getting base path: %v", err)
	}

	vip := viper.New()
	vip.SetConfigType("env")
	vip.SetConfigName(".env")
	vip.AddConfigPath(basePath)
	vip.AutomaticEnv()

	if err := vip.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	vip.BindEnv("SERVER_ADDRESS")
	vip.BindEnv("DATABASE_DSN")
	vip.BindEnv("RESEND_API_KEY")
	vip.BindEnv("EMAIL_FROM_NAME")
	vip.BindEnv("EMAIL_FROM_ADDRESS")
	vip.BindEnv("ENABLED_CHANNELS")
	vip.BindEnv("KAFKA_BROKERS")
	vip.BindEnv("KAFKA_DISPATCH_TOPIC")
	vip.BindEnv("PUBLISH_MAX_RETRIES")
	vip.BindEnv("PUBLISH_BASE_DELAY_MS")
	vip.BindEnv("OTEL_EXPORTER_OTLP_ENDPOINT")
	vip.BindEnv("OTEL_EXPORTER_OTLP_INSECURE")
	vip.BindEnv("OTEL_SERVICE_NAME")

	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %v", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.ServerAddress == "" {
		c.ServerAddress = ":8080"
	}
	if len(c.EnabledChannels) == 0 {
		c.EnabledChannels = []string{"resend_email", "whatsapp"}
	}
	if c.PublishMaxRetries <= 0 {
		c.PublishMaxRetries = 3
	}
	if c.PublishBaseDelayMs <= 0 {
		c.PublishBaseDelayMs = 200
	}
	if c.OtelServiceName == "" {
		c.OtelServiceName = "lead-notification-service"
	}
}

// GetBasePath walks upward from the working directory until it finds the
// module root (the directory containing go.mod) and joins path onto it.
func GetBasePath(path string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(cwd, "go.mod")); err == nil {
			return filepath.Join(cwd, path), nil
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			return "", errors.New("go.mod not found")
		}
		cwd = parent
	}
}

// GetConfig returns the last loaded configuration.
func GetConfig() *Config {
	return cfg
}
