package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Initialize sets up the global zap logger. Development mode switches to the
// console encoder with colored levels; production emits JSON. The LOG_LEVEL
// environment variable overrides the default level in either mode.
func Initialize(isDevelopment bool) error {
	var cfg zap.Config
	if isDevelopment {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncoderConfig.MessageKey = "message"
	}

	cfg.Level.SetLevel(levelFromEnv(isDevelopment))

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log = zap.NewNop()
		return err
	}
	log = built

	// Route anything still using the standard library log package through zap.
	zap.RedirectStdLog(log)
	return nil
}

func levelFromEnv(isDevelopment bool) zapcore.Level {
	fallback := zap.InfoLevel
	if isDevelopment {
		fallback = zap.DebugLevel
	}
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return fallback
	}
	var level zapcore.Level
	if err := level.Set(raw); err != nil {
		return fallback
	}
	return level
}

// L returns the global logger instance.
func L() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() error {
	if log != nil {
		return log.Sync()
	}
	return nil
}
