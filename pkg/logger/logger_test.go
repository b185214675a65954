package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	original := log
	defer func() { log = original }()

	tests := []struct {
		name          string
		isDevelopment bool
		logLevelEnv   string
		expectedLevel zapcore.Level
	}{
		{
			name:          "production defaults to info",
			isDevelopment: false,
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "development defaults to debug",
			isDevelopment: true,
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name:          "env var raises level",
			isDevelopment: false,
			logLevelEnv:   "warn",
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "env var lowers level",
			isDevelopment: false,
			logLevelEnv:   "debug",
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name:          "invalid env var falls back",
			isDevelopment: false,
			logLevelEnv:   "shouting",
			expectedLevel: zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log = nil
			if tt.logLevelEnv != "" {
				t.Setenv("LOG_LEVEL", tt.logLevelEnv)
			} else {
				os.Unsetenv("LOG_LEVEL")
			}

			err := Initialize(tt.isDevelopment)
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.True(t, log.Core().Enabled(tt.expectedLevel),
				"expected level %s to be enabled", tt.expectedLevel)
			if tt.expectedLevel > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.expectedLevel-1),
					"level below %s should be disabled", tt.expectedLevel)
			}
		})
	}
}

func TestLReturnsNopWhenUninitialized(t *testing.T) {
	original := log
	defer func() { log = original }()

	log = nil
	require.NotNil(t, L())
	assert.NoError(t, Sync())
}
