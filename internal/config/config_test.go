package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fundscout/internal/config"
)

func validConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Discovery.ConfidenceThreshold = 0.60
	cfg.Discovery.FailureBackoff = []time.Duration{time.Hour, 4 * time.Hour}
	cfg.Ingest.MaxBatchSize = 500

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	t.Run("threshold out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Discovery.ConfidenceThreshold = 1.5
		require.Error(t, cfg.Validate())

		cfg.Discovery.ConfidenceThreshold = -0.1
		require.Error(t, cfg.Validate())
	})

	t.Run("empty backoff schedule", func(t *testing.T) {
		cfg := validConfig()
		cfg.Discovery.FailureBackoff = nil
		require.Error(t, cfg.Validate())
	})

	t.Run("non-positive backoff entry", func(t *testing.T) {
		cfg := validConfig()
		cfg.Discovery.FailureBackoff = []time.Duration{time.Hour, 0}
		require.Error(t, cfg.Validate())
	})

	t.Run("non-positive batch size", func(t *testing.T) {
		cfg := validConfig()
		cfg.Ingest.MaxBatchSize = 0
		require.Error(t, cfg.Validate())
	})
}
