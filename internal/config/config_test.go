package config_test

import (
	"testing"
	"time"

	"github.com/quintadosovos/erp-avicola/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults valem sem arquivo nem ambiente", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "./data", cfg.Storage.Dir)
		assert.True(t, cfg.Storage.Seed)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenExpiration)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("variáveis de ambiente com prefixo QO sobrescrevem", func(t *testing.T) {
		t.Setenv("QO_SERVER_PORT", "9090")
		t.Setenv("QO_AUTH_JWTSECRET", "segredo-do-ambiente")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "segredo-do-ambiente", cfg.Auth.JWTSecret)
	})

	t.Run("porta inválida é rejeitada", func(t *testing.T) {
		t.Setenv("QO_SERVER_PORT", "-1")

		_, err := config.LoadConfig(t.TempDir())
		assert.Error(t, err)
	})
}
