package auth_test

import (
	"testing"
	"time"

	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService(t *testing.T) {
	u := &user.User{
		ID:          1,
		Username:    "admin",
		DisplayName: "Administrador",
		Role:        user.RoleAdmin,
		Permissions: []string{user.PermDashboard, user.PermCashier},
	}

	t.Run("gera e valida um token", func(t *testing.T) {
		svc, err := auth.NewJWTService("segredo-de-teste", time.Hour)
		require.NoError(t, err)

		token, err := svc.GenerateToken(u)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "admin", claims.Username)
		assert.True(t, claims.HasPermission(user.PermCashier))
		assert.False(t, claims.HasPermission(user.PermUsers))
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		issuer, err := auth.NewJWTService("segredo-a", time.Hour)
		require.NoError(t, err)
		verifier, err := auth.NewJWTService("segredo-b", time.Hour)
		require.NoError(t, err)

		token, err := issuer.GenerateToken(u)
		require.NoError(t, err)

		_, err = verifier.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("segredo vazio não é aceito", func(t *testing.T) {
		_, err := auth.NewJWTService("", time.Hour)
		require.ErrorIs(t, err, auth.ErrMissingJWTKey)
	})

	t.Run("texto arbitrário não valida", func(t *testing.T) {
		svc, err := auth.NewJWTService("segredo-de-teste", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken("nao-e-um-token")
		assert.Error(t, err)
	})
}
