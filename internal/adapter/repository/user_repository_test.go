package repository_test

import (
	"context"
	"testing"

	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) *repository.UserRepository {
	t.Helper()

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	seed, err := repository.DefaultSeed()
	require.NoError(t, err)

	repo, err := repository.NewUserRepository(store, seed.Users)
	require.NoError(t, err)
	return repo
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("administrador inicial autentica com a senha padrão", func(t *testing.T) {
		repo := newUserRepo(t)

		admin, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)

		assert.True(t, admin.CheckPassword("123"))
		assert.False(t, admin.CheckPassword("errada"))
		assert.Equal(t, user.RoleAdmin, admin.Role)
		assert.True(t, admin.HasPermission(user.PermDashboard))
		assert.True(t, admin.HasPermission(user.PermFinance))
	})

	t.Run("nome de usuário é único", func(t *testing.T) {
		repo := newUserRepo(t)

		dup := &user.User{Username: "admin", DisplayName: "Outro Admin", Role: user.RoleStaff}
		require.NoError(t, dup.SetPassword("segredo"))

		err := repo.Create(ctx, dup)
		require.ErrorIs(t, err, repository.ErrUserDuplicateUsername)
	})

	t.Run("update com senha vazia preserva o hash atual", func(t *testing.T) {
		repo := newUserRepo(t)

		admin, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)

		admin.DisplayName = "Administrador Geral"
		admin.Password = ""
		require.NoError(t, repo.Update(ctx, admin))

		updated, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "Administrador Geral", updated.DisplayName)
		assert.True(t, updated.CheckPassword("123"))
	})

	t.Run("operador criado sem a aba não tem acesso a ela", func(t *testing.T) {
		repo := newUserRepo(t)

		staff := &user.User{
			Username:    "maria",
			DisplayName: "Maria Operadora",
			Role:        user.RoleStaff,
			Permissions: []string{user.PermDashboard, user.PermCashier},
		}
		require.NoError(t, staff.SetPassword("senha"))
		require.NoError(t, repo.Create(ctx, staff))

		found, err := repo.FindByUsername(ctx, "maria")
		require.NoError(t, err)
		assert.True(t, found.HasPermission(user.PermCashier))
		assert.False(t, found.HasPermission(user.PermUsers))
	})

	t.Run("usuário inexistente é erro", func(t *testing.T) {
		repo := newUserRepo(t)

		_, err := repo.FindByUsername(ctx, "ninguem")
		require.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
