package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/route"
	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	seed, err := repository.DefaultSeed()
	require.NoError(t, err)

	userRepo, err := repository.NewUserRepository(store, seed.Users)
	require.NoError(t, err)

	jwtService, err := auth.NewJWTService("segredo-de-teste", time.Hour)
	require.NoError(t, err)

	authController := controller.NewAuthController(userRepo, jwtService, logger.NewNopLogger())

	router := gin.New()
	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, jwtService, authController)

	// Rota protegida por aba para exercitar o middleware de permissão
	restricted := api.Group("/restrito")
	restricted.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermFinance))
	restricted.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

func login(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	t.Run("credenciais corretas retornam token e permissões", func(t *testing.T) {
		router := newAuthRouter(t)

		rec := login(t, router, "admin", "123")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "admin", resp.User.Username)
		assert.Contains(t, resp.User.Permissions, user.PermDashboard)
	})

	t.Run("senha errada é 401", func(t *testing.T) {
		router := newAuthRouter(t)

		rec := login(t, router, "admin", "errada")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("usuário desconhecido é 401", func(t *testing.T) {
		router := newAuthRouter(t)

		rec := login(t, router, "ninguem", "123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("sem token o acesso é negado", func(t *testing.T) {
		router := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restrito", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token válido com a aba dá acesso", func(t *testing.T) {
		router := newAuthRouter(t)

		rec := login(t, router, "admin", "123")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restrito", nil)
		req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("token sem a aba é 403", func(t *testing.T) {
		router := newAuthRouter(t)

		jwtService, err := auth.NewJWTService("segredo-de-teste", time.Hour)
		require.NoError(t, err)

		limited := &user.User{
			ID:          7,
			Username:    "caixa",
			Role:        user.RoleStaff,
			Permissions: []string{user.PermCashier},
		}
		token, err := jwtService.GenerateToken(limited)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restrito", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
