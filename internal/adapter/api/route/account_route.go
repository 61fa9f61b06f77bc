package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterAccountRoutes registra as rotas de contas correntes
func RegisterAccountRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, accountController *controller.AccountController) {
	accounts := r.Group("/accounts")
	accounts.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermAccounts))
	{
		accounts.GET("", accountController.List)
		accounts.POST("", accountController.Create)
	}
}
