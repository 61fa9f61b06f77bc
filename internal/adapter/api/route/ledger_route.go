package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterLedgerRoutes registra as rotas do livro-caixa financeiro
func RegisterLedgerRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, ledgerController *controller.LedgerController) {
	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermFinance))
	{
		transactions.GET("", ledgerController.List)
	}
}
