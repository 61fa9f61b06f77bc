package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterPOSRoutes registra as rotas do caixa (ponto de venda)
func RegisterPOSRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, checkoutController *controller.CheckoutController) {
	pos := r.Group("/pos")
	pos.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermCashier))
	{
		pos.POST("/checkout", checkoutController.Checkout)
	}
}
