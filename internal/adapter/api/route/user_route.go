package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterUserRoutes registra as rotas de gestão de usuários do painel
func RegisterUserRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermUsers))
	{
		users.GET("", userController.List)
		users.POST("", userController.Create)
		users.PUT("/:id", userController.Update)
		users.DELETE("/:id", userController.Delete)
	}
}
