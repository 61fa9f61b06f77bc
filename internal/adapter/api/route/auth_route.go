package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterAuthRoutes registra as rotas de autenticação do painel
func RegisterAuthRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		// Login não requer autenticação
		authRouter.POST("/login", authController.Login)

		authRouter.GET("/me", middleware.AuthMiddleware(jwtService), authController.Me)
	}
}
