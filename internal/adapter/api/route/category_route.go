package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterCategoryRoutes registra as rotas dos registros de categorias.
// O parâmetro :kind aceita product, employee ou admin.
func RegisterCategoryRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, categoryController *controller.CategoryController) {
	categories := r.Group("/categories")
	categories.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermCategories))
	{
		categories.GET("/:kind", categoryController.List)
		categories.POST("/:kind", categoryController.Add)
		categories.DELETE("/:kind/:name", categoryController.Remove)
	}
}
