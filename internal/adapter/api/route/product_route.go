package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/middleware"
)

// RegisterProductRoutes registra as rotas do catálogo de produtos.
// Consulta é pública (vitrine da loja); escrita exige a aba de estoque.
func RegisterProductRoutes(r *gin.RouterGroup, jwtService *auth.JWTService, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.GET("", productController.List)
		products.GET("/:id", productController.GetByID)
	}

	managed := r.Group("/products")
	managed.Use(middleware.AuthMiddleware(jwtService), middleware.RequirePermission(user.PermStock))
	{
		managed.POST("", productController.Create)
		managed.PUT("/:id", productController.Update)
		managed.DELETE("/:id", productController.Delete)
	}
}
