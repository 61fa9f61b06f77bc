package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
)

// RegisterCartRoutes registra as rotas do carrinho de compras da loja.
// O carrinho é identificado pelo token gerado na criação, sem login.
func RegisterCartRoutes(r *gin.RouterGroup, cartController *controller.CartController) {
	carts := r.Group("/carts")
	{
		carts.POST("", cartController.Create)
		carts.GET("/:token", cartController.Get)
		carts.POST("/:token/items", cartController.AddItem)
		carts.PATCH("/:token/items/:id", cartController.UpdateQuantity)
		carts.DELETE("/:token/items/:id", cartController.RemoveItem)
		carts.POST("/:token/checkout", cartController.Checkout)
	}
}
