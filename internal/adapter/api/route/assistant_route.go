package route

import (
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
)

// RegisterAssistantRoutes registra as rotas do assistente de compras da loja
func RegisterAssistantRoutes(r *gin.RouterGroup, assistantController *controller.AssistantController) {
	assistant := r.Group("/assistant")
	{
		assistant.POST("/message", assistantController.Message)
	}
}
