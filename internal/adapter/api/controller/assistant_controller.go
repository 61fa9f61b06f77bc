package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/pkg/assistant"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// AssistantController gerencia o assistente de compras da loja. O
// assistente é opcional: sem cliente configurado, a rota responde com
// a mensagem fixa de fallback.
type AssistantController struct {
	client      *assistant.Client
	productRepo product.Repository
	logger      logger.Logger
}

// NewAssistantController cria uma nova instância de AssistantController
func NewAssistantController(client *assistant.Client, productRepo product.Repository, l logger.Logger) *AssistantController {
	return &AssistantController{
		client:      client,
		productRepo: productRepo,
		logger:      l,
	}
}

// Message processa uma mensagem do cliente
// @Summary Conversar com o assistente
// @Description Envia a mensagem do cliente ao assistente de compras junto com o catálogo atual. Falhas no serviço de IA retornam uma mensagem fixa, nunca um erro.
// @Tags assistant
// @Accept json
// @Produce json
// @Param message body dto.AssistantRequest true "Mensagem do cliente"
// @Success 200 {object} dto.AssistantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /assistant/message [post]
func (c *AssistantController) Message(ctx *gin.Context) {
	var req dto.AssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if c.client == nil {
		ctx.JSON(http.StatusOK, dto.AssistantResponse{Response: assistant.FallbackMessage, SessionID: sessionID})
		return
	}

	products, err := c.productRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar catálogo para o assistente", "error", err)
		products = nil
	}

	// Falhas do serviço viram a mensagem de fallback; o erro fica no log
	response, err := c.client.GetShoppingAdvice(ctx, sessionID, req.Message, products)
	if err != nil {
		c.logger.Warn("assistente respondeu com fallback", "error", err)
	}

	ctx.JSON(http.StatusOK, dto.AssistantResponse{Response: response, SessionID: sessionID})
}
