package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/cart"
	"github.com/quintadosovos/erp-avicola/internal/domain/checkout"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// CheckoutController gerencia o checkout do ponto de venda (o caixa do
// painel administrativo)
type CheckoutController struct {
	productRepo product.Repository
	checkoutSvc *checkout.Service
	logger      logger.Logger
}

// NewCheckoutController cria uma nova instância de CheckoutController
func NewCheckoutController(productRepo product.Repository, checkoutSvc *checkout.Service, l logger.Logger) *CheckoutController {
	return &CheckoutController{
		productRepo: productRepo,
		checkoutSvc: checkoutSvc,
		logger:      l,
	}
}

// Checkout fecha uma venda do ponto de venda
// @Summary Checkout do caixa
// @Description Emite a fatura da venda do caixa, abate o estoque e registra a venda no livro-caixa
// @Tags pos
// @Accept json
// @Produce json
// @Security Bearer
// @Param sale body dto.CheckoutRequest true "Itens vendidos"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /pos/checkout [post]
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	// Montar os itens da venda a partir do catálogo atual
	items := make([]cart.Item, 0, len(req.Items))
	for _, it := range req.Items {
		p, err := c.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
				return
			}
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
			return
		}
		items = append(items, cart.Item{Product: *p, Quantity: it.Quantity})
	}

	inv, err := c.checkoutSvc.Checkout(ctx, items, checkout.OriginPOS)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Venda sem itens", ""))
		case errors.Is(err, repository.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Estoque insuficiente", err.Error()))
		default:
			c.logger.Error("erro no checkout do caixa", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}
