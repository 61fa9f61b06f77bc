package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/checkout"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// CartController gerencia o carrinho de compras da loja pública e o
// checkout online
type CartController struct {
	carts       *repository.CartRepository
	productRepo product.Repository
	checkoutSvc *checkout.Service
	logger      logger.Logger
}

// NewCartController cria uma nova instância de CartController
func NewCartController(carts *repository.CartRepository, productRepo product.Repository, checkoutSvc *checkout.Service, l logger.Logger) *CartController {
	return &CartController{
		carts:       carts,
		productRepo: productRepo,
		checkoutSvc: checkoutSvc,
		logger:      l,
	}
}

// Create abre um novo carrinho de compras
// @Summary Abrir carrinho
// @Description Abre um carrinho vazio e retorna seu token de sessão
// @Tags cart
// @Produce json
// @Success 201 {object} dto.CartResponse
// @Router /carts [post]
func (c *CartController) Create(ctx *gin.Context) {
	token := c.carts.Create()
	ctx.JSON(http.StatusCreated, dto.ToCartResponse(token, nil))
}

// Get retorna o estado atual do carrinho
// @Summary Consultar carrinho
// @Tags cart
// @Produce json
// @Param token path string true "Token do carrinho"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /carts/{token} [get]
func (c *CartController) Get(ctx *gin.Context) {
	token := ctx.Param("token")

	items, err := c.carts.Get(token)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Carrinho não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(token, items))
}

// AddItem acrescenta um produto ao carrinho
// @Summary Adicionar ao carrinho
// @Description Acrescenta um produto ao carrinho. Se já estiver no carrinho, a quantidade é incrementada em 1.
// @Tags cart
// @Accept json
// @Produce json
// @Param token path string true "Token do carrinho"
// @Param item body dto.CartAddRequest true "Produto a adicionar"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /carts/{token}/items [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	token := ctx.Param("token")

	var req dto.CartAddRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	items, err := c.carts.AddItem(token, *p)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Carrinho não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(token, items))
}

// UpdateQuantity ajusta a quantidade de um item do carrinho
// @Summary Ajustar quantidade
// @Description Soma delta à quantidade do item. A quantidade nunca fica abaixo de 1; para remover use DELETE.
// @Tags cart
// @Accept json
// @Produce json
// @Param token path string true "Token do carrinho"
// @Param id path int true "ID do produto"
// @Param delta body dto.CartQuantityRequest true "Delta de quantidade"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /carts/{token}/items/{id} [patch]
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	token := ctx.Param("token")

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", err.Error()))
		return
	}

	var req dto.CartQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items, err := c.carts.UpdateQuantity(token, id, req.Delta)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Carrinho não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(token, items))
}

// RemoveItem exclui um item do carrinho
// @Summary Remover do carrinho
// @Tags cart
// @Produce json
// @Param token path string true "Token do carrinho"
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /carts/{token}/items/{id} [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	token := ctx.Param("token")

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", err.Error()))
		return
	}

	items, err := c.carts.RemoveItem(token, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Carrinho não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCartResponse(token, items))
}

// Checkout fecha a venda do carrinho online
// @Summary Checkout online
// @Description Emite a fatura, abate o estoque, registra a venda no livro-caixa e esvazia o carrinho
// @Tags cart
// @Produce json
// @Param token path string true "Token do carrinho"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /carts/{token}/checkout [post]
func (c *CartController) Checkout(ctx *gin.Context) {
	token := ctx.Param("token")

	items, err := c.carts.Get(token)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Carrinho não encontrado", ""))
		return
	}

	inv, err := c.checkoutSvc.Checkout(ctx, items, checkout.OriginOnline)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Carrinho vazio", ""))
		case errors.Is(err, repository.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Estoque insuficiente", err.Error()))
		default:
			c.logger.Error("erro no checkout online", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar venda", err.Error()))
		}
		return
	}

	// Venda fechada: esvaziar o carrinho
	if err := c.carts.Clear(token); err != nil {
		c.logger.Error("erro ao esvaziar carrinho", "error", err)
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}
