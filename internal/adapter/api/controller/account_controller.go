package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/domain/account"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// AccountController gerencia as requisições de contas correntes
type AccountController struct {
	accountRepo account.Repository
	logger      logger.Logger
}

// NewAccountController cria uma nova instância de AccountController
func NewAccountController(accountRepo account.Repository, l logger.Logger) *AccountController {
	return &AccountController{
		accountRepo: accountRepo,
		logger:      l,
	}
}

// List lista as contas correntes
// @Summary Listar contas correntes
// @Tags accounts
// @Produce json
// @Security Bearer
// @Success 200 {array} account.Account
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [get]
func (c *AccountController) List(ctx *gin.Context) {
	accounts, err := c.accountRepo.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar contas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, accounts)
}

// Create abre uma nova conta corrente
// @Summary Abrir conta corrente
// @Description Abre uma conta de cliente ou fornecedor. O status é derivado do saldo inicial.
// @Tags accounts
// @Accept json
// @Produce json
// @Security Bearer
// @Param account body dto.AccountRequest true "Dados da conta"
// @Success 201 {object} account.Account
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /accounts [post]
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	a := req.ToAccount()
	if err := c.accountRepo.Create(ctx, &a); err != nil {
		c.logger.Error("erro ao abrir conta corrente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, a)
}
