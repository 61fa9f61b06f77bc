package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/domain/ledger"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// LedgerController gerencia as consultas ao livro-caixa. O livro é
// append-only e alimentado apenas pelo checkout e pela folha de
// pagamento; não existe rota de escrita direta.
type LedgerController struct {
	ledgerRepo ledger.Repository
	logger     logger.Logger
}

// NewLedgerController cria uma nova instância de LedgerController
func NewLedgerController(ledgerRepo ledger.Repository, l logger.Logger) *LedgerController {
	return &LedgerController{
		ledgerRepo: ledgerRepo,
		logger:     l,
	}
}

// List lista os lançamentos do livro-caixa
// @Summary Listar lançamentos
// @Description Lista os lançamentos financeiros em ordem de registro
// @Tags finance
// @Produce json
// @Security Bearer
// @Success 200 {array} ledger.Transaction
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *LedgerController) List(ctx *gin.Context) {
	transactions, err := c.ledgerRepo.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar lançamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}
