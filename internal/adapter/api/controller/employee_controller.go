package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/employee"
	"github.com/quintadosovos/erp-avicola/internal/domain/payroll"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// EmployeeController gerencia as requisições relacionadas a funcionários
type EmployeeController struct {
	employeeRepo employee.Repository
	payrollSvc   *payroll.Service
	logger       logger.Logger
}

// NewEmployeeController cria uma nova instância de EmployeeController
func NewEmployeeController(employeeRepo employee.Repository, payrollSvc *payroll.Service, l logger.Logger) *EmployeeController {
	return &EmployeeController{
		employeeRepo: employeeRepo,
		payrollSvc:   payrollSvc,
		logger:       l,
	}
}

// List lista os funcionários
// @Summary Listar funcionários
// @Tags employees
// @Produce json
// @Security Bearer
// @Success 200 {array} employee.Employee
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees [get]
func (c *EmployeeController) List(ctx *gin.Context) {
	employees, err := c.employeeRepo.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar funcionários", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

// Create contrata um novo funcionário
// @Summary Criar funcionário
// @Description Cadastra um novo funcionário com status de pagamento PENDENTE
// @Tags employees
// @Accept json
// @Produce json
// @Security Bearer
// @Param employee body dto.EmployeeRequest true "Dados do funcionário"
// @Success 201 {object} employee.Employee
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees [post]
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e := req.ToEmployee(0)
	if err := c.employeeRepo.Create(ctx, &e); err != nil {
		c.logger.Error("erro ao criar funcionário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar funcionário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, e)
}

// Update atualiza um funcionário existente. O status de pagamento e a
// data do último pagamento são preservados: só a folha de pagamento os
// altera.
// @Summary Atualizar funcionário
// @Tags employees
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID do funcionário"
// @Param employee body dto.EmployeeRequest true "Dados do funcionário"
// @Success 200 {object} employee.Employee
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employees/{id} [put]
func (c *EmployeeController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", err.Error()))
		return
	}

	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	existing, err := c.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar funcionário", err.Error()))
		return
	}

	e := req.ToEmployee(id)
	e.PaymentStatus = existing.PaymentStatus
	e.LastPaymentDate = existing.LastPaymentDate

	if err := c.employeeRepo.Update(ctx, &e); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar funcionário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, e)
}

// Delete remove um funcionário
// @Summary Excluir funcionário
// @Description Remove um funcionário. A exclusão é imediata e irreversível.
// @Tags employees
// @Produce json
// @Security Bearer
// @Param id path int true "ID do funcionário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employees/{id} [delete]
func (c *EmployeeController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", err.Error()))
		return
	}

	if err := c.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir funcionário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Funcionário removido", nil))
}

// PaySalary paga o salário do funcionário
// @Summary Pagar salário
// @Description Registra o lançamento de saída na categoria RH e muda o status de pagamento para PAGO. Pagar de novo é um no-op.
// @Tags employees
// @Produce json
// @Security Bearer
// @Param id path int true "ID do funcionário"
// @Success 200 {object} employee.Employee
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees/{id}/pay [post]
func (c *EmployeeController) PaySalary(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", err.Error()))
		return
	}

	e, err := c.payrollSvc.PaySalary(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Funcionário não encontrado", ""))
			return
		}
		c.logger.Error("erro ao pagar salário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao pagar salário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, e)
}
