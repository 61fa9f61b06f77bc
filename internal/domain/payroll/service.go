package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/quintadosovos/erp-avicola/internal/domain/employee"
	"github.com/quintadosovos/erp-avicola/internal/domain/ledger"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// Service implementa a folha de pagamento: registra o pagamento do
// salário de um funcionário no livro-caixa e atualiza seu status.
type Service struct {
	employees employee.Repository
	ledger    ledger.Repository
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria uma nova instância de Service
func NewService(employees employee.Repository, ledgerRepo ledger.Repository, l logger.Logger) *Service {
	return &Service{
		employees: employees,
		ledger:    ledgerRepo,
		logger:    l,
		now:       time.Now,
	}
}

// PaySalary paga o salário do funcionário: registra um lançamento de
// saída na categoria RH e muda o status de pagamento para PAGO. Pagar
// um funcionário que já está PAGO é um no-op — nenhum lançamento
// duplicado é gerado.
func (s *Service) PaySalary(ctx context.Context, employeeID int64) (*employee.Employee, error) {
	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if e.IsPaid() {
		return e, nil
	}

	paymentDate := s.now().Format("2006-01-02")

	entry := &ledger.Transaction{
		Date:        paymentDate,
		Description: fmt.Sprintf("Salário: %s", e.Name),
		Amount:      e.Salary,
		Type:        ledger.TypeOutflow,
		Category:    ledger.CategoryPayroll,
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.employees.MarkPaid(ctx, e.ID, paymentDate); err != nil {
		return nil, err
	}

	s.logger.Info("salário pago",
		"funcionario", e.Name,
		"valor", e.Salary)

	e.PaymentStatus = employee.PaymentPaid
	e.LastPaymentDate = paymentDate
	return e, nil
}
