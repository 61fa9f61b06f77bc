package payroll_test

import (
	"context"
	"testing"

	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/employee"
	"github.com/quintadosovos/erp-avicola/internal/domain/ledger"
	"github.com/quintadosovos/erp-avicola/internal/domain/payroll"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*payroll.Service, employee.Repository, ledger.Repository) {
	t.Helper()

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	seed := []employee.Employee{
		{ID: 1, Name: "Carlos Silva", Role: "Técnico de Campo", Salary: 280000, PaymentStatus: employee.PaymentPending},
	}
	employees, err := repository.NewEmployeeRepository(store, seed)
	require.NoError(t, err)

	ledgerRepo, err := repository.NewLedgerRepository(store)
	require.NoError(t, err)

	return payroll.NewService(employees, ledgerRepo, logger.NewNopLogger()), employees, ledgerRepo
}

func TestPaySalary(t *testing.T) {
	ctx := context.Background()

	t.Run("pagamento lança a saída e marca o funcionário como pago", func(t *testing.T) {
		svc, employees, ledgerRepo := newTestService(t)

		paid, err := svc.PaySalary(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, employee.PaymentPaid, paid.PaymentStatus)
		assert.NotEmpty(t, paid.LastPaymentDate)

		stored, err := employees.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, stored.IsPaid())

		entries, err := ledgerRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ledger.TypeOutflow, entries[0].Type)
		assert.Equal(t, ledger.CategoryPayroll, entries[0].Category)
		assert.Equal(t, "Salário: Carlos Silva", entries[0].Description)
		assert.Equal(t, 280000.0, entries[0].Amount)
	})

	t.Run("pagar duas vezes não duplica o lançamento", func(t *testing.T) {
		svc, _, ledgerRepo := newTestService(t)

		_, err := svc.PaySalary(ctx, 1)
		require.NoError(t, err)

		_, err = svc.PaySalary(ctx, 1)
		require.NoError(t, err)

		entries, err := ledgerRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("funcionário inexistente é um erro", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.PaySalary(ctx, 99)
		require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	})
}
