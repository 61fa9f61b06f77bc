package employee

import (
	"context"
)

// Repository define a interface para operações de repositório de funcionários
type Repository interface {
	// Create cadastra um novo funcionário e atribui seu ID
	Create(ctx context.Context, e *Employee) error

	// FindByID busca um funcionário pelo ID
	FindByID(ctx context.Context, id int64) (*Employee, error)

	// List retorna todos os funcionários
	List(ctx context.Context) ([]Employee, error)

	// Update atualiza os dados de um funcionário existente
	Update(ctx context.Context, e *Employee) error

	// Delete remove um funcionário
	Delete(ctx context.Context, id int64) error

	// MarkPaid registra o pagamento do salário: muda o status para PAGO
	// e grava a data do último pagamento
	MarkPaid(ctx context.Context, id int64, paymentDate string) error
}
