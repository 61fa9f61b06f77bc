package account

import (
	"context"
)

// Repository define a interface para operações de contas correntes
type Repository interface {
	// Create abre uma nova conta corrente e atribui seu ID.
	// O status é derivado do saldo inicial.
	Create(ctx context.Context, a *Account) error

	// List retorna todas as contas correntes
	List(ctx context.Context) ([]Account, error)
}
