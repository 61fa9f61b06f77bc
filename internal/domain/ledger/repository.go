package ledger

import (
	"context"
)

// Repository define a interface para o livro-caixa
type Repository interface {
	// Append registra um novo lançamento e atribui seu ID
	Append(ctx context.Context, t *Transaction) error

	// List retorna todos os lançamentos em ordem de registro
	List(ctx context.Context) ([]Transaction, error)
}
