package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cadastra um novo produto e atribui seu ID
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// List retorna todos os produtos do catálogo
	List(ctx context.Context) ([]Product, error)

	// ListByCategory retorna os produtos de uma categoria (CategoryAll retorna todos)
	ListByCategory(ctx context.Context, category string) ([]Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto do catálogo
	Delete(ctx context.Context, id int64) error

	// DecrementStock abate as quantidades vendidas do estoque.
	// A operação é atômica: se algum produto não tiver estoque
	// suficiente, nenhum estoque é alterado.
	DecrementStock(ctx context.Context, quantities map[int64]int) error
}
