package product

// Product representa um produto do catálogo da loja
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"cost_price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
}

// CategoryAll é o valor sentinela que representa "todas as categorias"
const CategoryAll = "Todos"

// DefaultRating é a avaliação atribuída a produtos recém-cadastrados
const DefaultRating = 5

// FilterByCategory retorna os produtos da categoria informada.
// O valor sentinela CategoryAll retorna todos os produtos.
func FilterByCategory(products []Product, category string) []Product {
	if category == CategoryAll {
		return products
	}
	filtered := make([]Product, 0)
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// HasStock verifica se o produto possui estoque suficiente para a quantidade
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
