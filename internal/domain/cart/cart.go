package cart

import (
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
)

// Item representa um item do carrinho: um produto mais a quantidade escolhida
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Total calcula o valor total do carrinho (preço de venda x quantidade)
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalCost calcula o custo total do carrinho (preço de custo x quantidade)
func TotalCost(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.CostPrice * float64(it.Quantity)
	}
	return total
}

// Add acrescenta um produto ao carrinho. Se já existir um item com o
// mesmo produto, a quantidade é incrementada em 1; caso contrário um
// novo item com quantidade 1 é anexado. O carrinho de entrada nunca é
// modificado: o resultado é sempre uma cópia nova.
func Add(items []Item, p product.Product) []Item {
	result := make([]Item, len(items))
	copy(result, items)
	for i := range result {
		if result[i].ID == p.ID {
			result[i].Quantity++
			return result
		}
	}
	return append(result, Item{Product: p, Quantity: 1})
}

// UpdateQuantity soma delta à quantidade do item com o produto informado.
// A quantidade nunca fica abaixo de 1; remoção é uma operação separada.
func UpdateQuantity(items []Item, productID int64, delta int) []Item {
	result := make([]Item, len(items))
	copy(result, items)
	for i := range result {
		if result[i].ID == productID {
			result[i].Quantity += delta
			if result[i].Quantity < 1 {
				result[i].Quantity = 1
			}
		}
	}
	return result
}

// Remove exclui do carrinho o item com o produto informado
func Remove(items []Item, productID int64) []Item {
	result := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != productID {
			result = append(result, it)
		}
	}
	return result
}

// Copy retorna uma cópia profunda da lista de itens. Usada na emissão de
// faturas para que edições posteriores de produtos não alterem faturas
// já emitidas.
func Copy(items []Item) []Item {
	result := make([]Item, len(items))
	copy(result, items)
	return result
}
