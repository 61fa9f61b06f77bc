package dto

import (
	"github.com/quintadosovos/erp-avicola/internal/domain/cart"
	"github.com/quintadosovos/erp-avicola/internal/domain/invoice"
)

// CartAddRequest representa a requisição para acrescentar um produto ao carrinho
type CartAddRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// CartQuantityRequest representa a requisição de ajuste de quantidade.
// Delta pode ser negativo; a quantidade nunca fica abaixo de 1.
type CartQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CartResponse representa a resposta com o estado do carrinho
type CartResponse struct {
	Token string      `json:"token"`
	Items []cart.Item `json:"items"`
	Total float64     `json:"total"`
}

// ToCartResponse monta a resposta do carrinho
func ToCartResponse(token string, items []cart.Item) CartResponse {
	return CartResponse{
		Token: token,
		Items: items,
		Total: cart.Total(items),
	}
}

// CheckoutRequest representa a requisição de checkout do ponto de
// venda: os itens vêm direto do caixa do painel administrativo
type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CheckoutItemRequest representa um item vendido no ponto de venda
type CheckoutItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gte=1"`
}

// InvoiceResponse representa a fatura emitida por um checkout
type InvoiceResponse struct {
	Number int64       `json:"number"`
	Date   string      `json:"date"`
	Items  []cart.Item `json:"items"`
	Total  float64     `json:"total"`
}

// ToInvoiceResponse converte uma fatura do domínio para a resposta da API
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		Number: inv.Number,
		Date:   inv.Date,
		Items:  inv.Items,
		Total:  inv.Total,
	}
}
