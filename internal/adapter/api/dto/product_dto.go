package dto

import (
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CostPrice   float64 `json:"cost_price" binding:"gte=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

// ToProduct converte a requisição para a entidade do domínio
func (r *ProductRequest) ToProduct(id int64) product.Product {
	return product.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CostPrice:   r.CostPrice,
		Category:    r.Category,
		Image:       r.Image,
		Rating:      r.Rating,
		Stock:       r.Stock,
	}
}
