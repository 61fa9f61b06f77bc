package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/quintadosovos/erp-avicola/internal/domain/cart"
	"github.com/quintadosovos/erp-avicola/internal/domain/invoice"
	"github.com/quintadosovos/erp-avicola/internal/domain/ledger"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// Erros específicos
var (
	ErrEmptyCart = errors.New("carrinho vazio")
)

// Origin identifica de onde partiu a venda
type Origin string

// Constantes para Origin
const (
	OriginOnline Origin = "online" // Carrinho da loja pública
	OriginPOS    Origin = "pos"    // Caixa do painel administrativo
)

// Description retorna a descrição do lançamento no livro-caixa
func (o Origin) Description() string {
	if o == OriginPOS {
		return "Venda POS"
	}
	return "Venda Online"
}

// NumberSource emite números de fatura. Os números são monotônicos e
// nunca se repetem, mesmo entre reinícios do sistema.
type NumberSource interface {
	Next(ctx context.Context) (int64, error)
}

// Service implementa o fluxo de checkout: transforma um carrinho em uma
// fatura imutável, abate o estoque vendido e registra a venda no
// livro-caixa.
type Service struct {
	products product.Repository
	ledger   ledger.Repository
	numbers  NumberSource
	logger   logger.Logger
	now      func() time.Time
}

// NewService cria uma nova instância de Service
func NewService(products product.Repository, ledgerRepo ledger.Repository, numbers NumberSource, l logger.Logger) *Service {
	return &Service{
		products: products,
		ledger:   ledgerRepo,
		numbers:  numbers,
		logger:   l,
		now:      time.Now,
	}
}

// Checkout processa uma venda. Um carrinho vazio é rejeitado sem
// nenhuma mutação. O abate de estoque é atômico: se algum produto não
// tiver estoque suficiente, a venda inteira é recusada antes de
// qualquer alteração.
func (s *Service) Checkout(ctx context.Context, items []cart.Item, origin Origin) (*invoice.Invoice, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Quantidades vendidas por produto
	quantities := make(map[int64]int, len(items))
	for _, it := range items {
		quantities[it.ID] += it.Quantity
	}

	// Abater o estoque primeiro: valida a disponibilidade de todos os
	// itens antes de registrar qualquer coisa
	if err := s.products.DecrementStock(ctx, quantities); err != nil {
		return nil, err
	}

	number, err := s.numbers.Next(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	inv := invoice.New(number, items, now)

	entry := &ledger.Transaction{
		Date:        now.Format("2006-01-02"),
		Description: origin.Description(),
		Amount:      inv.Total,
		Type:        ledger.TypeInflow,
		Category:    ledger.CategorySales,
		Cost:        cart.TotalCost(items),
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("venda processada",
		"origem", string(origin),
		"fatura", inv.Number,
		"total", inv.Total)

	return &inv, nil
}
