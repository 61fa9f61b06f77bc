package checkout_test

import (
	"context"
	"testing"

	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/cart"
	"github.com/quintadosovos/erp-avicola/internal/domain/checkout"
	"github.com/quintadosovos/erp-avicola/internal/domain/invoice"
	"github.com/quintadosovos/erp-avicola/internal/domain/ledger"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, seed []product.Product) (*checkout.Service, product.Repository, ledger.Repository) {
	t.Helper()

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	products, err := repository.NewProductRepository(store, seed)
	require.NoError(t, err)

	ledgerRepo, err := repository.NewLedgerRepository(store)
	require.NoError(t, err)

	numbers, err := repository.NewInvoiceSequence(store)
	require.NoError(t, err)

	svc := checkout.NewService(products, ledgerRepo, numbers, logger.NewNopLogger())
	return svc, products, ledgerRepo
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	seed := []product.Product{
		{ID: 2, Name: "Ração Postura Premium 20kg", Price: 115000, CostPrice: 80000, Stock: 25},
	}

	t.Run("venda emite fatura, abate estoque e lança no livro-caixa", func(t *testing.T) {
		svc, products, ledgerRepo := newTestService(t, seed)

		items := []cart.Item{{Product: seed[0], Quantity: 2}}

		inv, err := svc.Checkout(ctx, items, checkout.OriginOnline)
		require.NoError(t, err)

		assert.Equal(t, int64(invoice.FirstNumber), inv.Number)
		assert.Equal(t, 230000.0, inv.Total)
		require.Len(t, inv.Items, 1)

		p, err := products.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 23, p.Stock)

		entries, err := ledgerRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, ledger.TypeInflow, entries[0].Type)
		assert.Equal(t, ledger.CategorySales, entries[0].Category)
		assert.Equal(t, "Venda Online", entries[0].Description)
		assert.Equal(t, 230000.0, entries[0].Amount)
		assert.Equal(t, 160000.0, entries[0].Cost)
	})

	t.Run("carrinho vazio é recusado sem nenhuma mutação", func(t *testing.T) {
		svc, _, ledgerRepo := newTestService(t, seed)

		_, err := svc.Checkout(ctx, nil, checkout.OriginOnline)
		require.ErrorIs(t, err, checkout.ErrEmptyCart)

		entries, err := ledgerRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("estoque insuficiente recusa a venda inteira", func(t *testing.T) {
		svc, products, ledgerRepo := newTestService(t, seed)

		items := []cart.Item{{Product: seed[0], Quantity: 30}}

		_, err := svc.Checkout(ctx, items, checkout.OriginPOS)
		require.ErrorIs(t, err, repository.ErrInsufficientStock)

		p, err := products.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 25, p.Stock)

		entries, err := ledgerRepo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("números de fatura são sequenciais", func(t *testing.T) {
		svc, _, _ := newTestService(t, seed)

		items := []cart.Item{{Product: seed[0], Quantity: 1}}

		first, err := svc.Checkout(ctx, items, checkout.OriginOnline)
		require.NoError(t, err)

		second, err := svc.Checkout(ctx, items, checkout.OriginPOS)
		require.NoError(t, err)

		assert.Equal(t, first.Number+1, second.Number)
		assert.Equal(t, "Venda POS", checkout.OriginPOS.Description())
	})

	t.Run("fatura é uma cópia imutável do carrinho", func(t *testing.T) {
		svc, _, _ := newTestService(t, seed)

		items := []cart.Item{{Product: seed[0], Quantity: 1}}

		inv, err := svc.Checkout(ctx, items, checkout.OriginOnline)
		require.NoError(t, err)

		items[0].Quantity = 99

		assert.Equal(t, 1, inv.Items[0].Quantity)
	})
}
