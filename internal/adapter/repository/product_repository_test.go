package repository_test

import (
	"context"
	"testing"

	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productSeed() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Ovos Caseiros (Dúzia)", Category: "Ovos", Price: 3500, CostPrice: 2000, Stock: 120, Rating: 5},
		{ID: 2, Name: "Ração Postura Premium 20kg", Category: "Rações", Price: 115000, CostPrice: 80000, Stock: 25, Rating: 5},
	}
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("seed é usado quando não há snapshot", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		repo, err := repository.NewProductRepository(store, productSeed())
		require.NoError(t, err)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("snapshot existente tem precedência sobre o seed", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewStore(dir)
		require.NoError(t, err)

		first, err := repository.NewProductRepository(store, productSeed())
		require.NoError(t, err)
		require.NoError(t, first.Delete(ctx, 1))

		second, err := repository.NewProductRepository(store, productSeed())
		require.NoError(t, err)

		items, err := second.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("create atribui o próximo ID e avaliação padrão", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		repo, err := repository.NewProductRepository(store, productSeed())
		require.NoError(t, err)

		p := &product.Product{Name: "Pintos de 1 dia", Category: "Aves", Price: 1500, Stock: 200}
		require.NoError(t, repo.Create(ctx, p))

		assert.Equal(t, int64(3), p.ID)
		assert.Equal(t, float64(product.DefaultRating), p.Rating)
	})

	t.Run("filtro por categoria com sentinela Todos", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		repo, err := repository.NewProductRepository(store, productSeed())
		require.NoError(t, err)

		all, err := repo.ListByCategory(ctx, product.CategoryAll)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		eggs, err := repo.ListByCategory(ctx, "Ovos")
		require.NoError(t, err)
		require.Len(t, eggs, 1)
		assert.Equal(t, int64(1), eggs[0].ID)
	})

	t.Run("abate de estoque é tudo ou nada", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		repo, err := repository.NewProductRepository(store, productSeed())
		require.NoError(t, err)

		err = repo.DecrementStock(ctx, map[int64]int{1: 10, 2: 30})
		require.ErrorIs(t, err, repository.ErrInsufficientStock)

		// Nenhum produto foi alterado, nem o que tinha estoque
		p, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 120, p.Stock)

		require.NoError(t, repo.DecrementStock(ctx, map[int64]int{1: 10, 2: 20}))

		p, err = repo.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, p.Stock)
	})

	t.Run("update de produto inexistente é erro", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		repo, err := repository.NewProductRepository(store, nil)
		require.NoError(t, err)

		err = repo.Update(ctx, &product.Product{ID: 42, Name: "Fantasma"})
		require.ErrorIs(t, err, repository.ErrProductNotFound)
	})
}
