package repository_test

import (
	"testing"

	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository(t *testing.T) {
	p := product.Product{ID: 1, Name: "Ovos Caseiros (Dúzia)", Price: 3500}

	t.Run("carrinhos são isolados por token", func(t *testing.T) {
		repo := repository.NewCartRepository()

		first := repo.Create()
		second := repo.Create()
		require.NotEqual(t, first, second)

		_, err := repo.AddItem(first, p)
		require.NoError(t, err)

		items, err := repo.Get(second)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("adicionar o mesmo produto incrementa a quantidade", func(t *testing.T) {
		repo := repository.NewCartRepository()
		token := repo.Create()

		_, err := repo.AddItem(token, p)
		require.NoError(t, err)
		items, err := repo.AddItem(token, p)
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("limpar esvazia o carrinho mantendo o token", func(t *testing.T) {
		repo := repository.NewCartRepository()
		token := repo.Create()

		_, err := repo.AddItem(token, p)
		require.NoError(t, err)
		require.NoError(t, repo.Clear(token))

		items, err := repo.Get(token)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("token desconhecido é erro", func(t *testing.T) {
		repo := repository.NewCartRepository()

		_, err := repo.Get("inexistente")
		require.ErrorIs(t, err, repository.ErrCartNotFound)
	})
}
