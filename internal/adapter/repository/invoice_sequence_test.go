package repository_test

import (
	"context"
	"testing"

	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/invoice"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceSequence(t *testing.T) {
	ctx := context.Background()

	t.Run("começa no primeiro número de fatura", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		seq, err := repository.NewInvoiceSequence(store)
		require.NoError(t, err)

		n, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(invoice.FirstNumber), n)
	})

	t.Run("não repete números depois de um reinício", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		seq, err := repository.NewInvoiceSequence(store)
		require.NoError(t, err)

		_, err = seq.Next(ctx)
		require.NoError(t, err)
		last, err := seq.Next(ctx)
		require.NoError(t, err)

		restarted, err := repository.NewInvoiceSequence(store)
		require.NoError(t, err)

		n, err := restarted.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, last+1, n)
	})
}
