package assistant_test

import (
	"testing"
	"time"

	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/pkg/assistant"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSystemPrompt(t *testing.T) {
	products := []product.Product{
		{Name: "Ração Postura Premium 20kg", Price: 115000, Description: "Ração completa para poedeiras", Category: "Rações"},
		{Name: "Chocadeira 64 Ovos", Price: 185000, Description: "Incubadora automática", Category: "Equipamentos"},
	}

	prompt := assistant.BuildSystemPrompt(products)

	assert.Contains(t, prompt, "Ração Postura Premium 20kg (Kz 115000.00)")
	assert.Contains(t, prompt, "[Categoria: Equipamentos]")
	assert.Contains(t, prompt, "Kwanza")
}

func TestNewClient(t *testing.T) {
	t.Run("chave de API é obrigatória", func(t *testing.T) {
		_, err := assistant.NewClient(assistant.Config{}, logger.NewNopLogger(), repository.NewChatRepository())
		require.ErrorIs(t, err, assistant.ErrMissingAPIKey)
	})

	t.Run("modelo e limites recebem defaults", func(t *testing.T) {
		client, err := assistant.NewClient(assistant.Config{
			APIKey:  "chave-de-teste",
			Timeout: 5 * time.Second,
		}, logger.NewNopLogger(), repository.NewChatRepository())
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
