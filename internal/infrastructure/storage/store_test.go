package storage_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore(t *testing.T) {
	t.Run("ida e volta preserva a coleção", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		in := []fixture{{Name: "ovos", Count: 120}, {Name: "ração", Count: 25}}
		require.NoError(t, store.Save("itens", in))

		var out []fixture
		found, err := store.Load("itens", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("coleção ausente retorna false sem erro", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		var out []fixture
		found, err := store.Load("nada", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("regravar substitui o snapshot inteiro", func(t *testing.T) {
		store, err := storage.NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save("itens", []fixture{{Name: "a"}}))
		require.NoError(t, store.Save("itens", []fixture{{Name: "b"}, {Name: "c"}}))

		var out []fixture
		_, err = store.Load("itens", &out)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("snapshot malformado é erro fatal de carga", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewStore(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "itens.json"), []byte("{corrompido"), 0o644))

		var out []fixture
		_, err = store.Load("itens", &out)
		assert.Error(t, err)
	})

	t.Run("versão de esquema diferente é rejeitada", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewStore(dir)
		require.NoError(t, err)

		stale := fmt.Sprintf(`{"schema_version": %d, "data": []}`, storage.SchemaVersion+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "itens.json"), []byte(stale), 0o644))

		var out []fixture
		_, err = store.Load("itens", &out)
		require.ErrorIs(t, err, storage.ErrVersionMismatch)
	})

	t.Run("gravação não deixa arquivos temporários para trás", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save("itens", []fixture{{Name: "a"}}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "itens.json", entries[0].Name())
	})
}
