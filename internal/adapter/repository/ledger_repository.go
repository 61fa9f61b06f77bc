package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/quintadosovos/erp-avicola/internal/domain/ledger"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
)

// collectionTransactions é o nome da coleção persistida
const collectionTransactions = "transactions"

// LedgerRepository implementa a interface ledger.Repository sobre o
// snapshot store local. O livro-caixa é append-only: o repositório não
// expõe nenhuma operação de alteração ou exclusão.
type LedgerRepository struct {
	store *storage.Store
	mu    sync.RWMutex
	items []ledger.Transaction
}

// NewLedgerRepository cria uma nova instância de LedgerRepository,
// recarregando o snapshot existente
func NewLedgerRepository(store *storage.Store) (*LedgerRepository, error) {
	r := &LedgerRepository{store: store}

	found, err := store.Load(collectionTransactions, &r.items)
	if err != nil {
		return nil, err
	}
	if !found {
		r.items = []ledger.Transaction{}
		if err := store.Save(collectionTransactions, r.items); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Append implementa ledger.Repository.Append
func (r *LedgerRepository) Append(ctx context.Context, t *ledger.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = nextID(transactionIDs(r.items))

	items := append(append([]ledger.Transaction(nil), r.items...), *t)
	if err := r.store.Save(collectionTransactions, items); err != nil {
		return fmt.Errorf("erro ao salvar lançamentos: %w", err)
	}
	r.items = items
	return nil
}

// List implementa ledger.Repository.List
func (r *LedgerRepository) List(ctx context.Context) ([]ledger.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]ledger.Transaction(nil), r.items...), nil
}

// transactionIDs coleta os IDs já usados na coleção
func transactionIDs(items []ledger.Transaction) []int64 {
	ids := make([]int64, 0, len(items))
	for _, t := range items {
		ids = append(ids, t.ID)
	}
	return ids
}
