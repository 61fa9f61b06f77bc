package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/quintadosovos/erp-avicola/internal/domain/account"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
)

// collectionAccounts é o nome da coleção persistida
const collectionAccounts = "accounts"

// AccountRepository implementa a interface account.Repository sobre o
// snapshot store local
type AccountRepository struct {
	store *storage.Store
	mu    sync.RWMutex
	items []account.Account
}

// NewAccountRepository cria uma nova instância de AccountRepository,
// recarregando o snapshot existente ou partindo dos dados de seed.
func NewAccountRepository(store *storage.Store, seed []account.Account) (*AccountRepository, error) {
	r := &AccountRepository{store: store}

	found, err := store.Load(collectionAccounts, &r.items)
	if err != nil {
		return nil, err
	}
	if !found {
		r.items = append([]account.Account(nil), seed...)
		if err := store.Save(collectionAccounts, r.items); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Create implementa account.Repository.Create. O status é derivado do
// saldo inicial na abertura e não é recalculado depois.
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = nextID(accountIDs(r.items))
	a.Status = account.StatusForBalance(a.Balance)

	items := append(append([]account.Account(nil), r.items...), *a)
	if err := r.store.Save(collectionAccounts, items); err != nil {
		return fmt.Errorf("erro ao salvar contas correntes: %w", err)
	}
	r.items = items
	return nil
}

// List implementa account.Repository.List
func (r *AccountRepository) List(ctx context.Context) ([]account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]account.Account(nil), r.items...), nil
}

// accountIDs coleta os IDs já usados na coleção
func accountIDs(items []account.Account) []int64 {
	ids := make([]int64, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.ID)
	}
	return ids
}
