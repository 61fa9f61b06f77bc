package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
)

// Erros específicos do repositório
var (
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrUserDuplicateUsername = errors.New("usuário com mesmo nome de usuário já existe")
)

// collectionUsers é o nome da coleção persistida
const collectionUsers = "users"

// UserRepository implementa a interface user.Repository sobre o
// snapshot store local
type UserRepository struct {
	store *storage.Store
	mu    sync.RWMutex
	items []user.User
}

// NewUserRepository cria uma nova instância de UserRepository,
// recarregando o snapshot existente ou partindo dos dados de seed.
func NewUserRepository(store *storage.Store, seed []user.User) (*UserRepository, error) {
	r := &UserRepository{store: store}

	found, err := store.Load(collectionUsers, &r.items)
	if err != nil {
		return nil, err
	}
	if !found {
		r.items = append([]user.User(nil), seed...)
		if err := store.Save(collectionUsers, r.items); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Create implementa user.Repository.Create. Nomes de usuário são
// únicos: a tentativa de duplicar falha sem alterar nada.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Username == u.Username {
			return ErrUserDuplicateUsername
		}
	}

	u.ID = nextID(userIDs(r.items))

	items := append(append([]user.User(nil), r.items...), *u)
	if err := r.store.Save(collectionUsers, items); err != nil {
		return fmt.Errorf("erro ao salvar usuários: %w", err)
	}
	r.items = items
	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByUsername implementa user.Repository.FindByUsername
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]user.User(nil), r.items...), nil
}

// Update implementa user.Repository.Update. Uma senha vazia preserva o
// hash atual; o nome de usuário continua único entre os demais.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Username == u.Username && existing.ID != u.ID {
			return ErrUserDuplicateUsername
		}
	}

	items := append([]user.User(nil), r.items...)
	for i := range items {
		if items[i].ID == u.ID {
			if u.Password == "" {
				u.Password = items[i].Password
			}
			items[i] = *u
			if err := r.store.Save(collectionUsers, items); err != nil {
				return fmt.Errorf("erro ao salvar usuários: %w", err)
			}
			r.items = items
			return nil
		}
	}
	return ErrUserNotFound
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]user.User, 0, len(r.items))
	found := false
	for _, u := range r.items {
		if u.ID == id {
			found = true
			continue
		}
		items = append(items, u)
	}
	if !found {
		return ErrUserNotFound
	}

	if err := r.store.Save(collectionUsers, items); err != nil {
		return fmt.Errorf("erro ao salvar usuários: %w", err)
	}
	r.items = items
	return nil
}

// userIDs coleta os IDs já usados na coleção
func userIDs(items []user.User) []int64 {
	ids := make([]int64, 0, len(items))
	for _, u := range items {
		ids = append(ids, u.ID)
	}
	return ids
}
