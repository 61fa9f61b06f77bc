package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
)

// Erros específicos do repositório
var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// collectionProducts é o nome da coleção persistida
const collectionProducts = "products"

// ProductRepository implementa a interface product.Repository sobre o
// snapshot store local. A coleção inteira vive em memória e é
// regravada no disco a cada mutação.
type ProductRepository struct {
	store *storage.Store
	mu    sync.RWMutex
	items []product.Product
}

// NewProductRepository cria uma nova instância de ProductRepository,
// recarregando o snapshot existente. Se não houver snapshot, a coleção
// começa com os produtos informados em seed.
func NewProductRepository(store *storage.Store, seed []product.Product) (*ProductRepository, error) {
	r := &ProductRepository{store: store}

	found, err := store.Load(collectionProducts, &r.items)
	if err != nil {
		return nil, err
	}
	if !found {
		r.items = append([]product.Product(nil), seed...)
		if err := store.Save(collectionProducts, r.items); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = nextID(productIDs(r.items))
	if p.Rating == 0 {
		p.Rating = product.DefaultRating
	}

	items := append(append([]product.Product(nil), r.items...), *p)
	if err := r.store.Save(collectionProducts, items); err != nil {
		return fmt.Errorf("erro ao salvar produtos: %w", err)
	}
	r.items = items
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]product.Product(nil), r.items...), nil
}

// ListByCategory implementa product.Repository.ListByCategory
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return product.FilterByCategory(r.items, category), nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := append([]product.Product(nil), r.items...)
	for i := range items {
		if items[i].ID == p.ID {
			items[i] = *p
			if err := r.store.Save(collectionProducts, items); err != nil {
				return fmt.Errorf("erro ao salvar produtos: %w", err)
			}
			r.items = items
			return nil
		}
	}
	return ErrProductNotFound
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]product.Product, 0, len(r.items))
	found := false
	for _, p := range r.items {
		if p.ID == id {
			found = true
			continue
		}
		items = append(items, p)
	}
	if !found {
		return ErrProductNotFound
	}

	if err := r.store.Save(collectionProducts, items); err != nil {
		return fmt.Errorf("erro ao salvar produtos: %w", err)
	}
	r.items = items
	return nil
}

// DecrementStock implementa product.Repository.DecrementStock. A
// validação acontece antes de qualquer alteração: ou todos os itens têm
// estoque suficiente e a venda inteira é abatida, ou nada muda.
func (r *ProductRepository) DecrementStock(ctx context.Context, quantities map[int64]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := append([]product.Product(nil), r.items...)
	index := make(map[int64]int, len(items))
	for i, p := range items {
		index[p.ID] = i
	}

	for id, qty := range quantities {
		i, ok := index[id]
		if !ok {
			return fmt.Errorf("%w: produto %d", ErrProductNotFound, id)
		}
		if !items[i].HasStock(qty) {
			return fmt.Errorf("%w: produto %q tem %d em estoque, venda pede %d",
				ErrInsufficientStock, items[i].Name, items[i].Stock, qty)
		}
	}

	for id, qty := range quantities {
		items[index[id]].Stock -= qty
	}

	if err := r.store.Save(collectionProducts, items); err != nil {
		return fmt.Errorf("erro ao salvar produtos: %w", err)
	}
	r.items = items
	return nil
}

// productIDs coleta os IDs já usados na coleção
func productIDs(items []product.Product) []int64 {
	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}

// nextID atribui o próximo ID sequencial a partir dos já existentes
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
