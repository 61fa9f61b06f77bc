package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/quintadosovos/erp-avicola/internal/domain/category"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
)

// Nomes das coleções persistidas, uma por registro
var categoryCollections = map[category.Kind]string{
	category.KindProduct:  "product-categories",
	category.KindEmployee: "employee-categories",
	category.KindAdmin:    "admin-categories",
}

// CategoryRepository implementa a interface category.Repository sobre o
// snapshot store local. Cada um dos três registros é uma coleção
// independente com semântica de conjunto.
type CategoryRepository struct {
	store *storage.Store
	mu    sync.RWMutex
	sets  map[category.Kind][]string
}

// NewCategoryRepository cria uma nova instância de CategoryRepository,
// recarregando os três registros ou partindo dos dados de seed.
func NewCategoryRepository(store *storage.Store, seed map[category.Kind][]string) (*CategoryRepository, error) {
	r := &CategoryRepository{
		store: store,
		sets:  make(map[category.Kind][]string, len(categoryCollections)),
	}

	for kind, collection := range categoryCollections {
		var names []string
		found, err := store.Load(collection, &names)
		if err != nil {
			return nil, err
		}
		if !found {
			names = append([]string(nil), seed[kind]...)
			if err := store.Save(collection, names); err != nil {
				return nil, err
			}
		}
		r.sets[kind] = names
	}
	return r, nil
}

// Add implementa category.Repository.Add. Inserir um nome já existente
// é absorvido em silêncio (semântica de conjunto).
func (r *CategoryRepository) Add(ctx context.Context, kind category.Kind, name string) error {
	if !category.ValidKind(kind) {
		return category.ErrUnknownKind
	}
	name, err := category.Normalize(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sets[kind] {
		if existing == name {
			return nil
		}
	}

	names := append(append([]string(nil), r.sets[kind]...), name)
	if err := r.store.Save(categoryCollections[kind], names); err != nil {
		return fmt.Errorf("erro ao salvar categorias: %w", err)
	}
	r.sets[kind] = names
	return nil
}

// Remove implementa category.Repository.Remove. Remover um nome não
// afeta entidades já marcadas com ele: referências pendentes são
// permitidas.
func (r *CategoryRepository) Remove(ctx context.Context, kind category.Kind, name string) error {
	if !category.ValidKind(kind) {
		return category.ErrUnknownKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.sets[kind]))
	for _, existing := range r.sets[kind] {
		if existing != name {
			names = append(names, existing)
		}
	}
	if len(names) == len(r.sets[kind]) {
		return nil
	}

	if err := r.store.Save(categoryCollections[kind], names); err != nil {
		return fmt.Errorf("erro ao salvar categorias: %w", err)
	}
	r.sets[kind] = names
	return nil
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context, kind category.Kind) ([]string, error) {
	if !category.ValidKind(kind) {
		return nil, category.ErrUnknownKind
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.sets[kind]...), nil
}
