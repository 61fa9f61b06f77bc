package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/quintadosovos/erp-avicola/internal/domain/cart"
	"github.com/quintadosovos/erp-avicola/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrCartNotFound = errors.New("carrinho não encontrado")
)

// CartRepository guarda os carrinhos de compra da loja, um por sessão
// de navegação, identificados por token. Carrinhos são efêmeros:
// vivem apenas em memória e nunca entram nos snapshots.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string][]cart.Item
}

// NewCartRepository cria uma nova instância de CartRepository
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string][]cart.Item),
	}
}

// Create abre um novo carrinho vazio e retorna seu token
func (r *CartRepository) Create() string {
	token := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[token] = []cart.Item{}
	return token
}

// Get retorna os itens do carrinho identificado pelo token
func (r *CartRepository) Get(token string) ([]cart.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.carts[token]
	if !ok {
		return nil, ErrCartNotFound
	}
	return cart.Copy(items), nil
}

// AddItem acrescenta um produto ao carrinho e retorna os itens resultantes
func (r *CartRepository) AddItem(token string, p product.Product) ([]cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[token]
	if !ok {
		return nil, ErrCartNotFound
	}
	items = cart.Add(items, p)
	r.carts[token] = items
	return cart.Copy(items), nil
}

// UpdateQuantity aplica um delta à quantidade de um item do carrinho
func (r *CartRepository) UpdateQuantity(token string, productID int64, delta int) ([]cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[token]
	if !ok {
		return nil, ErrCartNotFound
	}
	items = cart.UpdateQuantity(items, productID, delta)
	r.carts[token] = items
	return cart.Copy(items), nil
}

// RemoveItem exclui um item do carrinho
func (r *CartRepository) RemoveItem(token string, productID int64) ([]cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[token]
	if !ok {
		return nil, ErrCartNotFound
	}
	items = cart.Remove(items, productID)
	r.carts[token] = items
	return cart.Copy(items), nil
}

// Clear esvazia o carrinho após um checkout bem-sucedido
func (r *CartRepository) Clear(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[token]; !ok {
		return ErrCartNotFound
	}
	r.carts[token] = []cart.Item{}
	return nil
}
