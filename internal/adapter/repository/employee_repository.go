package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/quintadosovos/erp-avicola/internal/domain/employee"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
)

// Erros específicos do repositório
var (
	ErrEmployeeNotFound = errors.New("funcionário não encontrado")
)

// collectionEmployees é o nome da coleção persistida
const collectionEmployees = "employees"

// EmployeeRepository implementa a interface employee.Repository sobre o
// snapshot store local
type EmployeeRepository struct {
	store *storage.Store
	mu    sync.RWMutex
	items []employee.Employee
}

// NewEmployeeRepository cria uma nova instância de EmployeeRepository,
// recarregando o snapshot existente ou partindo dos dados de seed.
func NewEmployeeRepository(store *storage.Store, seed []employee.Employee) (*EmployeeRepository, error) {
	r := &EmployeeRepository{store: store}

	found, err := store.Load(collectionEmployees, &r.items)
	if err != nil {
		return nil, err
	}
	if !found {
		r.items = append([]employee.Employee(nil), seed...)
		if err := store.Save(collectionEmployees, r.items); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Create implementa employee.Repository.Create
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = nextID(employeeIDs(r.items))
	if e.PaymentStatus == "" {
		e.PaymentStatus = employee.PaymentPending
	}

	items := append(append([]employee.Employee(nil), r.items...), *e)
	if err := r.store.Save(collectionEmployees, items); err != nil {
		return fmt.Errorf("erro ao salvar funcionários: %w", err)
	}
	r.items = items
	return nil
}

// FindByID implementa employee.Repository.FindByID
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

// List implementa employee.Repository.List
func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]employee.Employee(nil), r.items...), nil
}

// Update implementa employee.Repository.Update
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := append([]employee.Employee(nil), r.items...)
	for i := range items {
		if items[i].ID == e.ID {
			items[i] = *e
			if err := r.store.Save(collectionEmployees, items); err != nil {
				return fmt.Errorf("erro ao salvar funcionários: %w", err)
			}
			r.items = items
			return nil
		}
	}
	return ErrEmployeeNotFound
}

// Delete implementa employee.Repository.Delete
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]employee.Employee, 0, len(r.items))
	found := false
	for _, e := range r.items {
		if e.ID == id {
			found = true
			continue
		}
		items = append(items, e)
	}
	if !found {
		return ErrEmployeeNotFound
	}

	if err := r.store.Save(collectionEmployees, items); err != nil {
		return fmt.Errorf("erro ao salvar funcionários: %w", err)
	}
	r.items = items
	return nil
}

// MarkPaid implementa employee.Repository.MarkPaid
func (r *EmployeeRepository) MarkPaid(ctx context.Context, id int64, paymentDate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := append([]employee.Employee(nil), r.items...)
	for i := range items {
		if items[i].ID == id {
			items[i].PaymentStatus = employee.PaymentPaid
			items[i].LastPaymentDate = paymentDate
			if err := r.store.Save(collectionEmployees, items); err != nil {
				return fmt.Errorf("erro ao salvar funcionários: %w", err)
			}
			r.items = items
			return nil
		}
	}
	return ErrEmployeeNotFound
}

// employeeIDs coleta os IDs já usados na coleção
func employeeIDs(items []employee.Employee) []int64 {
	ids := make([]int64, 0, len(items))
	for _, e := range items {
		ids = append(ids, e.ID)
	}
	return ids
}
