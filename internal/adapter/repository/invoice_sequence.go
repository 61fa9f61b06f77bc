package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/quintadosovos/erp-avicola/internal/domain/invoice"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
)

// collectionInvoiceSeq é o nome da coleção persistida
const collectionInvoiceSeq = "invoice-seq"

// InvoiceSequence emite números de fatura monotônicos. O último número
// emitido é persistido junto com as demais coleções para que um
// reinício do sistema nunca repita um número já usado.
type InvoiceSequence struct {
	store *storage.Store
	mu    sync.Mutex
	last  int64
}

// NewInvoiceSequence cria uma nova instância de InvoiceSequence,
// recarregando o último número emitido
func NewInvoiceSequence(store *storage.Store) (*InvoiceSequence, error) {
	s := &InvoiceSequence{store: store}

	found, err := store.Load(collectionInvoiceSeq, &s.last)
	if err != nil {
		return nil, err
	}
	if !found {
		s.last = invoice.FirstNumber - 1
	}
	return s, nil
}

// Next emite o próximo número de fatura
func (s *InvoiceSequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.last + 1
	if err := s.store.Save(collectionInvoiceSeq, next); err != nil {
		return 0, fmt.Errorf("erro ao salvar sequência de faturas: %w", err)
	}
	s.last = next
	return next, nil
}
