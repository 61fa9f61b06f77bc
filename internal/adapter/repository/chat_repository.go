package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quintadosovos/erp-avicola/pkg/chat"
)

// ChatRepository implementa a interface chat.Repository em memória. O
// histórico do assistente é efêmero como o carrinho: conversa perdida
// em reinício não é um problema para um widget de dicas de compra.
type ChatRepository struct {
	mu       sync.RWMutex
	sessions map[string][]chat.Message
}

// NewChatRepository cria uma nova instância de ChatRepository
func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		sessions: make(map[string][]chat.Message),
	}
}

// SaveMessage implementa chat.Repository.SaveMessage
func (r *ChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[message.SessionID] = append(r.sessions[message.SessionID], *message)
	return nil
}

// GetSessionHistory implementa chat.Repository.GetSessionHistory
func (r *ChatRepository) GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := r.sessions[sessionID]
	result := make([]chat.Message, 0, limit)
	for i := len(messages) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, messages[i])
	}
	return result, nil
}
