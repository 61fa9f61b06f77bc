package chat

import (
	"context"
)

// Repository define a interface para operações de repositório do histórico de chat
type Repository interface {
	// SaveMessage salva uma nova mensagem no histórico
	SaveMessage(ctx context.Context, message *Message) error

	// GetSessionHistory retorna o histórico de mensagens de uma sessão,
	// das mais recentes para as mais antigas
	GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]Message, error)
}
