package dto

// AssistantRequest representa a mensagem do cliente para o assistente
// de compras. O session_id agrupa a conversa; vazio inicia uma nova.
type AssistantRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// AssistantResponse representa a resposta do assistente
type AssistantResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}
