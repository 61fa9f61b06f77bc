package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quintadosovos/erp-avicola/internal/domain/product"
	"github.com/quintadosovos/erp-avicola/pkg/chat"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

const (
	anthropicAPIEndpoint = "https://api.anthropic.com/v1/messages"
	historyLimit         = 10
)

// FallbackMessage é a resposta fixa devolvida quando o serviço de IA
// falha. A falha nunca se propaga para o resto do sistema.
const FallbackMessage = "Estou com uma breve instabilidade na conexão. Por favor, tente novamente para que eu possa te ajudar com sua produção na Quinta dos Ovos."

// Erros específicos
var (
	ErrMissingAPIKey = errors.New("chave da API do assistente não configurada")
)

// Config contém as configurações do cliente do assistente
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client conversa com a API de mensagens da Anthropic para dar dicas
// de compra aos clientes da loja
type Client struct {
	config     Config
	httpClient *http.Client
	logger     logger.Logger
	repository chat.Repository
}

// NewClient cria uma nova instância de Client
func NewClient(config Config, l logger.Logger, repository chat.Repository) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if config.Model == "" {
		config.Model = "claude-3-sonnet-20240229"
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = 1024
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     l,
		repository: repository,
	}, nil
}

// Message representa uma mensagem de chat no formato da API
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
	System    string    `json:"system,omitempty"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// BuildSystemPrompt monta a instrução de sistema do assistente com o
// catálogo atual achatado em texto, para que as recomendações fiquem
// restritas ao que está em estoque
func BuildSystemPrompt(products []product.Product) string {
	var catalog strings.Builder
	for _, p := range products {
		fmt.Fprintf(&catalog, "- %s (Kz %.2f): %s [Categoria: %s]\n", p.Name, p.Price, p.Description, p.Category)
	}

	return fmt.Sprintf(`Você é um especialista em avicultura da Quinta dos Ovos, atuando no mercado de Angola.
Sua missão é ajudar criadores angolanos (desde pequenos hobbystas até grandes produtores) a encontrar as melhores soluções para sua produção na nossa fazenda.

A moeda em vigor é o Kwanza Angolano (Kz).

Produtos disponíveis em estoque:
%s
Diretrizes:
1. Responda em Português com tom profissional e amigável, adaptado ao vocabulário de Angola se necessário.
2. Se o cliente perguntar sobre incubação, recomende chocadeiras e termômetros.
3. Para produtores de ovos, foque em Rações de Postura e Ninhos.
4. Dê dicas de manejo integrando os produtos da Quinta dos Ovos.
5. Recomende APENAS o que está na lista acima. Se não tivermos algo, sugira a alternativa mais próxima.
6. Refira-se aos preços sempre em Kwanza (Kz).
7. Use Markdown para facilitar a leitura.`, catalog.String())
}

// GetShoppingAdvice responde a mensagem do cliente com base no catálogo
// atual. Qualquer falha na chamada é convertida na mensagem fixa de
// fallback; o erro retornado serve apenas para logging do chamador.
func (c *Client) GetShoppingAdvice(ctx context.Context, sessionID, userMessage string, products []product.Product) (string, error) {
	// Salvar mensagem do cliente no histórico
	if err := c.repository.SaveMessage(ctx, &chat.Message{
		SessionID: sessionID,
		Role:      "user",
		Content:   userMessage,
	}); err != nil {
		c.logger.Error("erro ao salvar mensagem do cliente", "error", err)
	}

	// Recuperar histórico recente para dar contexto à conversa
	history, err := c.repository.GetSessionHistory(ctx, sessionID, historyLimit)
	if err != nil {
		c.logger.Error("erro ao recuperar histórico do chat", "error", err)
		// Continuar mesmo sem histórico
	}

	// O histórico vem das mais recentes para as mais antigas; a API
	// espera ordem cronológica
	messages := make([]Message, 0, len(history)+1)
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if msg.Role == "system" {
			continue
		}
		messages = append(messages, Message{Role: msg.Role, Content: msg.Content})
	}
	if len(messages) == 0 || messages[len(messages)-1].Content != userMessage {
		messages = append(messages, Message{Role: "user", Content: userMessage})
	}

	response, err := c.send(ctx, messages, BuildSystemPrompt(products))
	if err != nil {
		c.logger.Error("falha no serviço do assistente", "error", err)
		return FallbackMessage, err
	}

	// Salvar resposta do assistente
	if err := c.repository.SaveMessage(ctx, &chat.Message{
		SessionID: sessionID,
		Role:      "assistant",
		Content:   response,
	}); err != nil {
		c.logger.Error("erro ao salvar resposta do assistente", "error", err)
	}

	return response, nil
}

// send executa a chamada HTTP contra a API de mensagens
func (c *Client) send(ctx context.Context, messages []Message, systemPrompt string) (string, error) {
	reqBody := messageRequest{
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
		Messages:  messages,
		System:    systemPrompt,
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIEndpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição HTTP: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.config.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na chamada da API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API retornou %s: %s", resp.Status, string(respBody))
	}

	var apiResp messageResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("erro ao deserializar resposta: %w", err)
	}

	var response strings.Builder
	for _, content := range apiResp.Content {
		if content.Type == "text" {
			response.WriteString(content.Text)
		}
	}
	if response.Len() == 0 {
		return "", fmt.Errorf("resposta vazia da API")
	}

	c.logger.Info("resposta do assistente gerada",
		"model", apiResp.Model,
		"input_tokens", apiResp.Usage.InputTokens,
		"output_tokens", apiResp.Usage.OutputTokens)

	return response.String(), nil
}
