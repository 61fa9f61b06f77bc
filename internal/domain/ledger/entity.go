package ledger

// TransactionType representa o sentido de uma transação financeira
type TransactionType string

// Constantes para TransactionType
const (
	TypeInflow  TransactionType = "ENTRADA" // Entrada de caixa
	TypeOutflow TransactionType = "SAIDA"   // Saída de caixa
)

// Categorias lançadas pelas operações do sistema
const (
	CategorySales   = "Vendas" // Lançamentos de checkout
	CategoryPayroll = "RH"     // Lançamentos de folha de pagamento
)

// Transaction representa um lançamento do livro-caixa. O livro é
// estritamente append-only: nenhuma operação altera ou exclui
// lançamentos já registrados.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Cost        float64         `json:"cost,omitempty"` // Custo da venda, para cálculo de margem
}
