package account

// EntityType representa o tipo de entidade da conta corrente
type EntityType string

// Status representa a situação da conta corrente
type Status string

// Constantes para EntityType
const (
	TypeClient   EntityType = "CLIENTE"    // Cliente da fazenda
	TypeSupplier EntityType = "FORNECEDOR" // Fornecedor de insumos
)

// Constantes para Status
const (
	StatusDebtor   Status = "DEVEDOR" // Saldo negativo
	StatusCreditor Status = "CREDOR"  // Saldo zerado ou positivo
)

// Account representa uma conta corrente: um saldo devido a/por um
// cliente ou fornecedor, independente do livro-caixa de vendas.
type Account struct {
	ID           int64      `json:"id"`
	EntityName   string     `json:"entity_name"`
	Type         EntityType `json:"type"`
	Balance      float64    `json:"balance"`
	Status       Status     `json:"status"`
	LastActivity string     `json:"last_activity"`
}

// StatusForBalance deriva a situação da conta a partir do saldo
// inicial. O cálculo acontece uma única vez, na abertura da conta.
func StatusForBalance(balance float64) Status {
	if balance < 0 {
		return StatusDebtor
	}
	return StatusCreditor
}
