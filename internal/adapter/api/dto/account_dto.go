package dto

import (
	"github.com/quintadosovos/erp-avicola/internal/domain/account"
)

// AccountRequest representa a requisição de abertura de conta corrente
type AccountRequest struct {
	EntityName   string             `json:"entity_name" binding:"required"`
	Type         account.EntityType `json:"type" binding:"required,oneof=CLIENTE FORNECEDOR"`
	Balance      float64            `json:"balance"`
	LastActivity string             `json:"last_activity"`
}

// ToAccount converte a requisição para a entidade do domínio. O status
// é derivado do saldo pelo repositório na abertura.
func (r *AccountRequest) ToAccount() account.Account {
	return account.Account{
		EntityName:   r.EntityName,
		Type:         r.Type,
		Balance:      r.Balance,
		LastActivity: r.LastActivity,
	}
}
