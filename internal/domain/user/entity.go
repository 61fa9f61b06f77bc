package user

import (
	"golang.org/x/crypto/bcrypt"
)

// Role representa o papel/função do usuário no painel administrativo
type Role string

// Constantes para Role
const (
	RoleAdmin Role = "admin" // Administrador do sistema
	RoleStaff Role = "staff" // Operador regular
)

// Identificadores das abas do painel administrativo. Cada usuário
// carrega o subconjunto de abas que pode acessar.
const (
	PermDashboard  = "dashboard"
	PermCashier    = "caixa"
	PermStock      = "stock"
	PermHR         = "rh"
	PermUsers      = "users"
	PermFinance    = "finance"
	PermAccounts   = "accounts"
	PermCategories = "categories"
)

// AllPermissions lista todas as abas do painel administrativo
var AllPermissions = []string{
	PermDashboard, PermCashier, PermStock, PermHR,
	PermUsers, PermFinance, PermAccounts, PermCategories,
}

// User representa um usuário com acesso ao painel administrativo
type User struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Password    string   `json:"password_hash"` // Hash bcrypt; as respostas da API usam o DTO, que não expõe este campo
	Role        Role     `json:"role"`
	Category    string   `json:"category"`
	DisplayName string   `json:"display_name"`
	CreatedAt   string   `json:"created_at"`
	Permissions []string `json:"permissions"`
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem acesso à aba informada
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
