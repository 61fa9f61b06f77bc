package dto

import (
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
)

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Username    string    `json:"username" binding:"required"`
	Password    string    `json:"password" binding:"required"`
	Role        user.Role `json:"role" binding:"required,oneof=admin staff"`
	Category    string    `json:"category"`
	DisplayName string    `json:"display_name" binding:"required"`
	Permissions []string  `json:"permissions"`
}

// UserUpdateRequest representa a requisição de atualização de usuário.
// A senha é opcional: vazia preserva a atual.
type UserUpdateRequest struct {
	Username    string    `json:"username" binding:"required"`
	Password    string    `json:"password"`
	Role        user.Role `json:"role" binding:"required,oneof=admin staff"`
	Category    string    `json:"category"`
	DisplayName string    `json:"display_name" binding:"required"`
	Permissions []string  `json:"permissions"`
}

// UserResponse representa a resposta de usuário. A senha nunca aparece.
type UserResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Role        user.Role `json:"role"`
	Category    string    `json:"category"`
	DisplayName string    `json:"display_name"`
	CreatedAt   string    `json:"created_at"`
	Permissions []string  `json:"permissions"`
}

// ToUserResponse converte um usuário do domínio para a resposta da API
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		Category:    u.Category,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
		Permissions: u.Permissions,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio
func ToUserListResponse(users []user.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, ToUserResponse(&users[i]))
	}
	return result
}
