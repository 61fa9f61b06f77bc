package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/domain/user"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// UserController gerencia as requisições relacionadas a usuários do painel
type UserController struct {
	userRepo user.Repository
	logger   logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepo user.Repository, l logger.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		logger:   l,
	}
}

// List lista os usuários
// @Summary Listar usuários
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userRepo.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar usuários", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// Create cria um novo acesso ao painel
// @Summary Criar usuário
// @Description Cria um novo usuário do painel. A senha é armazenada com hash.
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u := user.User{
		Username:    req.Username,
		Role:        req.Role,
		Category:    req.Category,
		DisplayName: req.DisplayName,
		CreatedAt:   time.Now().Format("2006-01-02"),
		Permissions: req.Permissions,
	}
	if err := u.SetPassword(req.Password); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar hash da senha", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateUsername) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Nome de usuário já existe", ""))
			return
		}
		c.logger.Error("erro ao criar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(&u))
}

// Update atualiza um usuário existente
// @Summary Atualizar usuário
// @Description Atualiza os dados de um usuário. Senha vazia preserva a atual.
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "ID do usuário"
// @Param user body dto.UserUpdateRequest true "Dados do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", err.Error()))
		return
	}

	var req dto.UserUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	existing, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar usuário", err.Error()))
		return
	}

	u := user.User{
		ID:          id,
		Username:    req.Username,
		Role:        req.Role,
		Category:    req.Category,
		DisplayName: req.DisplayName,
		CreatedAt:   existing.CreatedAt,
		Permissions: req.Permissions,
	}
	if req.Password != "" {
		if err := u.SetPassword(req.Password); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar hash da senha", err.Error()))
			return
		}
	}

	if err := c.userRepo.Update(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicateUsername) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Nome de usuário já existe", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(&u))
}

// Delete remove um usuário
// @Summary Excluir usuário
// @Description Remove um acesso ao painel. A exclusão é imediata e irreversível.
// @Tags users
// @Produce json
// @Security Bearer
// @Param id path int true "ID do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID inválido", err.Error()))
		return
	}

	if err := c.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Usuário removido", nil))
}
