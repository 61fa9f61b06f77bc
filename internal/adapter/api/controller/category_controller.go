package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/dto"
	"github.com/quintadosovos/erp-avicola/internal/domain/category"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// CategoryController gerencia os três registros de categorias
type CategoryController struct {
	categoryRepo category.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo category.Repository, l logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       l,
	}
}

// kindFromParam resolve o parâmetro de rota para o tipo de registro
func kindFromParam(param string) (category.Kind, bool) {
	kind := category.Kind(strings.ToUpper(param))
	return kind, category.ValidKind(kind)
}

// List lista os nomes de um registro de categorias
// @Summary Listar categorias
// @Tags categories
// @Produce json
// @Security Bearer
// @Param kind path string true "Registro (product, employee ou admin)"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories/{kind} [get]
func (c *CategoryController) List(ctx *gin.Context) {
	kind, ok := kindFromParam(ctx.Param("kind"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Registro de categorias desconhecido", ctx.Param("kind")))
		return
	}

	names, err := c.categoryRepo.List(ctx, kind)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Kind: string(kind), Names: names})
}

// Add insere uma categoria no registro
// @Summary Adicionar categoria
// @Description Insere um nome no registro. Inserir um nome já existente é absorvido em silêncio.
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param kind path string true "Registro (product, employee ou admin)"
// @Param category body dto.CategoryRequest true "Nome da categoria"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories/{kind} [post]
func (c *CategoryController) Add(ctx *gin.Context) {
	kind, ok := kindFromParam(ctx.Param("kind"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Registro de categorias desconhecido", ctx.Param("kind")))
		return
	}

	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.categoryRepo.Add(ctx, kind, req.Name); err != nil {
		if errors.Is(err, category.ErrBlankName) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Nome de categoria em branco", ""))
			return
		}
		c.logger.Error("erro ao adicionar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	names, err := c.categoryRepo.List(ctx, kind)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Kind: string(kind), Names: names})
}

// Remove exclui uma categoria do registro
// @Summary Remover categoria
// @Description Remove um nome do registro. Entidades já marcadas com o nome não são alteradas.
// @Tags categories
// @Produce json
// @Security Bearer
// @Param kind path string true "Registro (product, employee ou admin)"
// @Param name path string true "Nome da categoria"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories/{kind}/{name} [delete]
func (c *CategoryController) Remove(ctx *gin.Context) {
	kind, ok := kindFromParam(ctx.Param("kind"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Registro de categorias desconhecido", ctx.Param("kind")))
		return
	}

	if err := c.categoryRepo.Remove(ctx, kind, ctx.Param("name")); err != nil {
		c.logger.Error("erro ao remover categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover categoria", err.Error()))
		return
	}

	names, err := c.categoryRepo.List(ctx, kind)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Kind: string(kind), Names: names})
}
