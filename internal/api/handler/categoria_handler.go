package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// CategoriaHandler módulo de categorias de curso
type CategoriaHandler struct {
	categoriaSvc service.CategoriaService
}

// NewCategoriaHandler cria o CategoriaHandler
func NewCategoriaHandler(categoriaSvc service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{categoriaSvc: categoriaSvc}
}

// Criar cria a categoria
// POST /api/v1/categorias
func (h *CategoriaHandler) Criar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CriarCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.categoriaSvc.Criar(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListAtivas categorias ativas para os seletores do formulário (cacheada)
// GET /api/v1/categorias/ativas
func (h *CategoriaHandler) ListAtivas(c *gin.Context) {
	list, err := h.categoriaSvc.ListAtivas(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// List listagem paginada de todas as categorias
// GET /api/v1/categorias
func (h *CategoriaHandler) List(c *gin.Context) {
	var req dto.CategoriaListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	list, total, err := h.categoriaSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Desativar marca a categoria como inativa
// DELETE /api/v1/categorias/:id
func (h *CategoriaHandler) Desativar(c *gin.Context) {
	err := h.categoriaSvc.Desativar(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCategoriaNaoEncontrada) {
			response.NotFound(c, 26001, "categoria não encontrada")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
