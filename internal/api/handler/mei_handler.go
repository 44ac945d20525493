package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// OportunidadeHandler módulo de oportunidades MEI
type OportunidadeHandler struct {
	oportunidadeSvc service.OportunidadeService
}

// NewOportunidadeHandler cria o OportunidadeHandler
func NewOportunidadeHandler(oportunidadeSvc service.OportunidadeService) *OportunidadeHandler {
	return &OportunidadeHandler{oportunidadeSvc: oportunidadeSvc}
}

// Criar cria oportunidade como rascunho ou publicada, conforme a ação
// POST /api/v1/oportunidades-mei
func (h *OportunidadeHandler) Criar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MEIFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.oportunidadeSvc.Salvar(c.Request.Context(), &req, userID)
	if err != nil {
		if trataErroValidacao(c, err) {
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Atualizar regrava a oportunidade
// PUT /api/v1/oportunidades-mei/:id
func (h *OportunidadeHandler) Atualizar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MEIFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.oportunidadeSvc.Atualizar(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if trataErroValidacao(c, err) {
			return
		}
		if errors.Is(err, service.ErrOportunidadeNaoEncontrada) {
			response.NotFound(c, 24001, "oportunidade não encontrada")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get detalha a oportunidade
// GET /api/v1/oportunidades-mei/:id
func (h *OportunidadeHandler) Get(c *gin.Context) {
	result, err := h.oportunidadeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOportunidadeNaoEncontrada) {
			response.NotFound(c, 24001, "oportunidade não encontrada")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// List lista oportunidades com filtros e paginação
// GET /api/v1/oportunidades-mei
func (h *OportunidadeHandler) List(c *gin.Context) {
	var req dto.MEIListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	list, total, err := h.oportunidadeSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Encerrar encerra a oportunidade
// POST /api/v1/oportunidades-mei/:id/encerrar
func (h *OportunidadeHandler) Encerrar(c *gin.Context) {
	h.transicao(c, h.oportunidadeSvc.Encerrar)
}

// Cancelar cancela a oportunidade
// POST /api/v1/oportunidades-mei/:id/cancelar
func (h *OportunidadeHandler) Cancelar(c *gin.Context) {
	h.transicao(c, h.oportunidadeSvc.Cancelar)
}

func (h *OportunidadeHandler) transicao(c *gin.Context, op func(ctx context.Context, id string) error) {
	err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOportunidadeNaoEncontrada):
			response.NotFound(c, 24001, "oportunidade não encontrada")
		case errors.Is(err, service.ErrTransicaoInvalida):
			response.Conflict(c, 24002, "transição de status não permitida")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ExcluirRascunho exclui definitivamente um rascunho
// DELETE /api/v1/oportunidades-mei/:id
func (h *OportunidadeHandler) ExcluirRascunho(c *gin.Context) {
	err := h.oportunidadeSvc.ExcluirRascunho(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOportunidadeNaoEncontrada):
			response.NotFound(c, 24001, "oportunidade não encontrada")
		case errors.Is(err, service.ErrApenasRascunhoExcluir):
			response.Conflict(c, 24003, "apenas rascunhos podem ser excluídos")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
