package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// VagaHandler módulo de vagas de empregabilidade
type VagaHandler struct {
	vagaSvc service.VagaService
}

// NewVagaHandler cria o VagaHandler
func NewVagaHandler(vagaSvc service.VagaService) *VagaHandler {
	return &VagaHandler{vagaSvc: vagaSvc}
}

// Criar cria vaga como rascunho ou publicada, conforme a ação
// POST /api/v1/vagas
func (h *VagaHandler) Criar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.VagaFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.vagaSvc.Salvar(c.Request.Context(), &req, userID)
	if err != nil {
		if trataErroValidacao(c, err) {
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Atualizar regrava a vaga
// PUT /api/v1/vagas/:id
func (h *VagaHandler) Atualizar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.VagaFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.vagaSvc.Atualizar(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if trataErroValidacao(c, err) {
			return
		}
		if errors.Is(err, service.ErrVagaNaoEncontrada) {
			response.NotFound(c, 22001, "vaga não encontrada")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get detalha a vaga
// GET /api/v1/vagas/:id
func (h *VagaHandler) Get(c *gin.Context) {
	result, err := h.vagaSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVagaNaoEncontrada) {
			response.NotFound(c, 22001, "vaga não encontrada")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// List lista vagas com filtros e paginação
// GET /api/v1/vagas
func (h *VagaHandler) List(c *gin.Context) {
	var req dto.VagaListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	list, total, err := h.vagaSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Encerrar encerra as candidaturas
// POST /api/v1/vagas/:id/encerrar
func (h *VagaHandler) Encerrar(c *gin.Context) {
	h.transicao(c, h.vagaSvc.Encerrar)
}

// Cancelar cancela a vaga
// POST /api/v1/vagas/:id/cancelar
func (h *VagaHandler) Cancelar(c *gin.Context) {
	h.transicao(c, h.vagaSvc.Cancelar)
}

func (h *VagaHandler) transicao(c *gin.Context, op func(ctx context.Context, id string) error) {
	err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVagaNaoEncontrada):
			response.NotFound(c, 22001, "vaga não encontrada")
		case errors.Is(err, service.ErrTransicaoInvalida):
			response.Conflict(c, 22002, "transição de status não permitida")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ExcluirRascunho exclui definitivamente um rascunho
// DELETE /api/v1/vagas/:id
func (h *VagaHandler) ExcluirRascunho(c *gin.Context) {
	err := h.vagaSvc.ExcluirRascunho(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVagaNaoEncontrada):
			response.NotFound(c, 22001, "vaga não encontrada")
		case errors.Is(err, service.ErrApenasRascunhoExcluir):
			response.Conflict(c, 22003, "apenas rascunhos podem ser excluídos")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ReordenarEtapas aplica a nova ordem das etapas do processo seletivo
// PUT /api/v1/vagas/:id/etapas/ordem
func (h *VagaHandler) ReordenarEtapas(c *gin.Context) {
	var req dto.ReordenarEtapasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.vagaSvc.ReordenarEtapas(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVagaNaoEncontrada):
			response.NotFound(c, 22001, "vaga não encontrada")
		case errors.Is(err, service.ErrOrdemInvalida):
			response.BadRequest(c, 22004, "a ordem informada não é uma permutação das etapas da vaga")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
