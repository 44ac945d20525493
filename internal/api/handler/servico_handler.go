package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// ServicoHandler módulo do catálogo de serviços municipais
type ServicoHandler struct {
	servicoSvc service.ServicoService
}

// NewServicoHandler cria o ServicoHandler
func NewServicoHandler(servicoSvc service.ServicoService) *ServicoHandler {
	return &ServicoHandler{servicoSvc: servicoSvc}
}

// Criar cria o serviço em edição
// POST /api/v1/servicos
func (h *ServicoHandler) Criar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ServicoFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.servicoSvc.Criar(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Atualizar regrava os campos editáveis, preservando o ciclo de vida
// PUT /api/v1/servicos/:id
func (h *ServicoHandler) Atualizar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ServicoFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.servicoSvc.Atualizar(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrServicoNaoEncontrado) {
			response.NotFound(c, 25001, "serviço não encontrado")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get detalha o serviço com o rótulo tri-estado
// GET /api/v1/servicos/:id
func (h *ServicoHandler) Get(c *gin.Context) {
	result, err := h.servicoSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrServicoNaoEncontrado) {
			response.NotFound(c, 25001, "serviço não encontrado")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// List lista serviços filtrando pelo rótulo tri-estado
// GET /api/v1/servicos
func (h *ServicoHandler) List(c *gin.Context) {
	var req dto.ServicoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	list, total, err := h.servicoSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// EnviarParaAprovacao em edição -> aguardando aprovação
// POST /api/v1/servicos/:id/enviar-aprovacao
func (h *ServicoHandler) EnviarParaAprovacao(c *gin.Context) {
	h.transicao(c, h.servicoSvc.EnviarParaAprovacao)
}

// DevolverParaEdicao aguardando aprovação -> em edição
// POST /api/v1/servicos/:id/devolver
func (h *ServicoHandler) DevolverParaEdicao(c *gin.Context) {
	h.transicao(c, h.servicoSvc.DevolverParaEdicao)
}

// Publicar aguardando aprovação -> publicado, após validação completa
// POST /api/v1/servicos/:id/publicar
func (h *ServicoHandler) Publicar(c *gin.Context) {
	err := h.servicoSvc.Publicar(c.Request.Context(), c.Param("id"))
	if err != nil {
		if trataErroValidacao(c, err) {
			return
		}
		switch {
		case errors.Is(err, service.ErrServicoNaoEncontrado):
			response.NotFound(c, 25001, "serviço não encontrado")
		case errors.Is(err, service.ErrTransicaoInvalida):
			response.Conflict(c, 25002, "transição de status não permitida")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// Despublicar publicado -> em edição
// POST /api/v1/servicos/:id/despublicar
func (h *ServicoHandler) Despublicar(c *gin.Context) {
	h.transicao(c, h.servicoSvc.Despublicar)
}

func (h *ServicoHandler) transicao(c *gin.Context, op func(ctx context.Context, id string) error) {
	err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServicoNaoEncontrado):
			response.NotFound(c, 25001, "serviço não encontrado")
		case errors.Is(err, service.ErrTransicaoInvalida):
			response.Conflict(c, 25002, "transição de status não permitida")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// Excluir remove o serviço não publicado
// DELETE /api/v1/servicos/:id
func (h *ServicoHandler) Excluir(c *gin.Context) {
	err := h.servicoSvc.Excluir(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServicoNaoEncontrado):
			response.NotFound(c, 25001, "serviço não encontrado")
		case errors.Is(err, service.ErrServicoPublicadoExcluir):
			response.Conflict(c, 25003, "serviço publicado não pode ser excluído; despublique antes")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// Tombar cria o vínculo de migração com o serviço legado
// POST /api/v1/servicos/:id/tombar
func (h *ServicoHandler) Tombar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.TombarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.servicoSvc.Tombar(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServicoNaoEncontrado):
			response.NotFound(c, 25001, "serviço não encontrado")
		case errors.Is(err, service.ErrServicoJaTombado):
			response.Conflict(c, 25004, "serviço já possui tombamento ativo")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// Destombar remove o vínculo de tombamento
// DELETE /api/v1/servicos/:id/tombar
func (h *ServicoHandler) Destombar(c *gin.Context) {
	err := h.servicoSvc.Destombar(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServicoNaoEncontrado):
			response.NotFound(c, 25001, "serviço não encontrado")
		case errors.Is(err, service.ErrTombamentoNaoEncontrado):
			response.NotFound(c, 25005, "serviço não possui tombamento")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
