package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// InscricaoHandler módulo de inscrições em cursos
type InscricaoHandler struct {
	inscricaoSvc service.InscricaoService
}

// NewInscricaoHandler cria o InscricaoHandler
func NewInscricaoHandler(inscricaoSvc service.InscricaoService) *InscricaoHandler {
	return &InscricaoHandler{inscricaoSvc: inscricaoSvc}
}

// Criar inscreve o munícipe no curso (rota pública)
// POST /api/v1/cursos/:id/inscricoes
func (h *InscricaoHandler) Criar(c *gin.Context) {
	var req dto.CriarInscricaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.inscricaoSvc.Criar(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCPFInvalido):
			response.BadRequest(c, 21004, "CPF inválido")
		case errors.Is(err, service.ErrCursoNaoEncontrado):
			response.NotFound(c, 20001, "curso não encontrado")
		case errors.Is(err, service.ErrInscricoesEncerradas):
			response.Conflict(c, 21003, "inscrições encerradas para este curso")
		case errors.Is(err, service.ErrInscricaoDuplicada):
			response.Conflict(c, 21002, "CPF já inscrito neste curso")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// List lista as inscrições do curso com filtros, busca e ordenação
// GET /api/v1/cursos/:id/inscricoes
func (h *InscricaoHandler) List(c *gin.Context) {
	var req dto.InscricaoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	list, total, err := h.inscricaoSvc.List(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get detalha uma inscrição
// GET /api/v1/inscricoes/:id
func (h *InscricaoHandler) Get(c *gin.Context) {
	result, err := h.inscricaoSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrInscricaoNaoEncontrada) {
			response.NotFound(c, 21001, "inscrição não encontrada")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// AtualizarStatusLote aplica a transição à seleção inteira
// PUT /api/v1/inscricoes/status
func (h *InscricaoHandler) AtualizarStatusLote(c *gin.Context) {
	var req dto.AtualizarStatusLoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.inscricaoSvc.AtualizarStatusLote(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// EmitirCertificado grava a URL do certificado da inscrição
// PUT /api/v1/inscricoes/:id/certificado
func (h *InscricaoHandler) EmitirCertificado(c *gin.Context) {
	var req dto.CertificadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	err := h.inscricaoSvc.EmitirCertificado(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInscricaoNaoEncontrada):
			response.NotFound(c, 21001, "inscrição não encontrada")
		case errors.Is(err, service.ErrCertificadoNaoDisponivel):
			response.Conflict(c, 21005, "certificado disponível apenas para inscrições concluídas de cursos encerrados")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}
