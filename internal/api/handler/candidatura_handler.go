package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// CandidaturaHandler módulo de candidaturas em vagas
type CandidaturaHandler struct {
	candidaturaSvc service.CandidaturaService
}

// NewCandidaturaHandler cria o CandidaturaHandler
func NewCandidaturaHandler(candidaturaSvc service.CandidaturaService) *CandidaturaHandler {
	return &CandidaturaHandler{candidaturaSvc: candidaturaSvc}
}

// Criar registra a candidatura (rota pública)
// POST /api/v1/candidaturas
func (h *CandidaturaHandler) Criar(c *gin.Context) {
	var req dto.CriarCandidaturaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.candidaturaSvc.Criar(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCPFInvalido):
			response.BadRequest(c, 23002, "CPF inválido")
		case errors.Is(err, service.ErrVagaNaoEncontrada):
			response.NotFound(c, 22001, "vaga não encontrada")
		case errors.Is(err, service.ErrCandidaturasEncerradas):
			response.Conflict(c, 23003, "candidaturas encerradas para esta vaga")
		case errors.Is(err, service.ErrCandidaturaDuplicada):
			response.Conflict(c, 23001, "CPF já candidatado a esta vaga")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// ListByVaga lista as candidaturas da vaga
// GET /api/v1/vagas/:id/candidaturas
func (h *CandidaturaHandler) ListByVaga(c *gin.Context) {
	var pag dto.PaginationRequest
	if err := c.ShouldBindQuery(&pag); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	list, total, err := h.candidaturaSvc.ListByVaga(c.Request.Context(), c.Param("id"), &pag)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, pag.GetPage(), pag.GetPageSize())
}
