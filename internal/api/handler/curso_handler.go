package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// CursoHandler módulo de cursos
type CursoHandler struct {
	cursoSvc service.CursoService
}

// NewCursoHandler cria o CursoHandler
func NewCursoHandler(cursoSvc service.CursoService) *CursoHandler {
	return &CursoHandler{cursoSvc: cursoSvc}
}

// Criar cria curso como rascunho ou publicado, conforme a ação
// POST /api/v1/cursos
func (h *CursoHandler) Criar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CursoFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.cursoSvc.Salvar(c.Request.Context(), &req, userID)
	if err != nil {
		if trataErroValidacao(c, err) {
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Atualizar regrava o curso; publicar um rascunho é action=publish
// PUT /api/v1/cursos/:id
func (h *CursoHandler) Atualizar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CursoFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.cursoSvc.Atualizar(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if trataErroValidacao(c, err) {
			return
		}
		if errors.Is(err, service.ErrCursoNaoEncontrado) {
			response.NotFound(c, 20001, "curso não encontrado")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get detalha o curso na forma de backend
// GET /api/v1/cursos/:id
func (h *CursoHandler) Get(c *gin.Context) {
	result, err := h.cursoSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCursoNaoEncontrado) {
			response.NotFound(c, 20001, "curso não encontrado")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// List lista cursos com filtros e paginação
// GET /api/v1/cursos
func (h *CursoHandler) List(c *gin.Context) {
	var req dto.CursoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	list, total, err := h.cursoSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Encerrar encerra as inscrições
// POST /api/v1/cursos/:id/encerrar
func (h *CursoHandler) Encerrar(c *gin.Context) {
	h.transicao(c, h.cursoSvc.Encerrar)
}

// Cancelar cancela o curso
// POST /api/v1/cursos/:id/cancelar
func (h *CursoHandler) Cancelar(c *gin.Context) {
	h.transicao(c, h.cursoSvc.Cancelar)
}

// Reabrir reabre as inscrições
// POST /api/v1/cursos/:id/reabrir
func (h *CursoHandler) Reabrir(c *gin.Context) {
	h.transicao(c, h.cursoSvc.Reabrir)
}

func (h *CursoHandler) transicao(c *gin.Context, op func(ctx context.Context, id string) error) {
	err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCursoNaoEncontrado):
			response.NotFound(c, 20001, "curso não encontrado")
		case errors.Is(err, service.ErrTransicaoInvalida):
			response.Conflict(c, 20002, "transição de status não permitida")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ExcluirRascunho exclui definitivamente um rascunho
// DELETE /api/v1/cursos/:id
func (h *CursoHandler) ExcluirRascunho(c *gin.Context) {
	err := h.cursoSvc.ExcluirRascunho(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCursoNaoEncontrado):
			response.NotFound(c, 20001, "curso não encontrado")
		case errors.Is(err, service.ErrApenasRascunhoExcluir):
			response.Conflict(c, 20003, "apenas rascunhos podem ser excluídos")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ExportarCalendario gera o iCalendar das turmas do curso
// GET /api/v1/cursos/:id/calendario.ics
func (h *CursoHandler) ExportarCalendario(c *gin.Context) {
	conteudo, err := h.cursoSvc.ExportarCalendario(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCursoNaoEncontrado) {
			response.NotFound(c, 20001, "curso não encontrado")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="curso.ics"`)
	c.Data(200, "text/calendar; charset=utf-8", []byte(conteudo))
}
