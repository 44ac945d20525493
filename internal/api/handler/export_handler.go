package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// ExportHandler exportação de inscrições
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler cria o ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportarCSV exporta todas as inscrições do curso em CSV
// GET /api/v1/cursos/:id/inscricoes/export
func (h *ExportHandler) ExportarCSV(c *gin.Context) {
	h.exportar(c, h.exportSvc.ExportarInscricoesCSV)
}

// ExportarXLSX exporta todas as inscrições do curso em planilha
// GET /api/v1/cursos/:id/inscricoes/export.xlsx
func (h *ExportHandler) ExportarXLSX(c *gin.Context) {
	h.exportar(c, h.exportSvc.ExportarInscricoesXLSX)
}

func (h *ExportHandler) exportar(c *gin.Context, op func(ctx context.Context, cursoID string) (*service.Exportacao, error)) {
	arquivo, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCursoNaoEncontrado) {
			response.NotFound(c, 20001, "curso não encontrado")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+arquivo.NomeArquivo+`"`)
	c.Data(200, arquivo.ContentType, arquivo.Conteudo)
}
