package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// AcaoHandler catálogo de ações confirmáveis
type AcaoHandler struct{}

// NewAcaoHandler cria o AcaoHandler
func NewAcaoHandler() *AcaoHandler {
	return &AcaoHandler{}
}

// Catalogo lista as ações com título, descrição, rótulo e variante do modal
// GET /api/v1/acoes-confirmacao
func (h *AcaoHandler) Catalogo(c *gin.Context) {
	response.OK(c, dto.CatalogoAcoes())
}
