package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// HeaderConfirmarAcao cabeçalho que atesta a confirmação do modal
const HeaderConfirmarAcao = "X-Confirmar-Acao"

// ConfirmarAcao exige que a requisição declare a ação confirmada pelo
// usuário no modal. Sem o cabeçalho correto, a API responde 428 e o
// frontend reexibe a confirmação. A mecânica é a mesma para todas as
// variantes de ação.
func ConfirmarAcao(acao string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(HeaderConfirmarAcao) != acao {
			response.PreconditionRequired(c, 10005, "ação requer confirmação: "+acao)
			c.Abort()
			return
		}
		c.Next()
	}
}
