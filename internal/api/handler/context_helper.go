package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/api/middleware"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// MustGetUserID extrai o user_id injetado pelo JWTAuth.
// Em ok=false a resposta 401 já foi escrita; o chamador deve retornar.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}

// trataErroValidacao escreve o 400 com a lista de campos rejeitados.
// Retorna true quando o erro era de validação e já foi respondido.
func trataErroValidacao(c *gin.Context, err error) bool {
	var ev *service.ErroValidacao
	if errors.As(err, &ev) {
		response.ErrorWithDetails(c, 400, 10001, "dados inválidos", ev.Campos)
		return true
	}
	return false
}
