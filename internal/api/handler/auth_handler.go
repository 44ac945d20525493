package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/api/middleware"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/service"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/jwt"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/response"
)

// AuthHandler módulo de autenticação
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler cria o AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login autentica o usuário do backoffice
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredenciaisInvalidas):
			response.Error(c, http.StatusUnauthorized, 11001, "e-mail ou senha incorretos")
		case errors.Is(err, service.ErrUsuarioInativo):
			response.Forbidden(c, 11002, "usuário desativado")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Refresh renova a sessão a partir do refresh token
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshInvalido):
			response.Unauthorized(c, 11003, "refresh token inválido ou expirado")
		case errors.Is(err, service.ErrUsuarioInativo):
			response.Forbidden(c, 11002, "usuário desativado")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout revoga o token atual
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get(middleware.CtxClaims)
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "não autenticado")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me dados do usuário autenticado
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
