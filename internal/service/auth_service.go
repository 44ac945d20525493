package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/config"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/jwt"
)

var (
	ErrCredenciaisInvalidas = errors.New("e-mail ou senha incorretos")
	ErrUsuarioInativo       = errors.New("usuário desativado")
	ErrRefreshInvalido      = errors.New("refresh token inválido")
)

// TokenBlacklist revogação de tokens emitidos (logout)
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthService autenticação do backoffice
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	Me(ctx context.Context, userID string) (*dto.UsuarioResponse, error)
}

type authService struct {
	cfg       *config.Config
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService cria o serviço de autenticação.
// blacklist nil desativa a revogação no logout (ambiente sem Redis).
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		s.logger.Error("falha ao consultar usuário", zap.Error(err))
		return nil, err
	}

	if !usuario.Ativo {
		return nil, ErrUsuarioInativo
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	return s.emitirTokens(usuario.UsuarioID, usuario.Nome, usuario.Email, usuario.Papel)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshInvalido
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalido
	}

	if s.blacklist != nil {
		revogado, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("falha ao consultar blacklist", zap.Error(err))
		} else if revogado {
			return nil, ErrRefreshInvalido
		}
	}

	usuario, err := s.repo.Usuario.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshInvalido
		}
		return nil, err
	}
	if !usuario.Ativo {
		return nil, ErrUsuarioInativo
	}

	return s.emitirTokens(usuario.UsuarioID, usuario.Nome, usuario.Email, usuario.Papel)
}

// Logout revoga o token atual pela validade restante
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.blacklist == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.blacklist.BlacklistToken(ctx, claims.ID, ttl)
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{
		ID:    usuario.UsuarioID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		Papel: usuario.Papel,
	}, nil
}

func (s *authService) emitirTokens(id, nome, email, papel string) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(id, papel)
	if err != nil {
		s.logger.Error("falha ao emitir access token", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(id, papel)
	if err != nil {
		s.logger.Error("falha ao emitir refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User: dto.UsuarioResponse{
			ID:    id,
			Nome:  nome,
			Email: email,
			Papel: papel,
		},
	}, nil
}
