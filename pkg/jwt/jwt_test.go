package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/prefeitura-rio/portal-interno-sub000/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:              "segredo-de-teste-0123456789",
		AccessTokenTTL:         accessTTL,
		RefreshTokenTTLDefault: 24 * time.Hour,
	})
}

func TestManager_GenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("user-001", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken deve ter sucesso: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken deve ter sucesso: %v", err)
	}
	if claims.UserID != "user-001" {
		t.Errorf("esperava UserID=user-001, obteve %s", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("esperava Role=admin, obteve %s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("esperava TokenType=access, obteve %s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("esperava JTI preenchido")
	}
}

func TestManager_RefreshTokenType(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("user-001", "gestor")
	if err != nil {
		t.Fatalf("GenerateRefreshToken deve ter sucesso: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken deve ter sucesso: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("esperava TokenType=refresh, obteve %s", claims.TokenType)
	}
}

func TestManager_TokenExpirado(t *testing.T) {
	m := newTestManager(-1 * time.Minute)

	token, err := m.GenerateAccessToken("user-001", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken deve ter sucesso: %v", err)
	}

	_, err = m.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("esperava ErrTokenExpired, obteve: %v", err)
	}
}

func TestManager_TokenInvalido(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	_, err := m.ParseToken("nao-e-um-token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("esperava ErrTokenInvalid, obteve: %v", err)
	}

	// Token assinado com outro segredo
	outro := NewManager(&config.AuthConfig{
		JWTSecret:              "outro-segredo-9876543210",
		AccessTokenTTL:         15 * time.Minute,
		RefreshTokenTTLDefault: 24 * time.Hour,
	})
	token, _ := outro.GenerateAccessToken("user-001", "admin")
	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("esperava ErrTokenInvalid para assinatura divergente, obteve: %v", err)
	}
}
