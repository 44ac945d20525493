package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
)

var ErrCategoriaNaoEncontrada = errors.New("categoria não encontrada")

const categoriaCachePrefix = "cache:categorias:"

// Cache cache de leitura para consultas estáveis
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// paginaCategorias forma persistida no cache da listagem paginada
type paginaCategorias struct {
	Itens []dto.CategoriaResponse `json:"itens"`
	Total int64                   `json:"total"`
}

// CategoriaService regras de negócio das categorias de curso.
// As listagens passam por cache read-through, com uma chave por
// página; toda mutação invalida o prefixo inteiro.
type CategoriaService interface {
	Criar(ctx context.Context, req *dto.CriarCategoriaRequest, usuarioID string) (*dto.CategoriaResponse, error)
	ListAtivas(ctx context.Context) ([]dto.CategoriaResponse, error)
	List(ctx context.Context, req *dto.CategoriaListRequest) ([]dto.CategoriaResponse, int64, error)
	Desativar(ctx context.Context, id string) error
}

type categoriaService struct {
	repo   *repository.Repository
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCategoriaService cria o serviço de categorias.
// cache nil desativa o read-through; ttl zero grava sem expiração.
func NewCategoriaService(repo *repository.Repository, cache Cache, ttl time.Duration, logger *zap.Logger) CategoriaService {
	return &categoriaService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *categoriaService) Criar(ctx context.Context, req *dto.CriarCategoriaRequest, usuarioID string) (*dto.CategoriaResponse, error) {
	categoria := &model.Categoria{
		Nome:  req.Nome,
		Ativo: true,
	}
	categoria.CreatedBy = &usuarioID

	if err := s.repo.Categoria.Create(ctx, categoria); err != nil {
		s.logger.Error("falha ao criar categoria", zap.Error(err))
		return nil, err
	}
	s.invalidar(ctx)

	return &dto.CategoriaResponse{ID: categoria.CategoriaID, Nome: categoria.Nome}, nil
}

func (s *categoriaService) ListAtivas(ctx context.Context) ([]dto.CategoriaResponse, error) {
	const chave = categoriaCachePrefix + "ativas"

	if s.cache != nil {
		var cacheadas []dto.CategoriaResponse
		ok, err := s.cache.GetJSON(ctx, chave, &cacheadas)
		if err != nil {
			s.logger.Warn("falha na leitura do cache de categorias", zap.Error(err))
		} else if ok {
			return cacheadas, nil
		}
	}

	categorias, err := s.repo.Categoria.ListAtivas(ctx)
	if err != nil {
		return nil, err
	}

	respostas := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		respostas = append(respostas, dto.CategoriaResponse{ID: c.CategoriaID, Nome: c.Nome})
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, chave, respostas, s.ttl); err != nil {
			s.logger.Warn("falha na gravação do cache de categorias", zap.Error(err))
		}
	}
	return respostas, nil
}

func (s *categoriaService) List(ctx context.Context, req *dto.CategoriaListRequest) ([]dto.CategoriaResponse, int64, error) {
	chave := fmt.Sprintf("%sp%d:s%d", categoriaCachePrefix, req.GetPage(), req.GetPageSize())

	if s.cache != nil {
		var pagina paginaCategorias
		ok, err := s.cache.GetJSON(ctx, chave, &pagina)
		if err != nil {
			s.logger.Warn("falha na leitura do cache de categorias", zap.Error(err))
		} else if ok {
			return pagina.Itens, pagina.Total, nil
		}
	}

	categorias, total, err := s.repo.Categoria.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	respostas := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		respostas = append(respostas, dto.CategoriaResponse{ID: c.CategoriaID, Nome: c.Nome})
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, chave, paginaCategorias{Itens: respostas, Total: total}, s.ttl); err != nil {
			s.logger.Warn("falha na gravação do cache de categorias", zap.Error(err))
		}
	}
	return respostas, total, nil
}

// Desativar marca a categoria como inativa; cursos existentes mantêm o vínculo
func (s *categoriaService) Desativar(ctx context.Context, id string) error {
	categoria, err := s.repo.Categoria.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoriaNaoEncontrada
		}
		return err
	}

	categoria.Ativo = false
	if err := s.repo.Categoria.Update(ctx, categoria); err != nil {
		return err
	}
	s.invalidar(ctx)
	return nil
}

func (s *categoriaService) invalidar(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePrefix(ctx, categoriaCachePrefix); err != nil {
		s.logger.Warn("falha ao invalidar cache de categorias", zap.Error(err))
	}
}
