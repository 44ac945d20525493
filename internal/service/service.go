package service

import (
	"go.uber.org/zap"

	"github.com/prefeitura-rio/portal-interno-sub000/config"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/validation"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/jwt"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/redis"
)

// Service ponto de agregação de todos os serviços
type Service struct {
	Auth         AuthService
	Curso        CursoService
	Inscricao    InscricaoService
	Export       ExportService
	Vaga         VagaService
	Candidatura  CandidaturaService
	Oportunidade OportunidadeService
	Servico      ServicoService
	Categoria    CategoriaService
}

// NewService cria o agregado de serviços.
// O cliente Redis pode ser nil: cache e blacklist degradam para no-op.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	var categoriaCache Cache
	if cache != nil {
		categoriaCache = cache
	}
	var blacklist TokenBlacklist
	if cache != nil {
		blacklist = cache
	}

	pol := validation.Politica{ValidarDatasRascunho: cfg.Feature.ValidarDatasRascunho}

	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, blacklist, logger),
		Curso:        NewCursoService(repo, pol, logger),
		Inscricao:    NewInscricaoService(repo, logger),
		Export:       NewExportService(repo, logger),
		Vaga:         NewVagaService(repo, pol, logger),
		Candidatura:  NewCandidaturaService(repo, logger),
		Oportunidade: NewOportunidadeService(repo, logger),
		Servico:      NewServicoService(repo, logger),
		Categoria:    NewCategoriaService(repo, categoriaCache, cfg.Feature.CategoriasCacheTTL, logger),
	}
}

// ErroValidacao carrega a lista de campos rejeitados pela validação.
// A validação é tudo-ou-nada: qualquer campo inválido bloqueia a operação.
type ErroValidacao struct {
	Campos []validation.ErroCampo
}

func (e *ErroValidacao) Error() string {
	return "dados inválidos"
}

func erroSeInvalido(campos []validation.ErroCampo) error {
	if len(campos) > 0 {
		return &ErroValidacao{Campos: campos}
	}
	return nil
}
