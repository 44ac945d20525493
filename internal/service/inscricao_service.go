package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/normalizer"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/cpf"
)

var (
	ErrInscricaoNaoEncontrada   = errors.New("inscrição não encontrada")
	ErrInscricaoDuplicada       = errors.New("CPF já inscrito neste curso")
	ErrInscricoesEncerradas     = errors.New("inscrições encerradas para este curso")
	ErrCPFInvalido              = errors.New("CPF inválido")
	ErrCertificadoNaoDisponivel = errors.New("certificado disponível apenas para inscrições concluídas de cursos encerrados")
)

// InscricaoService regras de negócio das inscrições em cursos
type InscricaoService interface {
	Criar(ctx context.Context, cursoID string, req *dto.CriarInscricaoRequest) (*dto.InscricaoResponse, error)
	GetByID(ctx context.Context, id string) (*dto.InscricaoResponse, error)
	List(ctx context.Context, cursoID string, req *dto.InscricaoListRequest) ([]dto.InscricaoResponse, int64, error)
	AtualizarStatusLote(ctx context.Context, req *dto.AtualizarStatusLoteRequest) (*dto.ResultadoLoteResponse, error)
	EmitirCertificado(ctx context.Context, id string, req *dto.CertificadoRequest) error
}

type inscricaoService struct {
	repo   *repository.Repository
	logger *zap.Logger
	agora  func() time.Time
}

// NewInscricaoService cria o serviço de inscrições
func NewInscricaoService(repo *repository.Repository, logger *zap.Logger) InscricaoService {
	return &inscricaoService{
		repo:   repo,
		logger: logger,
		agora:  time.Now,
	}
}

// Criar inscreve o munícipe no curso. O CPF é validado pelo algoritmo de
// dígitos verificadores antes de qualquer consulta ao banco.
func (s *inscricaoService) Criar(ctx context.Context, cursoID string, req *dto.CriarInscricaoRequest) (*dto.InscricaoResponse, error) {
	if !cpf.Valido(req.CPF) {
		return nil, ErrCPFInvalido
	}

	curso, err := s.repo.Curso.GetByID(ctx, cursoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCursoNaoEncontrado
		}
		return nil, err
	}
	if curso.Status != model.CursoStatusAberto || curso.Encerrado(s.agora()) {
		return nil, ErrInscricoesEncerradas
	}

	existe, err := s.repo.Inscricao.ExistsByCursoAndCPF(ctx, cursoID, cpf.Normalizar(req.CPF))
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrInscricaoDuplicada
	}

	inscricao := normalizer.NormalizarInscricao(cursoID, req)
	if err := s.repo.Inscricao.Create(ctx, inscricao); err != nil {
		s.logger.Error("falha ao criar inscrição", zap.Error(err))
		return nil, err
	}

	s.logger.Info("inscrição criada",
		zap.String("inscricao_id", inscricao.InscricaoID),
		zap.String("curso_id", cursoID))

	return normalizer.InscricaoParaResponse(inscricao), nil
}

func (s *inscricaoService) GetByID(ctx context.Context, id string) (*dto.InscricaoResponse, error) {
	inscricao, err := s.repo.Inscricao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInscricaoNaoEncontrada
		}
		return nil, err
	}
	return normalizer.InscricaoParaResponse(inscricao), nil
}

func (s *inscricaoService) List(ctx context.Context, cursoID string, req *dto.InscricaoListRequest) ([]dto.InscricaoResponse, int64, error) {
	inscricoes, total, err := s.repo.Inscricao.List(ctx, repository.InscricaoFiltro{
		CursoID:    cursoID,
		Status:     req.Status,
		Busca:      req.Busca,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
		OrdenarPor: req.OrdenarPor,
		Ordem:      req.Ordem,
		Offset:     req.GetOffset(),
		Limit:      req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	respostas := make([]dto.InscricaoResponse, 0, len(inscricoes))
	for i := range inscricoes {
		respostas = append(respostas, *normalizer.InscricaoParaResponse(&inscricoes[i]))
	}
	return respostas, total, nil
}

// AtualizarStatusLote aplica a transição à seleção inteira; linhas que já
// estão no status alvo contam como ignoradas, nunca como erro
func (s *inscricaoService) AtualizarStatusLote(ctx context.Context, req *dto.AtualizarStatusLoteRequest) (*dto.ResultadoLoteResponse, error) {
	atualizadas, err := s.repo.Inscricao.UpdateStatusLote(ctx, req.IDs, req.Status, req.MotivoRejeicao)
	if err != nil {
		s.logger.Error("falha na atualização em lote", zap.Error(err))
		return nil, err
	}

	s.logger.Info("status atualizado em lote",
		zap.String("status", req.Status),
		zap.Int("selecionadas", len(req.IDs)),
		zap.Int64("atualizadas", atualizadas))

	return &dto.ResultadoLoteResponse{
		Atualizadas: int(atualizadas),
		Ignoradas:   len(req.IDs) - int(atualizadas),
	}, nil
}

// EmitirCertificado grava a URL do certificado. Elegibilidade: inscrição
// concluída e curso encerrado (por status ou por data).
func (s *inscricaoService) EmitirCertificado(ctx context.Context, id string, req *dto.CertificadoRequest) error {
	inscricao, err := s.repo.Inscricao.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInscricaoNaoEncontrada
		}
		return err
	}

	if inscricao.Status != model.InscricaoStatusConcluida {
		return ErrCertificadoNaoDisponivel
	}
	if inscricao.Curso == nil || !inscricao.Curso.Encerrado(s.agora()) {
		return ErrCertificadoNaoDisponivel
	}

	inscricao.URLCertificado = req.URLCertificado
	return s.repo.Inscricao.Update(ctx, inscricao)
}
