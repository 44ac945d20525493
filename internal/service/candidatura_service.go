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
	ErrCandidaturaDuplicada     = errors.New("CPF já candidatado a esta vaga")
	ErrCandidaturasEncerradas   = errors.New("candidaturas encerradas para esta vaga")
	ErrCandidaturaNaoEncontrada = errors.New("candidatura não encontrada")
)

// CandidaturaService regras de negócio das candidaturas em vagas
type CandidaturaService interface {
	Criar(ctx context.Context, req *dto.CriarCandidaturaRequest) (*dto.CandidaturaResponse, error)
	ListByVaga(ctx context.Context, vagaID string, pag *dto.PaginationRequest) ([]dto.CandidaturaResponse, int64, error)
}

type candidaturaService struct {
	repo   *repository.Repository
	logger *zap.Logger
	agora  func() time.Time
}

// NewCandidaturaService cria o serviço de candidaturas
func NewCandidaturaService(repo *repository.Repository, logger *zap.Logger) CandidaturaService {
	return &candidaturaService{
		repo:   repo,
		logger: logger,
		agora:  time.Now,
	}
}

// Criar registra a candidatura. O CPF é validado pelo algoritmo de dígitos
// verificadores antes de qualquer persistência; duplicidade na mesma vaga
// vira conflito.
func (s *candidaturaService) Criar(ctx context.Context, req *dto.CriarCandidaturaRequest) (*dto.CandidaturaResponse, error) {
	if !cpf.Valido(req.CPF) {
		return nil, ErrCPFInvalido
	}

	vaga, err := s.repo.Vaga.GetByID(ctx, req.VagaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVagaNaoEncontrada
		}
		return nil, err
	}
	if vaga.Status != model.VagaStatusAberta || s.agora().After(vaga.DataLimiteCandidatura) {
		return nil, ErrCandidaturasEncerradas
	}

	normalizado := cpf.Normalizar(req.CPF)
	existe, err := s.repo.Candidatura.ExistsByVagaAndCPF(ctx, req.VagaID, normalizado)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, ErrCandidaturaDuplicada
	}

	candidatura := &model.Candidatura{
		VagaID:    req.VagaID,
		CPF:       normalizado,
		Respostas: normalizer.RespostasParaJSON(req.Respostas),
	}
	if err := s.repo.Candidatura.Create(ctx, candidatura); err != nil {
		s.logger.Error("falha ao criar candidatura", zap.Error(err))
		return nil, err
	}

	s.logger.Info("candidatura criada",
		zap.String("candidatura_id", candidatura.CandidaturaID),
		zap.String("vaga_id", req.VagaID))

	return normalizer.CandidaturaParaResponse(candidatura), nil
}

func (s *candidaturaService) ListByVaga(ctx context.Context, vagaID string, pag *dto.PaginationRequest) ([]dto.CandidaturaResponse, int64, error) {
	candidaturas, total, err := s.repo.Candidatura.ListByVaga(ctx, vagaID, pag.GetOffset(), pag.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	respostas := make([]dto.CandidaturaResponse, 0, len(candidaturas))
	for i := range candidaturas {
		respostas = append(respostas, *normalizer.CandidaturaParaResponse(&candidaturas[i]))
	}
	return respostas, total, nil
}
