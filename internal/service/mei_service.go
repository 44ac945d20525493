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
	"github.com/prefeitura-rio/portal-interno-sub000/internal/validation"
)

var ErrOportunidadeNaoEncontrada = errors.New("oportunidade não encontrada")

// OportunidadeService regras de negócio das oportunidades MEI
type OportunidadeService interface {
	Salvar(ctx context.Context, req *dto.MEIFormRequest, usuarioID string) (*dto.MEIResponse, error)
	Atualizar(ctx context.Context, id string, req *dto.MEIFormRequest, usuarioID string) (*dto.MEIResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MEIResponse, error)
	List(ctx context.Context, req *dto.MEIListRequest) ([]dto.MEIResponse, int64, error)
	Encerrar(ctx context.Context, id string) error
	Cancelar(ctx context.Context, id string) error
	ExcluirRascunho(ctx context.Context, id string) error
}

type oportunidadeService struct {
	repo   *repository.Repository
	logger *zap.Logger
	agora  func() time.Time
}

// NewOportunidadeService cria o serviço de oportunidades MEI
func NewOportunidadeService(repo *repository.Repository, logger *zap.Logger) OportunidadeService {
	return &oportunidadeService{
		repo:   repo,
		logger: logger,
		agora:  time.Now,
	}
}

func (s *oportunidadeService) Salvar(ctx context.Context, req *dto.MEIFormRequest, usuarioID string) (*dto.MEIResponse, error) {
	nivel := validation.NivelParaAcao(req.Action)
	if err := erroSeInvalido(validation.ValidarMEI(req, nivel)); err != nil {
		return nil, err
	}

	op := normalizer.NormalizarMEI(req, nivel == validation.NivelRascunho, s.agora())
	op.CreatedBy = &usuarioID

	if err := s.repo.Oportunidade.Create(ctx, op); err != nil {
		s.logger.Error("falha ao criar oportunidade", zap.Error(err))
		return nil, err
	}

	s.logger.Info("oportunidade criada",
		zap.String("oportunidade_id", op.OportunidadeID),
		zap.String("status", op.Status))

	return normalizer.MEIParaResponse(op), nil
}

func (s *oportunidadeService) Atualizar(ctx context.Context, id string, req *dto.MEIFormRequest, usuarioID string) (*dto.MEIResponse, error) {
	atual, err := s.repo.Oportunidade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOportunidadeNaoEncontrada
		}
		return nil, err
	}

	nivel := validation.NivelParaAcao(req.Action)
	if err := erroSeInvalido(validation.ValidarMEI(req, nivel)); err != nil {
		return nil, err
	}

	op := normalizer.NormalizarMEI(req, nivel == validation.NivelRascunho, s.agora())
	op.OportunidadeID = atual.OportunidadeID
	op.CreatedAt = atual.CreatedAt
	op.CreatedBy = atual.CreatedBy
	op.UpdatedBy = &usuarioID

	// Oportunidade já publicada não regride para rascunho ao salvar
	if nivel == validation.NivelRascunho && atual.Status != model.VagaStatusRascunho {
		op.Status = atual.Status
	}

	if err := s.repo.Oportunidade.Update(ctx, op); err != nil {
		s.logger.Error("falha ao atualizar oportunidade", zap.String("oportunidade_id", id), zap.Error(err))
		return nil, err
	}

	return normalizer.MEIParaResponse(op), nil
}

func (s *oportunidadeService) GetByID(ctx context.Context, id string) (*dto.MEIResponse, error) {
	op, err := s.repo.Oportunidade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOportunidadeNaoEncontrada
		}
		return nil, err
	}
	return normalizer.MEIParaResponse(op), nil
}

func (s *oportunidadeService) List(ctx context.Context, req *dto.MEIListRequest) ([]dto.MEIResponse, int64, error) {
	ops, total, err := s.repo.Oportunidade.List(ctx, repository.OportunidadeFiltro{
		Status: req.Status,
		Busca:  req.Busca,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	respostas := make([]dto.MEIResponse, 0, len(ops))
	for i := range ops {
		respostas = append(respostas, *normalizer.MEIParaResponse(&ops[i]))
	}
	return respostas, total, nil
}

func (s *oportunidadeService) Encerrar(ctx context.Context, id string) error {
	return s.transicionar(ctx, id, model.VagaStatusEncerrada, model.VagaStatusAberta)
}

func (s *oportunidadeService) Cancelar(ctx context.Context, id string) error {
	return s.transicionar(ctx, id, model.VagaStatusCancelada,
		model.VagaStatusAberta, model.VagaStatusEncerrada)
}

func (s *oportunidadeService) transicionar(ctx context.Context, id, destino string, origens ...string) error {
	op, err := s.repo.Oportunidade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOportunidadeNaoEncontrada
		}
		return err
	}

	permitido := false
	for _, origem := range origens {
		if op.Status == origem {
			permitido = true
			break
		}
	}
	if !permitido {
		return ErrTransicaoInvalida
	}

	if err := s.repo.Oportunidade.UpdateStatus(ctx, id, destino); err != nil {
		return err
	}

	s.logger.Info("status da oportunidade alterado",
		zap.String("oportunidade_id", id),
		zap.String("de", op.Status),
		zap.String("para", destino))
	return nil
}

func (s *oportunidadeService) ExcluirRascunho(ctx context.Context, id string) error {
	op, err := s.repo.Oportunidade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOportunidadeNaoEncontrada
		}
		return err
	}
	if op.Status != model.VagaStatusRascunho {
		return ErrApenasRascunhoExcluir
	}
	return s.repo.Oportunidade.Delete(ctx, id)
}
