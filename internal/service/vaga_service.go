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

var (
	ErrVagaNaoEncontrada = errors.New("vaga não encontrada")
	ErrOrdemInvalida     = errors.New("a ordem informada não é uma permutação das etapas da vaga")
)

// VagaService regras de negócio das vagas de empregabilidade
type VagaService interface {
	Salvar(ctx context.Context, req *dto.VagaFormRequest, usuarioID string) (*dto.VagaResponse, error)
	Atualizar(ctx context.Context, id string, req *dto.VagaFormRequest, usuarioID string) (*dto.VagaResponse, error)
	GetByID(ctx context.Context, id string) (*dto.VagaResponse, error)
	List(ctx context.Context, req *dto.VagaListRequest) ([]dto.VagaResponse, int64, error)
	Encerrar(ctx context.Context, id string) error
	Cancelar(ctx context.Context, id string) error
	ExcluirRascunho(ctx context.Context, id string) error
	ReordenarEtapas(ctx context.Context, vagaID string, req *dto.ReordenarEtapasRequest) ([]dto.EtapaResponse, error)
}

type vagaService struct {
	repo   *repository.Repository
	pol    validation.Politica
	logger *zap.Logger
	agora  func() time.Time
}

// NewVagaService cria o serviço de vagas
func NewVagaService(repo *repository.Repository, pol validation.Politica, logger *zap.Logger) VagaService {
	return &vagaService{
		repo:   repo,
		pol:    pol,
		logger: logger,
		agora:  time.Now,
	}
}

func (s *vagaService) Salvar(ctx context.Context, req *dto.VagaFormRequest, usuarioID string) (*dto.VagaResponse, error) {
	nivel := validation.NivelParaAcao(req.Action)
	if err := erroSeInvalido(validation.ValidarVaga(req, nivel)); err != nil {
		return nil, err
	}

	vaga := normalizer.NormalizarVaga(req, nivel == validation.NivelRascunho, s.agora())
	vaga.CreatedBy = &usuarioID

	if err := s.repo.Vaga.Create(ctx, vaga); err != nil {
		s.logger.Error("falha ao criar vaga", zap.Error(err))
		return nil, err
	}

	s.logger.Info("vaga criada",
		zap.String("vaga_id", vaga.VagaID),
		zap.String("status", vaga.Status))

	return normalizer.VagaParaResponse(vaga), nil
}

func (s *vagaService) Atualizar(ctx context.Context, id string, req *dto.VagaFormRequest, usuarioID string) (*dto.VagaResponse, error) {
	atual, err := s.repo.Vaga.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVagaNaoEncontrada
		}
		return nil, err
	}

	nivel := validation.NivelParaAcao(req.Action)
	if err := erroSeInvalido(validation.ValidarVaga(req, nivel)); err != nil {
		return nil, err
	}

	vaga := normalizer.NormalizarVaga(req, nivel == validation.NivelRascunho, s.agora())
	vaga.VagaID = atual.VagaID
	vaga.UpdatedBy = &usuarioID

	// Vaga já publicada não regride para rascunho ao salvar
	if nivel == validation.NivelRascunho && atual.Status != model.VagaStatusRascunho {
		vaga.Status = atual.Status
	}

	if err := s.repo.Vaga.Update(ctx, vaga); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVagaNaoEncontrada
		}
		s.logger.Error("falha ao atualizar vaga", zap.String("vaga_id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *vagaService) GetByID(ctx context.Context, id string) (*dto.VagaResponse, error) {
	vaga, err := s.repo.Vaga.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVagaNaoEncontrada
		}
		return nil, err
	}
	return normalizer.VagaParaResponse(vaga), nil
}

func (s *vagaService) List(ctx context.Context, req *dto.VagaListRequest) ([]dto.VagaResponse, int64, error) {
	vagas, total, err := s.repo.Vaga.List(ctx, repository.VagaFiltro{
		Status: req.Status,
		Busca:  req.Busca,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	respostas := make([]dto.VagaResponse, 0, len(vagas))
	for i := range vagas {
		respostas = append(respostas, *normalizer.VagaParaResponse(&vagas[i]))
	}
	return respostas, total, nil
}

func (s *vagaService) Encerrar(ctx context.Context, id string) error {
	return s.transicionar(ctx, id, model.VagaStatusEncerrada, model.VagaStatusAberta)
}

func (s *vagaService) Cancelar(ctx context.Context, id string) error {
	return s.transicionar(ctx, id, model.VagaStatusCancelada,
		model.VagaStatusAberta, model.VagaStatusEncerrada)
}

func (s *vagaService) transicionar(ctx context.Context, id, destino string, origens ...string) error {
	vaga, err := s.repo.Vaga.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVagaNaoEncontrada
		}
		return err
	}

	permitido := false
	for _, origem := range origens {
		if vaga.Status == origem {
			permitido = true
			break
		}
	}
	if !permitido {
		return ErrTransicaoInvalida
	}

	if err := s.repo.Vaga.UpdateStatus(ctx, id, destino); err != nil {
		return err
	}

	s.logger.Info("status da vaga alterado",
		zap.String("vaga_id", id),
		zap.String("de", vaga.Status),
		zap.String("para", destino))
	return nil
}

func (s *vagaService) ExcluirRascunho(ctx context.Context, id string) error {
	vaga, err := s.repo.Vaga.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVagaNaoEncontrada
		}
		return err
	}
	if vaga.Status != model.VagaStatusRascunho {
		return ErrApenasRascunhoExcluir
	}
	return s.repo.Vaga.Delete(ctx, id)
}

// ReordenarEtapas aplica a nova ordem das etapas do processo seletivo.
// A lista deve ser uma permutação exata das etapas existentes: mesma
// cardinalidade, posições 1..n sem repetição, nenhuma etapa estranha.
func (s *vagaService) ReordenarEtapas(ctx context.Context, vagaID string, req *dto.ReordenarEtapasRequest) ([]dto.EtapaResponse, error) {
	etapas, err := s.repo.Vaga.ListEtapas(ctx, vagaID)
	if err != nil {
		return nil, err
	}
	if len(etapas) == 0 {
		return nil, ErrVagaNaoEncontrada
	}
	if len(req.Ordem) != len(etapas) {
		return nil, ErrOrdemInvalida
	}

	existentes := make(map[string]bool, len(etapas))
	for _, e := range etapas {
		existentes[e.EtapaID] = true
	}

	ordem := make(map[string]int, len(req.Ordem))
	posicoes := make(map[int]bool, len(req.Ordem))
	for _, o := range req.Ordem {
		if !existentes[o.EtapaID] {
			return nil, ErrOrdemInvalida
		}
		if _, repetida := ordem[o.EtapaID]; repetida {
			return nil, ErrOrdemInvalida
		}
		if o.Ordem < 1 || o.Ordem > len(etapas) || posicoes[o.Ordem] {
			return nil, ErrOrdemInvalida
		}
		ordem[o.EtapaID] = o.Ordem
		posicoes[o.Ordem] = true
	}

	if err := s.repo.Vaga.ReordenarEtapas(ctx, vagaID, ordem); err != nil {
		return nil, err
	}

	reordenadas, err := s.repo.Vaga.ListEtapas(ctx, vagaID)
	if err != nil {
		return nil, err
	}
	respostas := make([]dto.EtapaResponse, 0, len(reordenadas))
	for _, e := range reordenadas {
		respostas = append(respostas, dto.EtapaResponse{
			ID:          e.EtapaID,
			Title:       e.Titulo,
			Description: e.Descricao,
			Order:       e.Ordem,
		})
	}
	return respostas, nil
}
