package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/normalizer"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/validation"
)

var (
	ErrServicoNaoEncontrado    = errors.New("serviço não encontrado")
	ErrServicoJaTombado        = errors.New("serviço já possui tombamento ativo")
	ErrTombamentoNaoEncontrado = errors.New("serviço não possui tombamento")
	ErrServicoPublicadoExcluir = errors.New("serviço publicado não pode ser excluído; despublique antes")
)

// ServicoService regras de negócio do catálogo de serviços municipais.
//
// O ciclo de vida usa a codificação herdada do legado (inteiro + flag):
// em edição -> aguardando aprovação -> publicado, com devolução e
// despublicação no sentido contrário.
type ServicoService interface {
	Criar(ctx context.Context, req *dto.ServicoFormRequest, usuarioID string) (*dto.ServicoResponse, error)
	Atualizar(ctx context.Context, id string, req *dto.ServicoFormRequest, usuarioID string) (*dto.ServicoResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ServicoResponse, error)
	List(ctx context.Context, req *dto.ServicoListRequest) ([]dto.ServicoResponse, int64, error)
	EnviarParaAprovacao(ctx context.Context, id string) error
	DevolverParaEdicao(ctx context.Context, id string) error
	Publicar(ctx context.Context, id string) error
	Despublicar(ctx context.Context, id string) error
	Excluir(ctx context.Context, id string) error
	Tombar(ctx context.Context, id string, req *dto.TombarRequest, usuarioID string) (*dto.TombamentoResponse, error)
	Destombar(ctx context.Context, id string) error
}

type servicoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewServicoService cria o serviço do catálogo
func NewServicoService(repo *repository.Repository, logger *zap.Logger) ServicoService {
	return &servicoService{repo: repo, logger: logger}
}

func (s *servicoService) Criar(ctx context.Context, req *dto.ServicoFormRequest, usuarioID string) (*dto.ServicoResponse, error) {
	servico := normalizer.NormalizarServico(req)
	servico.CreatedBy = &usuarioID

	if err := s.repo.Servico.Create(ctx, servico); err != nil {
		s.logger.Error("falha ao criar serviço", zap.Error(err))
		return nil, err
	}

	s.logger.Info("serviço criado", zap.String("servico_id", servico.ServicoID))
	return normalizer.ServicoParaResponse(servico), nil
}

func (s *servicoService) Atualizar(ctx context.Context, id string, req *dto.ServicoFormRequest, usuarioID string) (*dto.ServicoResponse, error) {
	atual, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	servico := normalizer.AplicarServico(atual, req)
	servico.UpdatedBy = &usuarioID

	if err := s.repo.Servico.Update(ctx, servico); err != nil {
		s.logger.Error("falha ao atualizar serviço", zap.String("servico_id", id), zap.Error(err))
		return nil, err
	}
	return normalizer.ServicoParaResponse(servico), nil
}

func (s *servicoService) GetByID(ctx context.Context, id string) (*dto.ServicoResponse, error) {
	servico, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return normalizer.ServicoParaResponse(servico), nil
}

func (s *servicoService) List(ctx context.Context, req *dto.ServicoListRequest) ([]dto.ServicoResponse, int64, error) {
	servicos, total, err := s.repo.Servico.List(ctx, repository.ServicoFiltro{
		Rotulo: req.Status,
		Busca:  req.Busca,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	respostas := make([]dto.ServicoResponse, 0, len(servicos))
	for i := range servicos {
		respostas = append(respostas, *normalizer.ServicoParaResponse(&servicos[i]))
	}
	return respostas, total, nil
}

// EnviarParaAprovacao marca o serviço em edição como aguardando aprovação
func (s *servicoService) EnviarParaAprovacao(ctx context.Context, id string) error {
	servico, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if servico.Rotulo() != model.ServicoRotuloEmEdicao {
		return ErrTransicaoInvalida
	}
	return s.mudarStatus(ctx, id, servico.Rotulo(), model.ServicoStatusEmEdicao, true)
}

// DevolverParaEdicao devolve um serviço aguardando aprovação para edição
func (s *servicoService) DevolverParaEdicao(ctx context.Context, id string) error {
	servico, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if servico.Rotulo() != model.ServicoRotuloAguardandoAprovacao {
		return ErrTransicaoInvalida
	}
	return s.mudarStatus(ctx, id, servico.Rotulo(), model.ServicoStatusEmEdicao, false)
}

// Publicar aprova e publica um serviço aguardando aprovação, após o
// conjunto completo de regras de publicação
func (s *servicoService) Publicar(ctx context.Context, id string) error {
	servico, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if servico.Rotulo() != model.ServicoRotuloAguardandoAprovacao {
		return ErrTransicaoInvalida
	}

	req := formDoServico(servico)
	if err := erroSeInvalido(validation.ValidarServicoParaPublicacao(req)); err != nil {
		return err
	}

	return s.mudarStatus(ctx, id, servico.Rotulo(), model.ServicoStatusPublicado, false)
}

// Despublicar retorna um serviço publicado para edição
func (s *servicoService) Despublicar(ctx context.Context, id string) error {
	servico, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if servico.Rotulo() != model.ServicoRotuloPublicado {
		return ErrTransicaoInvalida
	}
	return s.mudarStatus(ctx, id, servico.Rotulo(), model.ServicoStatusEmEdicao, false)
}

// Excluir remove o serviço; publicados precisam ser despublicados antes
func (s *servicoService) Excluir(ctx context.Context, id string) error {
	servico, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if servico.Status == model.ServicoStatusPublicado {
		return ErrServicoPublicadoExcluir
	}
	return s.repo.Servico.Delete(ctx, id)
}

// Tombar cria o vínculo de migração com o serviço legado.
// Apenas serviços publicados podem ser tombados; no máximo um
// tombamento ativo por serviço.
func (s *servicoService) Tombar(ctx context.Context, id string, req *dto.TombarRequest, usuarioID string) (*dto.TombamentoResponse, error) {
	servico, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if servico.Rotulo() != model.ServicoRotuloPublicado {
		return nil, ErrTransicaoInvalida
	}

	if _, err := s.repo.Servico.GetTombamento(ctx, id); err == nil {
		return nil, ErrServicoJaTombado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tombamento := &model.Tombamento{
		ServicoID:       id,
		ServicoLegadoID: req.ServicoLegadoID,
		CreatedBy:       &usuarioID,
	}
	if err := s.repo.Servico.CreateTombamento(ctx, tombamento); err != nil {
		s.logger.Error("falha ao tombar serviço", zap.String("servico_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("serviço tombado",
		zap.String("servico_id", id),
		zap.String("servico_legado_id", req.ServicoLegadoID))

	return &dto.TombamentoResponse{
		ID:              tombamento.TombamentoID,
		ServicoID:       tombamento.ServicoID,
		ServicoLegadoID: tombamento.ServicoLegadoID,
		CreatedAt:       normalizer.FormatarDataUTC(tombamento.CreatedAt),
	}, nil
}

// Destombar remove o vínculo de tombamento
func (s *servicoService) Destombar(ctx context.Context, id string) error {
	if _, err := s.buscar(ctx, id); err != nil {
		return err
	}

	removidos, err := s.repo.Servico.DeleteTombamento(ctx, id)
	if err != nil {
		return err
	}
	if removidos == 0 {
		return ErrTombamentoNaoEncontrado
	}

	s.logger.Info("serviço destombado", zap.String("servico_id", id))
	return nil
}

func (s *servicoService) buscar(ctx context.Context, id string) (*model.Servico, error) {
	servico, err := s.repo.Servico.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServicoNaoEncontrado
		}
		return nil, err
	}
	return servico, nil
}

func (s *servicoService) mudarStatus(ctx context.Context, id, rotuloAnterior string, status int, aguardando bool) error {
	if err := s.repo.Servico.UpdateStatus(ctx, id, status, aguardando); err != nil {
		return err
	}
	s.logger.Info("status do serviço alterado",
		zap.String("servico_id", id),
		zap.String("de", rotuloAnterior),
		zap.String("para", (&model.Servico{Status: status, AguardandoAprovacao: aguardando}).Rotulo()))
	return nil
}

// formDoServico reconstrói o formulário a partir do modelo para reaproveitar
// as regras de publicação na aprovação
func formDoServico(servico *model.Servico) *dto.ServicoFormRequest {
	gratuito := servico.Gratuito
	return &dto.ServicoFormRequest{
		ManagingOrgan:     servico.OrgaoGestor,
		Category:          servico.Categoria,
		TargetAudience:    servico.PublicoAlvo,
		Title:             servico.Titulo,
		ShortDescription:  servico.DescricaoCurta,
		FullDescription:   servico.DescricaoCompleta,
		Cost:              servico.Custo,
		IsFree:            &gratuito,
		RequiredDocuments: servico.DocumentosNecessarios,
		Instructions:      servico.Instrucoes,
		DigitalChannels:   servico.CanaisDigitais,
	}
}
