package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/normalizer"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/validation"
)

var (
	ErrCursoNaoEncontrado    = errors.New("curso não encontrado")
	ErrTransicaoInvalida     = errors.New("transição de status não permitida")
	ErrApenasRascunhoExcluir = errors.New("apenas rascunhos podem ser excluídos")
)

// CursoService regras de negócio dos cursos
type CursoService interface {
	Salvar(ctx context.Context, req *dto.CursoFormRequest, usuarioID string) (*dto.CursoResponse, error)
	Atualizar(ctx context.Context, id string, req *dto.CursoFormRequest, usuarioID string) (*dto.CursoResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CursoResponse, error)
	List(ctx context.Context, req *dto.CursoListRequest) ([]dto.CursoResponse, int64, error)
	Encerrar(ctx context.Context, id string) error
	Cancelar(ctx context.Context, id string) error
	Reabrir(ctx context.Context, id string) error
	ExcluirRascunho(ctx context.Context, id string) error
	ExportarCalendario(ctx context.Context, id string) (string, error)
}

type cursoService struct {
	repo   *repository.Repository
	pol    validation.Politica
	logger *zap.Logger
	agora  func() time.Time
}

// NewCursoService cria o serviço de cursos
func NewCursoService(repo *repository.Repository, pol validation.Politica, logger *zap.Logger) CursoService {
	return &cursoService{
		repo:   repo,
		pol:    pol,
		logger: logger,
		agora:  time.Now,
	}
}

// Salvar cria o curso conforme a ação: save_draft valida só forma/tipo e
// sintetiza os padrões de rascunho; publish aplica o conjunto completo de
// regras e persiste já aberto
func (s *cursoService) Salvar(ctx context.Context, req *dto.CursoFormRequest, usuarioID string) (*dto.CursoResponse, error) {
	nivel := validation.NivelParaAcao(req.Action)
	if err := erroSeInvalido(validation.ValidarCurso(req, nivel, s.pol)); err != nil {
		return nil, err
	}

	curso := normalizer.NormalizarCurso(req, nivel == validation.NivelRascunho, s.agora())
	curso.CreatedBy = &usuarioID

	if err := s.repo.Curso.Create(ctx, curso); err != nil {
		s.logger.Error("falha ao criar curso", zap.Error(err))
		return nil, err
	}

	s.logger.Info("curso criado",
		zap.String("curso_id", curso.CursoID),
		zap.String("status", curso.Status))

	return normalizer.CursoParaResponse(curso), nil
}

// Atualizar regrava o curso com o mesmo fluxo de validação da criação.
// Publicar um rascunho existente é uma atualização com action=publish.
func (s *cursoService) Atualizar(ctx context.Context, id string, req *dto.CursoFormRequest, usuarioID string) (*dto.CursoResponse, error) {
	atual, err := s.repo.Curso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCursoNaoEncontrado
		}
		return nil, err
	}

	nivel := validation.NivelParaAcao(req.Action)
	if err := erroSeInvalido(validation.ValidarCurso(req, nivel, s.pol)); err != nil {
		return nil, err
	}

	curso := normalizer.NormalizarCurso(req, nivel == validation.NivelRascunho, s.agora())
	curso.CursoID = atual.CursoID
	curso.Version = atual.Version
	curso.UpdatedBy = &usuarioID

	// Curso já publicado não regride para rascunho ao salvar
	if nivel == validation.NivelRascunho && atual.Status != model.CursoStatusRascunho {
		curso.Status = atual.Status
	}

	if err := s.repo.Curso.Update(ctx, curso); err != nil {
		s.logger.Error("falha ao atualizar curso", zap.String("curso_id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *cursoService) GetByID(ctx context.Context, id string) (*dto.CursoResponse, error) {
	curso, err := s.repo.Curso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCursoNaoEncontrado
		}
		return nil, err
	}
	return normalizer.CursoParaResponse(curso), nil
}

func (s *cursoService) List(ctx context.Context, req *dto.CursoListRequest) ([]dto.CursoResponse, int64, error) {
	cursos, total, err := s.repo.Curso.List(ctx, repository.CursoFiltro{
		Status: req.Status,
		Busca:  req.Busca,
		Offset: req.GetOffset(),
		Limit:  req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	respostas := make([]dto.CursoResponse, 0, len(cursos))
	for i := range cursos {
		respostas = append(respostas, *normalizer.CursoParaResponse(&cursos[i]))
	}
	return respostas, total, nil
}

// Encerrar fecha as inscrições de um curso aberto
func (s *cursoService) Encerrar(ctx context.Context, id string) error {
	return s.transicionar(ctx, id, model.CursoStatusEncerrado, model.CursoStatusAberto)
}

// Cancelar cancela um curso aberto ou encerrado
func (s *cursoService) Cancelar(ctx context.Context, id string) error {
	return s.transicionar(ctx, id, model.CursoStatusCancelado,
		model.CursoStatusAberto, model.CursoStatusEncerrado)
}

// Reabrir reabre as inscrições de um curso encerrado
func (s *cursoService) Reabrir(ctx context.Context, id string) error {
	return s.transicionar(ctx, id, model.CursoStatusAberto, model.CursoStatusEncerrado)
}

func (s *cursoService) transicionar(ctx context.Context, id, destino string, origens ...string) error {
	curso, err := s.repo.Curso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCursoNaoEncontrado
		}
		return err
	}

	permitido := false
	for _, origem := range origens {
		if curso.Status == origem {
			permitido = true
			break
		}
	}
	if !permitido {
		return ErrTransicaoInvalida
	}

	if err := s.repo.Curso.UpdateStatus(ctx, id, destino); err != nil {
		return err
	}

	s.logger.Info("status do curso alterado",
		zap.String("curso_id", id),
		zap.String("de", curso.Status),
		zap.String("para", destino))
	return nil
}

// ExcluirRascunho remove o curso; apenas rascunhos são elegíveis
func (s *cursoService) ExcluirRascunho(ctx context.Context, id string) error {
	curso, err := s.repo.Curso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCursoNaoEncontrado
		}
		return err
	}
	if curso.Status != model.CursoStatusRascunho {
		return ErrApenasRascunhoExcluir
	}
	return s.repo.Curso.Delete(ctx, id)
}

// ExportarCalendario gera um iCalendar com uma entrada por turma do curso
func (s *cursoService) ExportarCalendario(ctx context.Context, id string) (string, error) {
	curso, err := s.repo.Curso.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCursoNaoEncontrado
		}
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Prefeitura do Rio//Portal Interno//PT-BR")

	adicionar := func(t *model.Turma, local *model.Local) {
		evento := cal.AddEvent(t.TurmaID)
		evento.SetDtStampTime(s.agora())
		evento.SetStartAt(t.DataInicioAulas)
		evento.SetEndAt(t.DataFimAulas)
		evento.SetSummary(curso.Titulo)
		descricao := fmt.Sprintf("Vagas: %d", t.Vagas)
		if t.Horario != "" {
			descricao += " | Horário: " + t.Horario
		}
		if t.DiasSemana != "" {
			descricao += " | Dias: " + t.DiasSemana
		}
		evento.SetDescription(descricao)
		if local != nil {
			evento.SetLocation(local.Endereco + " - " + local.Bairro)
		}
	}

	for i := range curso.Turmas {
		if curso.Turmas[i].LocalID == nil {
			adicionar(&curso.Turmas[i], nil)
		}
	}
	for i := range curso.Locais {
		local := &curso.Locais[i]
		for j := range local.Turmas {
			adicionar(&local.Turmas[j], local)
		}
	}

	return cal.Serialize(), nil
}
