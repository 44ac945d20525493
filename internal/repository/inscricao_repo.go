package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// InscricaoRepository acesso a dados de inscrições em cursos
type InscricaoRepository interface {
	Create(ctx context.Context, inscricao *model.Inscricao) error
	GetByID(ctx context.Context, id string) (*model.Inscricao, error)
	List(ctx context.Context, filtro InscricaoFiltro) ([]model.Inscricao, int64, error)
	ListByCurso(ctx context.Context, cursoID string) ([]model.Inscricao, error)
	ExistsByCursoAndCPF(ctx context.Context, cursoID, cpf string) (bool, error)
	Update(ctx context.Context, inscricao *model.Inscricao) error
	// UpdateStatusLote muda o status das linhas indicadas, ignorando as que
	// já estão no status alvo; devolve quantas foram de fato atualizadas
	UpdateStatusLote(ctx context.Context, ids []string, status, motivoRejeicao string) (int64, error)
}

// InscricaoFiltro filtros combináveis da listagem de inscrições
type InscricaoFiltro struct {
	CursoID    string
	Status     []string
	Busca      string
	DataInicio *time.Time
	DataFim    *time.Time
	OrdenarPor string
	Ordem      string
	Offset     int
	Limit      int
}

type inscricaoRepo struct {
	db *gorm.DB
}

func NewInscricaoRepo(db *gorm.DB) InscricaoRepository {
	return &inscricaoRepo{db: db}
}

func (r *inscricaoRepo) Create(ctx context.Context, inscricao *model.Inscricao) error {
	return r.db.WithContext(ctx).Create(inscricao).Error
}

func (r *inscricaoRepo) GetByID(ctx context.Context, id string) (*model.Inscricao, error) {
	var inscricao model.Inscricao
	err := r.db.WithContext(ctx).
		Preload("Curso").
		Where("inscricao_id = ?", id).
		First(&inscricao).Error
	if err != nil {
		return nil, err
	}
	return &inscricao, nil
}

func (r *inscricaoRepo) List(ctx context.Context, filtro InscricaoFiltro) ([]model.Inscricao, int64, error) {
	var inscricoes []model.Inscricao
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Inscricao{}).
		Where("curso_id = ?", filtro.CursoID)

	if len(filtro.Status) > 0 {
		db = db.Where("status IN ?", filtro.Status)
	}
	if filtro.Busca != "" {
		padrao := "%" + filtro.Busca + "%"
		db = db.Where("nome ILIKE ? OR cpf LIKE ? OR email ILIKE ?", padrao, padrao, padrao)
	}
	if filtro.DataInicio != nil {
		db = db.Where("created_at >= ?", *filtro.DataInicio)
	}
	if filtro.DataFim != nil {
		// inclui o dia final inteiro
		db = db.Where("created_at < ?", filtro.DataFim.AddDate(0, 0, 1))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	coluna := filtro.OrdenarPor
	switch coluna {
	case "nome", "status":
	default:
		coluna = "created_at"
	}
	direcao := "DESC"
	if filtro.Ordem == "asc" {
		direcao = "ASC"
	}

	err := db.Offset(filtro.Offset).Limit(filtro.Limit).
		Order(coluna + " " + direcao).
		Find(&inscricoes).Error
	return inscricoes, total, err
}

// ListByCurso todas as inscrições do curso, sem paginação (exportação)
func (r *inscricaoRepo) ListByCurso(ctx context.Context, cursoID string) ([]model.Inscricao, error) {
	var inscricoes []model.Inscricao
	err := r.db.WithContext(ctx).
		Where("curso_id = ?", cursoID).
		Order("created_at ASC").
		Find(&inscricoes).Error
	return inscricoes, err
}

func (r *inscricaoRepo) ExistsByCursoAndCPF(ctx context.Context, cursoID, cpf string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Inscricao{}).
		Where("curso_id = ? AND cpf = ?", cursoID, cpf).
		Count(&total).Error
	return total > 0, err
}

func (r *inscricaoRepo) Update(ctx context.Context, inscricao *model.Inscricao) error {
	return r.db.WithContext(ctx).Save(inscricao).Error
}

func (r *inscricaoRepo) UpdateStatusLote(ctx context.Context, ids []string, status, motivoRejeicao string) (int64, error) {
	valores := map[string]interface{}{"status": status}
	if status == model.InscricaoStatusRejeitada {
		valores["motivo_rejeicao"] = motivoRejeicao
	}
	result := r.db.WithContext(ctx).
		Model(&model.Inscricao{}).
		Where("inscricao_id IN ? AND status != ?", ids, status).
		Updates(valores)
	return result.RowsAffected, result.Error
}
