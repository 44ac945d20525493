package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	pkgerrors "github.com/prefeitura-rio/portal-interno-sub000/pkg/errors"
)

// CursoRepository acesso a dados de cursos e suas associações
type CursoRepository interface {
	Create(ctx context.Context, curso *model.Curso) error
	GetByID(ctx context.Context, id string) (*model.Curso, error)
	List(ctx context.Context, filtro CursoFiltro) ([]model.Curso, int64, error)
	Update(ctx context.Context, curso *model.Curso) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// CursoFiltro filtros da listagem de cursos
type CursoFiltro struct {
	Status string
	Busca  string
	Offset int
	Limit  int
}

type cursoRepo struct {
	db *gorm.DB
}

func NewCursoRepo(db *gorm.DB) CursoRepository {
	return &cursoRepo{db: db}
}

// Create insere o curso e suas associações em transação. O cascade do
// GORM é suprimido: turmas aninhadas em um local seriam gravadas antes
// de curso_id existir, violando o NOT NULL da coluna.
func (r *cursoRepo) Create(ctx context.Context, curso *model.Curso) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(curso).Error; err != nil {
			return err
		}
		return criarAssociacoes(tx, curso)
	})
}

// criarAssociacoes grava locais e turmas de um curso já persistido.
// Cada local entra com Omit("Turmas") e as turmas em seguida, com
// curso_id e local_id preenchidos; cada linha é inserida uma única vez.
func criarAssociacoes(tx *gorm.DB, curso *model.Curso) error {
	for i := range curso.Locais {
		curso.Locais[i].CursoID = curso.CursoID
		if err := tx.Omit("Turmas").Create(&curso.Locais[i]).Error; err != nil {
			return err
		}
		for j := range curso.Locais[i].Turmas {
			curso.Locais[i].Turmas[j].CursoID = curso.CursoID
			curso.Locais[i].Turmas[j].LocalID = &curso.Locais[i].LocalID
		}
		if len(curso.Locais[i].Turmas) > 0 {
			if err := tx.Create(&curso.Locais[i].Turmas).Error; err != nil {
				return err
			}
		}
	}
	for i := range curso.Turmas {
		curso.Turmas[i].CursoID = curso.CursoID
	}
	if len(curso.Turmas) > 0 {
		if err := tx.Create(&curso.Turmas).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *cursoRepo) GetByID(ctx context.Context, id string) (*model.Curso, error) {
	var curso model.Curso
	err := r.db.WithContext(ctx).
		Preload("Locais").
		Preload("Locais.Turmas").
		Preload("Turmas").
		Where("curso_id = ?", id).
		First(&curso).Error
	if err != nil {
		return nil, err
	}
	return &curso, nil
}

func (r *cursoRepo) List(ctx context.Context, filtro CursoFiltro) ([]model.Curso, int64, error) {
	var cursos []model.Curso
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Curso{})
	if filtro.Status != "" {
		db = db.Where("status = ?", filtro.Status)
	}
	if filtro.Busca != "" {
		db = db.Where("titulo ILIKE ?", "%"+filtro.Busca+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(filtro.Offset).Limit(filtro.Limit).
		Order("created_at DESC").
		Find(&cursos).Error
	return cursos, total, err
}

// Update regrava o curso e substitui locais e turmas em transação.
// A substituição total preserva o invariante de modalidade: o ramo
// inativo nunca sobrevive a uma edição.
func (r *cursoRepo) Update(ctx context.Context, curso *model.Curso) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		oldVersion := curso.Version
		result := tx.Model(&model.Curso{}).
			Where("curso_id = ? AND version = ?", curso.CursoID, oldVersion).
			Updates(map[string]interface{}{
				"titulo":                   curso.Titulo,
				"descricao":                curso.Descricao,
				"categoria_id":             curso.CategoriaID,
				"orgao_id":                 curso.OrgaoID,
				"modalidade":               curso.Modalidade,
				"carga_horaria":            curso.CargaHoraria,
				"publico_alvo":             curso.PublicoAlvo,
				"data_inicio_inscricoes":   curso.DataInicioInscricoes,
				"data_fim_inscricoes":      curso.DataFimInscricoes,
				"logo_institucional":       curso.LogoInstitucional,
				"imagem_capa":              curso.ImagemCapa,
				"visivel":                  curso.Visivel,
				"parceiro_externo":         curso.ParceiroExterno,
				"nome_parceiro_externo":    curso.NomeParceiroExterno,
				"url_parceiro_externo":     curso.URLParceiroExterno,
				"logo_parceiro_externo":    curso.LogoParceiroExterno,
				"contato_parceiro_externo": curso.ContatoParceiroExterno,
				"acessibilidade":           curso.Acessibilidade,
				"objetivos":                curso.Objetivos,
				"metodologia":              curso.Metodologia,
				"conteudo_programatico":    curso.ConteudoProgramatico,
				"certificacao":             curso.Certificacao,
				"campos_personalizados":    curso.CamposPersonalizados,
				"status":                   curso.Status,
				"updated_by":               curso.UpdatedBy,
				"version":                  oldVersion + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return pkgerrors.ErrOptimisticLock
		}
		curso.Version = oldVersion + 1

		if err := tx.Where("curso_id = ?", curso.CursoID).Delete(&model.Turma{}).Error; err != nil {
			return err
		}
		if err := tx.Where("curso_id = ?", curso.CursoID).Delete(&model.Local{}).Error; err != nil {
			return err
		}

		return criarAssociacoes(tx, curso)
	})
}

func (r *cursoRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Curso{}).
		Where("curso_id = ?", id).
		Update("status", status).Error
}

func (r *cursoRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("curso_id = ?", id).
		Delete(&model.Curso{}).Error
}
