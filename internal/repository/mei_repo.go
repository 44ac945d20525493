package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// OportunidadeRepository acesso a dados de oportunidades MEI
type OportunidadeRepository interface {
	Create(ctx context.Context, op *model.OportunidadeMEI) error
	GetByID(ctx context.Context, id string) (*model.OportunidadeMEI, error)
	List(ctx context.Context, filtro OportunidadeFiltro) ([]model.OportunidadeMEI, int64, error)
	Update(ctx context.Context, op *model.OportunidadeMEI) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// OportunidadeFiltro filtros da listagem de oportunidades
type OportunidadeFiltro struct {
	Status string
	Busca  string
	Offset int
	Limit  int
}

type oportunidadeRepo struct {
	db *gorm.DB
}

func NewOportunidadeRepo(db *gorm.DB) OportunidadeRepository {
	return &oportunidadeRepo{db: db}
}

func (r *oportunidadeRepo) Create(ctx context.Context, op *model.OportunidadeMEI) error {
	return r.db.WithContext(ctx).Create(op).Error
}

func (r *oportunidadeRepo) GetByID(ctx context.Context, id string) (*model.OportunidadeMEI, error) {
	var op model.OportunidadeMEI
	err := r.db.WithContext(ctx).
		Where("oportunidade_id = ?", id).
		First(&op).Error
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *oportunidadeRepo) List(ctx context.Context, filtro OportunidadeFiltro) ([]model.OportunidadeMEI, int64, error) {
	var ops []model.OportunidadeMEI
	var total int64

	db := r.db.WithContext(ctx).Model(&model.OportunidadeMEI{})
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
		Find(&ops).Error
	return ops, total, err
}

func (r *oportunidadeRepo) Update(ctx context.Context, op *model.OportunidadeMEI) error {
	return r.db.WithContext(ctx).Save(op).Error
}

func (r *oportunidadeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.OportunidadeMEI{}).
		Where("oportunidade_id = ?", id).
		Update("status", status).Error
}

func (r *oportunidadeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("oportunidade_id = ?", id).
		Delete(&model.OportunidadeMEI{}).Error
}
