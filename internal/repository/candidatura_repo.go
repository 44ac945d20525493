package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// CandidaturaRepository acesso a dados de candidaturas em vagas
type CandidaturaRepository interface {
	Create(ctx context.Context, candidatura *model.Candidatura) error
	GetByID(ctx context.Context, id string) (*model.Candidatura, error)
	ListByVaga(ctx context.Context, vagaID string, offset, limit int) ([]model.Candidatura, int64, error)
	ExistsByVagaAndCPF(ctx context.Context, vagaID, cpf string) (bool, error)
}

type candidaturaRepo struct {
	db *gorm.DB
}

func NewCandidaturaRepo(db *gorm.DB) CandidaturaRepository {
	return &candidaturaRepo{db: db}
}

func (r *candidaturaRepo) Create(ctx context.Context, candidatura *model.Candidatura) error {
	return r.db.WithContext(ctx).Create(candidatura).Error
}

func (r *candidaturaRepo) GetByID(ctx context.Context, id string) (*model.Candidatura, error) {
	var candidatura model.Candidatura
	err := r.db.WithContext(ctx).
		Where("candidatura_id = ?", id).
		First(&candidatura).Error
	if err != nil {
		return nil, err
	}
	return &candidatura, nil
}

func (r *candidaturaRepo) ListByVaga(ctx context.Context, vagaID string, offset, limit int) ([]model.Candidatura, int64, error) {
	var candidaturas []model.Candidatura
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Candidatura{}).
		Where("vaga_id = ?", vagaID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&candidaturas).Error
	return candidaturas, total, err
}

func (r *candidaturaRepo) ExistsByVagaAndCPF(ctx context.Context, vagaID, cpf string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Candidatura{}).
		Where("vaga_id = ? AND cpf = ?", vagaID, cpf).
		Count(&total).Error
	return total > 0, err
}
