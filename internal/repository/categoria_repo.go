package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// CategoriaRepository acesso a dados de categorias de curso
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *model.Categoria) error
	GetByID(ctx context.Context, id string) (*model.Categoria, error)
	List(ctx context.Context, offset, limit int) ([]model.Categoria, int64, error)
	ListAtivas(ctx context.Context) ([]model.Categoria, error)
	Update(ctx context.Context, categoria *model.Categoria) error
	Delete(ctx context.Context, id string) error
}

type categoriaRepo struct {
	db *gorm.DB
}

func NewCategoriaRepo(db *gorm.DB) CategoriaRepository {
	return &categoriaRepo{db: db}
}

func (r *categoriaRepo) Create(ctx context.Context, categoria *model.Categoria) error {
	return r.db.WithContext(ctx).Create(categoria).Error
}

func (r *categoriaRepo) GetByID(ctx context.Context, id string) (*model.Categoria, error) {
	var categoria model.Categoria
	err := r.db.WithContext(ctx).
		Where("categoria_id = ?", id).
		First(&categoria).Error
	if err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *categoriaRepo) List(ctx context.Context, offset, limit int) ([]model.Categoria, int64, error) {
	var categorias []model.Categoria
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Categoria{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("nome ASC").
		Find(&categorias).Error
	return categorias, total, err
}

func (r *categoriaRepo) ListAtivas(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("nome ASC").
		Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Update(ctx context.Context, categoria *model.Categoria) error {
	return r.db.WithContext(ctx).Save(categoria).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("categoria_id = ?", id).
		Delete(&model.Categoria{}).Error
}
