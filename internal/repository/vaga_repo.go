package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// VagaRepository acesso a dados de vagas e etapas do processo seletivo
type VagaRepository interface {
	Create(ctx context.Context, vaga *model.Vaga) error
	GetByID(ctx context.Context, id string) (*model.Vaga, error)
	List(ctx context.Context, filtro VagaFiltro) ([]model.Vaga, int64, error)
	Update(ctx context.Context, vaga *model.Vaga) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	ListEtapas(ctx context.Context, vagaID string) ([]model.EtapaSelecao, error)
	ReordenarEtapas(ctx context.Context, vagaID string, ordem map[string]int) error
}

// VagaFiltro filtros da listagem de vagas
type VagaFiltro struct {
	Status string
	Busca  string
	Offset int
	Limit  int
}

type vagaRepo struct {
	db *gorm.DB
}

func NewVagaRepo(db *gorm.DB) VagaRepository {
	return &vagaRepo{db: db}
}

func (r *vagaRepo) Create(ctx context.Context, vaga *model.Vaga) error {
	return r.db.WithContext(ctx).Create(vaga).Error
}

func (r *vagaRepo) GetByID(ctx context.Context, id string) (*model.Vaga, error) {
	var vaga model.Vaga
	err := r.db.WithContext(ctx).
		Preload("Etapas", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordem ASC")
		}).
		Where("vaga_id = ?", id).
		First(&vaga).Error
	if err != nil {
		return nil, err
	}
	return &vaga, nil
}

func (r *vagaRepo) List(ctx context.Context, filtro VagaFiltro) ([]model.Vaga, int64, error) {
	var vagas []model.Vaga
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Vaga{})
	if filtro.Status != "" {
		db = db.Where("status = ?", filtro.Status)
	}
	if filtro.Busca != "" {
		padrao := "%" + filtro.Busca + "%"
		db = db.Where("titulo ILIKE ? OR empresa ILIKE ?", padrao, padrao)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(filtro.Offset).Limit(filtro.Limit).
		Order("created_at DESC").
		Find(&vagas).Error
	return vagas, total, err
}

// Update regrava a vaga e substitui as etapas em transação
func (r *vagaRepo) Update(ctx context.Context, vaga *model.Vaga) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Vaga{}).
			Where("vaga_id = ?", vaga.VagaID).
			Updates(map[string]interface{}{
				"titulo":                  vaga.Titulo,
				"descricao":               vaga.Descricao,
				"empresa":                 vaga.Empresa,
				"regime_contratacao":      vaga.RegimeContratacao,
				"modelo_trabalho":         vaga.ModeloTrabalho,
				"vaga_pcd":                vaga.VagaPCD,
				"tipos_pcd":               vaga.TiposPCD,
				"salario":                 vaga.Salario,
				"bairro":                  vaga.Bairro,
				"data_limite_candidatura": vaga.DataLimiteCandidatura,
				"requisitos":              vaga.Requisitos,
				"beneficios":              vaga.Beneficios,
				"campos_complementares":   vaga.CamposComplementares,
				"status":                  vaga.Status,
				"updated_by":              vaga.UpdatedBy,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("vaga_id = ?", vaga.VagaID).Delete(&model.EtapaSelecao{}).Error; err != nil {
			return err
		}
		for i := range vaga.Etapas {
			vaga.Etapas[i].VagaID = vaga.VagaID
		}
		if len(vaga.Etapas) > 0 {
			if err := tx.Create(&vaga.Etapas).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *vagaRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Vaga{}).
		Where("vaga_id = ?", id).
		Update("status", status).Error
}

func (r *vagaRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("vaga_id = ?", id).
		Delete(&model.Vaga{}).Error
}

func (r *vagaRepo) ListEtapas(ctx context.Context, vagaID string) ([]model.EtapaSelecao, error) {
	var etapas []model.EtapaSelecao
	err := r.db.WithContext(ctx).
		Where("vaga_id = ?", vagaID).
		Order("ordem ASC").
		Find(&etapas).Error
	return etapas, err
}

// ReordenarEtapas aplica a nova ordem em transação; o serviço já validou
// que o mapa é uma permutação das etapas existentes
func (r *vagaRepo) ReordenarEtapas(ctx context.Context, vagaID string, ordem map[string]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for etapaID, posicao := range ordem {
			result := tx.Model(&model.EtapaSelecao{}).
				Where("etapa_id = ? AND vaga_id = ?", etapaID, vagaID).
				Update("ordem", posicao)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
