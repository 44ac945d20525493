package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// ServicoRepository acesso a dados de serviços municipais e tombamentos
type ServicoRepository interface {
	Create(ctx context.Context, servico *model.Servico) error
	GetByID(ctx context.Context, id string) (*model.Servico, error)
	List(ctx context.Context, filtro ServicoFiltro) ([]model.Servico, int64, error)
	Update(ctx context.Context, servico *model.Servico) error
	UpdateStatus(ctx context.Context, id string, status int, aguardando bool) error
	Delete(ctx context.Context, id string) error

	GetTombamento(ctx context.Context, servicoID string) (*model.Tombamento, error)
	CreateTombamento(ctx context.Context, tombamento *model.Tombamento) error
	DeleteTombamento(ctx context.Context, servicoID string) (int64, error)
}

// ServicoFiltro filtros da listagem de serviços.
// Rotulo carrega o tri-estado da API; a tradução para a codificação
// persistida (inteiro + flag) acontece aqui.
type ServicoFiltro struct {
	Rotulo string
	Busca  string
	Offset int
	Limit  int
}

type servicoRepo struct {
	db *gorm.DB
}

func NewServicoRepo(db *gorm.DB) ServicoRepository {
	return &servicoRepo{db: db}
}

func (r *servicoRepo) Create(ctx context.Context, servico *model.Servico) error {
	return r.db.WithContext(ctx).Create(servico).Error
}

func (r *servicoRepo) GetByID(ctx context.Context, id string) (*model.Servico, error) {
	var servico model.Servico
	err := r.db.WithContext(ctx).
		Preload("Tombamento").
		Where("servico_id = ?", id).
		First(&servico).Error
	if err != nil {
		return nil, err
	}
	return &servico, nil
}

func (r *servicoRepo) List(ctx context.Context, filtro ServicoFiltro) ([]model.Servico, int64, error) {
	var servicos []model.Servico
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Servico{})
	switch filtro.Rotulo {
	case model.ServicoRotuloPublicado:
		db = db.Where("status = ?", model.ServicoStatusPublicado)
	case model.ServicoRotuloAguardandoAprovacao:
		db = db.Where("status = ? AND aguardando_aprovacao = ?", model.ServicoStatusEmEdicao, true)
	case model.ServicoRotuloEmEdicao:
		db = db.Where("status = ? AND aguardando_aprovacao = ?", model.ServicoStatusEmEdicao, false)
	}
	if filtro.Busca != "" {
		padrao := "%" + filtro.Busca + "%"
		db = db.Where("titulo ILIKE ? OR orgao_gestor ILIKE ?", padrao, padrao)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Tombamento").
		Offset(filtro.Offset).Limit(filtro.Limit).
		Order("created_at DESC").
		Find(&servicos).Error
	return servicos, total, err
}

func (r *servicoRepo) Update(ctx context.Context, servico *model.Servico) error {
	return r.db.WithContext(ctx).
		Model(&model.Servico{}).
		Where("servico_id = ?", servico.ServicoID).
		Updates(map[string]interface{}{
			"orgao_gestor":           servico.OrgaoGestor,
			"categoria":              servico.Categoria,
			"publico_alvo":           servico.PublicoAlvo,
			"titulo":                 servico.Titulo,
			"descricao_curta":        servico.DescricaoCurta,
			"descricao_completa":     servico.DescricaoCompleta,
			"custo":                  servico.Custo,
			"gratuito":               servico.Gratuito,
			"documentos_necessarios": servico.DocumentosNecessarios,
			"instrucoes":             servico.Instrucoes,
			"canais_digitais":        servico.CanaisDigitais,
			"status":                 servico.Status,
			"aguardando_aprovacao":   servico.AguardandoAprovacao,
			"updated_by":             servico.UpdatedBy,
		}).Error
}

func (r *servicoRepo) UpdateStatus(ctx context.Context, id string, status int, aguardando bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Servico{}).
		Where("servico_id = ?", id).
		Updates(map[string]interface{}{
			"status":               status,
			"aguardando_aprovacao": aguardando,
		}).Error
}

func (r *servicoRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("servico_id = ?", id).
		Delete(&model.Servico{}).Error
}

func (r *servicoRepo) GetTombamento(ctx context.Context, servicoID string) (*model.Tombamento, error) {
	var tombamento model.Tombamento
	err := r.db.WithContext(ctx).
		Where("servico_id = ?", servicoID).
		First(&tombamento).Error
	if err != nil {
		return nil, err
	}
	return &tombamento, nil
}

func (r *servicoRepo) CreateTombamento(ctx context.Context, tombamento *model.Tombamento) error {
	return r.db.WithContext(ctx).Create(tombamento).Error
}

func (r *servicoRepo) DeleteTombamento(ctx context.Context, servicoID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("servico_id = ?", servicoID).
		Delete(&model.Tombamento{})
	return result.RowsAffected, result.Error
}
