package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Status de ciclo de vida da vaga (mesma dualidade rascunho/publicado dos cursos)
const (
	VagaStatusRascunho  = "draft"
	VagaStatusAberta    = "opened"
	VagaStatusEncerrada = "closed"
	VagaStatusCancelada = "canceled"
)

// Vaga publicação de empregabilidade — tabela vagas
type Vaga struct {
	VagaID                string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vaga_id"`
	Titulo                string         `gorm:"type:varchar(255);not null"                     json:"titulo"`
	Descricao             string         `gorm:"type:text;not null"                             json:"descricao"`
	Empresa               string         `gorm:"type:varchar(255);not null;default:''"          json:"empresa"`
	RegimeContratacao     string         `gorm:"type:varchar(50);not null;default:''"           json:"regime_contratacao"`
	ModeloTrabalho        string         `gorm:"type:varchar(50);not null;default:''"           json:"modelo_trabalho"`
	VagaPCD               bool           `gorm:"not null;default:false"                         json:"vaga_pcd"`
	TiposPCD              pq.StringArray `gorm:"type:text[]"                                    json:"tipos_pcd,omitempty"`
	Salario               string         `gorm:"type:varchar(100);not null;default:''"          json:"salario"`
	Bairro                string         `gorm:"type:varchar(100);not null;default:''"          json:"bairro"`
	DataLimiteCandidatura time.Time      `gorm:"not null"                                       json:"data_limite_candidatura"`
	Requisitos            string         `gorm:"type:text;not null;default:''"                  json:"requisitos"`
	Beneficios            string         `gorm:"type:text;not null;default:''"                  json:"beneficios"`
	CamposComplementares  datatypes.JSON `gorm:"type:jsonb"                                     json:"campos_complementares,omitempty"`
	Status                string         `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"`
	SoftDeleteModel

	Etapas []EtapaSelecao `gorm:"foreignKey:VagaID;references:VagaID" json:"etapas,omitempty"`
}

// TableName nome da tabela
func (Vaga) TableName() string { return "vagas" }

// EtapaSelecao etapa ordenada do processo seletivo — tabela etapas_selecao
type EtapaSelecao struct {
	EtapaID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"etapa_id"`
	VagaID    string `gorm:"type:uuid;not null"                             json:"vaga_id"`
	Titulo    string `gorm:"type:varchar(255);not null"                     json:"titulo"`
	Descricao string `gorm:"type:text;not null;default:''"                  json:"descricao"`
	Ordem     int    `gorm:"not null"                                       json:"ordem"`
	BaseModel
}

// TableName nome da tabela
func (EtapaSelecao) TableName() string { return "etapas_selecao" }
