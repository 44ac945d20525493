package model

import (
	"time"

	"github.com/lib/pq"
)

// Codificação persistida do status do serviço (herdada do backend legado):
// inteiro 0/1 + flag aguardando_aprovacao, desacoplados do rótulo tri-estado
// exposto pela API (em_edicao | aguardando_aprovacao | publicado).
const (
	ServicoStatusEmEdicao  = 0
	ServicoStatusPublicado = 1
)

// Rótulos tri-estado expostos nos DTOs
const (
	ServicoRotuloEmEdicao            = "em_edicao"
	ServicoRotuloAguardandoAprovacao = "aguardando_aprovacao"
	ServicoRotuloPublicado           = "publicado"
)

// Servico serviço municipal do catálogo — tabela servicos
type Servico struct {
	ServicoID             string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"servico_id"`
	OrgaoGestor           string         `gorm:"type:varchar(255);not null"                     json:"orgao_gestor"`
	Categoria             string         `gorm:"type:varchar(100);not null;default:''"          json:"categoria"`
	PublicoAlvo           string         `gorm:"type:text;not null;default:''"                  json:"publico_alvo"`
	Titulo                string         `gorm:"type:varchar(255);not null"                     json:"titulo"`
	DescricaoCurta        string         `gorm:"type:varchar(500);not null;default:''"          json:"descricao_curta"`
	DescricaoCompleta     string         `gorm:"type:text;not null;default:''"                  json:"descricao_completa"`
	Custo                 string         `gorm:"type:varchar(100);not null;default:''"          json:"custo"`
	Gratuito              bool           `gorm:"not null;default:true"                          json:"gratuito"`
	DocumentosNecessarios string         `gorm:"type:text;not null;default:''"                  json:"documentos_necessarios"`
	Instrucoes            string         `gorm:"type:text;not null;default:''"                  json:"instrucoes"`
	CanaisDigitais        pq.StringArray `gorm:"type:text[]"                                    json:"canais_digitais,omitempty"`
	Status                int            `gorm:"type:smallint;not null;default:0"               json:"status"`
	AguardandoAprovacao   bool           `gorm:"not null;default:false"                         json:"aguardando_aprovacao"`
	SoftDeleteModel

	Tombamento *Tombamento `gorm:"foreignKey:ServicoID;references:ServicoID" json:"tombamento,omitempty"`
}

// TableName nome da tabela
func (Servico) TableName() string { return "servicos" }

// Rotulo deriva o rótulo tri-estado da codificação persistida
func (s *Servico) Rotulo() string {
	if s.Status == ServicoStatusPublicado {
		return ServicoRotuloPublicado
	}
	if s.AguardandoAprovacao {
		return ServicoRotuloAguardandoAprovacao
	}
	return ServicoRotuloEmEdicao
}

// Tombamento vínculo de migração com serviço legado — tabela tombamentos
// No máximo um tombamento ativo por serviço (constraint de unicidade).
// Destombar remove o registro de vínculo.
type Tombamento struct {
	TombamentoID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tombamento_id"`
	ServicoID       string    `gorm:"type:uuid;not null;uniqueIndex"                 json:"servico_id"`
	ServicoLegadoID string    `gorm:"type:varchar(64);not null"                      json:"servico_legado_id"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy       *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName nome da tabela
func (Tombamento) TableName() string { return "tombamentos" }
