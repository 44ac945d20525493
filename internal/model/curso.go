package model

import (
	"time"

	"gorm.io/datatypes"
)

// Modalidades de oferta do curso
const (
	ModalidadeOnline     = "ONLINE"
	ModalidadePresencial = "PRESENCIAL"
	ModalidadeHibrido    = "HIBRIDO"
)

// Status de ciclo de vida do curso (valores de wire do portal)
const (
	CursoStatusRascunho  = "draft"
	CursoStatusAberto    = "opened"
	CursoStatusEncerrado = "closed"
	CursoStatusCancelado = "canceled"
)

// Curso oferta de capacitação — tabela cursos
//
// Invariante de modalidade: ONLINE popula turmas remotas (local_id nulo);
// PRESENCIAL/HIBRIDO popula locais, cada um com suas turmas. Nunca ambos.
// O normalizador garante o invariante por construção na escrita.
type Curso struct {
	CursoID                string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"curso_id"`
	Titulo                 string         `gorm:"type:varchar(255);not null"                     json:"titulo"`
	Descricao              string         `gorm:"type:text;not null"                             json:"descricao"`
	CategoriaID            *string        `gorm:"type:uuid"                                      json:"categoria_id,omitempty"`
	OrgaoID                *string        `gorm:"type:uuid"                                      json:"orgao_id,omitempty"`
	Modalidade             string         `gorm:"type:varchar(20);not null"                      json:"modalidade"`
	CargaHoraria           string         `gorm:"type:varchar(50);not null"                      json:"carga_horaria"`
	PublicoAlvo            string         `gorm:"type:text;not null;default:''"                  json:"publico_alvo"`
	DataInicioInscricoes   time.Time      `gorm:"not null"                                       json:"data_inicio_inscricoes"`
	DataFimInscricoes      time.Time      `gorm:"not null"                                       json:"data_fim_inscricoes"`
	LogoInstitucional      string         `gorm:"type:text;not null;default:''"                  json:"logo_institucional"`
	ImagemCapa             string         `gorm:"type:text;not null;default:''"                  json:"imagem_capa"`
	Visivel                bool           `gorm:"not null;default:true"                          json:"visivel"`
	ParceiroExterno        bool           `gorm:"not null;default:false"                         json:"parceiro_externo"`
	NomeParceiroExterno    string         `gorm:"type:varchar(255);not null;default:''"          json:"nome_parceiro_externo"`
	URLParceiroExterno     string         `gorm:"type:text;not null;default:''"                  json:"url_parceiro_externo"`
	LogoParceiroExterno    string         `gorm:"type:text;not null;default:''"                  json:"logo_parceiro_externo"`
	ContatoParceiroExterno string         `gorm:"type:varchar(255);not null;default:''"          json:"contato_parceiro_externo"`
	Acessibilidade         *string        `gorm:"type:varchar(50)"                               json:"acessibilidade,omitempty"`
	Objetivos              string         `gorm:"type:text;not null;default:''"                  json:"objetivos"`
	Metodologia            string         `gorm:"type:text;not null;default:''"                  json:"metodologia"`
	ConteudoProgramatico   string         `gorm:"type:text;not null;default:''"                  json:"conteudo_programatico"`
	Certificacao           string         `gorm:"type:text;not null;default:''"                  json:"certificacao"`
	CamposPersonalizados   datatypes.JSON `gorm:"type:jsonb"                                     json:"campos_personalizados,omitempty"`
	Status                 string         `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"`
	VersionedModel

	// Associações
	Locais []Local `gorm:"foreignKey:CursoID;references:CursoID" json:"locais,omitempty"`
	Turmas []Turma `gorm:"foreignKey:CursoID;references:CursoID" json:"turmas,omitempty"`
}

// TableName nome da tabela
func (Curso) TableName() string { return "cursos" }

// TurmasRemotas turmas sem local (modalidade ONLINE)
func (c *Curso) TurmasRemotas() []Turma {
	var remotas []Turma
	for _, t := range c.Turmas {
		if t.LocalID == nil {
			remotas = append(remotas, t)
		}
	}
	return remotas
}

// Encerrado indica se o curso terminou por status ou por data
func (c *Curso) Encerrado(agora time.Time) bool {
	if c.Status == CursoStatusEncerrado {
		return true
	}
	return agora.After(c.DataFimInscricoes)
}

// Local endereço de oferta presencial — tabela locais
type Local struct {
	LocalID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"local_id"`
	CursoID  string `gorm:"type:uuid;not null"                             json:"curso_id"`
	Endereco string `gorm:"type:varchar(255);not null"                     json:"endereco"`
	Bairro   string `gorm:"type:varchar(100);not null"                     json:"bairro"`
	BaseModel

	Turmas []Turma `gorm:"foreignKey:LocalID;references:LocalID" json:"turmas,omitempty"`
}

// TableName nome da tabela
func (Local) TableName() string { return "locais" }

// Turma instância de oferta com vagas e período — tabela turmas
// LocalID nulo = turma remota (curso ONLINE)
type Turma struct {
	TurmaID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"turma_id"`
	CursoID         string    `gorm:"type:uuid;not null"                             json:"curso_id"`
	LocalID         *string   `gorm:"type:uuid"                                      json:"local_id,omitempty"`
	Vagas           int       `gorm:"not null;default:0"                             json:"vagas"`
	DataInicioAulas time.Time `gorm:"not null"                                       json:"data_inicio_aulas"`
	DataFimAulas    time.Time `gorm:"not null"                                       json:"data_fim_aulas"`
	Horario         string    `gorm:"type:varchar(100);not null;default:''"          json:"horario"`
	DiasSemana      string    `gorm:"type:varchar(100);not null;default:''"          json:"dias_semana"`
	BaseModel
}

// TableName nome da tabela
func (Turma) TableName() string { return "turmas" }

// CampoPersonalizado definição de campo extra do formulário de inscrição
// (serializado em JSONB na coluna campos_personalizados)
type CampoPersonalizado struct {
	ID          string   `json:"id"`
	Titulo      string   `json:"titulo"`
	Tipo        string   `json:"tipo"` // texto | numero | selecao | multipla_escolha
	Obrigatorio bool     `json:"obrigatorio"`
	Opcoes      []string `json:"opcoes,omitempty"`
}
