package model

import "gorm.io/datatypes"

// Status de inscrição (valores de wire do portal)
const (
	InscricaoStatusAprovada  = "approved"
	InscricaoStatusPendente  = "pending"
	InscricaoStatusCancelada = "cancelled"
	InscricaoStatusRejeitada = "rejected"
	InscricaoStatusConcluida = "concluded"
)

// StatusInscricaoValido informa se o valor é um status conhecido
func StatusInscricaoValido(s string) bool {
	switch s {
	case InscricaoStatusAprovada, InscricaoStatusPendente, InscricaoStatusCancelada,
		InscricaoStatusRejeitada, InscricaoStatusConcluida:
		return true
	}
	return false
}

// Inscricao matrícula de munícipe em curso — tabela inscricoes
type Inscricao struct {
	InscricaoID    string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"inscricao_id"`
	CursoID        string         `gorm:"type:uuid;not null"                             json:"curso_id"`
	Nome           string         `gorm:"type:varchar(255);not null"                     json:"nome"`
	CPF            string         `gorm:"type:varchar(11);not null"                      json:"cpf"`
	Email          string         `gorm:"type:varchar(255);not null;default:''"          json:"email"`
	Telefone       string         `gorm:"type:varchar(20);not null;default:''"           json:"telefone"`
	Endereco       string         `gorm:"type:varchar(255);not null;default:''"          json:"endereco"`
	Bairro         string         `gorm:"type:varchar(100);not null;default:''"          json:"bairro"`
	Idade          *int           `json:"idade,omitempty"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	URLCertificado string         `gorm:"type:text;not null;default:''"                  json:"url_certificado"`
	Respostas      datatypes.JSON `gorm:"type:jsonb"                                     json:"respostas,omitempty"`
	MotivoRejeicao string         `gorm:"type:text;not null;default:''"                  json:"motivo_rejeicao"`
	BaseModel

	Curso *Curso `gorm:"foreignKey:CursoID;references:CursoID" json:"curso,omitempty"`
}

// TableName nome da tabela
func (Inscricao) TableName() string { return "inscricoes" }
