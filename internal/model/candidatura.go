package model

import "gorm.io/datatypes"

// Candidatura inscrição de candidato em vaga — tabela candidaturas
// Unicidade: (vaga_id, cpf) — duplicidade vira conflito 409 na API
type Candidatura struct {
	CandidaturaID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"candidatura_id"`
	VagaID        string         `gorm:"type:uuid;not null;uniqueIndex:uq_candidatura_vaga_cpf" json:"vaga_id"`
	CPF           string         `gorm:"type:varchar(11);not null;uniqueIndex:uq_candidatura_vaga_cpf" json:"cpf"`
	Respostas     datatypes.JSON `gorm:"type:jsonb" json:"respostas,omitempty"`
	BaseModel

	Vaga *Vaga `gorm:"foreignKey:VagaID;references:VagaID" json:"vaga,omitempty"`
}

// TableName nome da tabela
func (Candidatura) TableName() string { return "candidaturas" }
