package model

import (
	"time"

	"github.com/lib/pq"
)

// OportunidadeMEI listagem de contratação para microempreendedores — tabela oportunidades_mei
type OportunidadeMEI struct {
	OportunidadeID     string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"oportunidade_id"`
	Titulo             string         `gorm:"type:varchar(255);not null"                     json:"titulo"`
	Descricao          string         `gorm:"type:text;not null"                             json:"descricao"`
	SubclassesCNAE     pq.StringArray `gorm:"type:text[]"                                    json:"subclasses_cnae,omitempty"`
	Endereco           string         `gorm:"type:varchar(255);not null;default:''"          json:"endereco"`
	Numero             string         `gorm:"type:varchar(20);not null;default:''"           json:"numero"`
	Bairro             string         `gorm:"type:varchar(100);not null;default:''"          json:"bairro"`
	CondicoesPagamento string         `gorm:"type:text;not null;default:''"                  json:"condicoes_pagamento"`
	DataExpiracao      time.Time      `gorm:"not null"                                       json:"data_expiracao"`
	PrazoExecucao      time.Time      `gorm:"not null"                                       json:"prazo_execucao"`
	ImagemCapa         string         `gorm:"type:text;not null;default:''"                  json:"imagem_capa"`
	Galeria            pq.StringArray `gorm:"type:text[]"                                    json:"galeria,omitempty"`
	Status             string         `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"`
	SoftDeleteModel
}

// TableName nome da tabela
func (OportunidadeMEI) TableName() string { return "oportunidades_mei" }
