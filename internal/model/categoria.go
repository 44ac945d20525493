package model

// Categoria categoria de curso — tabela categorias
type Categoria struct {
	CategoriaID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"categoria_id"`
	Nome        string `gorm:"type:varchar(100);not null"                     json:"nome"`
	Ativo       bool   `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel
}

// TableName nome da tabela
func (Categoria) TableName() string { return "categorias" }
