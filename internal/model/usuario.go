package model

// Papéis de usuário do backoffice
const (
	PapelAdmin  = "admin"
	PapelGestor = "gestor"
)

// Usuario colaborador do backoffice — tabela usuarios
type Usuario struct {
	UsuarioID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"usuario_id"`
	Nome      string `gorm:"type:varchar(100);not null"                     json:"nome"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	SenhaHash string `gorm:"type:varchar(100);not null"                     json:"-"`
	Papel     string `gorm:"type:varchar(20);not null;default:'gestor'"     json:"papel"`
	Ativo     bool   `gorm:"not null;default:true"                          json:"ativo"`
	SoftDeleteModel
}

// TableName nome da tabela
func (Usuario) TableName() string { return "usuarios" }
