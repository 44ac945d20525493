package dto

// ── Módulo de categorias ──

// CategoriaListRequest consulta paginada de categorias
type CategoriaListRequest struct {
	PaginationRequest
}

// CategoriaResponse categoria de curso
type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// CriarCategoriaRequest criação de categoria
type CriarCategoriaRequest struct {
	Nome string `json:"nome" binding:"required,min=2,max=100"`
}
