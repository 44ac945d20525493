package dto

import "time"

// ── Módulo de oportunidades MEI ──

// MEIFormRequest payload do formulário de oportunidade MEI
// (dualidade rascunho/publicação igual ao curso)
type MEIFormRequest struct {
	Action            string     `json:"action" binding:"required,oneof=save_draft publish"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	CNAESubclasses    []string   `json:"cnaeSubclasses"`
	Address           string     `json:"address"`
	Number            string     `json:"number"`
	Neighborhood      string     `json:"neighborhood"`
	PaymentTerms      string     `json:"paymentTerms"`
	ExpirationDate    *time.Time `json:"expirationDate"`
	ExecutionDeadline *time.Time `json:"executionDeadline"`
	CoverImage        string     `json:"coverImage"`
	Gallery           []string   `json:"gallery"`
}

// MEIListRequest filtros da listagem de oportunidades
type MEIListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=draft opened closed canceled"`
	Busca  string `form:"busca"  binding:"omitempty,max=100"`
}

// MEIResponse oportunidade na forma de backend
type MEIResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	CNAESubclasses    []string `json:"cnae_subclasses,omitempty"`
	Address           string   `json:"address"`
	Number            string   `json:"number"`
	Neighborhood      string   `json:"neighborhood"`
	PaymentTerms      string   `json:"payment_terms"`
	ExpirationDate    string   `json:"expiration_date"`
	ExecutionDeadline string   `json:"execution_deadline"`
	CoverImage        string   `json:"cover_image"`
	Gallery           []string `json:"gallery,omitempty"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}
