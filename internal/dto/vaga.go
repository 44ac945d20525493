package dto

import "time"

// ── Módulo de empregabilidade ──

// EtapaForm etapa do processo seletivo como chega do formulário
type EtapaForm struct {
	ID          string `json:"id"`
	Title       string `json:"title"       binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Order       int    `json:"order"       binding:"omitempty,min=1"`
}

// VagaFormRequest payload do formulário de vaga (mesma dualidade
// rascunho/publicação do formulário de curso)
type VagaFormRequest struct {
	Action               string                   `json:"action" binding:"required,oneof=save_draft publish"`
	Title                string                   `json:"title"`
	Description          string                   `json:"description"`
	Company              string                   `json:"company"`
	ContractRegime       string                   `json:"contractRegime"`
	WorkModel            string                   `json:"workModel"`
	IsPCD                bool                     `json:"isPcd"`
	PCDTypes             []string                 `json:"pcdTypes"`
	Salary               string                   `json:"salary"`
	Neighborhood         string                   `json:"neighborhood"`
	ApplicationDeadline  *time.Time               `json:"applicationDeadline"`
	Requirements         string                   `json:"requirements"`
	Benefits             string                   `json:"benefits"`
	SelectionSteps       []EtapaForm              `json:"selectionSteps"`
	ComplementaryFields  []CampoPersonalizadoForm `json:"complementaryFields"`
}

// ReordenarEtapasRequest nova ordem das etapas do processo seletivo
// A lista deve ser uma permutação das etapas existentes da vaga
type ReordenarEtapasRequest struct {
	Ordem []OrdemEtapa `json:"ordem" binding:"required,min=1,dive"`
}

// OrdemEtapa posição de uma etapa
type OrdemEtapa struct {
	EtapaID string `json:"etapa_id" binding:"required,uuid"`
	Ordem   int    `json:"ordem"    binding:"required,min=1"`
}

// VagaListRequest filtros da listagem de vagas
type VagaListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=draft opened closed canceled"`
	Busca  string `form:"busca"  binding:"omitempty,max=100"`
}

// EtapaResponse etapa na forma de backend
type EtapaResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// VagaResponse vaga na forma de backend
type VagaResponse struct {
	ID                  string                   `json:"id"`
	Title               string                   `json:"title"`
	Description         string                   `json:"description"`
	Company             string                   `json:"company"`
	ContractRegime      string                   `json:"contract_regime"`
	WorkModel           string                   `json:"work_model"`
	IsPCD               bool                     `json:"is_pcd"`
	PCDTypes            []string                 `json:"pcd_types,omitempty"`
	Salary              string                   `json:"salary"`
	Neighborhood        string                   `json:"neighborhood"`
	ApplicationDeadline string                   `json:"application_deadline"`
	Requirements        string                   `json:"requirements"`
	Benefits            string                   `json:"benefits"`
	SelectionSteps      []EtapaResponse          `json:"selection_steps,omitempty"`
	ComplementaryFields []CampoPersonalizadoForm `json:"complementary_fields,omitempty"`
	Status              string                   `json:"status"`
	CreatedAt           string                   `json:"created_at"`
	UpdatedAt           string                   `json:"updated_at"`
}
