package dto

// ── Módulo de serviços municipais ──

// ServicoFormRequest payload do formulário de serviço
type ServicoFormRequest struct {
	ManagingOrgan     string   `json:"managingOrgan"`
	Category          string   `json:"category"`
	TargetAudience    string   `json:"targetAudience"`
	Title             string   `json:"title"`
	ShortDescription  string   `json:"shortDescription"`
	FullDescription   string   `json:"fullDescription"`
	Cost              string   `json:"cost"`
	IsFree            *bool    `json:"isFree"`
	RequiredDocuments string   `json:"requiredDocuments"`
	Instructions      string   `json:"instructions"`
	DigitalChannels   []string `json:"digitalChannels"`
}

// ServicoListRequest filtros da listagem de serviços
type ServicoListRequest struct {
	PaginationRequest
	// Rótulo tri-estado, não a codificação persistida
	Status string `form:"status" binding:"omitempty,oneof=em_edicao aguardando_aprovacao publicado"`
	Busca  string `form:"busca"  binding:"omitempty,max=100"`
}

// TombarRequest criação de vínculo de tombamento com serviço legado
type TombarRequest struct {
	ServicoLegadoID string `json:"servico_legado_id" binding:"required,max=64"`
}

// TombamentoResponse vínculo de tombamento
type TombamentoResponse struct {
	ID              string `json:"id"`
	ServicoID       string `json:"servico_id"`
	ServicoLegadoID string `json:"servico_legado_id"`
	CreatedAt       string `json:"created_at"`
}

// ServicoResponse serviço na forma de backend
// status expõe o rótulo tri-estado; a codificação inteira + flag fica
// em status_code/aguardando_aprovacao para compatibilidade com o legado
type ServicoResponse struct {
	ID                  string              `json:"id"`
	ManagingOrgan       string              `json:"managing_organ"`
	Category            string              `json:"category"`
	TargetAudience      string              `json:"target_audience"`
	Title               string              `json:"title"`
	ShortDescription    string              `json:"short_description"`
	FullDescription     string              `json:"full_description"`
	Cost                string              `json:"cost"`
	IsFree              bool                `json:"is_free"`
	RequiredDocuments   string              `json:"required_documents"`
	Instructions        string              `json:"instructions"`
	DigitalChannels     []string            `json:"digital_channels,omitempty"`
	Status              string              `json:"status"`
	StatusCode          int                 `json:"status_code"`
	AguardandoAprovacao bool                `json:"aguardando_aprovacao"`
	Tombamento          *TombamentoResponse `json:"tombamento,omitempty"`
	CreatedAt           string              `json:"created_at"`
	UpdatedAt           string              `json:"updated_at"`
}
