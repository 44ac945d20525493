package dto

import "time"

// Ações de salvamento do formulário (valores de wire herdados do portal)
const (
	AcaoSalvarRascunho = "save_draft"
	AcaoPublicar       = "publish"
)

// ── Forma do frontend (camelCase) ──
//
// O formulário do portal envia o estado interno em camelCase com datas
// RFC3339. A forma de backend (snake_case, envelope remote_class) só existe
// após a normalização.

// TurmaForm turma como chega do formulário
type TurmaForm struct {
	Vacancies      int        `json:"vacancies"      binding:"omitempty,min=0"`
	ClassStartDate *time.Time `json:"classStartDate"`
	ClassEndDate   *time.Time `json:"classEndDate"`
	ClassTime      string     `json:"classTime"      binding:"omitempty,max=100"`
	ClassDays      string     `json:"classDays"      binding:"omitempty,max=100"`
}

// LocalForm local presencial como chega do formulário
type LocalForm struct {
	Address      string      `json:"address"      binding:"omitempty,max=255"`
	Neighborhood string      `json:"neighborhood" binding:"omitempty,max=100"`
	Schedules    []TurmaForm `json:"schedules"`
}

// CampoPersonalizadoForm definição de campo extra do formulário
type CampoPersonalizadoForm struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"    binding:"omitempty,max=255"`
	Type     string   `json:"type"     binding:"omitempty,oneof=texto numero selecao multipla_escolha"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

// CursoFormRequest payload completo do formulário de curso
//
// O nível de validação depende da ação: "save_draft" aceita dados parciais
// (apenas forma/tipo), "publish" exige o conjunto completo de regras
// (internal/validation).
type CursoFormRequest struct {
	Action                 string                   `json:"action" binding:"required,oneof=save_draft publish"`
	Title                  string                   `json:"title"`
	Description            string                   `json:"description"`
	CategoryID             string                   `json:"categoryId"             binding:"omitempty,uuid"`
	OrganizationID         string                   `json:"organizationId"         binding:"omitempty,uuid"`
	Modalidade             string                   `json:"modalidade"             binding:"omitempty,oneof=ONLINE PRESENCIAL HIBRIDO"`
	Workload               string                   `json:"workload"`
	TargetAudience         string                   `json:"targetAudience"`
	EnrollmentStartDate    *time.Time               `json:"enrollmentStartDate"`
	EnrollmentEndDate      *time.Time               `json:"enrollmentEndDate"`
	InstitutionalLogo      string                   `json:"institutionalLogo"`
	CoverImage             string                   `json:"coverImage"`
	IsVisible              *bool                    `json:"isVisible"`
	IsExternalPartner      bool                     `json:"isExternalPartner"`
	ExternalPartnerName    string                   `json:"externalPartnerName"`
	ExternalPartnerURL     string                   `json:"externalPartnerUrl"`
	ExternalPartnerLogo    string                   `json:"externalPartnerLogo"`
	ExternalPartnerContact string                   `json:"externalPartnerContact"`
	Accessibility          string                   `json:"accessibility"`
	Objectives             string                   `json:"objectives"`
	Methodology            string                   `json:"methodology"`
	ProgramContent         string                   `json:"programContent"`
	Certification          string                   `json:"certification"`
	CustomFields           []CampoPersonalizadoForm `json:"customFields"`
	RemoteClass            []TurmaForm              `json:"remoteClass"`
	Locations              []LocalForm              `json:"locations"`
}

// CursoListRequest filtros da listagem de cursos
type CursoListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=draft opened closed canceled"`
	Busca  string `form:"busca"  binding:"omitempty,max=100"`
}

// ── Forma de backend (snake_case, pós-normalização) ──

// TurmaResponse turma normalizada
type TurmaResponse struct {
	ID             string `json:"id"`
	Vacancies      int    `json:"vacancies"`
	ClassStartDate string `json:"class_start_date"`
	ClassEndDate   string `json:"class_end_date"`
	ClassTime      string `json:"class_time"`
	ClassDays      string `json:"class_days"`
}

// RemoteClassEnvelope envelope de turmas remotas (modalidade ONLINE)
type RemoteClassEnvelope struct {
	Schedules []TurmaResponse `json:"schedules"`
}

// LocalResponse local presencial com suas turmas aninhadas
type LocalResponse struct {
	ID           string          `json:"id"`
	Address      string          `json:"address"`
	Neighborhood string          `json:"neighborhood"`
	Schedules    []TurmaResponse `json:"schedules"`
}

// CursoResponse curso na forma de backend
// Invariante: remote_class e locations nunca vêm ambos preenchidos
type CursoResponse struct {
	ID                     string                   `json:"id"`
	Title                  string                   `json:"title"`
	Description            string                   `json:"description"`
	CategoryID             string                   `json:"category_id,omitempty"`
	OrganizationID         string                   `json:"organization_id,omitempty"`
	Modalidade             string                   `json:"modalidade"`
	Workload               string                   `json:"workload"`
	TargetAudience         string                   `json:"target_audience"`
	EnrollmentStartDate    string                   `json:"enrollment_start_date"`
	EnrollmentEndDate      string                   `json:"enrollment_end_date"`
	InstitutionalLogo      string                   `json:"institutional_logo"`
	CoverImage             string                   `json:"cover_image"`
	IsVisible              bool                     `json:"is_visible"`
	IsExternalPartner      bool                     `json:"is_external_partner"`
	ExternalPartnerName    string                   `json:"external_partner_name"`
	ExternalPartnerURL     string                   `json:"external_partner_url"`
	ExternalPartnerLogo    string                   `json:"external_partner_logo"`
	ExternalPartnerContact string                   `json:"external_partner_contact"`
	Accessibility          string                   `json:"accessibility,omitempty"`
	Objectives             string                   `json:"objectives"`
	Methodology            string                   `json:"methodology"`
	ProgramContent         string                   `json:"program_content"`
	Certification          string                   `json:"certification"`
	CustomFields           []CampoPersonalizadoForm `json:"custom_fields,omitempty"`
	Status                 string                   `json:"status"`
	RemoteClass            *RemoteClassEnvelope     `json:"remote_class,omitempty"`
	Locations              []LocalResponse          `json:"locations,omitempty"`
	CreatedAt              string                   `json:"created_at"`
	UpdatedAt              string                   `json:"updated_at"`
}
