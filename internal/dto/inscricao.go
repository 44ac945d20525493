package dto

import "time"

// ── Módulo de inscrições ──

// CriarInscricaoRequest inscrição de munícipe em curso
type CriarInscricaoRequest struct {
	Nome      string            `json:"nome"     binding:"required,min=2,max=255"`
	CPF       string            `json:"cpf"      binding:"required"`
	Email     string            `json:"email"    binding:"omitempty,email"`
	Telefone  string            `json:"telefone" binding:"omitempty,max=20"`
	Endereco  string            `json:"endereco" binding:"omitempty,max=255"`
	Bairro    string            `json:"bairro"   binding:"omitempty,max=100"`
	Idade     *int              `json:"idade"    binding:"omitempty,min=0,max=130"`
	Respostas map[string]string `json:"respostas"`
}

// InscricaoListRequest filtros da listagem (paginação/filtragem manuais:
// o estado de filtro vive no cliente e cada mudança dispara nova consulta)
type InscricaoListRequest struct {
	PaginationRequest
	Status     []string   `form:"status"      binding:"omitempty,dive,oneof=approved pending cancelled rejected concluded"`
	Busca      string     `form:"busca"       binding:"omitempty,max=100"`
	DataInicio *time.Time `form:"data_inicio" time_format:"2006-01-02"`
	DataFim    *time.Time `form:"data_fim"    time_format:"2006-01-02"`
	OrdenarPor string     `form:"ordenar_por" binding:"omitempty,oneof=nome created_at status"`
	Ordem      string     `form:"ordem"       binding:"omitempty,oneof=asc desc"`
}

// AtualizarStatusLoteRequest transição de status em lote sobre a seleção
type AtualizarStatusLoteRequest struct {
	IDs            []string `json:"ids"    binding:"required,min=1,dive,uuid"`
	Status         string   `json:"status" binding:"required,oneof=approved pending cancelled rejected concluded"`
	MotivoRejeicao string   `json:"motivo_rejeicao" binding:"omitempty,max=500"`
}

// ResultadoLoteResponse resultado da transição em lote
// Linhas já no status alvo são ignoradas (nenhuma transição redundante)
type ResultadoLoteResponse struct {
	Atualizadas int `json:"atualizadas"`
	Ignoradas   int `json:"ignoradas"`
}

// CertificadoRequest gravação da URL de certificado
type CertificadoRequest struct {
	URLCertificado string `json:"url_certificado" binding:"required,url"`
}

// InscricaoResponse inscrição na forma de backend
type InscricaoResponse struct {
	ID             string            `json:"id"`
	CursoID        string            `json:"curso_id"`
	Nome           string            `json:"nome"`
	CPF            string            `json:"cpf"`
	Email          string            `json:"email"`
	Telefone       string            `json:"telefone"`
	Endereco       string            `json:"endereco"`
	Bairro         string            `json:"bairro"`
	Idade          *int              `json:"idade,omitempty"`
	Status         string            `json:"status"`
	URLCertificado string            `json:"url_certificado,omitempty"`
	Respostas      map[string]string `json:"respostas,omitempty"`
	MotivoRejeicao string            `json:"motivo_rejeicao,omitempty"`
	CreatedAt      string            `json:"created_at"`
}
