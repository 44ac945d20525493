package dto

// ── Módulo de candidaturas ──

// CriarCandidaturaRequest candidatura a uma vaga
// O CPF é validado pelo algoritmo de dígitos verificadores antes de
// qualquer persistência
type CriarCandidaturaRequest struct {
	VagaID    string            `json:"vaga_id" binding:"required,uuid"`
	CPF       string            `json:"cpf"     binding:"required"`
	Respostas map[string]string `json:"respostas"`
}

// CandidaturaResponse candidatura na forma de backend
type CandidaturaResponse struct {
	ID        string            `json:"id"`
	VagaID    string            `json:"vaga_id"`
	CPF       string            `json:"cpf"`
	Respostas map[string]string `json:"respostas,omitempty"`
	CreatedAt string            `json:"created_at"`
}
