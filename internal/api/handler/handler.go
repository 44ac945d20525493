package handler

import "github.com/prefeitura-rio/portal-interno-sub000/internal/service"

// Handler ponto de agregação de todos os handlers
type Handler struct {
	Auth         *AuthHandler
	Acao         *AcaoHandler
	Curso        *CursoHandler
	Inscricao    *InscricaoHandler
	Export       *ExportHandler
	Vaga         *VagaHandler
	Candidatura  *CandidaturaHandler
	Oportunidade *OportunidadeHandler
	Servico      *ServicoHandler
	Categoria    *CategoriaHandler
}

// NewHandler cria o agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Acao:         NewAcaoHandler(),
		Curso:        NewCursoHandler(svc.Curso),
		Inscricao:    NewInscricaoHandler(svc.Inscricao),
		Export:       NewExportHandler(svc.Export),
		Vaga:         NewVagaHandler(svc.Vaga),
		Candidatura:  NewCandidaturaHandler(svc.Candidatura),
		Oportunidade: NewOportunidadeHandler(svc.Oportunidade),
		Servico:      NewServicoHandler(svc.Servico),
		Categoria:    NewCategoriaHandler(svc.Categoria),
	}
}
