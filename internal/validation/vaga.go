package validation

import (
	"fmt"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
)

// vagaPublicacao view do nível publicação da vaga
type vagaPublicacao struct {
	Title          string `validate:"required,min=3,max=255" campo:"title"`
	Description    string `validate:"required,min=10"        campo:"description"`
	Company        string `validate:"required,max=255"       campo:"company"`
	ContractRegime string `validate:"required,max=50"        campo:"contractRegime"`
	WorkModel      string `validate:"required,max=50"        campo:"workModel"`
	Neighborhood   string `validate:"required,max=100"       campo:"neighborhood"`
}

// ValidarVaga valida o formulário de vaga no nível indicado
func ValidarVaga(req *dto.VagaFormRequest, nivel Nivel) []ErroCampo {
	if nivel == NivelRascunho {
		return nil
	}

	erros := executarRegrasDeCampo(vagaPublicacao{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		ContractRegime: req.ContractRegime,
		WorkModel:      req.WorkModel,
		Neighborhood:   req.Neighborhood,
	})

	if req.ApplicationDeadline == nil {
		erros = append(erros, erro("applicationDeadline", "campo obrigatório"))
	}

	// Vaga PCD exige ao menos um subtipo
	if req.IsPCD && len(req.PCDTypes) == 0 {
		erros = append(erros, erro("pcdTypes", "vaga PCD exige ao menos um tipo"))
	}

	// Etapas do processo seletivo: títulos obrigatórios, ordens 1..n sem repetição
	ordens := make(map[int]bool, len(req.SelectionSteps))
	for i, e := range req.SelectionSteps {
		prefixo := fmt.Sprintf("selectionSteps[%d]", i)
		if e.Title == "" {
			erros = append(erros, erro(prefixo+".title", "campo obrigatório"))
		}
		if e.Order < 1 || e.Order > len(req.SelectionSteps) {
			erros = append(erros, erro(prefixo+".order", "fora do intervalo 1..%d", len(req.SelectionSteps)))
		} else if ordens[e.Order] {
			erros = append(erros, erro(prefixo+".order", "ordem repetida"))
		} else {
			ordens[e.Order] = true
		}
	}

	return erros
}
