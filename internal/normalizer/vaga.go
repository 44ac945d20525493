package normalizer

import (
	"time"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// NormalizarVaga converte o formulário de vaga para o modelo persistido.
// Mesmas garantias do curso: entrada intacta, padrões sintetizados em
// rascunho, subtipos PCD zerados quando a flag está desligada.
func NormalizarVaga(req *dto.VagaFormRequest, rascunho bool, agora time.Time) *model.Vaga {
	vaga := &model.Vaga{
		Titulo:            req.Title,
		Descricao:         req.Description,
		Empresa:           req.Company,
		RegimeContratacao: req.ContractRegime,
		ModeloTrabalho:    req.WorkModel,
		VagaPCD:           req.IsPCD,
		Salario:           req.Salary,
		Bairro:            req.Neighborhood,
		Requisitos:        req.Requirements,
		Beneficios:        req.Benefits,
		Status:            model.VagaStatusAberta,
	}

	// Flag PCD desligada: subtipos nunca são persistidos
	if req.IsPCD {
		vaga.TiposPCD = append(vaga.TiposPCD, req.PCDTypes...)
	}

	vaga.DataLimiteCandidatura = dataOuPadrao(req.ApplicationDeadline, agora.AddDate(0, 0, RascunhoJanelaDias))

	if rascunho {
		vaga.Status = model.VagaStatusRascunho
		vaga.Titulo = valorOuPadrao(vaga.Titulo, RascunhoTituloVaga)
		vaga.Descricao = valorOuPadrao(vaga.Descricao, RascunhoDescricao)
	}

	if len(req.ComplementaryFields) > 0 {
		vaga.CamposComplementares = camposParaJSON(req.ComplementaryFields)
	}

	for i, e := range req.SelectionSteps {
		ordem := e.Order
		if ordem == 0 {
			ordem = i + 1
		}
		vaga.Etapas = append(vaga.Etapas, model.EtapaSelecao{
			Titulo:    e.Title,
			Descricao: e.Description,
			Ordem:     ordem,
		})
	}

	return vaga
}

// VagaParaResponse monta a resposta na forma de backend, etapas em ordem
func VagaParaResponse(v *model.Vaga) *dto.VagaResponse {
	resp := &dto.VagaResponse{
		ID:                  v.VagaID,
		Title:               v.Titulo,
		Description:         v.Descricao,
		Company:             v.Empresa,
		ContractRegime:      v.RegimeContratacao,
		WorkModel:           v.ModeloTrabalho,
		IsPCD:               v.VagaPCD,
		PCDTypes:            v.TiposPCD,
		Salary:              v.Salario,
		Neighborhood:        v.Bairro,
		ApplicationDeadline: FormatarDataUTC(v.DataLimiteCandidatura),
		Requirements:        v.Requisitos,
		Benefits:            v.Beneficios,
		ComplementaryFields: CamposDeJSON(v.CamposComplementares),
		Status:              v.Status,
		CreatedAt:           FormatarDataUTC(v.CreatedAt),
		UpdatedAt:           FormatarDataUTC(v.UpdatedAt),
	}

	for _, e := range v.Etapas {
		resp.SelectionSteps = append(resp.SelectionSteps, dto.EtapaResponse{
			ID:          e.EtapaID,
			Title:       e.Titulo,
			Description: e.Descricao,
			Order:       e.Ordem,
		})
	}

	return resp
}
