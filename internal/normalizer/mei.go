package normalizer

import (
	"time"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// NormalizarMEI converte o formulário de oportunidade MEI para o modelo
func NormalizarMEI(req *dto.MEIFormRequest, rascunho bool, agora time.Time) *model.OportunidadeMEI {
	op := &model.OportunidadeMEI{
		Titulo:             req.Title,
		Descricao:          req.Description,
		Endereco:           req.Address,
		Numero:             req.Number,
		Bairro:             req.Neighborhood,
		CondicoesPagamento: req.PaymentTerms,
		ImagemCapa:         req.CoverImage,
		Status:             model.VagaStatusAberta,
	}

	op.SubclassesCNAE = append(op.SubclassesCNAE, req.CNAESubclasses...)
	op.Galeria = append(op.Galeria, req.Gallery...)

	op.DataExpiracao = dataOuPadrao(req.ExpirationDate, agora.AddDate(0, 0, RascunhoJanelaDias))
	op.PrazoExecucao = dataOuPadrao(req.ExecutionDeadline, agora.AddDate(0, 0, 2*RascunhoJanelaDias))

	if rascunho {
		op.Status = model.VagaStatusRascunho
		op.Titulo = valorOuPadrao(op.Titulo, RascunhoTituloOportunidade)
		op.Descricao = valorOuPadrao(op.Descricao, RascunhoDescricao)
		op.CondicoesPagamento = valorOuPadrao(op.CondicoesPagamento, RascunhoADefinir)
	}

	return op
}

// MEIParaResponse monta a resposta na forma de backend
func MEIParaResponse(o *model.OportunidadeMEI) *dto.MEIResponse {
	return &dto.MEIResponse{
		ID:                o.OportunidadeID,
		Title:             o.Titulo,
		Description:       o.Descricao,
		CNAESubclasses:    o.SubclassesCNAE,
		Address:           o.Endereco,
		Number:            o.Numero,
		Neighborhood:      o.Bairro,
		PaymentTerms:      o.CondicoesPagamento,
		ExpirationDate:    FormatarDataUTC(o.DataExpiracao),
		ExecutionDeadline: FormatarDataUTC(o.PrazoExecucao),
		CoverImage:        o.ImagemCapa,
		Gallery:           o.Galeria,
		Status:            o.Status,
		CreatedAt:         FormatarDataUTC(o.CreatedAt),
		UpdatedAt:         FormatarDataUTC(o.UpdatedAt),
	}
}
