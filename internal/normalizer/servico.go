package normalizer

import (
	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// NormalizarServico converte o formulário de serviço para o modelo.
// Serviços nascem em edição (status 0, sem flag de aprovação).
func NormalizarServico(req *dto.ServicoFormRequest) *model.Servico {
	s := &model.Servico{
		OrgaoGestor:           req.ManagingOrgan,
		Categoria:             req.Category,
		PublicoAlvo:           req.TargetAudience,
		Titulo:                valorOuPadrao(req.Title, "Serviço em edição"),
		DescricaoCurta:        req.ShortDescription,
		DescricaoCompleta:     req.FullDescription,
		Custo:                 req.Cost,
		Gratuito:              true,
		DocumentosNecessarios: req.RequiredDocuments,
		Instrucoes:            req.Instructions,
		Status:                model.ServicoStatusEmEdicao,
	}

	if req.IsFree != nil {
		s.Gratuito = *req.IsFree
	}
	// Serviço gratuito não carrega custo antigo do formulário
	if s.Gratuito {
		s.Custo = ""
	}

	s.CanaisDigitais = append(s.CanaisDigitais, req.DigitalChannels...)

	return s
}

// AplicarServico aplica o formulário sobre um serviço existente,
// preservando status/flags de aprovação e auditoria
func AplicarServico(s *model.Servico, req *dto.ServicoFormRequest) *model.Servico {
	atualizado := *s
	novo := NormalizarServico(req)

	atualizado.OrgaoGestor = novo.OrgaoGestor
	atualizado.Categoria = novo.Categoria
	atualizado.PublicoAlvo = novo.PublicoAlvo
	atualizado.Titulo = novo.Titulo
	atualizado.DescricaoCurta = novo.DescricaoCurta
	atualizado.DescricaoCompleta = novo.DescricaoCompleta
	atualizado.Custo = novo.Custo
	atualizado.Gratuito = novo.Gratuito
	atualizado.DocumentosNecessarios = novo.DocumentosNecessarios
	atualizado.Instrucoes = novo.Instrucoes
	atualizado.CanaisDigitais = novo.CanaisDigitais

	return &atualizado
}

// ServicoParaResponse monta a resposta com o rótulo tri-estado derivado
// da codificação persistida (inteiro + flag)
func ServicoParaResponse(s *model.Servico) *dto.ServicoResponse {
	resp := &dto.ServicoResponse{
		ID:                  s.ServicoID,
		ManagingOrgan:       s.OrgaoGestor,
		Category:            s.Categoria,
		TargetAudience:      s.PublicoAlvo,
		Title:               s.Titulo,
		ShortDescription:    s.DescricaoCurta,
		FullDescription:     s.DescricaoCompleta,
		Cost:                s.Custo,
		IsFree:              s.Gratuito,
		RequiredDocuments:   s.DocumentosNecessarios,
		Instructions:        s.Instrucoes,
		DigitalChannels:     s.CanaisDigitais,
		Status:              s.Rotulo(),
		StatusCode:          s.Status,
		AguardandoAprovacao: s.AguardandoAprovacao,
		CreatedAt:           FormatarDataUTC(s.CreatedAt),
		UpdatedAt:           FormatarDataUTC(s.UpdatedAt),
	}

	if s.Tombamento != nil {
		resp.Tombamento = &dto.TombamentoResponse{
			ID:              s.Tombamento.TombamentoID,
			ServicoID:       s.Tombamento.ServicoID,
			ServicoLegadoID: s.Tombamento.ServicoLegadoID,
			CreatedAt:       FormatarDataUTC(s.Tombamento.CreatedAt),
		}
	}

	return resp
}
