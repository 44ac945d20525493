package normalizer

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/pkg/cpf"
)

// NormalizarInscricao converte o pedido de inscrição para o modelo,
// com o CPF sem máscara
func NormalizarInscricao(cursoID string, req *dto.CriarInscricaoRequest) *model.Inscricao {
	return &model.Inscricao{
		CursoID:   cursoID,
		Nome:      req.Nome,
		CPF:       cpf.Normalizar(req.CPF),
		Email:     req.Email,
		Telefone:  req.Telefone,
		Endereco:  req.Endereco,
		Bairro:    req.Bairro,
		Idade:     req.Idade,
		Status:    model.InscricaoStatusPendente,
		Respostas: RespostasParaJSON(req.Respostas),
	}
}

// InscricaoParaResponse monta a resposta de inscrição
func InscricaoParaResponse(i *model.Inscricao) *dto.InscricaoResponse {
	return &dto.InscricaoResponse{
		ID:             i.InscricaoID,
		CursoID:        i.CursoID,
		Nome:           i.Nome,
		CPF:            i.CPF,
		Email:          i.Email,
		Telefone:       i.Telefone,
		Endereco:       i.Endereco,
		Bairro:         i.Bairro,
		Idade:          i.Idade,
		Status:         i.Status,
		URLCertificado: i.URLCertificado,
		Respostas:      RespostasDeJSON(i.Respostas),
		MotivoRejeicao: i.MotivoRejeicao,
		CreatedAt:      FormatarDataUTC(i.CreatedAt),
	}
}

// RespostasParaJSON serializa as respostas de campos personalizados
func RespostasParaJSON(respostas map[string]string) datatypes.JSON {
	if len(respostas) == 0 {
		return nil
	}
	raw, _ := json.Marshal(respostas)
	return raw
}

// RespostasDeJSON desserializa a coluna de respostas
func RespostasDeJSON(raw datatypes.JSON) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var respostas map[string]string
	if err := json.Unmarshal(raw, &respostas); err != nil {
		return nil
	}
	return respostas
}

// CandidaturaParaResponse monta a resposta de candidatura
func CandidaturaParaResponse(c *model.Candidatura) *dto.CandidaturaResponse {
	return &dto.CandidaturaResponse{
		ID:        c.CandidaturaID,
		VagaID:    c.VagaID,
		CPF:       c.CPF,
		Respostas: RespostasDeJSON(c.Respostas),
		CreatedAt: FormatarDataUTC(c.CreatedAt),
	}
}
