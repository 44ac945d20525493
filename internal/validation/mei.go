package validation

import "github.com/prefeitura-rio/portal-interno-sub000/internal/dto"

// meiPublicacao view do nível publicação da oportunidade MEI
type meiPublicacao struct {
	Title        string `validate:"required,min=3,max=255" campo:"title"`
	Description  string `validate:"required,min=10"        campo:"description"`
	Address      string `validate:"required,max=255"       campo:"address"`
	Neighborhood string `validate:"required,max=100"       campo:"neighborhood"`
	PaymentTerms string `validate:"required"               campo:"paymentTerms"`
}

// ValidarMEI valida o formulário de oportunidade MEI no nível indicado
func ValidarMEI(req *dto.MEIFormRequest, nivel Nivel) []ErroCampo {
	if nivel == NivelRascunho {
		return nil
	}

	erros := executarRegrasDeCampo(meiPublicacao{
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		Neighborhood: req.Neighborhood,
		PaymentTerms: req.PaymentTerms,
	})

	if len(req.CNAESubclasses) == 0 {
		erros = append(erros, erro("cnaeSubclasses", "informe ao menos uma subclasse CNAE"))
	}

	if req.ExpirationDate == nil {
		erros = append(erros, erro("expirationDate", "campo obrigatório"))
	}
	if req.ExecutionDeadline == nil {
		erros = append(erros, erro("executionDeadline", "campo obrigatório"))
	}
	if req.ExpirationDate != nil && req.ExecutionDeadline != nil &&
		req.ExecutionDeadline.Before(*req.ExpirationDate) {
		erros = append(erros, erro("executionDeadline", "deve ser igual ou posterior à expiração da oportunidade"))
	}

	return erros
}
