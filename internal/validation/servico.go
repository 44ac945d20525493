package validation

import "github.com/prefeitura-rio/portal-interno-sub000/internal/dto"

// servicoPublicacao regras exigidas para um serviço ser publicado.
// A edição em si é leniente (estado em_edicao aceita dados parciais);
// o conjunto completo é exigido na transição para publicado.
type servicoPublicacao struct {
	ManagingOrgan    string `validate:"required,max=255" campo:"managingOrgan"`
	Category         string `validate:"required,max=100" campo:"category"`
	Title            string `validate:"required,min=3,max=255" campo:"title"`
	ShortDescription string `validate:"required,max=500" campo:"shortDescription"`
	FullDescription  string `validate:"required,min=10"  campo:"fullDescription"`
}

// ValidarServicoParaPublicacao valida o serviço antes da transição para
// publicado. Gratuito e custo são mutuamente consistentes: serviço não
// gratuito exige custo informado.
func ValidarServicoParaPublicacao(req *dto.ServicoFormRequest) []ErroCampo {
	erros := executarRegrasDeCampo(servicoPublicacao{
		ManagingOrgan:    req.ManagingOrgan,
		Category:         req.Category,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
	})

	if req.IsFree != nil && !*req.IsFree && req.Cost == "" {
		erros = append(erros, erro("cost", "obrigatório quando o serviço não é gratuito"))
	}

	return erros
}
