package validation

import (
	"fmt"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// cursoPublicacao view do nível publicação: campos escalares obrigatórios
// do curso com limites de tamanho. Regras cruzadas (ordenação de datas,
// parceiro condicional, união por modalidade) ficam fora do validator e
// são aplicadas em seguida sobre o supertipo comum.
type cursoPublicacao struct {
	Title          string `validate:"required,min=3,max=255"          campo:"title"`
	Description    string `validate:"required,min=10"                 campo:"description"`
	CategoryID     string `validate:"required"                        campo:"categoryId"`
	OrganizationID string `validate:"required"                        campo:"organizationId"`
	Modalidade     string `validate:"required,oneof=ONLINE PRESENCIAL HIBRIDO" campo:"modalidade"`
	Workload       string `validate:"required,max=50"                 campo:"workload"`
	TargetAudience string `validate:"required"                        campo:"targetAudience"`
}

// ValidarCurso valida o formulário de curso no nível indicado.
// Retorna a lista de erros de campo; vazia = aprovado.
func ValidarCurso(req *dto.CursoFormRequest, nivel Nivel, pol Politica) []ErroCampo {
	if nivel == NivelRascunho {
		return validarCursoRascunho(req, pol)
	}
	return validarCursoPublicacao(req)
}

// ── Nível rascunho ──
//
// Rascunho aceita tudo que tenha passado no bind de tipos; a única regra
// opcional é a ordenação de datas, controlada por política.

func validarCursoRascunho(req *dto.CursoFormRequest, pol Politica) []ErroCampo {
	if !pol.ValidarDatasRascunho {
		return nil
	}
	var erros []ErroCampo
	erros = append(erros, validarOrdenacaoDatasCurso(req)...)
	return erros
}

// ── Nível publicação ──

func validarCursoPublicacao(req *dto.CursoFormRequest) []ErroCampo {
	erros := executarRegrasDeCampo(cursoPublicacao{
		Title:          req.Title,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
		OrganizationID: req.OrganizationID,
		Modalidade:     req.Modalidade,
		Workload:       req.Workload,
		TargetAudience: req.TargetAudience,
	})

	// Janela de inscrições
	if req.EnrollmentStartDate == nil {
		erros = append(erros, erro("enrollmentStartDate", "campo obrigatório"))
	}
	if req.EnrollmentEndDate == nil {
		erros = append(erros, erro("enrollmentEndDate", "campo obrigatório"))
	}

	// Parceiro externo: flag ligada exige nome e URL
	if req.IsExternalPartner {
		if req.ExternalPartnerName == "" {
			erros = append(erros, erro("externalPartnerName", "obrigatório quando há parceiro externo"))
		}
		if req.ExternalPartnerURL == "" {
			erros = append(erros, erro("externalPartnerUrl", "obrigatório quando há parceiro externo"))
		}
	}

	// União discriminada por modalidade: exatamente um dos ramos preenchido
	erros = append(erros, validarRamoModalidade(req)...)

	// Refinamentos de datas aplicados após o estreitamento do ramo
	erros = append(erros, validarOrdenacaoDatasCurso(req)...)

	return erros
}

// validarRamoModalidade garante que a modalidade determina qual coleção é
// populada e que a outra está ausente
func validarRamoModalidade(req *dto.CursoFormRequest) []ErroCampo {
	var erros []ErroCampo

	switch req.Modalidade {
	case model.ModalidadeOnline:
		if len(req.RemoteClass) == 0 {
			erros = append(erros, erro("remoteClass", "curso ONLINE exige ao menos uma turma remota"))
		}
		if len(req.Locations) > 0 {
			erros = append(erros, erro("locations", "curso ONLINE não pode ter locais presenciais"))
		}
		for i, t := range req.RemoteClass {
			erros = append(erros, validarTurmaPublicacao(fmt.Sprintf("remoteClass[%d]", i), &t)...)
		}

	case model.ModalidadePresencial, model.ModalidadeHibrido:
		if len(req.Locations) == 0 {
			erros = append(erros, erro("locations", "curso %s exige ao menos um local", req.Modalidade))
		}
		if len(req.RemoteClass) > 0 {
			erros = append(erros, erro("remoteClass", "curso %s não pode ter turmas remotas", req.Modalidade))
		}
		for i, l := range req.Locations {
			prefixo := fmt.Sprintf("locations[%d]", i)
			if l.Address == "" {
				erros = append(erros, erro(prefixo+".address", "campo obrigatório"))
			}
			if l.Neighborhood == "" {
				erros = append(erros, erro(prefixo+".neighborhood", "campo obrigatório"))
			}
			if len(l.Schedules) == 0 {
				erros = append(erros, erro(prefixo+".schedules", "local exige ao menos uma turma"))
			}
			for j, t := range l.Schedules {
				erros = append(erros, validarTurmaPublicacao(fmt.Sprintf("%s.schedules[%d]", prefixo, j), &t)...)
			}
		}

	default:
		// Modalidade ausente/ inválida já acusada pelas regras de campo;
		// sem discriminante não há ramo a validar
	}

	return erros
}

func validarTurmaPublicacao(prefixo string, t *dto.TurmaForm) []ErroCampo {
	var erros []ErroCampo
	if t.Vacancies <= 0 {
		erros = append(erros, erro(prefixo+".vacancies", "deve ser maior que zero"))
	}
	if t.ClassStartDate == nil {
		erros = append(erros, erro(prefixo+".classStartDate", "campo obrigatório"))
	}
	if t.ClassEndDate == nil {
		erros = append(erros, erro(prefixo+".classEndDate", "campo obrigatório"))
	}
	if t.ClassTime == "" {
		erros = append(erros, erro(prefixo+".classTime", "campo obrigatório"))
	}
	if t.ClassDays == "" {
		erros = append(erros, erro(prefixo+".classDays", "campo obrigatório"))
	}
	return erros
}

// validarOrdenacaoDatasCurso refinamentos de ordenação aplicados aos dois
// ramos da união (supertipo comum: toda turma tem início e fim)
func validarOrdenacaoDatasCurso(req *dto.CursoFormRequest) []ErroCampo {
	var erros []ErroCampo

	if req.EnrollmentStartDate != nil && req.EnrollmentEndDate != nil &&
		req.EnrollmentEndDate.Before(*req.EnrollmentStartDate) {
		erros = append(erros, erro("enrollmentEndDate", "deve ser igual ou posterior à data de início das inscrições"))
	}

	for i, t := range req.RemoteClass {
		if turmaComDatasInvertidas(&t) {
			erros = append(erros, erro(
				fmt.Sprintf("remoteClass[%d].classEndDate", i),
				"deve ser igual ou posterior à data de início das aulas"))
		}
	}
	for i, l := range req.Locations {
		for j, t := range l.Schedules {
			if turmaComDatasInvertidas(&t) {
				erros = append(erros, erro(
					fmt.Sprintf("locations[%d].schedules[%d].classEndDate", i, j),
					"deve ser igual ou posterior à data de início das aulas"))
			}
		}
	}

	return erros
}

func turmaComDatasInvertidas(t *dto.TurmaForm) bool {
	if t.ClassStartDate == nil || t.ClassEndDate == nil {
		return false
	}
	return t.ClassEndDate.Before(*t.ClassStartDate)
}
