package normalizer

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// NormalizarCurso converte o formulário de curso para o modelo persistido.
//
// Garantias:
//   - a entrada nunca é mutada;
//   - o ramo inativo da modalidade é descartado por inteiro (o servidor
//     nunca persiste locais de um curso ONLINE nem turmas remotas de um
//     PRESENCIAL/HIBRIDO);
//   - com a flag de parceiro desligada, os campos de parceiro são gravados
//     vazios mesmo que o formulário carregue estado antigo;
//   - em rascunho, campos obrigatórios ausentes recebem valores padrão.
func NormalizarCurso(req *dto.CursoFormRequest, rascunho bool, agora time.Time) *model.Curso {
	curso := &model.Curso{
		Titulo:               req.Title,
		Descricao:            req.Description,
		Modalidade:           req.Modalidade,
		CargaHoraria:         req.Workload,
		PublicoAlvo:          req.TargetAudience,
		LogoInstitucional:    req.InstitutionalLogo,
		ImagemCapa:           req.CoverImage,
		Visivel:              true,
		Objetivos:            req.Objectives,
		Metodologia:          req.Methodology,
		ConteudoProgramatico: req.ProgramContent,
		Certificacao:         req.Certification,
		Status:               model.CursoStatusAberto,
	}

	if req.IsVisible != nil {
		curso.Visivel = *req.IsVisible
	}
	if req.CategoryID != "" {
		id := req.CategoryID
		curso.CategoriaID = &id
	}
	if req.OrganizationID != "" {
		id := req.OrganizationID
		curso.OrgaoID = &id
	}
	if req.Accessibility != "" {
		a := req.Accessibility
		curso.Acessibilidade = &a
	}

	// Parceiro externo: flag desligada zera os campos, nunca persiste
	// estado antigo do formulário
	curso.ParceiroExterno = req.IsExternalPartner
	if req.IsExternalPartner {
		curso.NomeParceiroExterno = req.ExternalPartnerName
		curso.URLParceiroExterno = req.ExternalPartnerURL
		curso.LogoParceiroExterno = req.ExternalPartnerLogo
		curso.ContatoParceiroExterno = req.ExternalPartnerContact
	}

	curso.DataInicioInscricoes = dataOuPadrao(req.EnrollmentStartDate, agora)
	curso.DataFimInscricoes = dataOuPadrao(req.EnrollmentEndDate, agora.AddDate(0, 0, RascunhoJanelaDias))

	if rascunho {
		curso.Status = model.CursoStatusRascunho
		curso.Titulo = valorOuPadrao(curso.Titulo, RascunhoTituloCurso)
		curso.Descricao = valorOuPadrao(curso.Descricao, RascunhoDescricao)
		curso.CargaHoraria = valorOuPadrao(curso.CargaHoraria, RascunhoADefinir)
		curso.Modalidade = valorOuPadrao(curso.Modalidade, modalidadePadrao(req))
	}

	if len(req.CustomFields) > 0 {
		curso.CamposPersonalizados = camposParaJSON(req.CustomFields)
	}

	// União discriminada: exatamente um ramo sobrevive à normalização
	switch curso.Modalidade {
	case model.ModalidadeOnline:
		for i := range req.RemoteClass {
			curso.Turmas = append(curso.Turmas, normalizarTurma(&req.RemoteClass[i], agora))
		}
	case model.ModalidadePresencial, model.ModalidadeHibrido:
		for i := range req.Locations {
			l := &req.Locations[i]
			local := model.Local{
				Endereco: l.Address,
				Bairro:   l.Neighborhood,
			}
			for j := range l.Schedules {
				local.Turmas = append(local.Turmas, normalizarTurma(&l.Schedules[j], agora))
			}
			curso.Locais = append(curso.Locais, local)
		}
	}

	return curso
}

// modalidadePadrao modalidade de um rascunho que não a informou,
// derivada do ramo preenchido do formulário para que os dados já
// digitados sobrevivam ao salvamento
func modalidadePadrao(req *dto.CursoFormRequest) string {
	if len(req.Locations) > 0 && len(req.RemoteClass) == 0 {
		return model.ModalidadePresencial
	}
	return model.ModalidadeOnline
}

func normalizarTurma(t *dto.TurmaForm, agora time.Time) model.Turma {
	return model.Turma{
		Vagas:           t.Vacancies,
		DataInicioAulas: dataOuPadrao(t.ClassStartDate, agora),
		DataFimAulas:    dataOuPadrao(t.ClassEndDate, agora.AddDate(0, 0, RascunhoJanelaDias)),
		Horario:         t.ClassTime,
		DiasSemana:      t.ClassDays,
	}
}

func camposParaJSON(campos []dto.CampoPersonalizadoForm) datatypes.JSON {
	defs := make([]model.CampoPersonalizado, 0, len(campos))
	for _, c := range campos {
		defs = append(defs, model.CampoPersonalizado{
			ID:          c.ID,
			Titulo:      c.Title,
			Tipo:        c.Type,
			Obrigatorio: c.Required,
			Opcoes:      c.Options,
		})
	}
	raw, _ := json.Marshal(defs)
	return raw
}

// CamposDeJSON desserializa a coluna de campos personalizados
func CamposDeJSON(raw datatypes.JSON) []dto.CampoPersonalizadoForm {
	if len(raw) == 0 {
		return nil
	}
	var defs []model.CampoPersonalizado
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil
	}
	campos := make([]dto.CampoPersonalizadoForm, 0, len(defs))
	for _, d := range defs {
		campos = append(campos, dto.CampoPersonalizadoForm{
			ID:       d.ID,
			Title:    d.Titulo,
			Type:     d.Tipo,
			Required: d.Obrigatorio,
			Options:  d.Opcoes,
		})
	}
	return campos
}

// CursoParaResponse monta a resposta na forma de backend.
// O envelope remote_class só aparece em cursos ONLINE; locations apenas
// em PRESENCIAL/HIBRIDO — nunca ambos.
func CursoParaResponse(c *model.Curso) *dto.CursoResponse {
	resp := &dto.CursoResponse{
		ID:                     c.CursoID,
		Title:                  c.Titulo,
		Description:            c.Descricao,
		Modalidade:             c.Modalidade,
		Workload:               c.CargaHoraria,
		TargetAudience:         c.PublicoAlvo,
		EnrollmentStartDate:    FormatarDataUTC(c.DataInicioInscricoes),
		EnrollmentEndDate:      FormatarDataUTC(c.DataFimInscricoes),
		InstitutionalLogo:      c.LogoInstitucional,
		CoverImage:             c.ImagemCapa,
		IsVisible:              c.Visivel,
		IsExternalPartner:      c.ParceiroExterno,
		ExternalPartnerName:    c.NomeParceiroExterno,
		ExternalPartnerURL:     c.URLParceiroExterno,
		ExternalPartnerLogo:    c.LogoParceiroExterno,
		ExternalPartnerContact: c.ContatoParceiroExterno,
		Objectives:             c.Objetivos,
		Methodology:            c.Metodologia,
		ProgramContent:         c.ConteudoProgramatico,
		Certification:          c.Certificacao,
		CustomFields:           CamposDeJSON(c.CamposPersonalizados),
		Status:                 c.Status,
		CreatedAt:              FormatarDataUTC(c.CreatedAt),
		UpdatedAt:              FormatarDataUTC(c.UpdatedAt),
	}

	if c.CategoriaID != nil {
		resp.CategoryID = *c.CategoriaID
	}
	if c.OrgaoID != nil {
		resp.OrganizationID = *c.OrgaoID
	}
	if c.Acessibilidade != nil {
		resp.Accessibility = *c.Acessibilidade
	}

	switch c.Modalidade {
	case model.ModalidadeOnline:
		env := &dto.RemoteClassEnvelope{Schedules: []dto.TurmaResponse{}}
		for i := range c.Turmas {
			if c.Turmas[i].LocalID == nil {
				env.Schedules = append(env.Schedules, turmaParaResponse(&c.Turmas[i]))
			}
		}
		resp.RemoteClass = env
	case model.ModalidadePresencial, model.ModalidadeHibrido:
		for i := range c.Locais {
			l := &c.Locais[i]
			lr := dto.LocalResponse{
				ID:           l.LocalID,
				Address:      l.Endereco,
				Neighborhood: l.Bairro,
				Schedules:    []dto.TurmaResponse{},
			}
			for j := range l.Turmas {
				lr.Schedules = append(lr.Schedules, turmaParaResponse(&l.Turmas[j]))
			}
			resp.Locations = append(resp.Locations, lr)
		}
	}

	return resp
}

func turmaParaResponse(t *model.Turma) dto.TurmaResponse {
	return dto.TurmaResponse{
		ID:             t.TurmaID,
		Vacancies:      t.Vagas,
		ClassStartDate: FormatarDataUTC(t.DataInicioAulas),
		ClassEndDate:   FormatarDataUTC(t.DataFimAulas),
		ClassTime:      t.Horario,
		ClassDays:      t.DiasSemana,
	}
}
