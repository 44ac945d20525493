package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/normalizer"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/validation"
)

func setupTestVagaService() (*vagaService, *mockRepos) {
	repo, mocks := novoRepoMock()
	svc := NewVagaService(repo, validation.Politica{}, zap.NewNop()).(*vagaService)
	svc.agora = func() time.Time { return agoraTeste }
	return svc, mocks
}

// formVagaCompleta formulário pronto para publicação, com três etapas
func formVagaCompleta() *dto.VagaFormRequest {
	return &dto.VagaFormRequest{
		Action:              dto.AcaoPublicar,
		Title:               "Auxiliar Administrativo",
		Description:         "Rotinas administrativas em unidade da prefeitura",
		Company:             "Prefeitura do Rio",
		ContractRegime:      "CLT",
		WorkModel:           "PRESENCIAL",
		Neighborhood:        "Centro",
		ApplicationDeadline: ptrTime(agoraTeste.AddDate(0, 1, 0)),
		SelectionSteps: []dto.EtapaForm{
			{Title: "Triagem de currículos", Order: 1},
			{Title: "Entrevista", Order: 2},
			{Title: "Resultado", Order: 3},
		},
	}
}

// ── Salvar ──

func TestSalvarVaga_RascunhoSintetizaPadroes(t *testing.T) {
	svc, _ := setupTestVagaService()

	result, err := svc.Salvar(context.Background(), &dto.VagaFormRequest{Action: dto.AcaoSalvarRascunho}, "admin-1")
	if err != nil {
		t.Fatalf("rascunho vazio deveria ser aceito: %v", err)
	}

	if result.Status != model.VagaStatusRascunho {
		t.Errorf("esperava status draft, obteve %s", result.Status)
	}
	if result.Title != normalizer.RascunhoTituloVaga {
		t.Errorf("título padrão de rascunho ausente, obteve %q", result.Title)
	}
	// Prazo padrão de candidatura: 30 dias a partir de agora
	if result.ApplicationDeadline != "2026-06-09T12:00:00Z" {
		t.Errorf("prazo padrão inesperado: %s", result.ApplicationDeadline)
	}
}

func TestSalvarVaga_PublicacaoCompleta(t *testing.T) {
	svc, _ := setupTestVagaService()

	result, err := svc.Salvar(context.Background(), formVagaCompleta(), "admin-1")
	if err != nil {
		t.Fatalf("publicação completa deveria ser aceita: %v", err)
	}

	if result.Status != model.VagaStatusAberta {
		t.Errorf("esperava status opened, obteve %s", result.Status)
	}
	if len(result.SelectionSteps) != 3 {
		t.Fatalf("esperava 3 etapas, obteve %d", len(result.SelectionSteps))
	}
	if result.SelectionSteps[0].Title != "Triagem de currículos" {
		t.Errorf("etapas fora de ordem: %s", result.SelectionSteps[0].Title)
	}
}

func TestSalvarVaga_PublicacaoPCDSemTipos(t *testing.T) {
	svc, _ := setupTestVagaService()

	form := formVagaCompleta()
	form.IsPCD = true
	form.PCDTypes = nil

	_, err := svc.Salvar(context.Background(), form, "admin-1")

	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperava ErroValidacao, obteve: %v", err)
	}
	achou := false
	for _, campo := range ev.Campos {
		if campo.Campo == "pcdTypes" {
			achou = true
		}
	}
	if !achou {
		t.Errorf("esperava erro no campo pcdTypes, obteve: %v", ev.Campos)
	}
}

func TestSalvarVaga_PublicacaoIncompleta(t *testing.T) {
	svc, mocks := setupTestVagaService()

	_, err := svc.Salvar(context.Background(), &dto.VagaFormRequest{Action: dto.AcaoPublicar}, "admin-1")

	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperava ErroValidacao, obteve: %v", err)
	}
	if len(ev.Campos) == 0 {
		t.Error("a lista de campos inválidos não deveria estar vazia")
	}
	if len(mocks.vaga.vagas) != 0 {
		t.Error("nada deveria ser persistido em publicação inválida")
	}
}

// ── Atualizar ──

func TestAtualizarVaga_NaoRegrideParaRascunho(t *testing.T) {
	svc, _ := setupTestVagaService()

	publicada, err := svc.Salvar(context.Background(), formVagaCompleta(), "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	form := formVagaCompleta()
	form.Action = dto.AcaoSalvarRascunho
	form.Title = "Auxiliar Administrativo II"

	result, err := svc.Atualizar(context.Background(), publicada.ID, form, "admin-1")
	if err != nil {
		t.Fatalf("Atualizar falhou: %v", err)
	}

	if result.Status != model.VagaStatusAberta {
		t.Errorf("vaga publicada não deveria regredir para rascunho, obteve %s", result.Status)
	}
	if result.Title != "Auxiliar Administrativo II" {
		t.Errorf("conteúdo deveria ser atualizado, obteve %q", result.Title)
	}
}

func TestAtualizarVaga_NaoEncontrada(t *testing.T) {
	svc, _ := setupTestVagaService()

	_, err := svc.Atualizar(context.Background(), "inexistente", formVagaCompleta(), "admin-1")
	if !errors.Is(err, ErrVagaNaoEncontrada) {
		t.Errorf("esperava ErrVagaNaoEncontrada, obteve: %v", err)
	}
}

// ── Transições ──

func TestTransicoesVaga(t *testing.T) {
	svc, _ := setupTestVagaService()

	publicada, err := svc.Salvar(context.Background(), formVagaCompleta(), "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	if err := svc.Encerrar(context.Background(), publicada.ID); err != nil {
		t.Fatalf("Encerrar deveria aceitar vaga aberta: %v", err)
	}
	// Encerrar de novo não tem origem válida
	if err := svc.Encerrar(context.Background(), publicada.ID); !errors.Is(err, ErrTransicaoInvalida) {
		t.Errorf("esperava ErrTransicaoInvalida, obteve: %v", err)
	}
	// Cancelamento aceita vaga encerrada
	if err := svc.Cancelar(context.Background(), publicada.ID); err != nil {
		t.Fatalf("Cancelar deveria aceitar vaga encerrada: %v", err)
	}
	if err := svc.Cancelar(context.Background(), publicada.ID); !errors.Is(err, ErrTransicaoInvalida) {
		t.Errorf("cancelar vaga cancelada deveria falhar, obteve: %v", err)
	}
}

func TestExcluirRascunhoVaga(t *testing.T) {
	svc, mocks := setupTestVagaService()

	rascunho, err := svc.Salvar(context.Background(), &dto.VagaFormRequest{Action: dto.AcaoSalvarRascunho}, "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	if err := svc.ExcluirRascunho(context.Background(), rascunho.ID); err != nil {
		t.Fatalf("ExcluirRascunho falhou: %v", err)
	}
	if len(mocks.vaga.vagas) != 0 {
		t.Error("o rascunho deveria ter sido removido")
	}
}

func TestExcluirRascunhoVaga_Publicada(t *testing.T) {
	svc, _ := setupTestVagaService()

	publicada, err := svc.Salvar(context.Background(), formVagaCompleta(), "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	if err := svc.ExcluirRascunho(context.Background(), publicada.ID); !errors.Is(err, ErrApenasRascunhoExcluir) {
		t.Errorf("esperava ErrApenasRascunhoExcluir, obteve: %v", err)
	}
}

// ── Reordenação de etapas ──

func criarVagaComEtapas(t *testing.T, svc *vagaService) (string, []string) {
	t.Helper()
	publicada, err := svc.Salvar(context.Background(), formVagaCompleta(), "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}
	ids := make([]string, 0, len(publicada.SelectionSteps))
	for _, e := range publicada.SelectionSteps {
		ids = append(ids, e.ID)
	}
	return publicada.ID, ids
}

func TestReordenarEtapas_PermutacaoValida(t *testing.T) {
	svc, _ := setupTestVagaService()
	vagaID, ids := criarVagaComEtapas(t, svc)

	// Inverte a ordem das três etapas
	etapas, err := svc.ReordenarEtapas(context.Background(), vagaID, &dto.ReordenarEtapasRequest{
		Ordem: []dto.OrdemEtapa{
			{EtapaID: ids[0], Ordem: 3},
			{EtapaID: ids[1], Ordem: 2},
			{EtapaID: ids[2], Ordem: 1},
		},
	})
	if err != nil {
		t.Fatalf("ReordenarEtapas falhou: %v", err)
	}

	if len(etapas) != 3 {
		t.Fatalf("esperava 3 etapas, obteve %d", len(etapas))
	}
	if etapas[0].Title != "Resultado" || etapas[2].Title != "Triagem de currículos" {
		t.Errorf("etapas não refletem a nova ordem: %v", etapas)
	}
	for i, e := range etapas {
		if e.Order != i+1 {
			t.Errorf("posição %d deveria ter Order=%d, obteve %d", i, i+1, e.Order)
		}
	}
}

func TestReordenarEtapas_PermutacoesInvalidas(t *testing.T) {
	svc, _ := setupTestVagaService()
	vagaID, ids := criarVagaComEtapas(t, svc)

	casos := []struct {
		nome  string
		ordem []dto.OrdemEtapa
	}{
		{"cardinalidade menor", []dto.OrdemEtapa{
			{EtapaID: ids[0], Ordem: 1},
		}},
		{"etapa desconhecida", []dto.OrdemEtapa{
			{EtapaID: ids[0], Ordem: 1},
			{EtapaID: ids[1], Ordem: 2},
			{EtapaID: "etapa-estranha", Ordem: 3},
		}},
		{"etapa repetida", []dto.OrdemEtapa{
			{EtapaID: ids[0], Ordem: 1},
			{EtapaID: ids[0], Ordem: 2},
			{EtapaID: ids[2], Ordem: 3},
		}},
		{"posição repetida", []dto.OrdemEtapa{
			{EtapaID: ids[0], Ordem: 1},
			{EtapaID: ids[1], Ordem: 1},
			{EtapaID: ids[2], Ordem: 3},
		}},
		{"posição fora da faixa", []dto.OrdemEtapa{
			{EtapaID: ids[0], Ordem: 1},
			{EtapaID: ids[1], Ordem: 2},
			{EtapaID: ids[2], Ordem: 4},
		}},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			_, err := svc.ReordenarEtapas(context.Background(), vagaID, &dto.ReordenarEtapasRequest{Ordem: caso.ordem})
			if !errors.Is(err, ErrOrdemInvalida) {
				t.Errorf("esperava ErrOrdemInvalida, obteve: %v", err)
			}
		})
	}
}

func TestReordenarEtapas_VagaSemEtapas(t *testing.T) {
	svc, _ := setupTestVagaService()

	rascunho, err := svc.Salvar(context.Background(), &dto.VagaFormRequest{Action: dto.AcaoSalvarRascunho}, "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	_, err = svc.ReordenarEtapas(context.Background(), rascunho.ID, &dto.ReordenarEtapasRequest{
		Ordem: []dto.OrdemEtapa{{EtapaID: "etapa-1", Ordem: 1}},
	})
	if !errors.Is(err, ErrVagaNaoEncontrada) {
		t.Errorf("esperava ErrVagaNaoEncontrada, obteve: %v", err)
	}
}

// ── Listagem ──

func TestListVagas_FiltroStatus(t *testing.T) {
	svc, _ := setupTestVagaService()

	if _, err := svc.Salvar(context.Background(), formVagaCompleta(), "admin-1"); err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}
	if _, err := svc.Salvar(context.Background(), &dto.VagaFormRequest{Action: dto.AcaoSalvarRascunho}, "admin-1"); err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	list, total, err := svc.List(context.Background(), &dto.VagaListRequest{Status: model.VagaStatusAberta})
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("esperava 1 vaga aberta, obteve total=%d len=%d", total, len(list))
	}
	if list[0].Status != model.VagaStatusAberta {
		t.Errorf("filtro de status não respeitado: %s", list[0].Status)
	}
}
