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
)

func setupTestOportunidadeService() (*oportunidadeService, *mockRepos) {
	repo, mocks := novoRepoMock()
	svc := NewOportunidadeService(repo, zap.NewNop()).(*oportunidadeService)
	svc.agora = func() time.Time { return agoraTeste }
	return svc, mocks
}

// formMEICompleto formulário pronto para publicação
func formMEICompleto() *dto.MEIFormRequest {
	return &dto.MEIFormRequest{
		Action:            dto.AcaoPublicar,
		Title:             "Reforma de quadra poliesportiva",
		Description:       "Contratação de MEI para pintura e pequenos reparos",
		CNAESubclasses:    []string{"4330-4/04"},
		Address:           "Rua do Campo, 100",
		Neighborhood:      "Madureira",
		PaymentTerms:      "Pagamento em até 30 dias após a entrega",
		ExpirationDate:    ptrTime(agoraTeste.AddDate(0, 1, 0)),
		ExecutionDeadline: ptrTime(agoraTeste.AddDate(0, 2, 0)),
	}
}

func TestSalvarOportunidade_RascunhoSintetizaPadroes(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	result, err := svc.Salvar(context.Background(), &dto.MEIFormRequest{Action: dto.AcaoSalvarRascunho}, "admin-1")
	if err != nil {
		t.Fatalf("rascunho vazio deveria ser aceito: %v", err)
	}

	if result.Status != model.VagaStatusRascunho {
		t.Errorf("esperava status draft, obteve %s", result.Status)
	}
	if result.Title != normalizer.RascunhoTituloOportunidade {
		t.Errorf("título padrão de rascunho ausente, obteve %q", result.Title)
	}
	if result.PaymentTerms != normalizer.RascunhoADefinir {
		t.Errorf("condições de pagamento padrão ausentes, obteve %q", result.PaymentTerms)
	}
	// Expiração em 30 dias; prazo de execução em 60
	if result.ExpirationDate != "2026-06-09T12:00:00Z" {
		t.Errorf("expiração padrão inesperada: %s", result.ExpirationDate)
	}
	if result.ExecutionDeadline != "2026-07-09T12:00:00Z" {
		t.Errorf("prazo de execução padrão inesperado: %s", result.ExecutionDeadline)
	}
}

func TestSalvarOportunidade_PublicacaoCompleta(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	result, err := svc.Salvar(context.Background(), formMEICompleto(), "admin-1")
	if err != nil {
		t.Fatalf("publicação completa deveria ser aceita: %v", err)
	}
	if result.Status != model.VagaStatusAberta {
		t.Errorf("esperava status opened, obteve %s", result.Status)
	}
	if len(result.CNAESubclasses) != 1 {
		t.Errorf("subclasses CNAE deveriam ser preservadas: %v", result.CNAESubclasses)
	}
}

func TestSalvarOportunidade_PublicacaoSemCNAE(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	form := formMEICompleto()
	form.CNAESubclasses = nil

	_, err := svc.Salvar(context.Background(), form, "admin-1")

	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("esperava ErroValidacao, obteve: %v", err)
	}
	achou := false
	for _, campo := range ev.Campos {
		if campo.Campo == "cnaeSubclasses" {
			achou = true
		}
	}
	if !achou {
		t.Errorf("esperava erro no campo cnaeSubclasses, obteve: %v", ev.Campos)
	}
}

func TestSalvarOportunidade_PrazoAntesDaExpiracao(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	form := formMEICompleto()
	form.ExpirationDate = ptrTime(agoraTeste.AddDate(0, 2, 0))
	form.ExecutionDeadline = ptrTime(agoraTeste.AddDate(0, 1, 0))

	_, err := svc.Salvar(context.Background(), form, "admin-1")

	var ev *ErroValidacao
	if !errors.As(err, &ev) {
		t.Fatalf("prazo de execução anterior à expiração deveria ser rejeitado, obteve: %v", err)
	}
}

func TestAtualizarOportunidade_NaoRegrideParaRascunho(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	publicada, err := svc.Salvar(context.Background(), formMEICompleto(), "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	form := formMEICompleto()
	form.Action = dto.AcaoSalvarRascunho
	form.Title = "Reforma de quadra poliesportiva (etapa 2)"

	result, err := svc.Atualizar(context.Background(), publicada.ID, form, "admin-1")
	if err != nil {
		t.Fatalf("Atualizar falhou: %v", err)
	}
	if result.Status != model.VagaStatusAberta {
		t.Errorf("oportunidade publicada não deveria regredir para rascunho, obteve %s", result.Status)
	}
}

func TestAtualizarOportunidade_NaoEncontrada(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	_, err := svc.Atualizar(context.Background(), "inexistente", formMEICompleto(), "admin-1")
	if !errors.Is(err, ErrOportunidadeNaoEncontrada) {
		t.Errorf("esperava ErrOportunidadeNaoEncontrada, obteve: %v", err)
	}
}

func TestTransicoesOportunidade(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	publicada, err := svc.Salvar(context.Background(), formMEICompleto(), "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	if err := svc.Encerrar(context.Background(), publicada.ID); err != nil {
		t.Fatalf("Encerrar deveria aceitar oportunidade aberta: %v", err)
	}
	if err := svc.Encerrar(context.Background(), publicada.ID); !errors.Is(err, ErrTransicaoInvalida) {
		t.Errorf("esperava ErrTransicaoInvalida, obteve: %v", err)
	}
	if err := svc.Cancelar(context.Background(), publicada.ID); err != nil {
		t.Fatalf("Cancelar deveria aceitar oportunidade encerrada: %v", err)
	}
}

func TestExcluirRascunhoOportunidade(t *testing.T) {
	svc, mocks := setupTestOportunidadeService()

	rascunho, err := svc.Salvar(context.Background(), &dto.MEIFormRequest{Action: dto.AcaoSalvarRascunho}, "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	if err := svc.ExcluirRascunho(context.Background(), rascunho.ID); err != nil {
		t.Fatalf("ExcluirRascunho falhou: %v", err)
	}
	if len(mocks.oportunidade.oportunidades) != 0 {
		t.Error("o rascunho deveria ter sido removido")
	}

	publicada, err := svc.Salvar(context.Background(), formMEICompleto(), "admin-1")
	if err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}
	if err := svc.ExcluirRascunho(context.Background(), publicada.ID); !errors.Is(err, ErrApenasRascunhoExcluir) {
		t.Errorf("esperava ErrApenasRascunhoExcluir, obteve: %v", err)
	}
}

func TestListOportunidades_Busca(t *testing.T) {
	svc, _ := setupTestOportunidadeService()

	if _, err := svc.Salvar(context.Background(), formMEICompleto(), "admin-1"); err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}
	outro := formMEICompleto()
	outro.Title = "Serviço de jardinagem em praça pública"
	if _, err := svc.Salvar(context.Background(), outro, "admin-1"); err != nil {
		t.Fatalf("Salvar falhou: %v", err)
	}

	list, total, err := svc.List(context.Background(), &dto.MEIListRequest{Busca: "jardinagem"})
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("esperava 1 resultado da busca, obteve total=%d len=%d", total, len(list))
	}
	if list[0].Title != "Serviço de jardinagem em praça pública" {
		t.Errorf("resultado inesperado: %s", list[0].Title)
	}
}
