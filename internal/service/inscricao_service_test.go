package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
)

// CPF com dígitos verificadores válidos, usado em todos os cenários
const cpfValido = "529.982.247-25"

func setupTestInscricaoService() (*inscricaoService, *mockRepos) {
	repo, mocks := novoRepoMock()
	svc := NewInscricaoService(repo, zap.NewNop()).(*inscricaoService)
	svc.agora = func() time.Time { return agoraTeste }
	return svc, mocks
}

// criarCursoAberto semeia um curso com inscrições abertas
func criarCursoAberto(mocks *mockRepos) *model.Curso {
	curso := &model.Curso{
		Titulo:               "Informática Básica",
		Modalidade:           model.ModalidadeOnline,
		Status:               model.CursoStatusAberto,
		DataInicioInscricoes: agoraTeste.AddDate(0, 0, -5),
		DataFimInscricoes:    agoraTeste.AddDate(0, 0, 10),
	}
	_ = mocks.curso.Create(context.Background(), curso)
	return curso
}

// ── Criar ──

func TestCriarInscricao_Sucesso(t *testing.T) {
	svc, mocks := setupTestInscricaoService()
	curso := criarCursoAberto(mocks)

	result, err := svc.Criar(context.Background(), curso.CursoID, &dto.CriarInscricaoRequest{
		Nome: "Maria da Silva",
		CPF:  cpfValido,
	})
	if err != nil {
		t.Fatalf("Criar deveria aceitar: %v", err)
	}

	if result.Status != model.InscricaoStatusPendente {
		t.Errorf("inscrição nova deveria nascer pendente, obteve %s", result.Status)
	}
	if result.CPF != "52998224725" {
		t.Errorf("CPF deveria ser persistido sem máscara, obteve %q", result.CPF)
	}
}

func TestCriarInscricao_CPFInvalido(t *testing.T) {
	svc, mocks := setupTestInscricaoService()
	curso := criarCursoAberto(mocks)

	_, err := svc.Criar(context.Background(), curso.CursoID, &dto.CriarInscricaoRequest{
		Nome: "Maria da Silva",
		CPF:  "111.111.111-11",
	})
	if !errors.Is(err, ErrCPFInvalido) {
		t.Errorf("esperava ErrCPFInvalido, obteve: %v", err)
	}
	if len(mocks.inscricao.inscricoes) != 0 {
		t.Error("nada deveria ser persistido com CPF inválido")
	}
}

func TestCriarInscricao_Duplicada(t *testing.T) {
	svc, mocks := setupTestInscricaoService()
	curso := criarCursoAberto(mocks)

	req := &dto.CriarInscricaoRequest{Nome: "Maria da Silva", CPF: cpfValido}
	if _, err := svc.Criar(context.Background(), curso.CursoID, req); err != nil {
		t.Fatalf("primeira inscrição deveria aceitar: %v", err)
	}

	// Mesmo CPF com máscara diferente continua sendo a mesma pessoa
	_, err := svc.Criar(context.Background(), curso.CursoID, &dto.CriarInscricaoRequest{
		Nome: "Maria da Silva",
		CPF:  "52998224725",
	})
	if !errors.Is(err, ErrInscricaoDuplicada) {
		t.Errorf("esperava ErrInscricaoDuplicada, obteve: %v", err)
	}
}

func TestCriarInscricao_CursoEncerradoPorData(t *testing.T) {
	svc, mocks := setupTestInscricaoService()

	curso := &model.Curso{
		Titulo:               "Curso antigo",
		Status:               model.CursoStatusAberto,
		DataInicioInscricoes: agoraTeste.AddDate(0, -2, 0),
		DataFimInscricoes:    agoraTeste.AddDate(0, 0, -1), // janela já fechou
	}
	_ = mocks.curso.Create(context.Background(), curso)

	_, err := svc.Criar(context.Background(), curso.CursoID, &dto.CriarInscricaoRequest{
		Nome: "Maria da Silva",
		CPF:  cpfValido,
	})
	if !errors.Is(err, ErrInscricoesEncerradas) {
		t.Errorf("esperava ErrInscricoesEncerradas, obteve: %v", err)
	}
}

func TestCriarInscricao_CursoRascunho(t *testing.T) {
	svc, mocks := setupTestInscricaoService()

	curso := &model.Curso{
		Titulo:            "Rascunho",
		Status:            model.CursoStatusRascunho,
		DataFimInscricoes: agoraTeste.AddDate(0, 1, 0),
	}
	_ = mocks.curso.Create(context.Background(), curso)

	_, err := svc.Criar(context.Background(), curso.CursoID, &dto.CriarInscricaoRequest{
		Nome: "Maria da Silva",
		CPF:  cpfValido,
	})
	if !errors.Is(err, ErrInscricoesEncerradas) {
		t.Errorf("curso não aberto deveria recusar inscrições, obteve: %v", err)
	}
}

func TestCriarInscricao_CursoNaoEncontrado(t *testing.T) {
	svc, _ := setupTestInscricaoService()

	_, err := svc.Criar(context.Background(), "inexistente", &dto.CriarInscricaoRequest{
		Nome: "Maria da Silva",
		CPF:  cpfValido,
	})
	if !errors.Is(err, ErrCursoNaoEncontrado) {
		t.Errorf("esperava ErrCursoNaoEncontrado, obteve: %v", err)
	}
}

// ── Atualização em lote ──

func TestAtualizarStatusLote_IgnoraJaNoAlvo(t *testing.T) {
	svc, mocks := setupTestInscricaoService()
	curso := criarCursoAberto(mocks)

	seed := func(status string) string {
		i := &model.Inscricao{CursoID: curso.CursoID, Nome: "Pessoa", CPF: "52998224725", Status: status}
		_ = mocks.inscricao.Create(context.Background(), i)
		return i.InscricaoID
	}
	a := seed(model.InscricaoStatusPendente)
	b := seed(model.InscricaoStatusPendente)
	c := seed(model.InscricaoStatusAprovada) // já está no alvo

	result, err := svc.AtualizarStatusLote(context.Background(), &dto.AtualizarStatusLoteRequest{
		IDs:    []string{a, b, c},
		Status: model.InscricaoStatusAprovada,
	})
	if err != nil {
		t.Fatalf("AtualizarStatusLote falhou: %v", err)
	}

	if result.Atualizadas != 2 {
		t.Errorf("esperava Atualizadas=2, obteve %d", result.Atualizadas)
	}
	if result.Ignoradas != 1 {
		t.Errorf("esperava Ignoradas=1, obteve %d", result.Ignoradas)
	}
	if mocks.inscricao.inscricoes[a].Status != model.InscricaoStatusAprovada {
		t.Error("a primeira inscrição deveria ter sido aprovada")
	}
}

func TestAtualizarStatusLote_RejeicaoGravaMotivo(t *testing.T) {
	svc, mocks := setupTestInscricaoService()
	curso := criarCursoAberto(mocks)

	i := &model.Inscricao{CursoID: curso.CursoID, Nome: "Pessoa", CPF: "52998224725", Status: model.InscricaoStatusPendente}
	_ = mocks.inscricao.Create(context.Background(), i)

	_, err := svc.AtualizarStatusLote(context.Background(), &dto.AtualizarStatusLoteRequest{
		IDs:            []string{i.InscricaoID},
		Status:         model.InscricaoStatusRejeitada,
		MotivoRejeicao: "Fora do público-alvo",
	})
	if err != nil {
		t.Fatalf("AtualizarStatusLote falhou: %v", err)
	}
	if i.MotivoRejeicao != "Fora do público-alvo" {
		t.Errorf("motivo de rejeição deveria ser gravado, obteve %q", i.MotivoRejeicao)
	}
}

// ── Certificado ──

func TestEmitirCertificado_Sucesso(t *testing.T) {
	svc, mocks := setupTestInscricaoService()

	curso := &model.Curso{
		Titulo:            "Curso encerrado",
		Status:            model.CursoStatusEncerrado,
		DataFimInscricoes: agoraTeste.AddDate(0, 0, -10),
	}
	_ = mocks.curso.Create(context.Background(), curso)

	i := &model.Inscricao{CursoID: curso.CursoID, Nome: "Pessoa", CPF: "52998224725", Status: model.InscricaoStatusConcluida}
	_ = mocks.inscricao.Create(context.Background(), i)

	err := svc.EmitirCertificado(context.Background(), i.InscricaoID, &dto.CertificadoRequest{
		URLCertificado: "https://certificados.rio/abc123.pdf",
	})
	if err != nil {
		t.Fatalf("EmitirCertificado deveria aceitar: %v", err)
	}
	if i.URLCertificado != "https://certificados.rio/abc123.pdf" {
		t.Errorf("URL do certificado deveria ser gravada, obteve %q", i.URLCertificado)
	}
}

func TestEmitirCertificado_InscricaoNaoConcluida(t *testing.T) {
	svc, mocks := setupTestInscricaoService()

	curso := &model.Curso{Status: model.CursoStatusEncerrado, DataFimInscricoes: agoraTeste.AddDate(0, 0, -10)}
	_ = mocks.curso.Create(context.Background(), curso)

	i := &model.Inscricao{CursoID: curso.CursoID, Status: model.InscricaoStatusAprovada}
	_ = mocks.inscricao.Create(context.Background(), i)

	err := svc.EmitirCertificado(context.Background(), i.InscricaoID, &dto.CertificadoRequest{
		URLCertificado: "https://certificados.rio/abc123.pdf",
	})
	if !errors.Is(err, ErrCertificadoNaoDisponivel) {
		t.Errorf("esperava ErrCertificadoNaoDisponivel, obteve: %v", err)
	}
}

func TestEmitirCertificado_CursoAindaAberto(t *testing.T) {
	svc, mocks := setupTestInscricaoService()
	curso := criarCursoAberto(mocks) // janela ainda aberta

	i := &model.Inscricao{CursoID: curso.CursoID, Status: model.InscricaoStatusConcluida}
	_ = mocks.inscricao.Create(context.Background(), i)

	err := svc.EmitirCertificado(context.Background(), i.InscricaoID, &dto.CertificadoRequest{
		URLCertificado: "https://certificados.rio/abc123.pdf",
	})
	if !errors.Is(err, ErrCertificadoNaoDisponivel) {
		t.Errorf("curso ainda aberto não libera certificado, obteve: %v", err)
	}
}

// ── Listagem ──

func TestListInscricoes_FiltroStatus(t *testing.T) {
	svc, mocks := setupTestInscricaoService()
	curso := criarCursoAberto(mocks)

	seed := func(nome, status string) {
		_ = mocks.inscricao.Create(context.Background(), &model.Inscricao{
			CursoID: curso.CursoID, Nome: nome, CPF: "52998224725", Status: status,
		})
	}
	seed("Ana", model.InscricaoStatusPendente)
	seed("Bruno", model.InscricaoStatusAprovada)
	seed("Carla", model.InscricaoStatusPendente)

	list, total, err := svc.List(context.Background(), curso.CursoID, &dto.InscricaoListRequest{
		Status: []string{model.InscricaoStatusPendente},
	})
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("esperava 2 pendentes, obteve total=%d len=%d", total, len(list))
	}
}
