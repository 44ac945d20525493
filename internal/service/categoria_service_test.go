package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
)

// ── Fake de cache ──

type fakeCache struct {
	dados map[string][]byte
	erro  error // quando setado, todas as operações falham
}

func newFakeCache() *fakeCache {
	return &fakeCache{dados: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	if c.erro != nil {
		return false, c.erro
	}
	raw, ok := c.dados[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if c.erro != nil {
		return c.erro
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.dados[key] = raw
	return nil
}

func (c *fakeCache) DeletePrefix(_ context.Context, prefix string) error {
	if c.erro != nil {
		return c.erro
	}
	for key := range c.dados {
		if strings.HasPrefix(key, prefix) {
			delete(c.dados, key)
		}
	}
	return nil
}

func setupTestCategoriaService(cache Cache) (CategoriaService, *mockRepos) {
	repo, mocks := novoRepoMock()
	return NewCategoriaService(repo, cache, 5*time.Minute, zap.NewNop()), mocks
}

// ── Testes ──

func TestListAtivas_ReadThrough(t *testing.T) {
	cache := newFakeCache()
	svc, mocks := setupTestCategoriaService(cache)
	ctx := context.Background()

	if _, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: "Tecnologia"}, "admin-1"); err != nil {
		t.Fatalf("Criar falhou: %v", err)
	}

	primeira, err := svc.ListAtivas(ctx)
	if err != nil {
		t.Fatalf("ListAtivas falhou: %v", err)
	}
	if len(primeira) != 1 || primeira[0].Nome != "Tecnologia" {
		t.Fatalf("listagem inesperada: %v", primeira)
	}
	if mocks.categoria.chamadasListAtivas != 1 {
		t.Fatalf("esperava 1 ida ao banco, obteve %d", mocks.categoria.chamadasListAtivas)
	}

	// Segunda leitura sai do cache
	segunda, err := svc.ListAtivas(ctx)
	if err != nil {
		t.Fatalf("ListAtivas falhou: %v", err)
	}
	if len(segunda) != 1 {
		t.Fatalf("listagem cacheada inesperada: %v", segunda)
	}
	if mocks.categoria.chamadasListAtivas != 1 {
		t.Errorf("a segunda leitura não deveria ir ao banco, obteve %d chamadas", mocks.categoria.chamadasListAtivas)
	}
}

func TestCriarCategoria_InvalidaCache(t *testing.T) {
	cache := newFakeCache()
	svc, mocks := setupTestCategoriaService(cache)
	ctx := context.Background()

	if _, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: "Tecnologia"}, "admin-1"); err != nil {
		t.Fatalf("Criar falhou: %v", err)
	}
	if _, err := svc.ListAtivas(ctx); err != nil {
		t.Fatalf("ListAtivas falhou: %v", err)
	}

	// Nova categoria invalida; a próxima listagem volta ao banco e enxerga as duas
	if _, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: "Gastronomia"}, "admin-1"); err != nil {
		t.Fatalf("Criar falhou: %v", err)
	}

	list, err := svc.ListAtivas(ctx)
	if err != nil {
		t.Fatalf("ListAtivas falhou: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("esperava 2 categorias após invalidação, obteve %d", len(list))
	}
	if mocks.categoria.chamadasListAtivas != 2 {
		t.Errorf("esperava 2 idas ao banco, obteve %d", mocks.categoria.chamadasListAtivas)
	}
}

func TestListCategorias_PaginadaCacheadaPorPagina(t *testing.T) {
	cache := newFakeCache()
	svc, mocks := setupTestCategoriaService(cache)
	ctx := context.Background()

	for _, nome := range []string{"Tecnologia", "Gastronomia", "Saúde"} {
		if _, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: nome}, "admin-1"); err != nil {
			t.Fatalf("Criar falhou: %v", err)
		}
	}

	pagina1 := &dto.CategoriaListRequest{}
	pagina1.Page = 1
	pagina1.PageSize = 2

	primeira, total, err := svc.List(ctx, pagina1)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if total != 3 || len(primeira) != 2 {
		t.Fatalf("esperava total=3 len=2, obteve total=%d len=%d", total, len(primeira))
	}
	if mocks.categoria.chamadasList != 1 {
		t.Fatalf("esperava 1 ida ao banco, obteve %d", mocks.categoria.chamadasList)
	}

	// Mesma página sai do cache, com o total preservado
	segunda, total, err := svc.List(ctx, pagina1)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if total != 3 || len(segunda) != 2 {
		t.Fatalf("página cacheada inesperada: total=%d len=%d", total, len(segunda))
	}
	if mocks.categoria.chamadasList != 1 {
		t.Errorf("a mesma página não deveria voltar ao banco, obteve %d chamadas", mocks.categoria.chamadasList)
	}

	// Outra página é outra chave
	pagina2 := &dto.CategoriaListRequest{}
	pagina2.Page = 2
	pagina2.PageSize = 2

	resto, _, err := svc.List(ctx, pagina2)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if len(resto) != 1 {
		t.Fatalf("esperava 1 categoria na segunda página, obteve %d", len(resto))
	}
	if mocks.categoria.chamadasList != 2 {
		t.Errorf("página diferente deveria ir ao banco, obteve %d chamadas", mocks.categoria.chamadasList)
	}

	// Mutação invalida todas as páginas
	if _, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: "Esportes"}, "admin-1"); err != nil {
		t.Fatalf("Criar falhou: %v", err)
	}
	_, total, err = svc.List(ctx, pagina1)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if total != 4 {
		t.Errorf("após invalidação a listagem deveria enxergar 4, obteve %d", total)
	}
	if mocks.categoria.chamadasList != 3 {
		t.Errorf("após invalidação a página deveria voltar ao banco, obteve %d chamadas", mocks.categoria.chamadasList)
	}
}

func TestDesativarCategoria(t *testing.T) {
	cache := newFakeCache()
	svc, _ := setupTestCategoriaService(cache)
	ctx := context.Background()

	criada, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: "Tecnologia"}, "admin-1")
	if err != nil {
		t.Fatalf("Criar falhou: %v", err)
	}
	if _, err := svc.ListAtivas(ctx); err != nil {
		t.Fatalf("ListAtivas falhou: %v", err)
	}

	if err := svc.Desativar(ctx, criada.ID); err != nil {
		t.Fatalf("Desativar falhou: %v", err)
	}

	list, err := svc.ListAtivas(ctx)
	if err != nil {
		t.Fatalf("ListAtivas falhou: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("categoria desativada não deveria aparecer, obteve %v", list)
	}
}

func TestDesativarCategoria_NaoEncontrada(t *testing.T) {
	svc, _ := setupTestCategoriaService(nil)

	err := svc.Desativar(context.Background(), "inexistente")
	if !errors.Is(err, ErrCategoriaNaoEncontrada) {
		t.Errorf("esperava ErrCategoriaNaoEncontrada, obteve: %v", err)
	}
}

func TestListAtivas_SemCache(t *testing.T) {
	svc, mocks := setupTestCategoriaService(nil)
	ctx := context.Background()

	if _, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: "Tecnologia"}, "admin-1"); err != nil {
		t.Fatalf("Criar falhou: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.ListAtivas(ctx); err != nil {
			t.Fatalf("ListAtivas falhou: %v", err)
		}
	}
	// Sem cache, toda leitura vai ao banco
	if mocks.categoria.chamadasListAtivas != 2 {
		t.Errorf("esperava 2 idas ao banco, obteve %d", mocks.categoria.chamadasListAtivas)
	}
}

func TestListAtivas_CacheComFalhaDegrada(t *testing.T) {
	cache := newFakeCache()
	cache.erro = errors.New("redis indisponível")
	svc, _ := setupTestCategoriaService(cache)
	ctx := context.Background()

	if _, err := svc.Criar(ctx, &dto.CriarCategoriaRequest{Nome: "Tecnologia"}, "admin-1"); err != nil {
		t.Fatalf("Criar deveria sobreviver a falha de cache: %v", err)
	}

	list, err := svc.ListAtivas(ctx)
	if err != nil {
		t.Fatalf("falha de cache não deveria derrubar a listagem: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("esperava 1 categoria, obteve %d", len(list))
	}
}
