package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
	pkgerrors "github.com/prefeitura-rio/portal-interno-sub000/pkg/errors"
)

// ── Mock UsuarioRepository ──

type mockUsuarioRepo struct {
	usuarios map[string]*model.Usuario // chave: usuario_id ou "email:"+email
}

func newMockUsuarioRepo() *mockUsuarioRepo {
	return &mockUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (m *mockUsuarioRepo) Create(_ context.Context, usuario *model.Usuario) error {
	if usuario.UsuarioID == "" {
		usuario.UsuarioID = "usuario-" + usuario.Email
	}
	m.usuarios[usuario.UsuarioID] = usuario
	m.usuarios["email:"+usuario.Email] = usuario
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id string) (*model.Usuario, error) {
	if u, ok := m.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	if u, ok := m.usuarios["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) Update(_ context.Context, usuario *model.Usuario) error {
	m.usuarios[usuario.UsuarioID] = usuario
	m.usuarios["email:"+usuario.Email] = usuario
	return nil
}

// ── Mock CategoriaRepository ──

type mockCategoriaRepo struct {
	categorias map[string]*model.Categoria
	ordem      []string // ordem de criação, para listagens determinísticas

	chamadasListAtivas int
	chamadasList       int
}

func newMockCategoriaRepo() *mockCategoriaRepo {
	return &mockCategoriaRepo{categorias: make(map[string]*model.Categoria)}
}

func (m *mockCategoriaRepo) Create(_ context.Context, categoria *model.Categoria) error {
	if categoria.CategoriaID == "" {
		categoria.CategoriaID = fmt.Sprintf("categoria-%d", len(m.ordem)+1)
	}
	m.categorias[categoria.CategoriaID] = categoria
	m.ordem = append(m.ordem, categoria.CategoriaID)
	return nil
}

func (m *mockCategoriaRepo) GetByID(_ context.Context, id string) (*model.Categoria, error) {
	if c, ok := m.categorias[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoriaRepo) List(_ context.Context, offset, limit int) ([]model.Categoria, int64, error) {
	m.chamadasList++
	var todas []model.Categoria
	for _, id := range m.ordem {
		todas = append(todas, *m.categorias[id])
	}
	total := int64(len(todas))
	return fatiar(todas, offset, limit), total, nil
}

func (m *mockCategoriaRepo) ListAtivas(_ context.Context) ([]model.Categoria, error) {
	m.chamadasListAtivas++
	var ativas []model.Categoria
	for _, id := range m.ordem {
		if m.categorias[id].Ativo {
			ativas = append(ativas, *m.categorias[id])
		}
	}
	return ativas, nil
}

func (m *mockCategoriaRepo) Update(_ context.Context, categoria *model.Categoria) error {
	m.categorias[categoria.CategoriaID] = categoria
	return nil
}

func (m *mockCategoriaRepo) Delete(_ context.Context, id string) error {
	delete(m.categorias, id)
	return nil
}

// ── Mock CursoRepository ──

type mockCursoRepo struct {
	cursos map[string]*model.Curso
	seq    int
}

func newMockCursoRepo() *mockCursoRepo {
	return &mockCursoRepo{cursos: make(map[string]*model.Curso)}
}

func (m *mockCursoRepo) Create(_ context.Context, curso *model.Curso) error {
	m.seq++
	if curso.CursoID == "" {
		curso.CursoID = fmt.Sprintf("curso-%d", m.seq)
	}
	if curso.Version == 0 {
		curso.Version = 1
	}
	m.atribuirIDs(curso)
	m.cursos[curso.CursoID] = curso
	return nil
}

func (m *mockCursoRepo) atribuirIDs(curso *model.Curso) {
	for i := range curso.Turmas {
		if curso.Turmas[i].TurmaID == "" {
			m.seq++
			curso.Turmas[i].TurmaID = fmt.Sprintf("turma-%d", m.seq)
		}
		curso.Turmas[i].CursoID = curso.CursoID
	}
	for i := range curso.Locais {
		if curso.Locais[i].LocalID == "" {
			m.seq++
			curso.Locais[i].LocalID = fmt.Sprintf("local-%d", m.seq)
		}
		curso.Locais[i].CursoID = curso.CursoID
		for j := range curso.Locais[i].Turmas {
			if curso.Locais[i].Turmas[j].TurmaID == "" {
				m.seq++
				curso.Locais[i].Turmas[j].TurmaID = fmt.Sprintf("turma-%d", m.seq)
			}
			curso.Locais[i].Turmas[j].CursoID = curso.CursoID
			curso.Locais[i].Turmas[j].LocalID = &curso.Locais[i].LocalID
		}
	}
}

func (m *mockCursoRepo) GetByID(_ context.Context, id string) (*model.Curso, error) {
	if c, ok := m.cursos[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCursoRepo) List(_ context.Context, filtro repository.CursoFiltro) ([]model.Curso, int64, error) {
	var ids []string
	for id := range m.cursos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []model.Curso
	for _, id := range ids {
		c := m.cursos[id]
		if filtro.Status != "" && c.Status != filtro.Status {
			continue
		}
		if filtro.Busca != "" && !contem(c.Titulo, filtro.Busca) {
			continue
		}
		result = append(result, *c)
	}
	total := int64(len(result))
	return fatiar(result, filtro.Offset, filtro.Limit), total, nil
}

func (m *mockCursoRepo) Update(_ context.Context, curso *model.Curso) error {
	atual, ok := m.cursos[curso.CursoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if atual.Version != curso.Version {
		return pkgerrors.ErrOptimisticLock
	}
	curso.Version = atual.Version + 1
	curso.CreatedAt = atual.CreatedAt
	curso.CreatedBy = atual.CreatedBy
	m.atribuirIDs(curso)
	m.cursos[curso.CursoID] = curso
	return nil
}

func (m *mockCursoRepo) UpdateStatus(_ context.Context, id, status string) error {
	if c, ok := m.cursos[id]; ok {
		c.Status = status
		return nil
	}
	return nil
}

func (m *mockCursoRepo) Delete(_ context.Context, id string) error {
	delete(m.cursos, id)
	return nil
}

// ── Mock InscricaoRepository ──

type mockInscricaoRepo struct {
	inscricoes map[string]*model.Inscricao
	ordem      []string
	cursos     *mockCursoRepo // para anexar o curso no GetByID, como o Preload
	seq        int
}

func newMockInscricaoRepo(cursos *mockCursoRepo) *mockInscricaoRepo {
	return &mockInscricaoRepo{
		inscricoes: make(map[string]*model.Inscricao),
		cursos:     cursos,
	}
}

func (m *mockInscricaoRepo) Create(_ context.Context, inscricao *model.Inscricao) error {
	m.seq++
	if inscricao.InscricaoID == "" {
		inscricao.InscricaoID = fmt.Sprintf("insc-%d", m.seq)
	}
	if inscricao.CreatedAt.IsZero() {
		inscricao.CreatedAt = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	}
	m.inscricoes[inscricao.InscricaoID] = inscricao
	m.ordem = append(m.ordem, inscricao.InscricaoID)
	return nil
}

func (m *mockInscricaoRepo) GetByID(_ context.Context, id string) (*model.Inscricao, error) {
	i, ok := m.inscricoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if c, ok := m.cursos.cursos[i.CursoID]; ok {
		i.Curso = c
	}
	return i, nil
}

func (m *mockInscricaoRepo) List(_ context.Context, filtro repository.InscricaoFiltro) ([]model.Inscricao, int64, error) {
	var result []model.Inscricao
	for _, id := range m.ordem {
		i, ok := m.inscricoes[id]
		if !ok || i.CursoID != filtro.CursoID {
			continue
		}
		if len(filtro.Status) > 0 && !entre(i.Status, filtro.Status) {
			continue
		}
		if filtro.Busca != "" &&
			!contem(i.Nome, filtro.Busca) && !contem(i.CPF, filtro.Busca) && !contem(i.Email, filtro.Busca) {
			continue
		}
		result = append(result, *i)
	}
	total := int64(len(result))
	return fatiar(result, filtro.Offset, filtro.Limit), total, nil
}

func (m *mockInscricaoRepo) ListByCurso(_ context.Context, cursoID string) ([]model.Inscricao, error) {
	var result []model.Inscricao
	for _, id := range m.ordem {
		if i, ok := m.inscricoes[id]; ok && i.CursoID == cursoID {
			result = append(result, *i)
		}
	}
	return result, nil
}

func (m *mockInscricaoRepo) ExistsByCursoAndCPF(_ context.Context, cursoID, cpf string) (bool, error) {
	for _, i := range m.inscricoes {
		if i.CursoID == cursoID && i.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockInscricaoRepo) Update(_ context.Context, inscricao *model.Inscricao) error {
	m.inscricoes[inscricao.InscricaoID] = inscricao
	return nil
}

func (m *mockInscricaoRepo) UpdateStatusLote(_ context.Context, ids []string, status, motivoRejeicao string) (int64, error) {
	var atualizadas int64
	for _, id := range ids {
		i, ok := m.inscricoes[id]
		if !ok || i.Status == status {
			continue
		}
		i.Status = status
		if status == model.InscricaoStatusRejeitada {
			i.MotivoRejeicao = motivoRejeicao
		}
		atualizadas++
	}
	return atualizadas, nil
}

// ── Mock VagaRepository ──

type mockVagaRepo struct {
	vagas map[string]*model.Vaga
	seq   int
}

func newMockVagaRepo() *mockVagaRepo {
	return &mockVagaRepo{vagas: make(map[string]*model.Vaga)}
}

func (m *mockVagaRepo) Create(_ context.Context, vaga *model.Vaga) error {
	m.seq++
	if vaga.VagaID == "" {
		vaga.VagaID = fmt.Sprintf("vaga-%d", m.seq)
	}
	m.atribuirIDsEtapas(vaga)
	m.vagas[vaga.VagaID] = vaga
	return nil
}

func (m *mockVagaRepo) atribuirIDsEtapas(vaga *model.Vaga) {
	for i := range vaga.Etapas {
		if vaga.Etapas[i].EtapaID == "" {
			m.seq++
			vaga.Etapas[i].EtapaID = fmt.Sprintf("etapa-%d", m.seq)
		}
		vaga.Etapas[i].VagaID = vaga.VagaID
	}
}

func (m *mockVagaRepo) GetByID(_ context.Context, id string) (*model.Vaga, error) {
	v, ok := m.vagas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sort.Slice(v.Etapas, func(i, j int) bool { return v.Etapas[i].Ordem < v.Etapas[j].Ordem })
	return v, nil
}

func (m *mockVagaRepo) List(_ context.Context, filtro repository.VagaFiltro) ([]model.Vaga, int64, error) {
	var ids []string
	for id := range m.vagas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []model.Vaga
	for _, id := range ids {
		v := m.vagas[id]
		if filtro.Status != "" && v.Status != filtro.Status {
			continue
		}
		if filtro.Busca != "" && !contem(v.Titulo, filtro.Busca) && !contem(v.Empresa, filtro.Busca) {
			continue
		}
		result = append(result, *v)
	}
	total := int64(len(result))
	return fatiar(result, filtro.Offset, filtro.Limit), total, nil
}

func (m *mockVagaRepo) Update(_ context.Context, vaga *model.Vaga) error {
	atual, ok := m.vagas[vaga.VagaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	vaga.CreatedAt = atual.CreatedAt
	vaga.CreatedBy = atual.CreatedBy
	m.atribuirIDsEtapas(vaga)
	m.vagas[vaga.VagaID] = vaga
	return nil
}

func (m *mockVagaRepo) UpdateStatus(_ context.Context, id, status string) error {
	if v, ok := m.vagas[id]; ok {
		v.Status = status
	}
	return nil
}

func (m *mockVagaRepo) Delete(_ context.Context, id string) error {
	delete(m.vagas, id)
	return nil
}

func (m *mockVagaRepo) ListEtapas(_ context.Context, vagaID string) ([]model.EtapaSelecao, error) {
	v, ok := m.vagas[vagaID]
	if !ok {
		return nil, nil
	}
	etapas := append([]model.EtapaSelecao{}, v.Etapas...)
	sort.Slice(etapas, func(i, j int) bool { return etapas[i].Ordem < etapas[j].Ordem })
	return etapas, nil
}

func (m *mockVagaRepo) ReordenarEtapas(_ context.Context, vagaID string, ordem map[string]int) error {
	v, ok := m.vagas[vagaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for etapaID, posicao := range ordem {
		encontrada := false
		for i := range v.Etapas {
			if v.Etapas[i].EtapaID == etapaID {
				v.Etapas[i].Ordem = posicao
				encontrada = true
				break
			}
		}
		if !encontrada {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

// ── Mock CandidaturaRepository ──

type mockCandidaturaRepo struct {
	candidaturas map[string]*model.Candidatura
	ordem        []string
	seq          int
}

func newMockCandidaturaRepo() *mockCandidaturaRepo {
	return &mockCandidaturaRepo{candidaturas: make(map[string]*model.Candidatura)}
}

func (m *mockCandidaturaRepo) Create(_ context.Context, candidatura *model.Candidatura) error {
	m.seq++
	if candidatura.CandidaturaID == "" {
		candidatura.CandidaturaID = fmt.Sprintf("cand-%d", m.seq)
	}
	m.candidaturas[candidatura.CandidaturaID] = candidatura
	m.ordem = append(m.ordem, candidatura.CandidaturaID)
	return nil
}

func (m *mockCandidaturaRepo) GetByID(_ context.Context, id string) (*model.Candidatura, error) {
	if c, ok := m.candidaturas[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCandidaturaRepo) ListByVaga(_ context.Context, vagaID string, offset, limit int) ([]model.Candidatura, int64, error) {
	var result []model.Candidatura
	for _, id := range m.ordem {
		if c, ok := m.candidaturas[id]; ok && c.VagaID == vagaID {
			result = append(result, *c)
		}
	}
	total := int64(len(result))
	return fatiar(result, offset, limit), total, nil
}

func (m *mockCandidaturaRepo) ExistsByVagaAndCPF(_ context.Context, vagaID, cpf string) (bool, error) {
	for _, c := range m.candidaturas {
		if c.VagaID == vagaID && c.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock OportunidadeRepository ──

type mockOportunidadeRepo struct {
	oportunidades map[string]*model.OportunidadeMEI
	seq           int
}

func newMockOportunidadeRepo() *mockOportunidadeRepo {
	return &mockOportunidadeRepo{oportunidades: make(map[string]*model.OportunidadeMEI)}
}

func (m *mockOportunidadeRepo) Create(_ context.Context, op *model.OportunidadeMEI) error {
	m.seq++
	if op.OportunidadeID == "" {
		op.OportunidadeID = fmt.Sprintf("oportunidade-%d", m.seq)
	}
	m.oportunidades[op.OportunidadeID] = op
	return nil
}

func (m *mockOportunidadeRepo) GetByID(_ context.Context, id string) (*model.OportunidadeMEI, error) {
	if o, ok := m.oportunidades[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOportunidadeRepo) List(_ context.Context, filtro repository.OportunidadeFiltro) ([]model.OportunidadeMEI, int64, error) {
	var ids []string
	for id := range m.oportunidades {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []model.OportunidadeMEI
	for _, id := range ids {
		o := m.oportunidades[id]
		if filtro.Status != "" && o.Status != filtro.Status {
			continue
		}
		if filtro.Busca != "" && !contem(o.Titulo, filtro.Busca) {
			continue
		}
		result = append(result, *o)
	}
	total := int64(len(result))
	return fatiar(result, filtro.Offset, filtro.Limit), total, nil
}

func (m *mockOportunidadeRepo) Update(_ context.Context, op *model.OportunidadeMEI) error {
	m.oportunidades[op.OportunidadeID] = op
	return nil
}

func (m *mockOportunidadeRepo) UpdateStatus(_ context.Context, id, status string) error {
	if o, ok := m.oportunidades[id]; ok {
		o.Status = status
	}
	return nil
}

func (m *mockOportunidadeRepo) Delete(_ context.Context, id string) error {
	delete(m.oportunidades, id)
	return nil
}

// ── Mock ServicoRepository ──

type mockServicoRepo struct {
	servicos    map[string]*model.Servico
	tombamentos map[string]*model.Tombamento // chave: servico_id
	seq         int
}

func newMockServicoRepo() *mockServicoRepo {
	return &mockServicoRepo{
		servicos:    make(map[string]*model.Servico),
		tombamentos: make(map[string]*model.Tombamento),
	}
}

func (m *mockServicoRepo) Create(_ context.Context, servico *model.Servico) error {
	m.seq++
	if servico.ServicoID == "" {
		servico.ServicoID = fmt.Sprintf("servico-%d", m.seq)
	}
	m.servicos[servico.ServicoID] = servico
	return nil
}

func (m *mockServicoRepo) GetByID(_ context.Context, id string) (*model.Servico, error) {
	s, ok := m.servicos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.Tombamento = m.tombamentos[id]
	return s, nil
}

func (m *mockServicoRepo) List(_ context.Context, filtro repository.ServicoFiltro) ([]model.Servico, int64, error) {
	var ids []string
	for id := range m.servicos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []model.Servico
	for _, id := range ids {
		s := m.servicos[id]
		if filtro.Rotulo != "" && s.Rotulo() != filtro.Rotulo {
			continue
		}
		if filtro.Busca != "" && !contem(s.Titulo, filtro.Busca) && !contem(s.OrgaoGestor, filtro.Busca) {
			continue
		}
		result = append(result, *s)
	}
	total := int64(len(result))
	return fatiar(result, filtro.Offset, filtro.Limit), total, nil
}

func (m *mockServicoRepo) Update(_ context.Context, servico *model.Servico) error {
	atual, ok := m.servicos[servico.ServicoID]
	if !ok {
		return nil
	}
	servico.CreatedAt = atual.CreatedAt
	servico.CreatedBy = atual.CreatedBy
	m.servicos[servico.ServicoID] = servico
	return nil
}

func (m *mockServicoRepo) UpdateStatus(_ context.Context, id string, status int, aguardando bool) error {
	if s, ok := m.servicos[id]; ok {
		s.Status = status
		s.AguardandoAprovacao = aguardando
	}
	return nil
}

func (m *mockServicoRepo) Delete(_ context.Context, id string) error {
	delete(m.servicos, id)
	return nil
}

func (m *mockServicoRepo) GetTombamento(_ context.Context, servicoID string) (*model.Tombamento, error) {
	if t, ok := m.tombamentos[servicoID]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServicoRepo) CreateTombamento(_ context.Context, tombamento *model.Tombamento) error {
	m.seq++
	if tombamento.TombamentoID == "" {
		tombamento.TombamentoID = fmt.Sprintf("tombamento-%d", m.seq)
	}
	m.tombamentos[tombamento.ServicoID] = tombamento
	return nil
}

func (m *mockServicoRepo) DeleteTombamento(_ context.Context, servicoID string) (int64, error) {
	if _, ok := m.tombamentos[servicoID]; !ok {
		return 0, nil
	}
	delete(m.tombamentos, servicoID)
	return 1, nil
}

// ── Agregado de mocks ──

type mockRepos struct {
	usuario      *mockUsuarioRepo
	categoria    *mockCategoriaRepo
	curso        *mockCursoRepo
	inscricao    *mockInscricaoRepo
	vaga         *mockVagaRepo
	candidatura  *mockCandidaturaRepo
	oportunidade *mockOportunidadeRepo
	servico      *mockServicoRepo
}

func novoRepoMock() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		usuario:      newMockUsuarioRepo(),
		categoria:    newMockCategoriaRepo(),
		curso:        newMockCursoRepo(),
		vaga:         newMockVagaRepo(),
		candidatura:  newMockCandidaturaRepo(),
		oportunidade: newMockOportunidadeRepo(),
		servico:      newMockServicoRepo(),
	}
	mocks.inscricao = newMockInscricaoRepo(mocks.curso)

	repo := &repository.Repository{
		Usuario:      mocks.usuario,
		Categoria:    mocks.categoria,
		Curso:        mocks.curso,
		Inscricao:    mocks.inscricao,
		Vaga:         mocks.vaga,
		Candidatura:  mocks.candidatura,
		Oportunidade: mocks.oportunidade,
		Servico:      mocks.servico,
	}
	return repo, mocks
}

// ── Auxiliares ──

func contem(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func entre(s string, lista []string) bool {
	for _, item := range lista {
		if s == item {
			return true
		}
	}
	return false
}

func fatiar[T any](itens []T, offset, limit int) []T {
	if offset >= len(itens) {
		return nil
	}
	fim := len(itens)
	if limit > 0 && offset+limit < fim {
		fim = offset + limit
	}
	return itens[offset:fim]
}
