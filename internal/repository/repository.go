package repository

import "gorm.io/gorm"

// Repository ponto de agregação de todos os repositórios
type Repository struct {
	Usuario      UsuarioRepository
	Categoria    CategoriaRepository
	Curso        CursoRepository
	Inscricao    InscricaoRepository
	Vaga         VagaRepository
	Candidatura  CandidaturaRepository
	Oportunidade OportunidadeRepository
	Servico      ServicoRepository
}

// NewRepository cria o agregado de repositórios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Usuario:      NewUsuarioRepo(db),
		Categoria:    NewCategoriaRepo(db),
		Curso:        NewCursoRepo(db),
		Inscricao:    NewInscricaoRepo(db),
		Vaga:         NewVagaRepo(db),
		Candidatura:  NewCandidaturaRepo(db),
		Oportunidade: NewOportunidadeRepo(db),
		Servico:      NewServicoRepo(db),
	}
}
