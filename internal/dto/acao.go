package dto

// ── Catálogo de ações confirmáveis ──
//
// Toda ação mutante do portal passa por um modal de confirmação antes da
// chamada de rede. O backend mantém o catálogo (título, descrição, rótulo,
// variante) e exige o cabeçalho X-Confirmar-Acao com o nome da ação nas
// rotas de transição/destruição; a mecânica de confirmação é idêntica para
// todas as variantes.

// Nomes de ação (valores aceitos em X-Confirmar-Acao)
const (
	AcaoCursoCriar             = "curso_criar"
	AcaoCursoSalvarAlteracoes  = "curso_salvar_alteracoes"
	AcaoCursoPublicar          = "curso_publicar"
	AcaoCursoSalvarRascunho    = "curso_salvar_rascunho"
	AcaoCursoCancelar          = "curso_cancelar"
	AcaoCursoEncerrar          = "curso_encerrar"
	AcaoCursoReabrir           = "curso_reabrir"
	AcaoCursoExcluirRascunho   = "curso_excluir_rascunho"
	AcaoVagaCriar              = "vaga_criar"
	AcaoVagaSalvarAlteracoes   = "vaga_salvar_alteracoes"
	AcaoVagaEncerrar           = "vaga_encerrar"
	AcaoVagaCancelar           = "vaga_cancelar"
	AcaoVagaExcluirRascunho    = "vaga_excluir_rascunho"
	AcaoMEICriar               = "mei_criar"
	AcaoMEISalvarAlteracoes    = "mei_salvar_alteracoes"
	AcaoMEIEncerrar            = "mei_encerrar"
	AcaoMEICancelar            = "mei_cancelar"
	AcaoMEIExcluirRascunho     = "mei_excluir_rascunho"
	AcaoServicoEnviarAprovacao = "servico_enviar_aprovacao"
	AcaoServicoDevolverEdicao  = "servico_devolver_edicao"
	AcaoServicoPublicar        = "servico_publicar"
	AcaoServicoDespublicar     = "servico_despublicar"
	AcaoServicoExcluir         = "servico_excluir"
	AcaoTombar                 = "tombar"
	AcaoDestombar              = "destombar"
)

// Variantes visuais do modal
const (
	VarianteAcaoPadrao     = "padrao"
	VarianteAcaoDestrutiva = "destrutiva"
)

// AcaoConfirmacao tupla fixa exibida no modal de confirmação
type AcaoConfirmacao struct {
	Nome            string `json:"nome"`
	Titulo          string `json:"titulo"`
	Descricao       string `json:"descricao"`
	RotuloConfirmar string `json:"rotulo_confirmar"`
	Variante        string `json:"variante"`
}

// CatalogoAcoes catálogo completo servido ao frontend
func CatalogoAcoes() []AcaoConfirmacao {
	return []AcaoConfirmacao{
		{AcaoCursoCriar, "Criar curso", "O curso será criado e publicado para inscrições.", "Criar curso", VarianteAcaoPadrao},
		{AcaoCursoSalvarAlteracoes, "Salvar alterações", "As alterações serão aplicadas ao curso.", "Salvar", VarianteAcaoPadrao},
		{AcaoCursoPublicar, "Publicar curso", "O curso ficará visível e aberto para inscrições.", "Publicar", VarianteAcaoPadrao},
		{AcaoCursoSalvarRascunho, "Salvar rascunho", "O curso será salvo como rascunho, sem publicação.", "Salvar rascunho", VarianteAcaoPadrao},
		{AcaoCursoCancelar, "Cancelar curso", "O curso será cancelado. Esta ação não pode ser desfeita.", "Cancelar curso", VarianteAcaoDestrutiva},
		{AcaoCursoEncerrar, "Encerrar curso", "As inscrições serão encerradas.", "Encerrar", VarianteAcaoPadrao},
		{AcaoCursoReabrir, "Reabrir curso", "As inscrições serão reabertas.", "Reabrir", VarianteAcaoPadrao},
		{AcaoCursoExcluirRascunho, "Excluir rascunho", "O rascunho será excluído definitivamente.", "Excluir", VarianteAcaoDestrutiva},
		{AcaoVagaCriar, "Criar vaga", "A vaga será criada conforme o formulário.", "Criar vaga", VarianteAcaoPadrao},
		{AcaoVagaSalvarAlteracoes, "Salvar alterações", "As alterações serão aplicadas à vaga.", "Salvar", VarianteAcaoPadrao},
		{AcaoVagaEncerrar, "Encerrar vaga", "As candidaturas serão encerradas.", "Encerrar", VarianteAcaoPadrao},
		{AcaoVagaCancelar, "Cancelar vaga", "A vaga será cancelada. Esta ação não pode ser desfeita.", "Cancelar vaga", VarianteAcaoDestrutiva},
		{AcaoVagaExcluirRascunho, "Excluir rascunho", "O rascunho da vaga será excluído definitivamente.", "Excluir", VarianteAcaoDestrutiva},
		{AcaoMEICriar, "Criar oportunidade", "A oportunidade MEI será criada conforme o formulário.", "Criar oportunidade", VarianteAcaoPadrao},
		{AcaoMEISalvarAlteracoes, "Salvar alterações", "As alterações serão aplicadas à oportunidade.", "Salvar", VarianteAcaoPadrao},
		{AcaoMEIEncerrar, "Encerrar oportunidade", "A oportunidade deixará de receber interessados.", "Encerrar", VarianteAcaoPadrao},
		{AcaoMEICancelar, "Cancelar oportunidade", "A oportunidade será cancelada. Esta ação não pode ser desfeita.", "Cancelar oportunidade", VarianteAcaoDestrutiva},
		{AcaoMEIExcluirRascunho, "Excluir rascunho", "O rascunho da oportunidade será excluído definitivamente.", "Excluir", VarianteAcaoDestrutiva},
		{AcaoServicoEnviarAprovacao, "Enviar para aprovação", "O serviço será enviado para análise.", "Enviar", VarianteAcaoPadrao},
		{AcaoServicoDevolverEdicao, "Devolver para edição", "O serviço voltará para a fila de edição.", "Devolver", VarianteAcaoPadrao},
		{AcaoServicoPublicar, "Publicar serviço", "O serviço ficará visível no portal do cidadão.", "Publicar", VarianteAcaoPadrao},
		{AcaoServicoDespublicar, "Despublicar serviço", "O serviço deixará de ser exibido no portal.", "Despublicar", VarianteAcaoPadrao},
		{AcaoServicoExcluir, "Excluir serviço", "O serviço será excluído. Esta ação não pode ser desfeita.", "Excluir", VarianteAcaoDestrutiva},
		{AcaoTombar, "Tombar serviço", "O serviço será vinculado ao registro legado informado.", "Tombar", VarianteAcaoPadrao},
		{AcaoDestombar, "Destombar serviço", "O vínculo com o registro legado será removido.", "Destombar", VarianteAcaoDestrutiva},
	}
}
