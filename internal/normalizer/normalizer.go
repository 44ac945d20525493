// Package normalizer converte a forma do frontend (camelCase, datas
// tipadas, listas planas) para a forma de backend (snake_case, datas
// ISO-8601 UTC, envelope remote_class / locais aninhados) e de volta
// para as respostas da API.
//
// Todas as funções são puras no sentido de nunca mutarem a entrada:
// sempre devolvem um grafo de objetos novo.
package normalizer

import (
	"time"
)

// Valores sintetizados em rascunhos: a linha de rascunho no banco sempre
// tem valores bem formados, mesmo quando o usuário não preencheu nada.
// Datas explícitas do usuário (ainda que inválidas) nunca são sobrescritas.
const (
	RascunhoTituloCurso        = "Rascunho de curso. Edite antes de publicar!"
	RascunhoTituloVaga         = "Rascunho de vaga. Edite antes de publicar!"
	RascunhoTituloOportunidade = "Rascunho de oportunidade. Edite antes de publicar!"
	RascunhoDescricao          = "Rascunho criado automaticamente. Edite antes de publicar."
	RascunhoADefinir           = "A definir"

	// Janela padrão de inscrições sintetizada em rascunhos
	RascunhoJanelaDias = 30
)

// FormatarDataUTC formatador compartilhado: ISO-8601 em UTC
func FormatarDataUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatarDataUTCPtr versão para datas opcionais; ausente vira string vazia
func FormatarDataUTCPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatarDataUTC(*t)
}

// valorOuPadrao devolve o valor informado ou o padrão de rascunho
func valorOuPadrao(valor, padrao string) string {
	if valor == "" {
		return padrao
	}
	return valor
}

// dataOuPadrao mantém a data explícita do usuário; sintetiza apenas ausência
func dataOuPadrao(d *time.Time, padrao time.Time) time.Time {
	if d != nil {
		return *d
	}
	return padrao
}
