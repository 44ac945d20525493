package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/model"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/normalizer"
	"github.com/prefeitura-rio/portal-interno-sub000/internal/repository"
)

// ExportService exportação de inscrições (CSV e planilha)
type ExportService interface {
	ExportarInscricoesCSV(ctx context.Context, cursoID string) (*Exportacao, error)
	ExportarInscricoesXLSX(ctx context.Context, cursoID string) (*Exportacao, error)
}

// Exportacao arquivo gerado pronto para download
type Exportacao struct {
	NomeArquivo string
	ContentType string
	Conteudo    []byte
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService cria o serviço de exportação
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// Cabeçalho fixo; as colunas de campos personalizados vêm em seguida
var colunasFixas = []string{
	"Nome", "CPF", "E-mail", "Telefone", "Endereço", "Bairro",
	"Idade", "Status", "Data de inscrição",
}

// ExportarInscricoesCSV exporta todas as inscrições do curso, sem paginação
// nem filtros. As colunas de campos personalizados são a união das definições
// do curso com as chaves presentes nas respostas.
func (s *exportService) ExportarInscricoesCSV(ctx context.Context, cursoID string) (*Exportacao, error) {
	curso, inscricoes, err := s.carregar(ctx, cursoID)
	if err != nil {
		return nil, err
	}

	extras := colunasExtras(curso, inscricoes)

	var b strings.Builder
	escreverLinha(&b, append(append([]string{}, colunasFixas...), extras...))
	for i := range inscricoes {
		escreverLinha(&b, linhaInscricao(&inscricoes[i], extras))
	}

	s.logger.Info("inscrições exportadas",
		zap.String("curso_id", cursoID),
		zap.Int("linhas", len(inscricoes)),
		zap.String("formato", "csv"))

	return &Exportacao{
		NomeArquivo: nomeArquivo(curso) + ".csv",
		ContentType: "text/csv; charset=utf-8",
		Conteudo:    []byte(b.String()),
	}, nil
}

// ExportarInscricoesXLSX mesma tabela do CSV em planilha Excel
func (s *exportService) ExportarInscricoesXLSX(ctx context.Context, cursoID string) (*Exportacao, error) {
	curso, inscricoes, err := s.carregar(ctx, cursoID)
	if err != nil {
		return nil, err
	}

	extras := colunasExtras(curso, inscricoes)
	cabecalho := append(append([]string{}, colunasFixas...), extras...)

	f := excelize.NewFile()
	defer f.Close()
	const aba = "Inscrições"
	indice, err := f.NewSheet(aba)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(indice)
	f.DeleteSheet("Sheet1")

	for col, titulo := range cabecalho {
		celula, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(aba, celula, titulo); err != nil {
			return nil, err
		}
	}
	for linha := range inscricoes {
		valores := linhaInscricao(&inscricoes[linha], extras)
		for col, valor := range valores {
			celula, _ := excelize.CoordinatesToCellName(col+1, linha+2)
			if err := f.SetCellValue(aba, celula, valor); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	s.logger.Info("inscrições exportadas",
		zap.String("curso_id", cursoID),
		zap.Int("linhas", len(inscricoes)),
		zap.String("formato", "xlsx"))

	return &Exportacao{
		NomeArquivo: nomeArquivo(curso) + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Conteudo:    buf.Bytes(),
	}, nil
}

func (s *exportService) carregar(ctx context.Context, cursoID string) (*model.Curso, []model.Inscricao, error) {
	curso, err := s.repo.Curso.GetByID(ctx, cursoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCursoNaoEncontrado
		}
		return nil, nil, err
	}
	inscricoes, err := s.repo.Inscricao.ListByCurso(ctx, cursoID)
	if err != nil {
		return nil, nil, err
	}
	return curso, inscricoes, nil
}

// colunasExtras títulos dos campos personalizados na ordem de definição do
// curso, seguidos das chaves de resposta que não constam na definição
// (inscrições anteriores a uma edição do formulário), em ordem
// alfabética para exportações determinísticas
func colunasExtras(curso *model.Curso, inscricoes []model.Inscricao) []string {
	var colunas []string
	vistas := make(map[string]bool)

	for _, campo := range normalizer.CamposDeJSON(curso.CamposPersonalizados) {
		if campo.Title != "" && !vistas[campo.Title] {
			colunas = append(colunas, campo.Title)
			vistas[campo.Title] = true
		}
	}

	var orfas []string
	for i := range inscricoes {
		for chave := range normalizer.RespostasDeJSON(inscricoes[i].Respostas) {
			if !vistas[chave] {
				orfas = append(orfas, chave)
				vistas[chave] = true
			}
		}
	}
	sort.Strings(orfas)
	return append(colunas, orfas...)
}

func linhaInscricao(i *model.Inscricao, extras []string) []string {
	idade := ""
	if i.Idade != nil {
		idade = fmt.Sprintf("%d", *i.Idade)
	}
	valores := []string{
		i.Nome, i.CPF, i.Email, i.Telefone, i.Endereco, i.Bairro,
		idade, i.Status, normalizer.FormatarDataUTC(i.CreatedAt),
	}
	respostas := normalizer.RespostasDeJSON(i.Respostas)
	for _, coluna := range extras {
		valores = append(valores, respostas[coluna])
	}
	return valores
}

// escreverLinha monta a linha CSV com todos os valores entre aspas
// (aspas internas duplicadas)
func escreverLinha(b *strings.Builder, valores []string) {
	for i, v := range valores {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}

// nomeArquivo deriva o nome do arquivo do título do curso; se a sanitização
// não deixar nada utilizável, usa o id
func nomeArquivo(curso *model.Curso) string {
	var b strings.Builder
	for _, r := range curso.Titulo {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	nome := strings.Trim(b.String(), "_")
	if nome == "" {
		return curso.CursoID
	}
	return nome
}
