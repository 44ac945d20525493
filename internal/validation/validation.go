package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/prefeitura-rio/portal-interno-sub000/internal/dto"
)

// Nivel nível de validação aplicado ao formulário
type Nivel int

const (
	// NivelRascunho aceita dados parciais; apenas restrições de forma/tipo
	NivelRascunho Nivel = iota
	// NivelPublicacao conjunto completo de regras; obrigatório para publicar
	NivelPublicacao
)

// NivelParaAcao seleciona o nível conforme a ação do formulário
func NivelParaAcao(acao string) Nivel {
	if acao == dto.AcaoPublicar {
		return NivelPublicacao
	}
	return NivelRascunho
}

// Politica ajustes de comportamento da validação
type Politica struct {
	// ValidarDatasRascunho aplica a ordenação de datas também em rascunhos.
	// O portal legado não validava datas de rascunho; o padrão é false.
	ValidarDatasRascunho bool
}

// ErroCampo par (caminho do campo, mensagem) retornado pela validação.
// A validação é tudo-ou-nada por nível: qualquer erro bloqueia a operação.
type ErroCampo struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

func erro(campo, formato string, args ...interface{}) ErroCampo {
	return ErroCampo{Campo: campo, Mensagem: fmt.Sprintf(formato, args...)}
}

// ── Instância do validator para as regras de campo do nível publicação ──

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// O caminho do campo no erro vem da tag `campo` das views de publicação
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("campo")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// executarRegrasDeCampo roda o validator sobre uma view de publicação e
// traduz os erros para pares campo/mensagem em português
func executarRegrasDeCampo(view interface{}) []ErroCampo {
	err := validate.Struct(view)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ErroCampo{{Campo: "", Mensagem: "payload inválido"}}
	}

	erros := make([]ErroCampo, 0, len(verrs))
	for _, fe := range verrs {
		erros = append(erros, ErroCampo{
			Campo:    caminhoDoCampo(fe),
			Mensagem: mensagemParaTag(fe),
		})
	}
	return erros
}

// caminhoDoCampo remove o nome da struct raiz do namespace do erro
func caminhoDoCampo(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func mensagemParaTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("deve ter ao menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "url":
		return "deve ser uma URL válida"
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	default:
		return "valor inválido"
	}
}
