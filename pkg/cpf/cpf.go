package cpf

import "strings"

// Valido verifica um CPF pelo algoritmo oficial de dígitos verificadores.
// Aceita o número com ou sem máscara (pontos e hífen).
func Valido(valor string) bool {
	digitos := somenteDigitos(valor)
	if len(digitos) != 11 {
		return false
	}

	// Sequências de um único dígito repetido passam no cálculo,
	// mas são inválidas (ex.: 111.111.111-11)
	if strings.Count(digitos, string(digitos[0])) == 11 {
		return false
	}

	if digitoVerificador(digitos, 9) != int(digitos[9]-'0') {
		return false
	}
	return digitoVerificador(digitos, 10) == int(digitos[10]-'0')
}

// Formatar aplica a máscara padrão 000.000.000-00.
// Retorna a entrada inalterada se não houver 11 dígitos.
func Formatar(valor string) string {
	d := somenteDigitos(valor)
	if len(d) != 11 {
		return valor
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// Normalizar remove a máscara, mantendo apenas os dígitos.
func Normalizar(valor string) string {
	return somenteDigitos(valor)
}

// digitoVerificador calcula o dígito verificador sobre os primeiros n dígitos
func digitoVerificador(digitos string, n int) int {
	soma := 0
	for i := 0; i < n; i++ {
		soma += int(digitos[i]-'0') * (n + 1 - i)
	}
	resto := (soma * 10) % 11
	if resto == 10 {
		return 0
	}
	return resto
}

func somenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(11)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
