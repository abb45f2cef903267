package utils

import (
	"fmt"
	"strings"
)

// CpfValido validates the CPF check digits.
func CpfValido(cpf string) bool {
	limpo := somenteDigitos(cpf)
	if len(limpo) != 11 {
		return false
	}
	if todosDigitosIguais(limpo) {
		return false
	}

	digits := make([]int, 11)
	for i, r := range limpo {
		digits[i] = int(r - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	first := 11 - (sum % 11)
	if first >= 10 {
		first = 0
	}
	if first != digits[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	second := 11 - (sum % 11)
	if second >= 10 {
		second = 0
	}
	return second == digits[10]
}

// FormatCpf renders a bare CPF as 000.000.000-00. Returns "" when the input
// does not have 11 digits.
func FormatCpf(cpf string) string {
	limpo := somenteDigitos(cpf)
	if len(limpo) != 11 {
		return ""
	}
	return fmt.Sprintf("%s.%s.%s-%s", limpo[0:3], limpo[3:6], limpo[6:9], limpo[9:11])
}

// UnformatCpf strips formatting, returning the 11 digits or "".
func UnformatCpf(cpf string) string {
	limpo := somenteDigitos(cpf)
	if len(limpo) != 11 {
		return ""
	}
	return limpo
}

func somenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func todosDigitosIguais(cpf string) bool {
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			return false
		}
	}
	return true
}
