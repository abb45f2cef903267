package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCpfValido(t *testing.T) {
	casos := []struct {
		cpf     string
		valido  bool
		detalhe string
	}{
		{"529.982.247-25", true, "CPF formatado válido"},
		{"52998224725", true, "CPF sem formatação válido"},
		{"529.982.247-26", false, "segundo dígito verificador errado"},
		{"529.982.248-25", false, "primeiro dígito verificador errado"},
		{"111.111.111-11", false, "dígitos todos iguais"},
		{"00000000000", false, "zeros"},
		{"123", false, "curto demais"},
		{"", false, "vazio"},
		{"abc.def.ghi-jk", false, "sem dígitos"},
	}

	for _, c := range casos {
		assert.Equal(t, c.valido, CpfValido(c.cpf), c.detalhe)
	}
}

func TestFormatCpf(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCpf("52998224725"))
	assert.Equal(t, "529.982.247-25", FormatCpf("529.982.247-25"))
	assert.Equal(t, "", FormatCpf("123"))
}

func TestUnformatCpf(t *testing.T) {
	assert.Equal(t, "52998224725", UnformatCpf("529.982.247-25"))
	assert.Equal(t, "52998224725", UnformatCpf("52998224725"))
	assert.Equal(t, "", UnformatCpf("529.982"))
}
