package cnpj

import (
	"fmt"
	"unicode"
)

// Pesos para o cálculo dos dígitos verificadores do CNPJ (módulo 11, Receita Federal).
// O primeiro dígito usa os 12 primeiros algarismos; o segundo usa os 13 primeiros.
var (
	firstDigitWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondDigitWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Validate valida que o CNPJ (com ou sem pontos/barra/hífen) tenha 14 dígitos
// e dígitos verificadores corretos segundo o algoritmo módulo 11.
// taxID pode ser "12.345.678/0001-95" ou "12345678000195".
func Validate(taxID string) error {
	digits := extractDigits(taxID)
	if len(digits) != 14 {
		return fmt.Errorf("cnpj: deve ter 14 dígitos, foram encontrados %d", len(digits))
	}
	if allEqual(digits) {
		// Sequências como 00000000000000 passam no módulo 11 mas não são CNPJs válidos
		return fmt.Errorf("cnpj: sequência de dígitos repetidos não é válida")
	}

	first := checkDigit(digits[:12], firstDigitWeights[:])
	if digits[12] != first {
		return fmt.Errorf("cnpj: primeiro dígito verificador inválido: esperado %c, recebido %c", first, digits[12])
	}
	second := checkDigit(digits[:13], secondDigitWeights[:])
	if digits[13] != second {
		return fmt.Errorf("cnpj: segundo dígito verificador inválido: esperado %c, recebido %c", second, digits[13])
	}
	return nil
}

// checkDigit calcula um dígito verificador módulo 11 sobre base usando weights.
func checkDigit(base []byte, weights []int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

// Digits devolve o CNPJ apenas com algarismos (forma canônica de armazenamento).
func Digits(taxID string) string {
	return string(extractDigits(taxID))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
