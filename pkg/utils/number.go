package utils

import (
	"math"
	"strconv"
	"strings"
)

// LenientFloat converte o valor para float64 não-negativo. Valores que não podem
// ser interpretados como número viram 0, nunca erro: uma célula malformada não
// pode derrubar um upload inteiro.
func LenientFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}

	return f
}

// LenientInt converte o valor para int, com a mesma política do LenientFloat.
func LenientInt(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// RoundPercent calcula num/den*100 arredondado para o inteiro mais próximo.
// Denominador zero retorna 0 (política de exibição, não erro).
func RoundPercent(num, den float64) int {
	if den <= 0 {
		return 0
	}

	return int(math.Round(num / den * 100))
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
