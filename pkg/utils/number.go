package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio retorna numerator/denominator, ou 0 quando o denominador é zero.
// Usado em todos os cálculos cujo denominador pode legitimamente ser zero
// (segmento sem lojas, estoque zerado, custo zerado).
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
