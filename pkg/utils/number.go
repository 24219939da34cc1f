package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários para 2 casas
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeROAS calcula receita/gasto, devolvendo 0 quando não houve gasto
func SafeROAS(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(revenue / spend)
}
