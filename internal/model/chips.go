package model

import "math"

// SatAdd складывает неотрицательные значения с насыщением на math.MaxInt
func SatAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// SatMul перемножает неотрицательные значения с насыщением на math.MaxInt
func SatMul(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
