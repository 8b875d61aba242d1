package service

import "math"

// roundTo2Decimals rounds to the cent, half away from zero.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundTo1Decimal rounds percentages to one decimal place.
func roundTo1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// roundToWhole rounds to the nearest whole currency unit.
func roundToWhole(value float64) float64 {
	return math.Round(value)
}
