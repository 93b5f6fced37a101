package service

const (
	MonthsPerYear = 12

	MinTermYears = 1
	MaxTermYears = 50 // 600 meses

	// Límites de términos para comparación
	MaxTermRangeYears = 40 // máximo rango de plazos a evaluar
)
