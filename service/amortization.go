package service

import (
	"fmt"
	"math"
)

// ComputeMonthlyPayment returns the fixed monthly payment that repays principal
// over termYears at the nominal annual rate (in percent), truncated toward zero
// to a whole currency unit.
func ComputeMonthlyPayment(principal, annualRatePercent float64, termYears int) (float64, error) {
	// Validar entrada
	if principal <= 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return 0, fmt.Errorf("%w: principal must be positive, got %v", ErrInvalidArgument, principal)
	}
	if annualRatePercent < 0 || math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) {
		return 0, fmt.Errorf("%w: annual rate must not be negative, got %v", ErrInvalidArgument, annualRatePercent)
	}
	if termYears <= 0 {
		return 0, fmt.Errorf("%w: term must be at least one year, got %d", ErrInvalidArgument, termYears)
	}

	r := annualRatePercent / MonthsPerYear / 100
	n := float64(termYears) * MonthsPerYear
	straightLine := principal / n

	// sin interés: reembolso lineal
	if r == 0 {
		return math.Trunc(straightLine), nil
	}

	// (1+r)^n and (1+r)^n - 1 through log1p/expm1 so rates near zero keep their precision
	exponent := n * math.Log1p(r)
	growth := math.Exp(exponent)
	if math.IsInf(growth, 1) {
		return math.Trunc(principal * r), nil
	}
	denom := math.Expm1(exponent)
	if denom == 0 {
		return math.Trunc(straightLine), nil
	}

	// any positive rate costs at least the straight-line payment
	cuota := math.Max(principal*r*growth/denom, straightLine)
	return math.Trunc(cuota), nil
}
