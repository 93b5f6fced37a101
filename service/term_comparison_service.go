package service

import (
	"fmt"
	"math"

	"property-plan/domain"
)

type TermComparisonService struct{}

func NewTermComparisonService() *TermComparisonService {
	return &TermComparisonService{}
}

// CompareTerms derives one plan per term in the requested range and recommends
// the affordable term with the lowest total interest.
func (s *TermComparisonService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {
	// Validaciones
	if input.MinTermYears < MinTermYears || input.MaxTermYears < MinTermYears {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: terms must be at least %d year", ErrInvalidArgument, MinTermYears)
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: minimum term greater than maximum term", ErrInvalidArgument)
	}
	if input.MaxTermYears > MaxTermYears {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: maximum term exceeds %d years", ErrInvalidArgument, MaxTermYears)
	}
	if input.MaxTermYears-input.MinTermYears > MaxTermRangeYears {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: term range exceeds %d years", ErrInvalidArgument, MaxTermRangeYears)
	}
	if input.MaxMonthlyPayment < 0 || math.IsNaN(input.MaxMonthlyPayment) {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: maximum monthly payment must not be negative", ErrInvalidArgument)
	}

	options := make([]domain.TermOption, 0, input.MaxTermYears-input.MinTermYears+1)
	recommended := -1

	// Calcular escenarios para cada plazo
	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		plan, err := DerivePlan(domain.LoanParameters{
			Cost:            input.Cost,
			DownpaymentRate: input.DownpaymentRate,
			NotaryRate:      input.NotaryRate,
			AnnualRate:      input.AnnualRate,
			TermYears:       term,
		})
		if err != nil {
			// los parámetros de compra son comunes a todos los plazos
			return domain.TermComparisonResult{}, err
		}

		option := domain.TermOption{
			TermYears:      term,
			MonthlyPayment: plan.MonthlyPayment,
			TotalPayment:   plan.TotalPayment,
			TotalInterest:  plan.TotalInterest,
			WithinBudget:   input.MaxMonthlyPayment == 0 || plan.MonthlyPayment <= input.MaxMonthlyPayment,
		}
		options = append(options, option)

		// empate: se conserva el plazo más corto
		if option.WithinBudget && (recommended < 0 || option.TotalInterest < options[recommended].TotalInterest) {
			recommended = len(options) - 1
		}
	}

	if recommended < 0 {
		return domain.TermComparisonResult{Options: options}, ErrNoAffordableTerm
	}

	return domain.TermComparisonResult{
		RecommendedTerm: options[recommended].TermYears,
		Options:         options,
	}, nil
}
