package service

import (
	"errors"
	"testing"

	"property-plan/domain"
)

func comparisonInput() domain.TermComparisonInput {
	return domain.TermComparisonInput{
		Cost:            300000,
		DownpaymentRate: 10,
		NotaryRate:      8,
		AnnualRate:      3,
		MinTermYears:    10,
		MaxTermYears:    25,
	}
}

func TestCompareTerms_WithBudget(t *testing.T) {

	input := comparisonInput()
	input.MaxMonthlyPayment = 2000

	result, err := NewTermComparisonService().CompareTerms(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Options) != 16 {
		t.Fatalf("expected 16 options, got %d", len(result.Options))
	}

	// 15 años = 2030/mes, 16 años = 1929/mes
	if result.RecommendedTerm != 16 {
		t.Errorf("expected recommended term 16, got %d", result.RecommendedTerm)
	}

	for _, option := range result.Options {
		if option.WithinBudget != (option.MonthlyPayment <= 2000) {
			t.Errorf("term %d: within budget %v for payment %.0f", option.TermYears, option.WithinBudget, option.MonthlyPayment)
		}
	}

	if result.Options[10].TermYears != 20 || result.Options[10].MonthlyPayment != 1630 {
		t.Errorf("expected 20 years at 1630, got %+v", result.Options[10])
	}
}

func TestCompareTerms_NoBudgetPicksShortestTerm(t *testing.T) {

	result, err := NewTermComparisonService().CompareTerms(comparisonInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RecommendedTerm != 10 {
		t.Errorf("expected recommended term 10, got %d", result.RecommendedTerm)
	}
}

func TestCompareTerms_ZeroRateTiesKeepShortestTerm(t *testing.T) {

	input := comparisonInput()
	input.AnnualRate = 0

	result, err := NewTermComparisonService().CompareTerms(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RecommendedTerm != 10 {
		t.Errorf("expected recommended term 10, got %d", result.RecommendedTerm)
	}
}

func TestCompareTerms_NothingAffordable(t *testing.T) {

	input := comparisonInput()
	input.MaxMonthlyPayment = 100

	result, err := NewTermComparisonService().CompareTerms(input)
	if !errors.Is(err, ErrNoAffordableTerm) {
		t.Fatalf("expected ErrNoAffordableTerm, got %v", err)
	}
	if len(result.Options) != 16 {
		t.Errorf("expected options to be reported, got %d", len(result.Options))
	}
}

func TestCompareTerms_InvalidInput(t *testing.T) {

	cases := []struct {
		name   string
		mutate func(in *domain.TermComparisonInput)
	}{
		{"zero minimum", func(in *domain.TermComparisonInput) { in.MinTermYears = 0 }},
		{"min above max", func(in *domain.TermComparisonInput) { in.MinTermYears = 30 }},
		{"max above limit", func(in *domain.TermComparisonInput) { in.MaxTermYears = 51 }},
		{"range too wide", func(in *domain.TermComparisonInput) { in.MinTermYears = 1; in.MaxTermYears = 50 }},
		{"negative budget", func(in *domain.TermComparisonInput) { in.MaxMonthlyPayment = -1 }},
		{"invalid cost", func(in *domain.TermComparisonInput) { in.Cost = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := comparisonInput()
			c.mutate(&input)

			_, err := NewTermComparisonService().CompareTerms(input)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
