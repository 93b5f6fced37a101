package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"property-plan/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateParameters reports the first violated constraint as ErrInvalidArgument.
func validateParameters(params domain.LoanParameters) error {
	for name, v := range map[string]float64{
		"cost":             params.Cost,
		"downpayment_rate": params.DownpaymentRate,
		"notary_rate":      params.NotaryRate,
		"annual_rate":      params.AnnualRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalidArgument, name, v)
		}
	}

	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	fe := validationErrors[0]
	return fmt.Errorf("%w: %s must satisfy %s=%s, got %v",
		ErrInvalidArgument, fe.Field(), fe.Tag(), fe.Param(), fe.Value())
}

// DerivePlan computes every plan figure from the purchase parameters. The
// monthly payment is computed once and all totals are derived from it.
func DerivePlan(params domain.LoanParameters) (domain.PlanResult, error) {
	if err := validateParameters(params); err != nil {
		return domain.PlanResult{}, err
	}

	notaryFees := params.NotaryRate / 100 * params.Cost
	downpayment := params.DownpaymentRate / 100 * params.Cost

	// saldo del inmueble no cubierto por el enganche, más gastos notariales
	totalBorrowed := (1-params.DownpaymentRate/100)*params.Cost + notaryFees

	monthlyPayment, err := ComputeMonthlyPayment(totalBorrowed, params.AnnualRate, params.TermYears)
	if err != nil {
		return domain.PlanResult{}, err
	}

	months := float64(params.TermYears) * MonthsPerYear
	totalPayment := months*monthlyPayment + downpayment
	totalInterest := totalPayment - params.Cost - notaryFees

	monthlyPrincipal := totalBorrowed / months
	monthlyInterest := monthlyPayment - monthlyPrincipal

	return domain.PlanResult{
		MonthlyPayment:   monthlyPayment,
		MonthlyPrincipal: monthlyPrincipal,
		// the truncated payment can fall short of the straight-line share,
		// which would make both interest figures negative
		MonthlyInterest: math.Max(0, monthlyInterest),
		TotalPayment:    totalPayment,
		Downpayment:     downpayment,
		TotalBorrowed:   totalBorrowed,
		TotalInterest:   math.Max(0, totalInterest),
		NotaryFees:      notaryFees,
	}, nil
}
