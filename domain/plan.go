package domain

import "time"

// LoanParameters describes one property purchase financed by a fixed-rate loan.
// Rates are percentages (3 means 3%).
type LoanParameters struct {
	Cost            float64 `json:"cost" validate:"gt=0"`
	DownpaymentRate float64 `json:"downpayment_rate" validate:"gte=0,lte=100"`
	NotaryRate      float64 `json:"notary_rate" validate:"gte=0,lte=100"`
	AnnualRate      float64 `json:"annual_rate" validate:"gte=0"`
	TermYears       int     `json:"term_years" validate:"gt=0"`
}

// PlanResult holds the aggregate figures of a purchase plan.
//
// MonthlyPrincipal is the straight-line average of the borrowed amount over the
// term, not the principal portion of any particular month.
type PlanResult struct {
	MonthlyPayment   float64 `json:"monthly_payment"`
	MonthlyPrincipal float64 `json:"monthly_principal"`
	MonthlyInterest  float64 `json:"monthly_interest"`
	TotalPayment     float64 `json:"total_payment"`
	Downpayment      float64 `json:"downpayment"`
	TotalBorrowed    float64 `json:"total_borrowed"`
	TotalInterest    float64 `json:"total_interest"`
	NotaryFees       float64 `json:"notary_fees"`
}

// PlanRecord is a calculated plan as stored in the history.
type PlanRecord struct {
	ID         string         `json:"id"`
	Parameters LoanParameters `json:"parameters"`
	Result     PlanResult     `json:"result"`
	CreatedAt  time.Time      `json:"created_at"`
}
