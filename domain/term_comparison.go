package domain

type TermComparisonInput struct {
	Cost              float64 `json:"cost"`
	DownpaymentRate   float64 `json:"downpayment_rate"`
	NotaryRate        float64 `json:"notary_rate"`
	AnnualRate        float64 `json:"annual_rate"`
	MinTermYears      int     `json:"min_term_years"`
	MaxTermYears      int     `json:"max_term_years"`
	MaxMonthlyPayment float64 `json:"max_monthly_payment"` // 0 = sin límite
}

type TermOption struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
	WithinBudget   bool    `json:"within_budget"`
}

type TermComparisonResult struct {
	RecommendedTerm int          `json:"recommended_term"`
	Options         []TermOption `json:"options"`
}
