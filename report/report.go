// Package report formats plan figures as the plain-text summary printed by the CLI.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"property-plan/domain"
)

const DefaultCurrency = "€"

// Salary guidance: yearly payments may take at most 70% of a third of gross salary.
const (
	salaryPaymentMonths = 36
	salaryNetRatio      = 0.7
)

type Options struct {
	Currency string
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}

// SuggestedSalary is the minimal yearly gross salary advised for a monthly payment.
func SuggestedSalary(monthlyPayment float64) float64 {
	return monthlyPayment * salaryPaymentMonths / salaryNetRatio
}

// Amount truncates v to a whole unit and groups thousands: 294000.9 -> "294,000".
func Amount(v float64) string {
	return humanize.Comma(int64(v))
}

// Write prints the RESULTS block for result.
func Write(w io.Writer, result domain.PlanResult, opts Options) error {
	cur := opts.currency()
	var b strings.Builder

	line := func(label string, v float64) {
		fmt.Fprintf(&b, "%s = %s %s\n", label, Amount(v), cur)
	}

	b.WriteString("\nRESULTS\n-------\n")
	line("Monthly pay", result.MonthlyPayment)
	line("Monthly borrowed (property + notary)", result.MonthlyPrincipal)
	line("Monthly interest", result.MonthlyInterest)
	line("Total pay", result.TotalPayment)
	line("Down Payment", result.Downpayment)
	line("Notary fees", result.NotaryFees)
	line("Total borrowed (property + notary)", result.TotalBorrowed)
	line("Total interest", result.TotalInterest)

	fmt.Fprintf(&b, "\nAnnual salary before tax should be at least %s %s\n",
		Amount(SuggestedSalary(result.MonthlyPayment)), cur)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteHistory prints one line per stored plan.
func WriteHistory(w io.Writer, records []domain.PlanRecord, opts Options) error {
	cur := opts.currency()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "DATE\tCOST\tRATE\tYEARS\tMONTHLY\tTOTAL INTEREST\tID")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s %s\t%g%%\t%d\t%s %s\t%s %s\t%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			Amount(rec.Parameters.Cost), cur,
			rec.Parameters.AnnualRate,
			rec.Parameters.TermYears,
			Amount(rec.Result.MonthlyPayment), cur,
			Amount(rec.Result.TotalInterest), cur,
			rec.ID)
	}
	return tw.Flush()
}

// WriteTermComparison prints the compared terms, marking the recommended one.
func WriteTermComparison(w io.Writer, result domain.TermComparisonResult, opts Options) error {
	cur := opts.currency()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "YEARS\tMONTHLY\tTOTAL PAY\tTOTAL INTEREST\tBUDGET\t")
	for _, opt := range result.Options {
		budget := "ok"
		if !opt.WithinBudget {
			budget = "over"
		}
		mark := ""
		if opt.TermYears == result.RecommendedTerm {
			mark = "<- recommended"
		}
		fmt.Fprintf(tw, "%d\t%s %s\t%s %s\t%s %s\t%s\t%s\n",
			opt.TermYears,
			Amount(opt.MonthlyPayment), cur,
			Amount(opt.TotalPayment), cur,
			Amount(opt.TotalInterest), cur,
			budget, mark)
	}
	return tw.Flush()
}
