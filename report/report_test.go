package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"property-plan/domain"
)

var referenceResult = domain.PlanResult{
	MonthlyPayment:   1630,
	MonthlyPrincipal: 1225,
	MonthlyInterest:  405,
	TotalPayment:     421200,
	Downpayment:      30000,
	TotalBorrowed:    294000,
	TotalInterest:    97200,
	NotaryFees:       24000,
}

func TestSuggestedSalary(t *testing.T) {
	got := SuggestedSalary(1630)
	if Amount(got) != "83,828" {
		t.Errorf("expected 83,828, got %s (%f)", Amount(got), got)
	}
}

func TestAmount_Truncates(t *testing.T) {
	cases := map[float64]string{
		0:         "0",
		999.99:    "999",
		1225.75:   "1,225",
		294000:    "294,000",
		1234567.8: "1,234,567",
	}
	for v, want := range cases {
		if got := Amount(v); got != want {
			t.Errorf("Amount(%v): expected %s, got %s", v, want, got)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, referenceResult, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Monthly pay = 1,630 €",
		"Monthly borrowed (property + notary) = 1,225 €",
		"Monthly interest = 405 €",
		"Total pay = 421,200 €",
		"Down Payment = 30,000 €",
		"Total borrowed (property + notary) = 294,000 €",
		"Total interest = 97,200 €",
		"Annual salary before tax should be at least 83,828 €",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWrite_Currency(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, referenceResult, Options{Currency: "USD"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Monthly pay = 1,630 USD") {
		t.Errorf("expected USD amounts, got:\n%s", buf.String())
	}
}

func TestWriteTermComparison(t *testing.T) {
	var buf bytes.Buffer
	result := domain.TermComparisonResult{
		RecommendedTerm: 16,
		Options: []domain.TermOption{
			{TermYears: 15, MonthlyPayment: 2030, TotalPayment: 395400, TotalInterest: 71400},
			{TermYears: 16, MonthlyPayment: 1929, TotalPayment: 400368, TotalInterest: 76368, WithinBudget: true},
		},
	}
	if err := WriteTermComparison(&buf, result, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "over") {
		t.Errorf("expected 15 years over budget: %s", lines[1])
	}
	if !strings.Contains(lines[2], "recommended") || !strings.Contains(lines[2], "1,929 €") {
		t.Errorf("expected 16 years recommended: %s", lines[2])
	}
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	records := []domain.PlanRecord{{
		ID:         "b6f1",
		Parameters: domain.LoanParameters{Cost: 300000, AnnualRate: 3.5, TermYears: 20},
		Result:     referenceResult,
		CreatedAt:  time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC),
	}}
	if err := WriteHistory(&buf, records, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"2026-10-17 08:30", "300,000 €", "3.5%", "1,630 €", "b6f1"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
