package chart

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"property-plan/domain"
)

var referenceBreakdown = BreakdownFromResult(domain.PlanResult{
	MonthlyPayment:   1630,
	MonthlyPrincipal: 1225,
	MonthlyInterest:  405,
	TotalPayment:     421200,
	Downpayment:      30000,
	TotalBorrowed:    294000,
	TotalInterest:    97200,
})

func TestBreakdownFromResult(t *testing.T) {
	if referenceBreakdown.MonthlyPrincipal != 1225 || referenceBreakdown.TotalInterest != 97200 {
		t.Errorf("unexpected breakdown %+v", referenceBreakdown)
	}
}

func TestRender_SideBySide(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, referenceBreakdown, Options{Dark: true, Width: 300, Height: 200}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 600 || b.Dy() != 200 {
		t.Errorf("expected 600x200, got %dx%d", b.Dx(), b.Dy())
	}

	// dark theme: corners are background
	r, g, bl, _ := img.At(2, b.Dy()-2).RGBA()
	if r != 0 || g != 0 || bl != 0 {
		t.Errorf("expected black background, got %v", img.At(2, b.Dy()-2))
	}
}

func TestRender_ZeroInterestDropsSlice(t *testing.T) {
	data := referenceBreakdown
	data.MonthlyInterest = 0
	data.TotalInterest = 0

	var buf bytes.Buffer
	if err := Render(&buf, data, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Breakdown{}, Options{})
	if !errors.Is(err, ErrEmptyChart) {
		t.Errorf("expected ErrEmptyChart, got %v", err)
	}
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", DefaultPath)

	if err := SaveFile(path, referenceBreakdown, Options{Dark: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}
