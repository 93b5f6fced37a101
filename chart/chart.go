// Package chart draws the monthly and total cost breakdowns of a plan as two
// donut charts in a single PNG image.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"property-plan/domain"
)

const (
	DefaultPath   = "RealEstate.png"
	DefaultWidth  = 500
	DefaultHeight = 400
)

var ErrEmptyChart = errors.New("chart: nothing to draw")

var (
	monthlyPalette = []drawing.Color{
		drawing.ColorFromHex("0000ff"),
		drawing.ColorFromHex("1e90ff"),
	}
	totalPalette = []drawing.Color{
		drawing.ColorFromHex("4b0082"),
		drawing.ColorFromHex("9400d3"),
		drawing.ColorFromHex("ba55d3"),
	}
)

// Breakdown holds the monetary figures a chart is drawn from.
type Breakdown struct {
	MonthlyPrincipal float64
	MonthlyInterest  float64
	Downpayment      float64
	TotalBorrowed    float64
	TotalInterest    float64
}

func BreakdownFromResult(result domain.PlanResult) Breakdown {
	return Breakdown{
		MonthlyPrincipal: result.MonthlyPrincipal,
		MonthlyInterest:  result.MonthlyInterest,
		Downpayment:      result.Downpayment,
		TotalBorrowed:    result.TotalBorrowed,
		TotalInterest:    result.TotalInterest,
	}
}

type Options struct {
	Dark     bool
	Currency string
	// Width and Height apply to each of the two charts.
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Currency == "" {
		o.Currency = "€"
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

type slice struct {
	label string
	value float64
	color drawing.Color
}

func amount(v float64) string {
	return humanize.Comma(int64(v))
}

// donut builds one chart. Slices that are not positive are left out.
func donut(title string, slices []slice, opts Options) (gochart.DonutChart, error) {
	total := 0.0
	for _, s := range slices {
		if s.value > 0 {
			total += s.value
		}
	}
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return gochart.DonutChart{}, fmt.Errorf("%w: %s", ErrEmptyChart, title)
	}

	fg, bg := drawing.ColorBlack, drawing.ColorWhite
	if opts.Dark {
		fg, bg = drawing.ColorWhite, drawing.ColorBlack
	}

	values := make([]gochart.Value, 0, len(slices))
	for _, s := range slices {
		if s.value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Value: s.value,
			Label: fmt.Sprintf("%s %s %s (%.0f%%)", s.label, amount(s.value), opts.Currency, s.value/total*100),
			Style: gochart.Style{
				FillColor:   s.color,
				StrokeColor: bg,
				FontColor:   drawing.ColorWhite,
			},
		})
	}

	return gochart.DonutChart{
		Title:      title,
		TitleStyle: gochart.Style{FontColor: fg},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{FillColor: bg, StrokeColor: bg},
		Canvas:     gochart.Style{FillColor: bg, StrokeColor: bg},
		Values:     values,
	}, nil
}

func renderPNG(c gochart.DonutChart) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: render %q: %w", c.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("chart: decode %q: %w", c.Title, err)
	}
	return img, nil
}

// Render writes the monthly and total breakdown charts side by side as PNG.
func Render(w io.Writer, data Breakdown, opts Options) error {
	opts = opts.withDefaults()

	monthly, err := donut(
		fmt.Sprintf("%s %s per Month", amount(data.MonthlyPrincipal+data.MonthlyInterest), opts.Currency),
		[]slice{
			{"Borrowed", data.MonthlyPrincipal, monthlyPalette[0]},
			{"Interests", data.MonthlyInterest, monthlyPalette[1]},
		}, opts)
	if err != nil {
		return err
	}

	total, err := donut(
		fmt.Sprintf("%s %s in Total", amount(data.Downpayment+data.TotalBorrowed+data.TotalInterest), opts.Currency),
		[]slice{
			{"Down Payment", data.Downpayment, totalPalette[0]},
			{"Borrowed", data.TotalBorrowed, totalPalette[1]},
			{"Interests", data.TotalInterest, totalPalette[2]},
		}, opts)
	if err != nil {
		return err
	}

	left, err := renderPNG(monthly)
	if err != nil {
		return err
	}
	right, err := renderPNG(total)
	if err != nil {
		return err
	}

	lb, rb := left.Bounds(), right.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	var background color.Color = color.White
	if opts.Dark {
		background = color.Black
	}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Over)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Over)

	return png.Encode(w, canvas)
}

// SaveFile renders the charts to path, creating parent directories.
func SaveFile(path string, data Breakdown, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("chart: create directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := Render(&buf, data, opts); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("chart: write %s: %w", path, err)
	}
	return nil
}
