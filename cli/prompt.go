package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks for numbers on a line-oriented terminal, asking again until the
// answer parses.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "> Enter %s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no value for %s: %w", label, io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) Float(label string) (float64, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "  %q is not a number\n", answer)
	}
}

func (p *prompter) Int(label string) (int, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "  %q is not a whole number\n", answer)
	}
}
