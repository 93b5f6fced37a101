package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"property-plan/chart"
	"property-plan/domain"
	"property-plan/report"
	"property-plan/service"
)

type planOptions struct {
	params    domain.LoanParameters
	chartPath string
	noChart   bool
	light     bool
}

// collectParameters prompts for every value that wasn't given as a flag.
func collectParameters(cmd *cobra.Command, params *domain.LoanParameters, in io.Reader, out io.Writer) error {
	flags := cmd.Flags()
	p := newPrompter(in, out)

	missing := !flags.Changed("cost") || !flags.Changed("downpayment-rate") ||
		!flags.Changed("notary-rate") || !flags.Changed("rate") || !flags.Changed("years")
	if !missing {
		return nil
	}

	fmt.Fprint(out, "\nINPUT DATA\n----------\n")

	var err error
	if !flags.Changed("cost") {
		if params.Cost, err = p.Float("property's cost (in €)"); err != nil {
			return err
		}
	}
	if !flags.Changed("downpayment-rate") {
		if params.DownpaymentRate, err = p.Float("downpayment rate (in %)"); err != nil {
			return err
		}
	}
	if !flags.Changed("notary-rate") {
		if params.NotaryRate, err = p.Float("notary fees rate (in %)"); err != nil {
			return err
		}
	}
	if !flags.Changed("rate") {
		if params.AnnualRate, err = p.Float("yearly rate (in %)"); err != nil {
			return err
		}
	}
	if !flags.Changed("years") {
		if params.TermYears, err = p.Int("number of years"); err != nil {
			return err
		}
	}
	return nil
}

func planCmd(root *rootOptions) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the financing plan of a property purchase",
		Long: "Compute monthly payment, totals and down payment of a property purchase.\n" +
			"Values not given as flags are asked for interactively.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := collectParameters(cmd, &opts.params, cmd.InOrStdin(), out); err != nil {
				return err
			}

			svc, cleanup, err := newPlanService(cmd.Context(), root.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			record, err := svc.CalculatePlan(cmd.Context(), opts.params)
			if err != nil {
				if errors.Is(err, service.ErrInvalidArgument) {
					return fmt.Errorf("invalid input: %w", err)
				}
				return err
			}

			currency := root.cfg.Report.Currency
			if err := report.Write(out, record.Result, report.Options{Currency: currency}); err != nil {
				return err
			}

			if opts.noChart {
				return nil
			}

			path := opts.chartPath
			if path == "" {
				path = root.cfg.Chart.Path
			}
			chartOpts := chart.Options{
				Dark:     root.cfg.Chart.DarkTheme && !opts.light,
				Currency: currency,
			}
			if err := chart.SaveFile(path, chart.BreakdownFromResult(record.Result), chartOpts); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nChart saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.params.Cost, "cost", 0, "Property cost")
	cmd.Flags().Float64Var(&opts.params.DownpaymentRate, "downpayment-rate", 0, "Down payment rate (%)")
	cmd.Flags().Float64Var(&opts.params.NotaryRate, "notary-rate", 0, "Notary fees rate (%)")
	cmd.Flags().Float64Var(&opts.params.AnnualRate, "rate", 0, "Yearly interest rate (%)")
	cmd.Flags().IntVar(&opts.params.TermYears, "years", 0, "Loan duration in years")
	cmd.Flags().StringVar(&opts.chartPath, "chart", "", "Chart output path (default from config)")
	cmd.Flags().BoolVar(&opts.noChart, "no-chart", false, "Skip chart rendering")
	cmd.Flags().BoolVar(&opts.light, "light", false, "Light chart theme")

	return cmd
}
