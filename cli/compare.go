package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"property-plan/domain"
	"property-plan/report"
	"property-plan/service"
)

func compareCmd(root *rootOptions) *cobra.Command {
	input := domain.TermComparisonInput{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare loan terms for the same purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.NewTermComparisonService().CompareTerms(input)
			if err != nil && !errors.Is(err, service.ErrNoAffordableTerm) {
				return err
			}

			if werr := report.WriteTermComparison(cmd.OutOrStdout(), result, report.Options{Currency: root.cfg.Report.Currency}); werr != nil {
				return werr
			}
			return err
		},
	}

	cmd.Flags().Float64Var(&input.Cost, "cost", 0, "Property cost")
	cmd.Flags().Float64Var(&input.DownpaymentRate, "downpayment-rate", 0, "Down payment rate (%)")
	cmd.Flags().Float64Var(&input.NotaryRate, "notary-rate", 0, "Notary fees rate (%)")
	cmd.Flags().Float64Var(&input.AnnualRate, "rate", 0, "Yearly interest rate (%)")
	cmd.Flags().IntVar(&input.MinTermYears, "min-years", 10, "Shortest term to compare")
	cmd.Flags().IntVar(&input.MaxTermYears, "max-years", 25, "Longest term to compare")
	cmd.Flags().Float64Var(&input.MaxMonthlyPayment, "max-monthly", 0, "Monthly budget (0 = unlimited)")
	cmd.MarkFlagRequired("cost")
	cmd.MarkFlagRequired("rate")

	return cmd
}
