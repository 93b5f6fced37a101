package cli

import (
	"github.com/spf13/cobra"

	"property-plan/report"
)

func historyCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently computed plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newPlanService(cmd.Context(), root.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return report.WriteHistory(cmd.OutOrStdout(), records, report.Options{Currency: root.cfg.Report.Currency})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum plans to list")

	return cmd
}
