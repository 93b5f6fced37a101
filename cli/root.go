package cli

import (
	"github.com/spf13/cobra"

	"property-plan/config"
)

var Version = "dev"

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

// NewRootCommand assembles the property-plan command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "property-plan",
		Short:         "Property purchase and mortgage planner",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./property-plan.yaml)")

	rootCmd.AddCommand(planCmd(opts))
	rootCmd.AddCommand(compareCmd(opts))
	rootCmd.AddCommand(historyCmd(opts))
	rootCmd.AddCommand(serveCmd(opts))

	return rootCmd
}
