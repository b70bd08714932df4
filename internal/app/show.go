package app

import (
	"github.com/spf13/cobra"

	"github.com/andyballingall/deltaenv/internal/report"
)

func NewShowCmd(mgr Manager, noColour *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the environment snapshot taken at startup",
		Args:  cobra.NoArgs,
		Example: `
  deltaenv show
  deltaenv show -o json
  DELTA_FEATURES=side-by-side deltaenv show -o yaml`,
	}

	outputVal := formatValue(report.FormatText)
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json, yaml)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return mgr.ShowEnvironment(cmd.OutOrStdout(), report.Format(outputVal), !*noColour)
	}

	return cmd
}
