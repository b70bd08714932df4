package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewPagerCmd(mgr Manager) *cobra.Command {
	override := &optionalString{}

	cmd := &cobra.Command{
		Use:   "pager",
		Short: "Print the pager executable that would be invoked",
		Long: `Print the pager executable resolved from PAGER at startup.

Pagers which misbehave when driven from a pipe (more, most) and an empty
PAGER are replaced with less. Use --pager to resolve a name without
consulting PAGER.`,
		Args: cobra.NoArgs,
		Example: `
  deltaenv pager
  PAGER=most deltaenv pager
  deltaenv pager --pager bat`,
	}

	cmd.Flags().VarP(override, "pager", "p", "Resolve this pager instead of $PAGER")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), mgr.ResolvePager(override.value))
		return err
	}

	return cmd
}
