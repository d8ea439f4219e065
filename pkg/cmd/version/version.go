package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/acc-telemetry-bridge/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "prints the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.FullVersion)
		},
	}
}
