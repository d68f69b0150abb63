package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/service"
)

// Version is set at build time with -ldflags "-X github.com/zfogg/streamline/internal/cmd.Version=...".
var Version = "0.1.0"

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Streamline CLI v%s\n", Version)
		if !versionCheck {
			return nil
		}
		svc := service.NewHealthService(application)
		return svc.Check(cmd.Context())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Also check that the backend is reachable")
}
