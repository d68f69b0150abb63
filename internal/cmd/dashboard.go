package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/config"
	"github.com/zfogg/streamline/pkg/service"
)

var activityLimit int

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show counts and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService(application)
		return svc.Show(cmd.Context())
	},
}

var analyticsCmd = &cobra.Command{
	Use:     "analytics",
	Aliases: []string{"stats"},
	Short:   "Show productivity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewDashboardService(application)
		return svc.Analytics(cmd.Context())
	},
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := activityLimit
		if !cmd.Flags().Changed("limit") {
			limit = config.GetInt("activities.limit")
		}
		svc := service.NewDashboardService(application)
		return svc.Activity(cmd.Context(), limit)
	},
}

func init() {
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "Number of entries to show")
}
