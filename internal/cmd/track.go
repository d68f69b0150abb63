package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/service"
)

var trackCmd = &cobra.Command{
	Use:   "track <todo-id>",
	Short: "Track time on a todo until Ctrl+C",
	Long: `Start a time-tracking session on a todo and show the elapsed
time. Press Ctrl+C to stop; the session is then recorded on the todo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTrackService(application)
		return svc.Run(cmd.Context(), args[0])
	},
}
