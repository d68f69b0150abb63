package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/config"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/logger"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/service"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

// application is built once config is loaded.
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "streamline",
	Short: "Streamline - todos, tickets and time tracking",
	Long: `Streamline is a terminal client for the Streamline productivity
backend. Manage todos and support tickets, track time, review your
dashboard and ask the AI assistant for suggestions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}

		logger.Init(verbose)

		if !output.ValidateOutputFormat(outputFmt) {
			return apperrors.Validation("output", "must be text, json or table")
		}
		config.Set("output.format", outputFmt)

		application = service.NewApp()
		return nil
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the
// command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		appErr := apperrors.Categorize(err)
		output.PrintError("%s", appErr.Message)
		if appErr.HasSuggestion() {
			output.PrintInfo("%s", appErr.Suggestion)
		}
		logger.Debug("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/streamline/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(ticketCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(aiCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
