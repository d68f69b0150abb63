package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/service"
)

var (
	exportFormat string
	exportFrom   string
	exportTo     string
)

var exportCmd = &cobra.Command{
	Use:       "export <todos|tickets>",
	Short:     "Download todos or tickets as PDF or Excel",
	Long:      "Download todos or tickets as PDF or Excel into output.download_dir.",
	ValidArgs: []string{"todos", "tickets"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewExportService(application)
		return svc.Export(cmd.Context(), api.ExportTarget(args[0]), api.ExportFormat(exportFormat), exportFrom, exportTo)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Format: pdf, excel")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date (YYYY-MM-DD)")
}
