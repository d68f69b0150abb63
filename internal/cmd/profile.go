package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/service"
)

var (
	profileName   string
	profileMobile string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "User profile commands",
	Long:  "View and edit your Streamline profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewProfileService(application)
		return svc.Show(cmd.Context())
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change your name or mobile number",
	Long: `Change your name or mobile number. Without flags you are
prompted for both, with the current values as defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var name, mobile *string
		if cmd.Flags().Changed("name") {
			name = &profileName
		}
		if cmd.Flags().Changed("mobile") {
			mobile = &profileMobile
		}
		svc := service.NewProfileService(application)
		return svc.Update(cmd.Context(), name, mobile)
	},
}

func init() {
	profileUpdateCmd.Flags().StringVarP(&profileName, "name", "n", "", "New display name")
	profileUpdateCmd.Flags().StringVar(&profileMobile, "mobile", "", "New mobile number")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
