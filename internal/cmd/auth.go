package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/service"
)

var (
	authEmail   string
	authName    string
	authMobile  string
	logoutForce bool
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Log in to Streamline, create an account or end the session",
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Streamline account",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAuthService(application)
		return svc.Register(cmd.Context(), api.RegisterRequest{
			Email:  authEmail,
			Name:   authName,
			Mobile: authMobile,
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Streamline",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAuthService(application)
		return svc.Login(cmd.Context(), authEmail)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from Streamline",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAuthService(application)
		return svc.Logout(cmd.Context(), logoutForce)
	},
}

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Display current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewAuthService(application)
		return svc.WhoAmI(cmd.Context())
	},
}

func init() {
	loginCmd.Flags().StringVarP(&authEmail, "email", "e", "", "Account email")

	registerCmd.Flags().StringVarP(&authEmail, "email", "e", "", "Account email")
	registerCmd.Flags().StringVarP(&authName, "name", "n", "", "Display name")
	registerCmd.Flags().StringVar(&authMobile, "mobile", "", "Mobile number")

	logoutCmd.Flags().BoolVarP(&logoutForce, "force", "f", false, "Skip confirmation")

	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}
