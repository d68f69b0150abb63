package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/service"
	"github.com/zfogg/streamline/pkg/views"
)

var (
	ticketStatus      string
	ticketClient      string
	ticketQuery       string
	ticketCode        string
	ticketNewClient   string
	ticketSubject     string
	ticketDescription string
	ticketPriority    string
	ticketForce       bool
)

var ticketCmd = &cobra.Command{
	Use:     "ticket",
	Aliases: []string{"tickets"},
	Short:   "Support ticket commands",
	Long: `Manage client support tickets. A ticket can be referenced by its
code (for example ACME-12) or by a unique suffix of its id.`,
}

var ticketListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTicketService(application)
		return svc.List(cmd.Context(), views.TicketFilter{
			Status: ticketStatus,
			Client: ticketClient,
			Query:  ticketQuery,
		})
	},
}

var ticketShowCmd = &cobra.Command{
	Use:   "show <ticket>",
	Short: "Show a ticket and its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTicketService(application)
		return svc.Show(cmd.Context(), args[0])
	},
}

var ticketAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Open a ticket",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTicketService(application)
		return svc.Add(cmd.Context(), app.NewTicket{
			TicketID:    ticketCode,
			ClientName:  ticketNewClient,
			Subject:     ticketSubject,
			Description: ticketDescription,
			Priority:    api.Priority(ticketPriority),
		})
	},
}

var ticketStatusCmd = &cobra.Command{
	Use:       "status <ticket> [open|in-progress|resolved|closed]",
	Short:     "Change a ticket's status",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"open", "in-progress", "resolved", "closed"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var status api.TicketStatus
		if len(args) == 2 {
			status = api.TicketStatus(strings.ToLower(args[1]))
		}
		svc := service.NewTicketService(application)
		return svc.SetStatus(cmd.Context(), args[0], status)
	},
}

var ticketRemoveCmd = &cobra.Command{
	Use:     "rm <ticket>",
	Aliases: []string{"delete"},
	Short:   "Delete a ticket",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTicketService(application)
		return svc.Remove(cmd.Context(), args[0], ticketForce)
	},
}

var ticketCommentCmd = &cobra.Command{
	Use:   "comment <ticket> [text]",
	Short: "Comment on a ticket",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTicketService(application)
		return svc.Comment(cmd.Context(), args[0], strings.Join(args[1:], " "))
	},
}

var ticketClientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients with tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewTicketService(application)
		return svc.Clients(cmd.Context())
	},
}

func init() {
	ticketListCmd.Flags().StringVarP(&ticketStatus, "status", "s", views.All, "Status: all, open, in-progress, resolved, closed")
	ticketListCmd.Flags().StringVarP(&ticketClient, "client", "c", views.All, "Only tickets for this client")
	ticketListCmd.Flags().StringVarP(&ticketQuery, "query", "q", "", "Match ticket code or subject")

	ticketAddCmd.Flags().StringVar(&ticketCode, "id", "", "Ticket code, for example ACME-12")
	ticketAddCmd.Flags().StringVarP(&ticketNewClient, "client", "c", "", "Client name")
	ticketAddCmd.Flags().StringVarP(&ticketSubject, "subject", "s", "", "Subject")
	ticketAddCmd.Flags().StringVarP(&ticketDescription, "description", "d", "", "Description")
	ticketAddCmd.Flags().StringVarP(&ticketPriority, "priority", "p", "", "Priority: low, medium, high (default medium)")

	ticketRemoveCmd.Flags().BoolVarP(&ticketForce, "force", "f", false, "Skip confirmation")

	ticketCmd.AddCommand(ticketListCmd)
	ticketCmd.AddCommand(ticketShowCmd)
	ticketCmd.AddCommand(ticketAddCmd)
	ticketCmd.AddCommand(ticketStatusCmd)
	ticketCmd.AddCommand(ticketRemoveCmd)
	ticketCmd.AddCommand(ticketCommentCmd)
	ticketCmd.AddCommand(ticketClientsCmd)
}
