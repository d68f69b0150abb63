package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/formatter"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/prompter"
	"github.com/zfogg/streamline/pkg/views"
)

type TicketService struct {
	app *app.App
	now func() time.Time
}

// NewTicketService creates a new ticket service
func NewTicketService(a *app.App) *TicketService {
	return &TicketService{app: a, now: time.Now}
}

// List prints tickets matching f
func (s *TicketService) List(ctx context.Context, f views.TicketFilter) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}

	tickets := s.app.FilterTickets(f)
	now := s.now()
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			t.TicketID,
			t.ClientName,
			formatter.Truncate(t.Subject, 40),
			formatter.Priority(t.Priority),
			formatter.Status(t.Status),
			formatter.FormatDate(t.CreatedAt.Time, now),
		})
	}
	if err := output.PrintList(tickets, []string{"Ticket", "Client", "Subject", "Priority", "Status", "Created"}, rows); err != nil {
		return err
	}

	if output.GetOutputFormat() != output.FormatJSON && len(tickets) > 0 {
		c := views.TicketStats(tickets)
		parts := make([]string, 0, len(api.TicketStatuses))
		for _, st := range api.TicketStatuses {
			parts = append(parts, fmt.Sprintf("%d %s", c.ByStatus[st], st))
		}
		output.PrintInfo("%d ticket%s: %s", c.Total, pluralize(c.Total), strings.Join(parts, ", "))
	}
	return nil
}

// Show prints one ticket and its comments
func (s *TicketService) Show(ctx context.Context, ref string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := showID(s.app, ref, ticketID)
	if err != nil {
		return err
	}
	ticket, err := s.app.OpenTicket(ctx, id)
	if err != nil {
		return err
	}
	comments := s.app.TicketComments.Snapshot()

	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(struct {
			api.Ticket
			Comments []api.Comment `json:"comments"`
		}{ticket, comments})
	}

	now := s.now()
	fields := []output.Field{
		{Key: "Ticket", Value: ticket.TicketID},
		{Key: "Client", Value: ticket.ClientName},
		{Key: "Subject", Value: ticket.Subject},
		{Key: "Priority", Value: formatter.Priority(ticket.Priority)},
		{Key: "Status", Value: formatter.Status(ticket.Status)},
		{Key: "Created", Value: formatter.FormatDate(ticket.CreatedAt.Time, now) + " " + formatter.FormatTime(ticket.CreatedAt.Time, now.Location())},
		{Key: "Description", Value: orDash(ticket.Description)},
	}
	if err := output.PrintRecord("Ticket", ticket, fields); err != nil {
		return err
	}
	printTimeline(comments, now)
	return nil
}

// Add opens a ticket, prompting for any required field left empty
func (s *TicketService) Add(ctx context.Context, in app.NewTicket) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}

	var err error
	if in.TicketID == "" {
		if in.TicketID, err = prompter.PromptString("Ticket ID: "); err != nil {
			return err
		}
	}
	if in.ClientName == "" {
		if clients := s.app.Clients(); len(clients) > 0 {
			output.PrintInfo("Known clients: %s", strings.Join(clients, ", "))
		}
		if in.ClientName, err = prompter.PromptString("Client: "); err != nil {
			return err
		}
	}
	if in.Subject == "" {
		if in.Subject, err = prompter.PromptString("Subject: "); err != nil {
			return err
		}
	}
	if in.Description == "" {
		if in.Description, err = prompter.PromptMultilineString("Description", 50); err != nil {
			return err
		}
	}

	ticket, err := s.app.CreateTicket(ctx, in)
	if err != nil {
		return err
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(ticket)
	}
	output.PrintSuccess("✓ Opened %s for %s", ticket.TicketID, ticket.ClientName)
	return nil
}

// SetStatus moves a ticket to status, asking for it when empty
func (s *TicketService) SetStatus(ctx context.Context, ref string, status api.TicketStatus) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := ticketID(s.app, ref)
	if err != nil {
		return err
	}

	if status == "" {
		options := make([]string, len(api.TicketStatuses))
		for i, st := range api.TicketStatuses {
			options[i] = string(st)
		}
		idx, err := prompter.PromptSelect("New status:", options)
		if err != nil {
			return err
		}
		status = api.TicketStatuses[idx]
	}

	ticket, err := s.app.UpdateTicketStatus(ctx, id, status)
	if err != nil {
		return err
	}
	output.PrintSuccess("✓ %s is now %s", ticket.TicketID, ticket.Status)
	return nil
}

// Remove deletes a ticket after confirmation
func (s *TicketService) Remove(ctx context.Context, ref string, force bool) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := ticketID(s.app, ref)
	if err != nil {
		return err
	}
	ticket, _ := s.app.Tickets.Get(id)

	if !force {
		confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete %s?", ticket.TicketID))
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := s.app.DeleteTicket(ctx, id); err != nil {
		return err
	}
	output.PrintSuccess("✓ Deleted %s", ticket.TicketID)
	return nil
}

// Comment adds a comment to a ticket
func (s *TicketService) Comment(ctx context.Context, ref, text string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := ticketID(s.app, ref)
	if err != nil {
		return err
	}
	if _, err := s.app.OpenTicket(ctx, id); err != nil {
		return err
	}
	if text == "" {
		if text, err = prompter.PromptString("Comment: "); err != nil {
			return err
		}
	}

	comment, err := s.app.AddTicketComment(ctx, text)
	if err != nil {
		return err
	}
	output.PrintSuccess("✓ Comment added (%s)", formatter.ShortID(comment.ID))
	return nil
}

// Clients prints the distinct client names
func (s *TicketService) Clients(ctx context.Context) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	clients := s.app.Clients()
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		n := len(views.FilterTickets(s.app.Tickets.Snapshot(), views.TicketFilter{Client: c}))
		rows = append(rows, []string{c, fmt.Sprintf("%d", n)})
	}
	return output.PrintList(clients, []string{"Client", "Tickets"}, rows)
}
