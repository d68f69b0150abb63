package app

import (
	"context"
	"strings"

	"github.com/zfogg/streamline/pkg/api"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/session"
	"github.com/zfogg/streamline/pkg/store"
	"github.com/zfogg/streamline/pkg/views"
)

// NewTicket is the input for CreateTicket.
type NewTicket struct {
	TicketID    string
	ClientName  string
	Subject     string
	Description string
	Priority    api.Priority
}

func (n *NewTicket) normalize() error {
	n.TicketID = strings.ToUpper(strings.TrimSpace(n.TicketID))
	n.ClientName = strings.TrimSpace(n.ClientName)
	n.Subject = strings.TrimSpace(n.Subject)
	n.Description = strings.TrimSpace(n.Description)

	switch {
	case n.TicketID == "":
		return apperrors.Validation("ticket id", "is required")
	case n.ClientName == "":
		return apperrors.Validation("client name", "is required")
	case n.Subject == "":
		return apperrors.Validation("subject", "is required")
	}
	if n.Priority == "" {
		n.Priority = api.PriorityMedium
	}
	if !n.Priority.Valid() {
		return apperrors.Validation("priority", "must be low, medium or high")
	}
	return nil
}

func ticketNotFound(id string) error {
	return apperrors.New(apperrors.KindNotFound, "No ticket with id "+id, nil)
}

// CreateTicket opens a ticket. The ticket id is upper-cased; its
// uniqueness is left to the backend.
func (a *App) CreateTicket(ctx context.Context, in NewTicket) (api.Ticket, error) {
	if err := a.requireSession(); err != nil {
		return api.Ticket{}, err
	}
	if err := in.normalize(); err != nil {
		return api.Ticket{}, err
	}

	ticket, err := store.Create(ctx, a.Tickets, func(ctx context.Context) (api.Ticket, error) {
		created, err := a.api.CreateTicket(ctx, api.CreateTicketRequest{
			TicketID:    in.TicketID,
			ClientName:  in.ClientName,
			Subject:     in.Subject,
			Description: in.Description,
			Priority:    in.Priority,
		})
		if err != nil {
			return api.Ticket{}, err
		}
		return *created, nil
	})
	if err != nil {
		return api.Ticket{}, a.fail("Create ticket", err)
	}

	a.mu.Lock()
	a.clients = views.AppendClient(a.clients, ticket.ClientName)
	a.mu.Unlock()
	return ticket, nil
}

// UpdateTicketStatus moves a ticket through its workflow.
func (a *App) UpdateTicketStatus(ctx context.Context, id string, status api.TicketStatus) (api.Ticket, error) {
	if err := a.requireSession(); err != nil {
		return api.Ticket{}, err
	}
	if !status.Valid() {
		return api.Ticket{}, apperrors.Validation("status", "must be open, in-progress, resolved or closed")
	}
	if !a.Tickets.Contains(id) {
		return api.Ticket{}, ticketNotFound(id)
	}

	err := a.Tickets.Commit(ctx, func(ctx context.Context) error {
		return a.api.UpdateTicket(ctx, id, api.UpdateTicketRequest{Status: &status})
	}, func(s *store.Store[api.Ticket]) {
		s.Update(id, func(t *api.Ticket) { t.Status = status })
	})
	if err != nil {
		return api.Ticket{}, a.fail("Update ticket", err)
	}

	updated, _ := a.Tickets.Get(id)
	return updated, nil
}

// DeleteTicket removes a ticket and clears the selection if it was open.
func (a *App) DeleteTicket(ctx context.Context, id string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if !a.Tickets.Contains(id) {
		return ticketNotFound(id)
	}

	err := a.Tickets.Commit(ctx, func(ctx context.Context) error {
		return a.api.DeleteTicket(ctx, id)
	}, func(s *store.Store[api.Ticket]) {
		s.Remove(id)
	})
	if err != nil {
		return a.fail("Delete ticket", err)
	}

	if sel := a.State().Selection; sel.Kind == session.TicketSelected && sel.ID == id {
		a.dispatch(session.Back{})
		a.TicketComments.Clear()
	}
	return nil
}

// OpenTicket selects a ticket and loads its comments, fetching the
// ticket first when the store does not have it.
func (a *App) OpenTicket(ctx context.Context, id string) (api.Ticket, error) {
	if err := a.requireSession(); err != nil {
		return api.Ticket{}, err
	}
	ticket, ok := a.Tickets.Get(id)
	if !ok {
		fetched, err := a.fetchTicket(ctx, id)
		if err != nil {
			return api.Ticket{}, err
		}
		ticket = fetched
	}

	a.TicketComments.Clear()
	a.dispatch(session.SelectTicket{ID: id})

	comments, err := a.api.ListTicketComments(ctx, id)
	if err != nil {
		a.partial("ticket comments", err)
		return ticket, nil
	}
	a.TicketComments.Replace(comments)
	return ticket, nil
}

func (a *App) fetchTicket(ctx context.Context, id string) (api.Ticket, error) {
	ticket, err := a.api.GetTicket(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return api.Ticket{}, ticketNotFound(id)
		}
		return api.Ticket{}, a.fail("Fetch ticket", err)
	}
	a.Tickets.Prepend(*ticket)
	a.mu.Lock()
	a.clients = views.AppendClient(a.clients, ticket.ClientName)
	a.mu.Unlock()
	return *ticket, nil
}

// SelectedTicket returns the ticket open in the detail view.
func (a *App) SelectedTicket() (api.Ticket, bool) {
	sel := a.State().Selection
	if sel.Kind != session.TicketSelected {
		return api.Ticket{}, false
	}
	return a.Tickets.Get(sel.ID)
}

// AddTicketComment posts a comment on the open ticket.
func (a *App) AddTicketComment(ctx context.Context, text string) (api.Comment, error) {
	if err := a.requireSession(); err != nil {
		return api.Comment{}, err
	}
	ticket, ok := a.SelectedTicket()
	if !ok {
		return api.Comment{}, apperrors.Validation("ticket", "must be opened first")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return api.Comment{}, apperrors.Validation("comment", "cannot be empty")
	}

	comment, err := store.Create(ctx, a.TicketComments, func(ctx context.Context) (api.Comment, error) {
		created, err := a.api.CreateTicketComment(ctx, ticket.ID, text)
		if err != nil {
			return api.Comment{}, err
		}
		return *created, nil
	})
	if err != nil {
		return api.Comment{}, a.fail("Add ticket comment", err)
	}
	return comment, nil
}

// FilterTickets applies a ticket filter to the current store.
func (a *App) FilterTickets(f views.TicketFilter) []api.Ticket {
	return views.FilterTickets(a.Tickets.Snapshot(), f)
}

// FilterTodos applies a todo filter to the current store.
func (a *App) FilterTodos(mode views.FilterMode, query string) []api.Todo {
	return views.FilterTodos(a.Todos.Snapshot(), mode, query)
}
