package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zfogg/streamline/pkg/logger"
)

// ListTickets fetches every ticket of the current user
func (c *Client) ListTickets(ctx context.Context) ([]Ticket, error) {
	logger.Debug("Fetching tickets")

	var tickets []Ticket
	if err := c.send(ctx, http.MethodGet, "/tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetTicket fetches a single ticket
func (c *Client) GetTicket(ctx context.Context, id string) (*Ticket, error) {
	logger.Debug("Fetching ticket", "id", id)

	var ticket Ticket
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/tickets/%s", id), nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CreateTicket creates a ticket
func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (*Ticket, error) {
	logger.Debug("Creating ticket", "ticket_id", req.TicketID, "client", req.ClientName)

	var ticket Ticket
	if err := c.send(ctx, http.MethodPost, "/tickets", req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateTicket applies a partial update, typically a status change
func (c *Client) UpdateTicket(ctx context.Context, id string, req UpdateTicketRequest) error {
	logger.Debug("Updating ticket", "id", id)
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/tickets/%s", id), req, nil)
}

// DeleteTicket deletes a ticket
func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	logger.Debug("Deleting ticket", "id", id)
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/tickets/%s", id), nil, nil)
}

// ListTicketComments fetches a ticket's comments
func (c *Client) ListTicketComments(ctx context.Context, ticketID string) ([]Comment, error) {
	logger.Debug("Fetching ticket comments", "id", ticketID)

	var comments []Comment
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/tickets/%s/comments", ticketID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateTicketComment adds a comment to a ticket
func (c *Client) CreateTicketComment(ctx context.Context, ticketID, text string) (*Comment, error) {
	logger.Debug("Creating ticket comment", "id", ticketID)

	var comment Comment
	path := fmt.Sprintf("/tickets/%s/comments", ticketID)
	if err := c.send(ctx, http.MethodPost, path, CreateCommentRequest{Text: text}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
