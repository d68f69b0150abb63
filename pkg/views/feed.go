package views

import (
	"sort"
	"time"

	"github.com/zfogg/streamline/pkg/api"
)

// FeedKind tags the origin of a feed item.
type FeedKind string

const (
	FeedTodo   FeedKind = "todo"
	FeedTicket FeedKind = "ticket"
)

// FeedItem is one line of the merged recent-activity feed.
type FeedItem struct {
	Kind      FeedKind
	ID        string
	Title     string
	Detail    string
	CreatedAt time.Time
}

// FeedOptions bounds how many of each kind are taken and how long the
// merged feed may be. Zero or negative values mean no bound.
type FeedOptions struct {
	Todos   int
	Tickets int
	Limit   int
}

func kindRank(k FeedKind) int {
	if k == FeedTodo {
		return 0
	}
	return 1
}

func sortFeed(items []FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Kind != b.Kind {
			return kindRank(a.Kind) < kindRank(b.Kind)
		}
		return a.ID < b.ID
	})
}

func truncate(items []FeedItem, n int) []FeedItem {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// MergeFeed interleaves the newest opts.Todos todos and opts.Tickets
// tickets, newest first. Equal timestamps order todos before tickets,
// then by ascending id, so the result does not depend on input order.
func MergeFeed(todos []api.Todo, tickets []api.Ticket, opts FeedOptions) []FeedItem {
	todoItems := make([]FeedItem, 0, len(todos))
	for _, t := range todos {
		detail := "active"
		if t.Completed {
			detail = "completed"
		}
		todoItems = append(todoItems, FeedItem{
			Kind:      FeedTodo,
			ID:        t.ID,
			Title:     t.Text,
			Detail:    detail,
			CreatedAt: t.CreatedAt.Time,
		})
	}
	sortFeed(todoItems)

	ticketItems := make([]FeedItem, 0, len(tickets))
	for _, t := range tickets {
		ticketItems = append(ticketItems, FeedItem{
			Kind:      FeedTicket,
			ID:        t.ID,
			Title:     t.TicketID + ": " + t.Subject,
			Detail:    string(t.Status),
			CreatedAt: t.CreatedAt.Time,
		})
	}
	sortFeed(ticketItems)

	merged := make([]FeedItem, 0, len(todoItems)+len(ticketItems))
	merged = append(merged, truncate(todoItems, opts.Todos)...)
	merged = append(merged, truncate(ticketItems, opts.Tickets)...)
	sortFeed(merged)

	return truncate(merged, opts.Limit)
}
