package app

import (
	"sort"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/views"
)

// Dashboard is everything the dashboard page renders.
type Dashboard struct {
	Todos          views.TodoCounts
	Tickets        views.TicketCounts
	CompletionRate float64
	RecentTodos    []api.Todo
	RecentTickets  []api.Ticket
	Feed           []views.FeedItem
	Server         *api.Stats
}

// Dashboard computes the dashboard from the current stores. Missing
// server stats leave Server nil.
func (a *App) Dashboard() Dashboard {
	todos := a.Todos.Snapshot()
	tickets := a.Tickets.Snapshot()

	return Dashboard{
		Todos:          views.TodoStats(todos),
		Tickets:        views.TicketStats(tickets),
		CompletionRate: views.CompletionRate(todos),
		RecentTodos:    newestTodos(todos, a.opts.Feed.Todos),
		RecentTickets:  newestTickets(tickets, a.opts.Feed.Tickets),
		Feed:           views.MergeFeed(todos, tickets, a.opts.Feed),
		Server:         a.Stats(),
	}
}

func newestTodos(todos []api.Todo, n int) []api.Todo {
	out := append([]api.Todo(nil), todos...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func newestTickets(tickets []api.Ticket, n int) []api.Ticket {
	out := append([]api.Ticket(nil), tickets...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
