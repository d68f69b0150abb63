// Package views computes read-only projections of store snapshots.
// Nothing here mutates its input; every function returns a fresh slice.
package views

import (
	"strings"

	"github.com/zfogg/streamline/pkg/api"
)

// FilterMode selects todos by completion.
type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

// All matches any status or client in a TicketFilter.
const All = "all"

// Valid reports whether m is a known mode.
func (m FilterMode) Valid() bool {
	switch m {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

func (m FilterMode) matches(t api.Todo) bool {
	switch m {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterTodos keeps todos matching mode whose text contains query,
// ignoring case. Store order is preserved. An empty or unknown mode
// behaves as FilterAll.
func FilterTodos(todos []api.Todo, mode FilterMode, query string) []api.Todo {
	out := make([]api.Todo, 0, len(todos))
	for _, t := range todos {
		if !mode.matches(t) {
			continue
		}
		if query != "" && !containsFold(t.Text, query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TicketFilter narrows a ticket list. Empty Status or Client means All.
type TicketFilter struct {
	Status string
	Client string
	Query  string
}

func (f TicketFilter) matches(t api.Ticket) bool {
	if f.Status != "" && f.Status != All && string(t.Status) != f.Status {
		return false
	}
	if f.Client != "" && f.Client != All && t.ClientName != f.Client {
		return false
	}
	if f.Query == "" {
		return true
	}
	return containsFold(t.TicketID, f.Query) || containsFold(t.Subject, f.Query)
}

// FilterTickets keeps tickets matching every field of f, in input order.
func FilterTickets(tickets []api.Ticket, f TicketFilter) []api.Ticket {
	out := make([]api.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ClientNames returns the distinct client names in first-seen order.
func ClientNames(tickets []api.Ticket) []string {
	var names []string
	for _, t := range tickets {
		names = AppendClient(names, t.ClientName)
	}
	return names
}

// AppendClient adds name to list unless it is already there or blank.
func AppendClient(list []string, name string) []string {
	if strings.TrimSpace(name) == "" {
		return list
	}
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, name)
}
