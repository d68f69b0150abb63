package views

import "github.com/zfogg/streamline/pkg/api"

// TodoCounts summarizes a todo list.
type TodoCounts struct {
	Total     int
	Active    int
	Completed int
}

// TodoStats counts todos by completion.
func TodoStats(todos []api.Todo) TodoCounts {
	c := TodoCounts{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// TicketCounts holds ticket totals per status.
type TicketCounts struct {
	Total    int
	ByStatus map[api.TicketStatus]int
}

// TicketStats counts tickets by status. Every known status has an entry.
func TicketStats(tickets []api.Ticket) TicketCounts {
	c := TicketCounts{
		Total:    len(tickets),
		ByStatus: make(map[api.TicketStatus]int, len(api.TicketStatuses)),
	}
	for _, s := range api.TicketStatuses {
		c.ByStatus[s] = 0
	}
	for _, t := range tickets {
		c.ByStatus[t.Status]++
	}
	return c
}

// Percent returns part/total*100, or 0 when total is not positive.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// CompletionRate is the percentage of completed todos.
func CompletionRate(todos []api.Todo) float64 {
	c := TodoStats(todos)
	return Percent(c.Completed, c.Total)
}
