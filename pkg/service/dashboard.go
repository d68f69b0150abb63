package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/formatter"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/views"
)

type DashboardService struct {
	app *app.App
	now func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(a *app.App) *DashboardService {
	return &DashboardService{app: a, now: time.Now}
}

// Show prints counts, the completion rate and the recent feed
func (s *DashboardService) Show(ctx context.Context) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	d := s.app.Dashboard()
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(d)
	}

	user := s.app.User()
	output.PrintHeading("Welcome back, " + user.DisplayName())
	fmt.Fprintln(output.Out)

	fmt.Fprintf(output.Out, "Todos    %d total  %s active  %s completed  (%s)\n",
		d.Todos.Total,
		formatter.Warning.Sprint(d.Todos.Active),
		formatter.Success.Sprint(d.Todos.Completed),
		formatter.FormatPercent(d.CompletionRate))
	fmt.Fprintf(output.Out, "Tickets  %d total", d.Tickets.Total)
	for _, st := range api.TicketStatuses {
		fmt.Fprintf(output.Out, "  %d %s", d.Tickets.ByStatus[st], formatter.Status(st))
	}
	fmt.Fprintln(output.Out)

	if _, elapsed, running := s.app.Tracking(); running {
		output.PrintInfo("Tracking for %s", formatter.FormatElapsed(elapsed))
	}

	fmt.Fprintln(output.Out)
	output.PrintHeading("Recent")
	if len(d.Feed) == 0 {
		output.PrintInfo("Nothing yet. Add a todo or open a ticket to get started.")
		return nil
	}
	now := s.now()
	rows := make([][]string, 0, len(d.Feed))
	for _, item := range d.Feed {
		rows = append(rows, []string{
			string(item.Kind),
			formatter.Truncate(item.Title, 48),
			item.Detail,
			formatter.FormatDate(item.CreatedAt, now),
		})
	}
	output.PrintTable([]string{"Kind", "Title", "", "Created"}, rows)
	return nil
}

// Analytics prints server-side statistics
func (s *DashboardService) Analytics(ctx context.Context) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	stats := s.app.Stats()
	if stats == nil {
		// Fall back to what the stores can tell.
		output.PrintWarning("Server statistics unavailable, showing local counts")
		todos := s.app.Todos.Snapshot()
		c := views.TodoStats(todos)
		tickets := views.TicketStats(s.app.Tickets.Snapshot())
		byStatus := make(map[string]int, len(tickets.ByStatus))
		for st, n := range tickets.ByStatus {
			byStatus[string(st)] = n
		}
		stats = &api.Stats{
			TotalTodos:      c.Total,
			CompletedTodos:  c.Completed,
			ActiveTodos:     c.Active,
			CompletionRate:  views.CompletionRate(todos),
			TotalTickets:    tickets.Total,
			TicketsByStatus: byStatus,
		}
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(stats)
	}

	fields := []output.Field{
		{Key: "Todos", Value: fmt.Sprintf("%d", stats.TotalTodos)},
		{Key: "Active", Value: fmt.Sprintf("%d", stats.ActiveTodos)},
		{Key: "Completed", Value: fmt.Sprintf("%d", stats.CompletedTodos)},
		{Key: "Completion", Value: formatter.FormatPercent(stats.CompletionRate)},
		{Key: "Tickets", Value: fmt.Sprintf("%d", stats.TotalTickets)},
		{Key: "Time spent", Value: formatter.FormatDuration(stats.TotalTimeMinutes)},
	}
	if err := output.PrintRecord("Analytics", stats, fields); err != nil {
		return err
	}
	printBreakdown("Tickets by status", stats.TicketsByStatus)
	printBreakdown("Todos by priority", stats.TodosByPriority)
	printBreakdown("Todos by category", stats.TodosByCategory)
	return nil
}

func printBreakdown(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(output.Out)
	output.PrintHeading(title)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, fmt.Sprintf("%d", counts[k])})
	}
	output.PrintTable([]string{"", "Count"}, rows)
}

// Activity prints the most recent activity entries
func (s *DashboardService) Activity(ctx context.Context, limit int) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	if limit > 0 && limit != s.app.ActivityLimit() {
		if err := s.app.LoadActivities(ctx, limit); err != nil {
			return err
		}
	}
	activities := s.app.Activities.Snapshot()
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}

	now := s.now()
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			formatter.FormatDate(a.CreatedAt.Time, now) + " " + formatter.FormatTime(a.CreatedAt.Time, now.Location()),
			a.Type,
			formatter.Truncate(a.Description, 60),
			formatter.FormatTimeSpent(a.TimeSpent),
		})
	}
	return output.PrintList(activities, []string{"When", "Type", "Description", "Time"}, rows)
}
