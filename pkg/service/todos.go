package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/formatter"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/prompter"
	"github.com/zfogg/streamline/pkg/views"
)

type TodoService struct {
	app *app.App
	now func() time.Time
}

// NewTodoService creates a new todo service
func NewTodoService(a *app.App) *TodoService {
	return &TodoService{app: a, now: time.Now}
}

// List prints todos matching mode and query
func (s *TodoService) List(ctx context.Context, mode views.FilterMode, query string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	if mode == "" {
		mode = views.FilterAll
	}
	if !mode.Valid() {
		return apperrors.Validation("filter", "must be all, active or completed")
	}

	todos := s.app.FilterTodos(mode, query)
	now := s.now()
	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, []string{
			formatter.ShortID(t.ID),
			formatter.Checkbox(t.Completed),
			formatter.Truncate(t.Text, 48),
			formatter.Priority(t.Priority),
			string(t.Category),
			formatter.FormatTimeSpent(t.TimeSpent),
			formatter.FormatDate(t.CreatedAt.Time, now),
		})
	}
	if err := output.PrintList(todos, []string{"ID", "", "Text", "Priority", "Category", "Time", "Created"}, rows); err != nil {
		return err
	}

	if output.GetOutputFormat() != output.FormatJSON && len(todos) > 0 {
		c := views.TodoStats(todos)
		output.PrintInfo("%d todo%s, %d active, %d completed", c.Total, pluralize(c.Total), c.Active, c.Completed)
	}
	return nil
}

// Show prints one todo and its comment timeline
func (s *TodoService) Show(ctx context.Context, ref string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := showID(s.app, ref, todoID)
	if err != nil {
		return err
	}
	todo, err := s.app.OpenTodo(ctx, id)
	if err != nil {
		return err
	}
	comments := s.app.TodoComments.Snapshot()

	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(struct {
			api.Todo
			Comments []api.Comment `json:"comments"`
		}{todo, comments})
	}

	now := s.now()
	status := "active"
	if todo.Completed {
		status = "completed"
	}
	fields := []output.Field{
		{Key: "ID", Value: todo.ID},
		{Key: "Text", Value: todo.Text},
		{Key: "Status", Value: status},
		{Key: "Priority", Value: formatter.Priority(todo.Priority)},
		{Key: "Category", Value: string(todo.Category)},
		{Key: "Time spent", Value: formatter.FormatTimeSpent(todo.TimeSpent)},
		{Key: "Created", Value: formatter.FormatDate(todo.CreatedAt.Time, now) + " " + formatter.FormatTime(todo.CreatedAt.Time, now.Location())},
	}
	if err := output.PrintRecord("Todo", todo, fields); err != nil {
		return err
	}
	printTimeline(comments, now)
	return nil
}

// printTimeline prints comments grouped under date headings.
func printTimeline(comments []api.Comment, now time.Time) {
	fmt.Fprintln(output.Out)
	if len(comments) == 0 {
		output.PrintInfo("No comments yet.")
		return
	}
	output.PrintHeading(fmt.Sprintf("Comments (%d)", len(comments)))
	for _, group := range views.GroupCommentsByDate(comments, now) {
		formatter.Bold.Fprintln(output.Out, group.Label)
		for _, c := range group.Comments {
			fmt.Fprintf(output.Out, "  %s  %s\n", formatter.Faint.Sprint(formatter.ShortID(c.ID)), c.Text)
			fmt.Fprintf(output.Out, "      %s\n", formatter.Faint.Sprintf("%s • %s", c.UserEmail, formatter.FormatTime(c.CreatedAt.Time, now.Location())))
		}
	}
}

// Add creates a todo, prompting for the text if it is empty
func (s *TodoService) Add(ctx context.Context, text string, priority api.Priority, category api.Category) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	if text == "" {
		var err error
		if text, err = prompter.PromptString("Todo: "); err != nil {
			return err
		}
	}

	todo, err := s.app.CreateTodo(ctx, app.NewTodo{Text: text, Priority: priority, Category: category})
	if err != nil {
		return err
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(todo)
	}
	output.PrintSuccess("✓ Added %q (%s)", todo.Text, formatter.ShortID(todo.ID))
	return nil
}

// Toggle flips a todo between active and completed
func (s *TodoService) Toggle(ctx context.Context, ref string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := todoID(s.app, ref)
	if err != nil {
		return err
	}

	todo, err := s.app.ToggleTodo(ctx, id)
	if err != nil {
		return err
	}
	if todo.Completed {
		output.PrintSuccess("✓ Completed %q", todo.Text)
	} else {
		output.PrintInfo("Reopened %q", todo.Text)
	}
	return nil
}

// Remove deletes a todo after confirmation
func (s *TodoService) Remove(ctx context.Context, ref string, force bool) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := todoID(s.app, ref)
	if err != nil {
		return err
	}
	todo, _ := s.app.Todos.Get(id)

	if !force {
		confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete %q?", todo.Text))
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := s.app.DeleteTodo(ctx, id); err != nil {
		return err
	}
	output.PrintSuccess("✓ Deleted %q", todo.Text)
	return nil
}

// Comment adds a comment to a todo
func (s *TodoService) Comment(ctx context.Context, ref, text string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := todoID(s.app, ref)
	if err != nil {
		return err
	}
	if _, err := s.app.OpenTodo(ctx, id); err != nil {
		return err
	}
	if text == "" {
		if text, err = prompter.PromptString("Comment: "); err != nil {
			return err
		}
	}

	comment, err := s.app.AddComment(ctx, text)
	if err != nil {
		return err
	}
	output.PrintSuccess("✓ Comment added (%s)", formatter.ShortID(comment.ID))
	return nil
}

// Uncomment deletes a comment from a todo
func (s *TodoService) Uncomment(ctx context.Context, ref, commentRef string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := todoID(s.app, ref)
	if err != nil {
		return err
	}
	if _, err := s.app.OpenTodo(ctx, id); err != nil {
		return err
	}

	comments := s.app.TodoComments.Snapshot()
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	commentID, err := matchID(commentRef, ids)
	if err != nil {
		return err
	}

	if err := s.app.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	output.PrintSuccess("✓ Comment deleted")
	return nil
}
