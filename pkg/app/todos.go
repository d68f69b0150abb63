package app

import (
	"context"
	"strings"

	"github.com/zfogg/streamline/pkg/api"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/session"
	"github.com/zfogg/streamline/pkg/store"
)

// NewTodo is the input for CreateTodo. Empty enums get defaults.
type NewTodo struct {
	Text     string
	Priority api.Priority
	Category api.Category
}

func (n *NewTodo) normalize() error {
	n.Text = strings.TrimSpace(n.Text)
	if n.Text == "" {
		return apperrors.Validation("text", "cannot be empty")
	}
	if n.Priority == "" {
		n.Priority = api.PriorityMedium
	}
	if !n.Priority.Valid() {
		return apperrors.Validation("priority", "must be low, medium or high")
	}
	if n.Category == "" {
		n.Category = api.CategoryPersonal
	}
	if !n.Category.Valid() {
		return apperrors.Validation("category", "must be personal, work, shopping or health")
	}
	return nil
}

func todoNotFound(id string) error {
	return apperrors.New(apperrors.KindNotFound, "No todo with id "+id, nil)
}

// CreateTodo adds a todo and puts it at the front of the list.
func (a *App) CreateTodo(ctx context.Context, in NewTodo) (api.Todo, error) {
	if err := a.requireSession(); err != nil {
		return api.Todo{}, err
	}
	if err := in.normalize(); err != nil {
		return api.Todo{}, err
	}

	todo, err := store.Create(ctx, a.Todos, func(ctx context.Context) (api.Todo, error) {
		created, err := a.api.CreateTodo(ctx, api.CreateTodoRequest{
			Text:     in.Text,
			Priority: in.Priority,
			Category: in.Category,
		})
		if err != nil {
			return api.Todo{}, err
		}
		return *created, nil
	})
	if err != nil {
		return api.Todo{}, a.fail("Add todo", err)
	}
	return todo, nil
}

// ToggleTodo flips completion and returns the updated todo.
func (a *App) ToggleTodo(ctx context.Context, id string) (api.Todo, error) {
	if err := a.requireSession(); err != nil {
		return api.Todo{}, err
	}
	current, ok := a.Todos.Get(id)
	if !ok {
		return api.Todo{}, todoNotFound(id)
	}

	completed := !current.Completed
	err := a.Todos.Commit(ctx, func(ctx context.Context) error {
		return a.api.UpdateTodo(ctx, id, api.UpdateTodoRequest{Completed: &completed})
	}, func(s *store.Store[api.Todo]) {
		s.Update(id, func(t *api.Todo) { t.Completed = completed })
	})
	if err != nil {
		return api.Todo{}, a.fail("Update todo", err)
	}

	updated, _ := a.Todos.Get(id)
	return updated, nil
}

// DeleteTodo removes a todo. If it is open in the detail view the
// selection is cleared.
func (a *App) DeleteTodo(ctx context.Context, id string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if !a.Todos.Contains(id) {
		return todoNotFound(id)
	}

	err := a.Todos.Commit(ctx, func(ctx context.Context) error {
		return a.api.DeleteTodo(ctx, id)
	}, func(s *store.Store[api.Todo]) {
		s.Remove(id)
	})
	if err != nil {
		return a.fail("Delete todo", err)
	}

	if sel := a.State().Selection; sel.Kind == session.TodoSelected && sel.ID == id {
		a.dispatch(session.Back{})
		a.TodoComments.Clear()
	}
	return nil
}

// OpenTodo selects a todo and loads its comments. A todo missing from
// the store is fetched from the backend first. A comment fetch failure
// still opens the todo with no comments.
func (a *App) OpenTodo(ctx context.Context, id string) (api.Todo, error) {
	if err := a.requireSession(); err != nil {
		return api.Todo{}, err
	}
	todo, ok := a.Todos.Get(id)
	if !ok {
		fetched, err := a.fetchTodo(ctx, id)
		if err != nil {
			return api.Todo{}, err
		}
		todo = fetched
	}

	a.TodoComments.Clear()
	a.dispatch(session.SelectTodo{ID: id})

	comments, err := a.api.ListTodoComments(ctx, id)
	if err != nil {
		a.partial("comments", err)
		return todo, nil
	}
	a.TodoComments.Replace(comments)
	return todo, nil
}

// fetchTodo loads one todo the store has not seen yet and mirrors it in.
func (a *App) fetchTodo(ctx context.Context, id string) (api.Todo, error) {
	todo, err := a.api.GetTodo(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return api.Todo{}, todoNotFound(id)
		}
		return api.Todo{}, a.fail("Fetch todo", err)
	}
	a.Todos.Prepend(*todo)
	return *todo, nil
}

// SelectedTodo returns the todo open in the detail view, looked up in
// the store so it always reflects confirmed changes.
func (a *App) SelectedTodo() (api.Todo, bool) {
	sel := a.State().Selection
	if sel.Kind != session.TodoSelected {
		return api.Todo{}, false
	}
	return a.Todos.Get(sel.ID)
}

func (a *App) selectedTodoID() (string, error) {
	todo, ok := a.SelectedTodo()
	if !ok {
		return "", apperrors.Validation("todo", "must be opened first")
	}
	return todo.ID, nil
}

// AddComment posts a comment on the open todo.
func (a *App) AddComment(ctx context.Context, text string) (api.Comment, error) {
	if err := a.requireSession(); err != nil {
		return api.Comment{}, err
	}
	todoID, err := a.selectedTodoID()
	if err != nil {
		return api.Comment{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return api.Comment{}, apperrors.Validation("comment", "cannot be empty")
	}

	comment, err := store.Create(ctx, a.TodoComments, func(ctx context.Context) (api.Comment, error) {
		created, err := a.api.CreateTodoComment(ctx, todoID, text)
		if err != nil {
			return api.Comment{}, err
		}
		return *created, nil
	})
	if err != nil {
		return api.Comment{}, a.fail("Add comment", err)
	}
	return comment, nil
}

// DeleteComment removes a comment from the open todo.
func (a *App) DeleteComment(ctx context.Context, commentID string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	todoID, err := a.selectedTodoID()
	if err != nil {
		return err
	}
	if !a.TodoComments.Contains(commentID) {
		return apperrors.New(apperrors.KindNotFound, "No comment with id "+commentID, nil)
	}

	err = a.TodoComments.Commit(ctx, func(ctx context.Context) error {
		return a.api.DeleteTodoComment(ctx, todoID, commentID)
	}, func(s *store.Store[api.Comment]) {
		s.Remove(commentID)
	})
	if err != nil {
		return a.fail("Delete comment", err)
	}
	return nil
}
