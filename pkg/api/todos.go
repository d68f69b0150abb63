package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zfogg/streamline/pkg/logger"
)

// ListTodos fetches every todo of the current user
func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	logger.Debug("Fetching todos")

	var todos []Todo
	if err := c.send(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetTodo fetches a single todo
func (c *Client) GetTodo(ctx context.Context, id string) (*Todo, error) {
	logger.Debug("Fetching todo", "todo_id", id)

	var todo Todo
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/todos/%s", id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// CreateTodo creates a todo and returns it as stored by the backend
func (c *Client) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	logger.Debug("Creating todo", "priority", req.Priority, "category", req.Category)

	var todo Todo
	if err := c.send(ctx, http.MethodPost, "/todos", req, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo applies a partial update. The backend answers with a
// message only.
func (c *Client) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) error {
	logger.Debug("Updating todo", "todo_id", id)
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/todos/%s", id), req, nil)
}

// DeleteTodo deletes a todo together with its comments
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	logger.Debug("Deleting todo", "todo_id", id)
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/todos/%s", id), nil, nil)
}

// ListTodoComments fetches a todo's comments, newest first
func (c *Client) ListTodoComments(ctx context.Context, todoID string) ([]Comment, error) {
	logger.Debug("Fetching todo comments", "todo_id", todoID)

	var comments []Comment
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/todos/%s/comments", todoID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateTodoComment adds a comment to a todo
func (c *Client) CreateTodoComment(ctx context.Context, todoID, text string) (*Comment, error) {
	logger.Debug("Creating todo comment", "todo_id", todoID)

	var comment Comment
	path := fmt.Sprintf("/todos/%s/comments", todoID)
	if err := c.send(ctx, http.MethodPost, path, CreateCommentRequest{Text: text}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteTodoComment removes a comment from a todo
func (c *Client) DeleteTodoComment(ctx context.Context, todoID, commentID string) error {
	logger.Debug("Deleting todo comment", "todo_id", todoID, "comment_id", commentID)
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/todos/%s/comments/%s", todoID, commentID), nil, nil)
}

// StartTracking opens a time-tracking session on a todo
func (c *Client) StartTracking(ctx context.Context, todoID string) (*TrackingStartResponse, error) {
	logger.Debug("Starting time tracking", "todo_id", todoID)

	var resp TrackingStartResponse
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("/todos/%s/time/start", todoID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopTracking closes the open session and returns the todo's new total
func (c *Client) StopTracking(ctx context.Context, todoID string) (*TrackingStopResponse, error) {
	logger.Debug("Stopping time tracking", "todo_id", todoID)

	var resp TrackingStopResponse
	if err := c.send(ctx, http.MethodPost, fmt.Sprintf("/todos/%s/time/stop", todoID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
