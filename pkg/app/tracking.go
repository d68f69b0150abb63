package app

import (
	"context"
	"errors"
	"time"

	"github.com/zfogg/streamline/pkg/api"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/tracker"
)

// StartTracking opens a time-tracking session on a todo. onTick gets
// the elapsed time once per second until StopTracking or ctx ends.
func (a *App) StartTracking(ctx context.Context, todoID string, onTick func(time.Duration)) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if !a.Todos.Contains(todoID) {
		return todoNotFound(todoID)
	}

	err := a.tracker.Start(ctx, todoID, onTick)
	if errors.Is(err, tracker.ErrRunning) {
		return apperrors.Validation("tracking", "is already running for "+a.tracker.TodoID())
	}
	if err != nil {
		return a.fail("Start tracking", err)
	}
	return nil
}

// StopTracking closes the session and records the backend's new total
// on the todo.
func (a *App) StopTracking(ctx context.Context) (*api.TrackingStopResponse, error) {
	todoID := a.tracker.TodoID()

	resp, err := a.tracker.Stop(ctx)
	if errors.Is(err, tracker.ErrIdle) {
		return nil, apperrors.Validation("tracking", "is not running")
	}
	if err != nil {
		return nil, a.fail("Stop tracking", err)
	}

	total := resp.TimeSpent
	a.Todos.Update(todoID, func(t *api.Todo) { t.TimeSpent = &total })
	return resp, nil
}

// Tracking reports the tracked todo id and elapsed time, if any.
func (a *App) Tracking() (todoID string, elapsed time.Duration, running bool) {
	if !a.tracker.Running() {
		return "", 0, false
	}
	return a.tracker.TodoID(), a.tracker.Elapsed(), true
}
