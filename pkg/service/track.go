package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/formatter"
	"github.com/zfogg/streamline/pkg/output"
)

// stopTimeout bounds the stop call made after the run context is gone.
const stopTimeout = 10 * time.Second

type TrackService struct {
	app *app.App
}

// NewTrackService creates a new time tracking service
func NewTrackService(a *app.App) *TrackService {
	return &TrackService{app: a}
}

// Run tracks time on a todo, redrawing the elapsed time every tick,
// until ctx is cancelled. The session is then stopped on the backend.
func (s *TrackService) Run(ctx context.Context, ref string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	id, err := todoID(s.app, ref)
	if err != nil {
		return err
	}
	todo, _ := s.app.Todos.Get(id)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The ticker draws from its own goroutine.
	var mu sync.Mutex
	draw := func(elapsed time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(output.Out, "\r%s %s", formatter.Info.Sprint("⏱"), formatter.FormatElapsed(elapsed))
	}
	if err := s.app.StartTracking(runCtx, id, draw); err != nil {
		return err
	}

	mu.Lock()
	output.PrintInfo("Tracking %q. Press Ctrl+C to stop.", todo.Text)
	mu.Unlock()
	draw(0)
	<-runCtx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer stopCancel()

	// StopTracking returns only after the last tick, so nothing draws
	// past the newline.
	resp, err := s.app.StopTracking(stopCtx)
	fmt.Fprintln(output.Out)
	if err != nil {
		return err
	}
	output.PrintSuccess("✓ Logged %s (total %s)", formatter.FormatDuration(resp.SessionMinutes), formatter.FormatDuration(resp.TimeSpent))
	return nil
}
