// Package tracker runs a live time-tracking session for one todo.
package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/logger"
)

var (
	ErrRunning = errors.New("a tracking session is already running")
	ErrIdle    = errors.New("no tracking session is running")
)

// Remote is the backend side of time tracking.
type Remote interface {
	StartTracking(ctx context.Context, todoID string) (*api.TrackingStartResponse, error)
	StopTracking(ctx context.Context, todoID string) (*api.TrackingStopResponse, error)
}

// Tracker owns at most one running session and its elapsed-time ticker.
type Tracker struct {
	remote   Remote
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	todoID  string
	started time.Time
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithInterval changes how often onTick fires.
func WithInterval(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// New returns an idle tracker ticking once per second.
func New(remote Remote, opts ...Option) *Tracker {
	t := &Tracker{
		remote:   remote,
		interval: time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Running reports whether a session is open.
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// TodoID returns the tracked todo, or "" when idle.
func (t *Tracker) TodoID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.todoID
}

// Elapsed returns the time since the session started.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel == nil {
		return 0
	}
	return t.now().Sub(t.started)
}

// Start opens a session on the backend and then calls onTick with the
// elapsed time on every interval until Stop is called or ctx is done.
// If the backend refuses, no ticker is started.
func (t *Tracker) Start(ctx context.Context, todoID string, onTick func(time.Duration)) error {
	t.mu.Lock()
	if t.cancel != nil {
		t.mu.Unlock()
		return ErrRunning
	}
	// Reserve the slot so a concurrent Start fails fast.
	reserveCtx, reserveCancel := context.WithCancel(ctx)
	t.cancel = reserveCancel
	t.mu.Unlock()

	if _, err := t.remote.StartTracking(ctx, todoID); err != nil {
		reserveCancel()
		t.mu.Lock()
		t.cancel = nil
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	t.todoID = todoID
	t.started = t.now()
	t.done = make(chan struct{})
	done := t.done
	t.mu.Unlock()

	logger.Debug("Tracking started", "todo_id", todoID)
	go t.tickLoop(reserveCtx, done, onTick)
	return nil
}

func (t *Tracker) tickLoop(ctx context.Context, done chan struct{}, onTick func(time.Duration)) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if onTick != nil {
				onTick(t.Elapsed())
			}
		}
	}
}

// Stop ends the ticker and closes the session on the backend. The
// ticker is stopped even when the backend call fails.
func (t *Tracker) Stop(ctx context.Context) (*api.TrackingStopResponse, error) {
	t.mu.Lock()
	if t.cancel == nil || t.todoID == "" {
		t.mu.Unlock()
		return nil, ErrIdle
	}
	cancel, done, todoID := t.cancel, t.done, t.todoID
	t.cancel = nil
	t.todoID = ""
	t.done = nil
	t.mu.Unlock()

	cancel()
	<-done

	resp, err := t.remote.StopTracking(ctx, todoID)
	if err != nil {
		return nil, err
	}
	logger.Debug("Tracking stopped", "todo_id", todoID, "time_spent", resp.TimeSpent)
	return resp, nil
}

// Wait blocks until the ticker exits, which happens after Stop or once
// the context given to Start is done.
func (t *Tracker) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done != nil {
		<-done
	}
}
