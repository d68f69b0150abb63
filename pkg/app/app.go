// Package app is the root of the client: it owns the session state, the
// entity stores and every user action. Each action validates locally,
// calls the backend and only then mirrors the confirmed change into the
// stores.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/credentials"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/logger"
	"github.com/zfogg/streamline/pkg/session"
	"github.com/zfogg/streamline/pkg/store"
	"github.com/zfogg/streamline/pkg/tracker"
	"github.com/zfogg/streamline/pkg/views"
	"golang.org/x/sync/errgroup"
)

// API is the subset of the backend client the app depends on.
type API interface {
	SetToken(token string)
	ClearToken()

	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error)
	Health(ctx context.Context) (*api.HealthResponse, error)

	ListTodos(ctx context.Context) ([]api.Todo, error)
	GetTodo(ctx context.Context, id string) (*api.Todo, error)
	CreateTodo(ctx context.Context, req api.CreateTodoRequest) (*api.Todo, error)
	UpdateTodo(ctx context.Context, id string, req api.UpdateTodoRequest) error
	DeleteTodo(ctx context.Context, id string) error
	ListTodoComments(ctx context.Context, todoID string) ([]api.Comment, error)
	CreateTodoComment(ctx context.Context, todoID, text string) (*api.Comment, error)
	DeleteTodoComment(ctx context.Context, todoID, commentID string) error

	ListTickets(ctx context.Context) ([]api.Ticket, error)
	GetTicket(ctx context.Context, id string) (*api.Ticket, error)
	CreateTicket(ctx context.Context, req api.CreateTicketRequest) (*api.Ticket, error)
	UpdateTicket(ctx context.Context, id string, req api.UpdateTicketRequest) error
	DeleteTicket(ctx context.Context, id string) error
	ListTicketComments(ctx context.Context, ticketID string) ([]api.Comment, error)
	CreateTicketComment(ctx context.Context, ticketID, text string) (*api.Comment, error)

	tracker.Remote

	ListActivities(ctx context.Context, limit int) ([]api.Activity, error)
	GetStats(ctx context.Context) (*api.Stats, error)

	GetSuggestions(ctx context.Context, topic string) ([]api.Suggestion, error)
	AnalyzeTask(ctx context.Context, text string) (*api.TaskAnalysis, error)
	PlanDay(ctx context.Context, req api.PlanDayRequest) (*api.DayPlan, error)
	OptimizeWorkflow(ctx context.Context) ([]api.Suggestion, error)
	GetSmartSuggestions(ctx context.Context, req api.SmartSuggestionsRequest) ([]api.Suggestion, error)

	Export(ctx context.Context, target api.ExportTarget, format api.ExportFormat, r api.DateRange) ([]byte, error)
}

// CredentialStore persists the session between runs.
type CredentialStore interface {
	Load() (*credentials.Credentials, error)
	Save(creds *credentials.Credentials) error
	Delete() error
}

// Notifier surfaces problems that do not stop the current action.
type Notifier interface {
	Notify(err *apperrors.AppError)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(err *apperrors.AppError)

func (f NotifierFunc) Notify(err *apperrors.AppError) { f(err) }

type logNotifier struct{}

func (logNotifier) Notify(err *apperrors.AppError) {
	logger.Warn(err.Message, "kind", err.Kind, "error", err.Cause)
}

// Options tunes an App. Zero values fall back to defaults.
type Options struct {
	DownloadDir   string
	ActivityLimit int
	Feed          views.FeedOptions
	Now           func() time.Time
	Tracker       *tracker.Tracker
}

// App holds all client state for one user session.
type App struct {
	api      API
	creds    CredentialStore
	notifier Notifier
	tracker  *tracker.Tracker
	opts     Options

	mu      sync.RWMutex
	state   session.State
	token   string
	clients []string
	stats   *api.Stats

	Todos          *store.Store[api.Todo]
	Tickets        *store.Store[api.Ticket]
	TodoComments   *store.Store[api.Comment]
	TicketComments *store.Store[api.Comment]
	Activities     *store.Store[api.Activity]
}

// New wires an App. A nil notifier logs notifications instead.
func New(backend API, creds CredentialStore, notifier Notifier, opts Options) *App {
	if notifier == nil {
		notifier = logNotifier{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = 20
	}
	if opts.Feed == (views.FeedOptions{}) {
		opts.Feed = views.FeedOptions{Todos: 5, Tickets: 5, Limit: 10}
	}
	t := opts.Tracker
	if t == nil {
		t = tracker.New(backend, tracker.WithClock(opts.Now))
	}

	return &App{
		api:            backend,
		creds:          creds,
		notifier:       notifier,
		tracker:        t,
		opts:           opts,
		state:          session.Initial(),
		Todos:          store.New(func(t api.Todo) string { return t.ID }),
		Tickets:        store.New(func(t api.Ticket) string { return t.ID }),
		TodoComments:   store.New(func(c api.Comment) string { return c.ID }),
		TicketComments: store.New(func(c api.Comment) string { return c.ID }),
		Activities:     store.New(func(a api.Activity) string { return a.ID }),
	}
}

func (a *App) dispatch(action session.Action) session.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = session.Reduce(a.state, action)
	return a.state
}

// State returns a copy of the session state.
func (a *App) State() session.State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// User returns the signed-in user, or nil.
func (a *App) User() *api.User {
	s := a.State()
	if s.User == nil {
		return nil
	}
	u := *s.User
	return &u
}

func (a *App) requireSession() error {
	if !a.State().Authenticated() {
		return apperrors.NotLoggedIn()
	}
	return nil
}

// HasTodo reports whether id is in the todo store.
func (a *App) HasTodo(id string) bool { return a.Todos.Contains(id) }

// HasTicket reports whether id is in the ticket store.
func (a *App) HasTicket(id string) bool { return a.Tickets.Contains(id) }

// View resolves the screen to show right now.
func (a *App) View() session.View {
	return session.Resolve(a.State(), a)
}

// fail notifies about a failed remote call and returns it categorized.
func (a *App) fail(action string, err error) error {
	appErr := apperrors.Categorize(err)
	logger.Error(action+" failed", "kind", appErr.Kind, "error", err)
	a.notifier.Notify(appErr)
	return appErr
}

// Boot restores a stored session, if any, and loads its data. It only
// fails when ctx is done; fetch problems leave sections empty.
func (a *App) Boot(ctx context.Context) error {
	creds, err := a.creds.Load()
	if err != nil {
		logger.Warn("Ignoring unreadable credentials", "error", err)
		creds = nil
	}
	if creds == nil || !creds.IsValid() {
		if creds != nil {
			logger.Info("Stored session expired", "email", creds.User.Email)
		}
		a.dispatch(session.BootCompleted{})
		return nil
	}

	a.mu.Lock()
	a.token = creds.Token
	a.mu.Unlock()
	a.api.SetToken(creds.Token)

	user := creds.User
	a.dispatch(session.BootCompleted{User: &user})
	logger.Debug("Session restored", "email", user.Email)

	return a.Refresh(ctx)
}

// Refresh fetches todos, tickets, stats and activities concurrently. A
// failed fetch is reported and leaves that section as it was.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		todos, err := a.api.ListTodos(ctx)
		if err != nil {
			a.partial("todos", err)
			return nil
		}
		a.Todos.Replace(todos)
		return nil
	})
	g.Go(func() error {
		tickets, err := a.api.ListTickets(ctx)
		if err != nil {
			a.partial("tickets", err)
			return nil
		}
		a.Tickets.Replace(tickets)
		a.mu.Lock()
		a.clients = views.ClientNames(tickets)
		a.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		stats, err := a.api.GetStats(ctx)
		if err != nil {
			a.partial("stats", err)
			return nil
		}
		a.mu.Lock()
		a.stats = stats
		a.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		a.loadActivities(ctx, a.opts.ActivityLimit)
		return nil
	})
	_ = g.Wait()

	return ctx.Err()
}

// ActivityLimit is how many activities Refresh loads.
func (a *App) ActivityLimit() int { return a.opts.ActivityLimit }

// LoadActivities refetches the activity feed with its own limit. A failed
// fetch is reported and keeps the entries already loaded.
func (a *App) LoadActivities(ctx context.Context, limit int) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	a.loadActivities(ctx, limit)
	return ctx.Err()
}

func (a *App) loadActivities(ctx context.Context, limit int) {
	activities, err := a.api.ListActivities(ctx, limit)
	if err != nil {
		a.partial("activities", err)
		return
	}
	a.Activities.Replace(activities)
}

func (a *App) partial(section string, err error) {
	logger.Warn("Background fetch failed", "section", section, "error", err)
	a.notifier.Notify(apperrors.Partial(section, err))
}

// Clients returns the known client names in first-seen order.
func (a *App) Clients() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.clients))
	copy(out, a.clients)
	return out
}

// Stats returns the last server stats, or nil if they never loaded.
func (a *App) Stats() *api.Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.stats == nil {
		return nil
	}
	s := *a.stats
	return &s
}

// Health asks the backend whether it is up. No session is needed.
func (a *App) Health(ctx context.Context) (*api.HealthResponse, error) {
	resp, err := a.api.Health(ctx)
	if err != nil {
		return nil, apperrors.Categorize(err)
	}
	return resp, nil
}

// Back leaves a detail view.
func (a *App) Back() {
	a.dispatch(session.Back{})
}

// Navigate switches page. It reports false for unknown pages.
func (a *App) Navigate(page session.Page) bool {
	if !page.Valid() {
		return false
	}
	a.dispatch(session.Navigate{Page: page})
	return true
}

func (a *App) resetData() {
	a.Todos.Clear()
	a.Tickets.Clear()
	a.TodoComments.Clear()
	a.TicketComments.Clear()
	a.Activities.Clear()

	a.mu.Lock()
	a.clients = nil
	a.stats = nil
	a.mu.Unlock()
}
