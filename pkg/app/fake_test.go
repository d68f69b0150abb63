package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zfogg/streamline/pkg/api"
)

var errNetwork = errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")

// fakeAPI is an in-memory backend. Setting a key in fail makes the
// matching call return that error.
type fakeAPI struct {
	mu sync.Mutex

	token    string
	user     api.User
	todos    []api.Todo
	tickets  []api.Ticket
	comments map[string][]api.Comment
	stats    *api.Stats
	activity []api.Activity
	export   []byte

	fail   map[string]error
	calls  []string
	limits []int
	seq    int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		user:     api.User{ID: "u1", Email: "ada@example.com", Name: "Ada"},
		comments: map[string][]api.Comment{},
		fail:     map[string]error{},
		stats:    &api.Stats{TotalTodos: 2, CompletedTodos: 1},
		export:   []byte("%PDF-1.4"),
	}
}

func (f *fakeAPI) call(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.fail[name]
}

func (f *fakeAPI) called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) nextID(prefix string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func (f *fakeAPI) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeAPI) ClearToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
}

func (f *fakeAPI) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeAPI) Login(_ context.Context, email, _ string) (*api.AuthResponse, error) {
	if err := f.call("Login"); err != nil {
		return nil, err
	}
	u := f.user
	u.Email = email
	return &api.AuthResponse{Token: "token-" + email, User: u}, nil
}

func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	if err := f.call("Register"); err != nil {
		return nil, err
	}
	return &api.AuthResponse{Token: "token-new", User: api.User{ID: "u2", Email: req.Email, Name: req.Name}}, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, req api.UpdateProfileRequest) (*api.User, error) {
	if err := f.call("UpdateProfile"); err != nil {
		return nil, err
	}
	u := f.user
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Mobile != nil {
		u.Mobile = *req.Mobile
	}
	return &u, nil
}

func (f *fakeAPI) Health(context.Context) (*api.HealthResponse, error) {
	if err := f.call("Health"); err != nil {
		return nil, err
	}
	return &api.HealthResponse{Status: "ok"}, nil
}

func (f *fakeAPI) ListTodos(context.Context) ([]api.Todo, error) {
	if err := f.call("ListTodos"); err != nil {
		return nil, err
	}
	return append([]api.Todo(nil), f.todos...), nil
}

func (f *fakeAPI) GetTodo(_ context.Context, id string) (*api.Todo, error) {
	if err := f.call("GetTodo"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.todos {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, &api.APIError{StatusCode: 404, Message: "Todo not found"}
}

func (f *fakeAPI) CreateTodo(_ context.Context, req api.CreateTodoRequest) (*api.Todo, error) {
	if err := f.call("CreateTodo"); err != nil {
		return nil, err
	}
	return &api.Todo{
		ID:        f.nextID("t"),
		Text:      req.Text,
		Priority:  req.Priority,
		Category:  req.Category,
		CreatedAt: api.At(time.Now()),
	}, nil
}

func (f *fakeAPI) UpdateTodo(context.Context, string, api.UpdateTodoRequest) error {
	return f.call("UpdateTodo")
}

func (f *fakeAPI) DeleteTodo(context.Context, string) error {
	return f.call("DeleteTodo")
}

func (f *fakeAPI) ListTodoComments(_ context.Context, todoID string) ([]api.Comment, error) {
	if err := f.call("ListTodoComments"); err != nil {
		return nil, err
	}
	return f.comments[todoID], nil
}

func (f *fakeAPI) CreateTodoComment(_ context.Context, _ string, text string) (*api.Comment, error) {
	if err := f.call("CreateTodoComment"); err != nil {
		return nil, err
	}
	return &api.Comment{ID: f.nextID("c"), Text: text, UserEmail: f.user.Email, CreatedAt: api.At(time.Now())}, nil
}

func (f *fakeAPI) DeleteTodoComment(context.Context, string, string) error {
	return f.call("DeleteTodoComment")
}

func (f *fakeAPI) ListTickets(context.Context) ([]api.Ticket, error) {
	if err := f.call("ListTickets"); err != nil {
		return nil, err
	}
	return append([]api.Ticket(nil), f.tickets...), nil
}

func (f *fakeAPI) GetTicket(_ context.Context, id string) (*api.Ticket, error) {
	if err := f.call("GetTicket"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, &api.APIError{StatusCode: 404, Message: "Ticket not found"}
}

func (f *fakeAPI) CreateTicket(_ context.Context, req api.CreateTicketRequest) (*api.Ticket, error) {
	if err := f.call("CreateTicket"); err != nil {
		return nil, err
	}
	return &api.Ticket{
		ID:          f.nextID("k"),
		TicketID:    req.TicketID,
		ClientName:  req.ClientName,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      api.StatusOpen,
		CreatedAt:   api.At(time.Now()),
	}, nil
}

func (f *fakeAPI) UpdateTicket(context.Context, string, api.UpdateTicketRequest) error {
	return f.call("UpdateTicket")
}

func (f *fakeAPI) DeleteTicket(context.Context, string) error {
	return f.call("DeleteTicket")
}

func (f *fakeAPI) ListTicketComments(_ context.Context, ticketID string) ([]api.Comment, error) {
	if err := f.call("ListTicketComments"); err != nil {
		return nil, err
	}
	return f.comments[ticketID], nil
}

func (f *fakeAPI) CreateTicketComment(_ context.Context, _ string, text string) (*api.Comment, error) {
	if err := f.call("CreateTicketComment"); err != nil {
		return nil, err
	}
	return &api.Comment{ID: f.nextID("c"), Text: text, UserEmail: f.user.Email, CreatedAt: api.At(time.Now())}, nil
}

func (f *fakeAPI) StartTracking(context.Context, string) (*api.TrackingStartResponse, error) {
	if err := f.call("StartTracking"); err != nil {
		return nil, err
	}
	return &api.TrackingStartResponse{Message: "Time tracking started"}, nil
}

func (f *fakeAPI) StopTracking(context.Context, string) (*api.TrackingStopResponse, error) {
	if err := f.call("StopTracking"); err != nil {
		return nil, err
	}
	return &api.TrackingStopResponse{TimeSpent: 95, SessionMinutes: 5}, nil
}

func (f *fakeAPI) ListActivities(_ context.Context, limit int) ([]api.Activity, error) {
	if err := f.call("ListActivities"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, limit)
	if limit > 0 && len(f.activity) > limit {
		return f.activity[:limit], nil
	}
	return f.activity, nil
}

func (f *fakeAPI) GetStats(context.Context) (*api.Stats, error) {
	if err := f.call("GetStats"); err != nil {
		return nil, err
	}
	return f.stats, nil
}

func (f *fakeAPI) GetSuggestions(context.Context, string) ([]api.Suggestion, error) {
	if err := f.call("GetSuggestions"); err != nil {
		return nil, err
	}
	return []api.Suggestion{{Text: "Plan the sprint"}}, nil
}

func (f *fakeAPI) AnalyzeTask(context.Context, string) (*api.TaskAnalysis, error) {
	if err := f.call("AnalyzeTask"); err != nil {
		return nil, err
	}
	return &api.TaskAnalysis{Priority: api.PriorityHigh, Category: api.CategoryWork, EstimatedMinutes: 90}, nil
}

func (f *fakeAPI) PlanDay(context.Context, api.PlanDayRequest) (*api.DayPlan, error) {
	if err := f.call("PlanDay"); err != nil {
		return nil, err
	}
	return &api.DayPlan{Blocks: []api.PlanBlock{{Start: "09:00", End: "10:00", Task: "Email"}}}, nil
}

func (f *fakeAPI) OptimizeWorkflow(context.Context) ([]api.Suggestion, error) {
	if err := f.call("OptimizeWorkflow"); err != nil {
		return nil, err
	}
	return []api.Suggestion{{Text: "Batch meetings"}}, nil
}

func (f *fakeAPI) GetSmartSuggestions(context.Context, api.SmartSuggestionsRequest) ([]api.Suggestion, error) {
	if err := f.call("GetSmartSuggestions"); err != nil {
		return nil, err
	}
	return []api.Suggestion{{Text: "Go for a walk"}}, nil
}

func (f *fakeAPI) Export(context.Context, api.ExportTarget, api.ExportFormat, api.DateRange) ([]byte, error) {
	if err := f.call("Export"); err != nil {
		return nil, err
	}
	return f.export, nil
}
