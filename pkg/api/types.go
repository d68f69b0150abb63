package api

import (
	"strings"
	"time"

	json "github.com/json-iterator/go"
)

// Timestamp is a backend time. The backend emits either RFC 3339 or a
// zone-less ISO string; zone-less values are UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses any of the layouts the backend emits.
func ParseTimestamp(s string) (Timestamp, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Timestamp{t}, nil
		}
		lastErr = err
	}
	return Timestamp{}, lastErr
}

// At wraps t.
func At(t time.Time) Timestamp {
	return Timestamp{t}
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(ts.UTC().Format(time.RFC3339Nano))
}

// Auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
}

type AuthResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Mobile string `json:"mobile,omitempty"`
}

// DisplayName prefers the user's name and falls back to the email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Mobile *string `json:"mobile,omitempty"`
}

type ProfileResponse struct {
	User User `json:"user"`
}

// Todos

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryWork, CategoryShopping, CategoryHealth:
		return true
	}
	return false
}

type Todo struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	Category  Category  `json:"category"`
	CreatedAt Timestamp `json:"created_at"`
	TimeSpent *int      `json:"time_spent,omitempty"` // minutes
}

type CreateTodoRequest struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Category Category `json:"category"`
}

// UpdateTodoRequest carries only the fields being changed.
type UpdateTodoRequest struct {
	Text      *string   `json:"text,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	Priority  *Priority `json:"priority,omitempty"`
	Category  *Category `json:"category,omitempty"`
}

// Comments (shared by todos and tickets)

type Comment struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	UserEmail string    `json:"user_email"`
	CreatedAt Timestamp `json:"created_at"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// Tickets

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in-progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// TicketStatuses lists every status in workflow order.
var TicketStatuses = []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// Valid reports whether s is a known ticket status.
func (s TicketStatus) Valid() bool {
	for _, known := range TicketStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Ticket struct {
	ID          string       `json:"_id"`
	TicketID    string       `json:"ticket_id"`
	ClientName  string       `json:"client_name"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Status      TicketStatus `json:"status"`
	CreatedAt   Timestamp    `json:"created_at"`
}

type CreateTicketRequest struct {
	TicketID    string   `json:"ticket_id"`
	ClientName  string   `json:"client_name"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

type UpdateTicketRequest struct {
	Subject     *string       `json:"subject,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    *Priority     `json:"priority,omitempty"`
	Status      *TicketStatus `json:"status,omitempty"`
}

// Time tracking

type TrackingStartResponse struct {
	Message   string    `json:"message,omitempty"`
	StartedAt Timestamp `json:"started_at"`
}

type TrackingStopResponse struct {
	Message        string `json:"message,omitempty"`
	TimeSpent      int    `json:"time_spent"`      // total minutes on the todo
	SessionMinutes int    `json:"session_minutes"` // minutes added by this session
}

// Activities

type Activity struct {
	ID          string    `json:"_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
	TimeSpent   *int      `json:"time_spent,omitempty"`
}

// Analytics

// Stats is the server-side aggregate. The client only renders it.
type Stats struct {
	TotalTodos       int            `json:"total_todos"`
	CompletedTodos   int            `json:"completed_todos"`
	ActiveTodos      int            `json:"active_todos"`
	CompletionRate   float64        `json:"completion_rate"`
	TotalTickets     int            `json:"total_tickets"`
	TicketsByStatus  map[string]int `json:"tickets_by_status,omitempty"`
	TodosByPriority  map[string]int `json:"todos_by_priority,omitempty"`
	TodosByCategory  map[string]int `json:"todos_by_category,omitempty"`
	TotalTimeMinutes int            `json:"total_time_spent"`
}

// AI

type Suggestion struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority,omitempty"`
	Category Category `json:"category,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type SuggestionsRequest struct {
	Context string `json:"context,omitempty"`
}

type AnalyzeTaskRequest struct {
	Text string `json:"text"`
}

type TaskAnalysis struct {
	Priority         Priority     `json:"priority"`
	Category         Category     `json:"category"`
	EstimatedMinutes int          `json:"estimated_minutes"`
	Suggestions      []Suggestion `json:"suggestions"`
}

type PlanDayRequest struct {
	Hours      float64  `json:"hours"`
	Energy     string   `json:"energy"`
	FocusAreas []string `json:"focus_areas,omitempty"`
}

type PlanBlock struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Task   string `json:"task"`
	TodoID string `json:"todo_id,omitempty"`
}

type DayPlan struct {
	Blocks      []PlanBlock  `json:"blocks"`
	Suggestions []Suggestion `json:"suggestions"`
}

type SmartSuggestionsRequest struct {
	ContextType      string `json:"context_type"`
	Mood             string `json:"mood,omitempty"`
	AvailableMinutes int    `json:"available_minutes,omitempty"`
}

// Export

// DateRange bounds an export. Either end may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Errors

// ErrorResponse is the backend's error body.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
