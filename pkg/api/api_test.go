package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zfogg/streamline/pkg/client"
)

// capture records the last request the fake backend saw.
type capture struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]interface{}
}

func newTestClient(t *testing.T, status int, reply string) (*Client, *capture) {
	t.Helper()
	got := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.auth = r.Header.Get("Authorization")
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return New(client.New(srv.URL+"/api", 5*time.Second)), got
}

func TestLogin(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`{"message":"Login successful","token":"jwt-1","user":{"id":"u1","email":"a@b.c"}}`)

	resp, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/auth/login", got.path)
	assert.Equal(t, "a@b.c", got.body["email"])
	assert.Equal(t, "pw", got.body["password"])
	assert.Equal(t, "jwt-1", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	c, _ := newTestClient(t, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)

	resp, err := c.Login(context.Background(), "a@b.c", "wrong")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestRegisterOmitsEmptyOptionalFields(t *testing.T) {
	c, got := newTestClient(t, http.StatusCreated,
		`{"token":"jwt-2","user":{"id":"u2","email":"n@b.c"}}`)

	_, err := c.Register(context.Background(), RegisterRequest{Email: "n@b.c", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "/api/auth/register", got.path)
	_, hasName := got.body["name"]
	_, hasMobile := got.body["mobile"]
	assert.False(t, hasName)
	assert.False(t, hasMobile)
}

func TestTokenIsSentAsBearer(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[]`)
	c.SetToken("jwt-3")

	_, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-3", got.auth)

	c.ClearToken()
	_, err = c.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.auth)
}

func TestListTodosDecodesBackendShape(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `[
		{"_id":"t1","text":"Buy milk","completed":false,"priority":"low","category":"shopping",
		 "user_id":"u1","created_at":"2024-05-01T10:00:00.123456"},
		{"_id":"t2","text":"Ship","completed":true,"priority":"high","category":"work",
		 "created_at":"2024-05-02T08:30:00Z","time_spent":45}
	]`)

	todos, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/todos", got.path)

	require.Len(t, todos, 2)
	assert.Equal(t, "t1", todos[0].ID)
	assert.Equal(t, PriorityLow, todos[0].Priority)
	assert.Equal(t, CategoryShopping, todos[0].Category)
	assert.Nil(t, todos[0].TimeSpent)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC), todos[0].CreatedAt.Time)

	require.NotNil(t, todos[1].TimeSpent)
	assert.Equal(t, 45, *todos[1].TimeSpent)
	assert.True(t, todos[1].Completed)
}

func TestUpdateTodoSendsOnlyChangedFields(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"message":"Todo updated successfully"}`)

	done := true
	require.NoError(t, c.UpdateTodo(context.Background(), "t1", UpdateTodoRequest{Completed: &done}))

	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/api/todos/t1", got.path)
	assert.Equal(t, map[string]interface{}{"completed": true}, got.body)
}

func TestDeleteTodoNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.StatusNotFound, `{"message":"Todo not found"}`)

	err := c.DeleteTodo(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetTodo(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`{"_id":"t9","text":"From the web","completed":false,"priority":"low","category":"work","created_at":"2024-05-01T10:00:00"}`)

	todo, err := c.GetTodo(context.Background(), "t9")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/todos/t9", got.path)
	assert.Equal(t, "From the web", todo.Text)
}

func TestTodoComments(t *testing.T) {
	c, got := newTestClient(t, http.StatusCreated,
		`{"_id":"c1","todo_id":"t1","text":"hi","user_email":"a@b.c","created_at":"2024-05-01T10:00:00"}`)

	comment, err := c.CreateTodoComment(context.Background(), "t1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "/api/todos/t1/comments", got.path)
	assert.Equal(t, "hi", got.body["text"])
	assert.Equal(t, "a@b.c", comment.UserEmail)

	require.NoError(t, c.DeleteTodoComment(context.Background(), "t1", "c1"))
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/api/todos/t1/comments/c1", got.path)
}

func TestCreateTicket(t *testing.T) {
	c, got := newTestClient(t, http.StatusCreated,
		`{"_id":"k1","ticket_id":"ACME-1","client_name":"Acme","subject":"Down","description":"",
		  "priority":"high","status":"open","created_at":"2024-05-01T10:00:00"}`)

	ticket, err := c.CreateTicket(context.Background(), CreateTicketRequest{
		TicketID: "ACME-1", ClientName: "Acme", Subject: "Down", Priority: PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/tickets", got.path)
	assert.Equal(t, "ACME-1", got.body["ticket_id"])
	assert.Equal(t, StatusOpen, ticket.Status)
}

func TestGetTicketBadRequest(t *testing.T) {
	c, got := newTestClient(t, http.StatusBadRequest, `{"message":"Invalid ticket id"}`)

	_, err := c.GetTicket(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "/api/tickets/nope", got.path)
	assert.True(t, IsBadRequest(err))
	assert.False(t, IsNotFound(err))
}

func TestUpdateTicketStatus(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"message":"ok"}`)

	status := StatusResolved
	require.NoError(t, c.UpdateTicket(context.Background(), "k1", UpdateTicketRequest{Status: &status}))
	assert.Equal(t, "/api/tickets/k1", got.path)
	assert.Equal(t, map[string]interface{}{"status": "resolved"}, got.body)
}

func TestTracking(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, `{"time_spent":75,"session_minutes":15}`)

	resp, err := c.StopTracking(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "/api/todos/t1/time/stop", got.path)
	assert.Equal(t, 75, resp.TimeSpent)
	assert.Equal(t, 15, resp.SessionMinutes)
}

func TestListActivitiesSendsLimit(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`[{"_id":"a1","type":"todo_created","description":"Created Buy milk","created_at":"2024-05-01T10:00:00"}]`)

	activities, err := c.ListActivities(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, "/api/activities", got.path)
	assert.Equal(t, "limit=15", got.query)
	require.Len(t, activities, 1)
	assert.Equal(t, "todo_created", activities[0].Type)
}

func TestGetStats(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK,
		`{"total_todos":4,"completed_todos":1,"active_todos":3,"completion_rate":25,
		  "tickets_by_status":{"open":2}}`)

	stats, err := c.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/analytics/stats", got.path)
	assert.Equal(t, 4, stats.TotalTodos)
	assert.Equal(t, 2, stats.TicketsByStatus["open"])
}

func TestAIServerErrorIsReported(t *testing.T) {
	c, _ := newTestClient(t, http.StatusServiceUnavailable, `upstream unavailable`)

	_, err := c.GetSuggestions(context.Background(), "morning")
	require.Error(t, err)
	assert.True(t, IsServerError(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestExportPathsAndRange(t *testing.T) {
	tests := []struct {
		target ExportTarget
		format ExportFormat
		path   string
	}{
		{ExportTodos, ExportPDF, "/api/export/pdf"},
		{ExportTodos, ExportExcel, "/api/export/excel"},
		{ExportTickets, ExportPDF, "/api/export/tickets/pdf"},
		{ExportTickets, ExportExcel, "/api/export/tickets/excel"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c, got := newTestClient(t, http.StatusOK, "%PDF-1.4 binary")
			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

			data, err := c.Export(context.Background(), tt.target, tt.format, DateRange{Start: &start, End: &end})
			require.NoError(t, err)
			assert.Equal(t, tt.path, got.path)
			assert.Equal(t, "end_date=2024-01-31&start_date=2024-01-01", got.query)
			assert.Equal(t, []byte("%PDF-1.4 binary"), data)
		})
	}
}

func TestExportWithoutRangeSendsNoDates(t *testing.T) {
	c, got := newTestClient(t, http.StatusOK, "bytes")

	_, err := c.Export(context.Background(), ExportTodos, ExportPDF, DateRange{})
	require.NoError(t, err)
	assert.Empty(t, got.query)
}

func TestNetworkErrorIsNotAPIError(t *testing.T) {
	c := New(client.New("http://127.0.0.1:1/api", time.Second))

	_, err := c.ListTodos(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.False(t, IsServerError(err))
}

func TestExportFormat(t *testing.T) {
	assert.Equal(t, "pdf", ExportPDF.Extension())
	assert.Equal(t, "xlsx", ExportExcel.Extension())
	assert.True(t, ExportExcel.Valid())
	assert.False(t, ExportFormat("csv").Valid())
}
