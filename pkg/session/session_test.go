package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zfogg/streamline/pkg/api"
)

type fakeLookup struct {
	todos   map[string]bool
	tickets map[string]bool
}

func (f fakeLookup) HasTodo(id string) bool   { return f.todos[id] }
func (f fakeLookup) HasTicket(id string) bool { return f.tickets[id] }

var (
	ada    = api.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}
	stores = fakeLookup{
		todos:   map[string]bool{"t1": true},
		tickets: map[string]bool{"k1": true},
	}
)

func signedIn() State {
	return Reduce(Initial(), BootCompleted{User: &ada})
}

func TestInitialIsLoading(t *testing.T) {
	assert.Equal(t, ViewLoading, Resolve(Initial(), stores))
}

func TestBootCompleted(t *testing.T) {
	s := Reduce(Initial(), BootCompleted{})
	assert.False(t, s.Loading)
	assert.Equal(t, ViewUnauthenticated, Resolve(s, stores))

	s = signedIn()
	assert.Equal(t, ViewDashboard, Resolve(s, stores))
}

func TestBootCompletedCopiesUser(t *testing.T) {
	u := ada
	s := Reduce(Initial(), BootCompleted{User: &u})
	u.Name = "changed"
	assert.Equal(t, "Ada", s.User.Name)
}

func TestLoginAndLogout(t *testing.T) {
	s := Reduce(Initial(), BootCompleted{})
	s = Reduce(s, LoggedIn{User: ada})
	assert.Equal(t, ViewDashboard, Resolve(s, stores))
	assert.Equal(t, "ada@example.com", s.User.Email)

	s = Reduce(s, Navigate{Page: PageTodos})
	s = Reduce(s, SelectTodo{ID: "t1"})
	s = Reduce(s, LoggedOut{})

	assert.Nil(t, s.User)
	assert.True(t, s.Selection.Empty())
	assert.Equal(t, PageDashboard, s.Page)
	assert.Equal(t, ViewUnauthenticated, Resolve(s, stores))
}

func TestResolvePriority(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  View
	}{
		{"loading wins over everything", State{Loading: true, User: &ada, Selection: Selection{TodoSelected, "t1"}}, ViewLoading},
		{"signed out wins over selection", State{Selection: Selection{TodoSelected, "t1"}}, ViewUnauthenticated},
		{"todo detail over page", State{User: &ada, Page: PageTickets, Selection: Selection{TodoSelected, "t1"}}, ViewTodoDetail},
		{"ticket detail over page", State{User: &ada, Page: PageTodos, Selection: Selection{TicketSelected, "k1"}}, ViewTicketDetail},
		{"missing todo falls back to page", State{User: &ada, Page: PageTodos, Selection: Selection{TodoSelected, "gone"}}, ViewTodoList},
		{"missing ticket falls back to page", State{User: &ada, Page: PageTickets, Selection: Selection{TicketSelected, "gone"}}, ViewTicketList},
		{"analytics page", State{User: &ada, Page: PageAnalytics}, ViewAnalytics},
		{"profile page", State{User: &ada, Page: PageProfile}, ViewProfile},
		{"empty page is dashboard", State{User: &ada}, ViewDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.state, stores))
		})
	}
}

func TestBackKeepsPage(t *testing.T) {
	s := Reduce(signedIn(), Navigate{Page: PageTickets})
	s = Reduce(s, SelectTicket{ID: "k1"})
	assert.Equal(t, ViewTicketDetail, Resolve(s, stores))

	s = Reduce(s, Back{})
	assert.True(t, s.Selection.Empty())
	assert.Equal(t, ViewTicketList, Resolve(s, stores))
}

func TestNavigate(t *testing.T) {
	s := Reduce(signedIn(), SelectTodo{ID: "t1"})
	s = Reduce(s, Navigate{Page: PageAnalytics})
	assert.True(t, s.Selection.Empty())
	assert.Equal(t, ViewAnalytics, Resolve(s, stores))

	unchanged := Reduce(s, Navigate{Page: "settings"})
	assert.Equal(t, s, unchanged)
}

func TestSelectIgnoresEmptyID(t *testing.T) {
	s := Reduce(signedIn(), SelectTodo{ID: "t1"})
	s = Reduce(s, SelectTicket{ID: ""})
	assert.Equal(t, Selection{Kind: TodoSelected, ID: "t1"}, s.Selection)
}

func TestProfileUpdated(t *testing.T) {
	updated := ada
	updated.Name = "Ada L."

	s := Reduce(signedIn(), ProfileUpdated{User: updated})
	assert.Equal(t, "Ada L.", s.User.Name)

	out := Reduce(Reduce(Initial(), BootCompleted{}), ProfileUpdated{User: updated})
	assert.Nil(t, out.User, "profile updates need a session")
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Reduce(signedIn(), SelectTodo{ID: "t1"})
	_ = Reduce(s, Back{})
	assert.Equal(t, "t1", s.Selection.ID)
}

func TestPageValid(t *testing.T) {
	for _, p := range Pages {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Page("settings").Valid())
}
