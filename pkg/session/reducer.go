package session

import "github.com/zfogg/streamline/pkg/api"

// Action is an event that moves the session between states.
type Action interface {
	action()
}

// BootCompleted ends the credential check. A nil User means no session.
type BootCompleted struct{ User *api.User }

// LoggedIn follows a successful login or registration.
type LoggedIn struct{ User api.User }

// ProfileUpdated replaces the user after a confirmed profile change.
type ProfileUpdated struct{ User api.User }

type LoggedOut struct{}

type SelectTodo struct{ ID string }

type SelectTicket struct{ ID string }

// Back leaves a detail view for the page it was opened from.
type Back struct{}

// Navigate switches page. Unknown pages are ignored.
type Navigate struct{ Page Page }

func (BootCompleted) action()  {}
func (LoggedIn) action()       {}
func (ProfileUpdated) action() {}
func (LoggedOut) action()      {}
func (SelectTodo) action()     {}
func (SelectTicket) action()   {}
func (Back) action()           {}
func (Navigate) action()       {}

func userPtr(u api.User) *api.User {
	return &u
}

// Reduce returns the state after applying a. It does not modify s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case BootCompleted:
		s.Loading = false
		s.User = nil
		if a.User != nil {
			s.User = userPtr(*a.User)
		}
	case LoggedIn:
		s.Loading = false
		s.User = userPtr(a.User)
		s.Selection = Selection{}
		s.Page = PageDashboard
	case ProfileUpdated:
		if s.User != nil {
			s.User = userPtr(a.User)
		}
	case LoggedOut:
		s.User = nil
		s.Selection = Selection{}
		s.Page = PageDashboard
	case SelectTodo:
		if a.ID != "" {
			s.Selection = Selection{Kind: TodoSelected, ID: a.ID}
		}
	case SelectTicket:
		if a.ID != "" {
			s.Selection = Selection{Kind: TicketSelected, ID: a.ID}
		}
	case Back:
		s.Selection = Selection{}
	case Navigate:
		if a.Page.Valid() {
			s.Page = a.Page
			s.Selection = Selection{}
		}
	}
	if s.Page == "" {
		s.Page = PageDashboard
	}
	return s
}
