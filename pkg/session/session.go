// Package session models which screen the client is showing.
//
// State changes only through Reduce. Resolve turns a State into exactly
// one View, checking the selection against the stores so a deleted
// entity can never be shown.
package session

import "github.com/zfogg/streamline/pkg/api"

// Page is a top-level screen reachable by navigation.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageTodos     Page = "todos"
	PageTickets   Page = "tickets"
	PageAnalytics Page = "analytics"
	PageProfile   Page = "profile"
)

// Pages lists every navigable page.
var Pages = []Page{PageDashboard, PageTodos, PageTickets, PageAnalytics, PageProfile}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// SelectionKind says which store a selection points into.
type SelectionKind int

const (
	NoSelection SelectionKind = iota
	TodoSelected
	TicketSelected
)

// Selection references an entity by id. It never holds a copy.
type Selection struct {
	Kind SelectionKind
	ID   string
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Kind == NoSelection || s.ID == ""
}

// State is everything needed to choose a view.
type State struct {
	Loading   bool
	User      *api.User
	Selection Selection
	Page      Page
}

// Initial is the state before stored credentials have been checked.
func Initial() State {
	return State{Loading: true, Page: PageDashboard}
}

// Authenticated reports whether a user is signed in.
func (s State) Authenticated() bool {
	return s.User != nil
}
