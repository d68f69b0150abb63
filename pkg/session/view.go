package session

// View is the single screen the client renders for a State.
type View string

const (
	ViewLoading         View = "loading"
	ViewUnauthenticated View = "unauthenticated"
	ViewTodoDetail      View = "todo_detail"
	ViewTicketDetail    View = "ticket_detail"
	ViewDashboard       View = "dashboard"
	ViewTodoList        View = "todo_list"
	ViewTicketList      View = "ticket_list"
	ViewAnalytics       View = "analytics"
	ViewProfile         View = "profile"
)

// Lookup answers whether an id is still present in its store.
type Lookup interface {
	HasTodo(id string) bool
	HasTicket(id string) bool
}

var pageViews = map[Page]View{
	PageDashboard: ViewDashboard,
	PageTodos:     ViewTodoList,
	PageTickets:   ViewTicketList,
	PageAnalytics: ViewAnalytics,
	PageProfile:   ViewProfile,
}

// Resolve picks the view for s. Priority is loading, then signed out,
// then todo detail, then ticket detail, then the current page. A
// selection whose entity is gone from the store is treated as empty.
func Resolve(s State, lookup Lookup) View {
	if s.Loading {
		return ViewLoading
	}
	if !s.Authenticated() {
		return ViewUnauthenticated
	}
	if !s.Selection.Empty() && lookup != nil {
		switch s.Selection.Kind {
		case TodoSelected:
			if lookup.HasTodo(s.Selection.ID) {
				return ViewTodoDetail
			}
		case TicketSelected:
			if lookup.HasTicket(s.Selection.ID) {
				return ViewTicketDetail
			}
		}
	}
	if v, ok := pageViews[s.Page]; ok {
		return v
	}
	return ViewDashboard
}
