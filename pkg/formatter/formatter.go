package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/views"
)

var (
	Bold    = color.New(color.Bold)
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Warning = color.New(color.FgYellow)
	Faint   = color.New(color.Faint)
)

// FormatDate labels t as Today, Yesterday or "Jan 2" relative to now.
func FormatDate(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return views.DateLabel(t, now)
}

// FormatTime renders the wall-clock time of t in loc, e.g. "3:04 PM".
func FormatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("3:04 PM")
}

// FormatDuration renders minutes as "45m" or "1h 05m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// FormatTimeSpent renders an optional time_spent value.
func FormatTimeSpent(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return FormatDuration(*minutes)
}

// FormatElapsed renders a running timer as "HH:MM:SS".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Checkbox renders a todo's completion state.
func Checkbox(done bool) string {
	if done {
		return Success.Sprint("[x]")
	}
	return "[ ]"
}

// PriorityColor is red for high, yellow for medium and green for low.
func PriorityColor(p api.Priority) *color.Color {
	switch p {
	case api.PriorityHigh:
		return Error
	case api.PriorityMedium:
		return Warning
	default:
		return Success
	}
}

// Priority renders a coloured priority label.
func Priority(p api.Priority) string {
	return PriorityColor(p).Sprint(string(p))
}

// StatusColor picks a colour per ticket status.
func StatusColor(s api.TicketStatus) *color.Color {
	switch s {
	case api.StatusOpen:
		return Info
	case api.StatusInProgress:
		return Warning
	case api.StatusResolved:
		return Success
	default:
		return Faint
	}
}

// Status renders a coloured ticket status label.
func Status(s api.TicketStatus) string {
	return StatusColor(s).Sprint(string(s))
}

// ShortID returns the last eight characters of a backend id.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
