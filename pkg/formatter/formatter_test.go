package formatter

import (
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/zfogg/streamline/pkg/api"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   time.Time
		want string
	}{
		{now.Add(-time.Hour), "Today"},
		{now.Add(-24 * time.Hour), "Yesterday"},
		{time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), "Jan 2"},
		{time.Time{}, "-"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in, now); got != tt.want {
			t.Errorf("FormatDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 5, 10, 15, 4, 0, 0, time.UTC)
	if got := FormatTime(ts, time.UTC); got != "3:04 PM" {
		t.Errorf("FormatTime = %q", got)
	}
	east := time.FixedZone("UTC+2", 2*3600)
	if got := FormatTime(ts, east); got != "5:04 PM" {
		t.Errorf("FormatTime in zone = %q", got)
	}
	if got := FormatTime(time.Time{}, nil); got != "-" {
		t.Errorf("zero time = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:   "0m",
		45:  "45m",
		60:  "1h 00m",
		65:  "1h 05m",
		600: "10h 00m",
		-5:  "0m",
	}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}

	if got := FormatTimeSpent(nil); got != "-" {
		t.Errorf("FormatTimeSpent(nil) = %q", got)
	}
	n := 90
	if got := FormatTimeSpent(&n); got != "1h 30m" {
		t.Errorf("FormatTimeSpent(90) = %q", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{65 * time.Second, "00:01:05"},
		{time.Hour + 2*time.Minute + 3*time.Second + 900*time.Millisecond, "01:02:03"},
		{-time.Second, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is far too long", 10, "this is..."},
		{"multi\nline   text", 20, "multi line text"},
		{"héllo wörld", 8, "héllo..."},
		{"abc", 0, "abc"},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestBadges(t *testing.T) {
	if PriorityColor(api.PriorityHigh) != Error || PriorityColor(api.PriorityMedium) != Warning || PriorityColor(api.PriorityLow) != Success {
		t.Error("priority colours should be red, yellow and green")
	}
	if got := Priority(api.PriorityHigh); got != "high" {
		t.Errorf("Priority = %q", got)
	}
	if got := Status(api.StatusInProgress); got != "in-progress" {
		t.Errorf("Status = %q", got)
	}
	if StatusColor(api.StatusClosed) != Faint {
		t.Error("closed tickets should be faint")
	}
	if Checkbox(true) != "[x]" || Checkbox(false) != "[ ]" {
		t.Error("unexpected checkbox rendering")
	}
}

func TestShortIDAndPercent(t *testing.T) {
	if got := ShortID("65f1c2a9b3d4e5f60718293a"); got != "0718293a" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("t1"); got != "t1" {
		t.Errorf("ShortID short = %q", got)
	}
	if got := FormatPercent(66.666); got != "66.7%" {
		t.Errorf("FormatPercent = %q", got)
	}
}
