package views

import (
	"time"

	"github.com/zfogg/streamline/pkg/api"
)

const (
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"
)

// CommentGroup is one date bucket of a comment timeline.
type CommentGroup struct {
	Label    string
	Comments []api.Comment
}

// DateLabel names the calendar day of t relative to now, in now's
// location: "Today", "Yesterday" or a short "Jan 2" date.
func DateLabel(t, now time.Time) string {
	local := t.In(now.Location())
	if sameDay(local, now) {
		return LabelToday
	}
	if sameDay(local, now.AddDate(0, 0, -1)) {
		return LabelYesterday
	}
	return local.Format("Jan 2")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// GroupCommentsByDate buckets comments by DateLabel. Buckets appear in
// the order their label is first seen and keep input order inside.
func GroupCommentsByDate(comments []api.Comment, now time.Time) []CommentGroup {
	var groups []CommentGroup
	index := make(map[string]int)

	for _, c := range comments {
		label := DateLabel(c.CreatedAt.Time, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, CommentGroup{Label: label})
		}
		groups[i].Comments = append(groups[i].Comments, c)
	}
	return groups
}
