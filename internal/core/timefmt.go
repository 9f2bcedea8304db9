package core

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders how long ago ts happened relative to now:
// under a minute "now", under an hour in minutes, under a day in hours,
// one full day "yesterday", under a week in days, and anything older as a
// short calendar date (day + abbreviated month). Future timestamps are
// clamped to "now".
func FormatRelativeTime(ts, now time.Time) string {
	delta := now.Sub(ts)
	if delta < 0 {
		delta = 0
	}

	switch {
	case delta < time.Minute:
		return "now"

	case delta < time.Hour:
		return fmt.Sprintf("%d min ago", int(delta.Minutes()))

	case delta < 24*time.Hour:
		hours := int(delta.Hours())
		if hours == 1 {
			return "1 hour ago"
		}

		return fmt.Sprintf("%d hours ago", hours)

	case delta < 48*time.Hour:
		return "yesterday"

	case delta < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(delta.Hours()/24))

	default:
		return ts.Format("2 Jan")
	}
}
