package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/model"
)

var (
	hashStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	authorStyle = lipgloss.NewStyle().Bold(true)
	whenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const (
	emptyFeedMessage   = "No repositories configured."
	emptyFeedHint      = "Add a GitHub repository to see its commits here."
	emptyFeedNoCommits = "No commits available."
)

// renderFeed renders the commit feed state. A missing repository setup is
// guidance, not an error; everything else with an Err set gets the error
// banner.
func renderFeed(state core.FeedState, now time.Time) string {
	var sb strings.Builder

	if state.Err != "" {
		sb.WriteString(bannerStyle.Render(state.Err) + "\n\n")
	}

	if len(state.Commits) == 0 {
		if state.Err == "" {
			if state.HasRepositories {
				sb.WriteString(emptyFeedNoCommits + "\n")
			} else {
				sb.WriteString(emptyFeedMessage + "\n")
				sb.WriteString(dimStyle.Render(emptyFeedHint) + "\n")
			}
		}

		return sb.String()
	}

	for _, entry := range state.Commits {
		sb.WriteString(renderCommit(entry, now) + "\n")
	}

	return sb.String()
}

func renderCommit(entry model.CommitEntry, now time.Time) string {
	switch entry.Kind {
	case model.CommitKindLive:
		c := entry.Live

		line := fmt.Sprintf("%s %s %s %s",
			hashStyle.Render(shortHash(c.Hash)),
			authorStyle.Render(c.Author),
			firstLine(c.Message),
			whenStyle.Render(core.FormatRelativeTime(c.Timestamp, now)),
		)
		if c.Repo != "" {
			line = fmt.Sprintf("%s %s", line, dimStyle.Render(c.Repo))
		}

		return line

	case model.CommitKindStatic:
		c := entry.Static

		return fmt.Sprintf("%s %s %s %s",
			hashStyle.Render(shortHash(c.Hash)),
			authorStyle.Render(c.Author),
			firstLine(c.Message),
			whenStyle.Render(c.Timestamp),
		)
	}

	return ""
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}

	return hash
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}

	return message
}
