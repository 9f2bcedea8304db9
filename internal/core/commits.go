package core

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/inovacc/linkr/internal/api"
	"github.com/inovacc/linkr/internal/model"
)

// FeedState is the fully-resolved commit feed the view renders: the
// entries, whether the project has any repositories linked, and an optional
// user-visible error banner. An empty Err means no banner.
type FeedState struct {
	Commits         []model.CommitEntry
	HasRepositories bool
	Err             string
}

const noCommitsMessage = "No commits found. The repositories may be empty or the token may lack permission."

// noReposMarker identifies the backend's benign rejection when a project
// has no repositories linked yet. It is guidance, not an error.
const noReposMarker = "no repositories configured"

// LoadCommits fetches up to limit aggregated commits and resolves the
// response into view state. Interpretation precedence:
//  1. no commits and no repositories: benign empty feed
//  2. per-repository diagnostics: surface the first one
//  3. no commits despite a token and linked repositories: neutral guidance
//  4. otherwise: clear any previous banner
func (s *Service) LoadCommits(ctx context.Context, projectID int64, limit int) FeedState {
	feed, err := s.backend.ListCommits(ctx, projectID, limit)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), noReposMarker) {
			return FeedState{}
		}

		s.logger.Warn("commit feed load failed", "project", projectID, "err", err)

		msg := err.Error()
		if api.StatusOf(err) == 0 && msg == "" {
			msg = "Failed to load commits."
		}

		return FeedState{Err: msg}
	}

	state := FeedState{
		Commits:         feed.Commits,
		HasRepositories: len(feed.Repositories) > 0,
	}

	if len(feed.Commits) == 0 && len(feed.Repositories) == 0 {
		return state
	}

	if len(feed.Errors) > 0 {
		state.Err = describeRepoError(feed.Errors[0])

		return state
	}

	if len(feed.Commits) == 0 && feed.HasToken && len(feed.Repositories) > 0 {
		state.Err = noCommitsMessage

		return state
	}

	return state
}

// describeRepoError turns a per-repository diagnostic into a human-readable
// banner, with dedicated wording for the two auth/visibility cases users
// actually hit.
func describeRepoError(re api.RepoError) string {
	switch re.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Sprintf("The GitHub token lacks the required scope or access to %s.", re.Repo)
	case http.StatusNotFound:
		return fmt.Sprintf("Repository %s was not found or is not accessible with the configured token.", re.Repo)
	}

	if re.Repo != "" {
		return fmt.Sprintf("%s: %s", re.Repo, re.Message)
	}

	return re.Message
}
