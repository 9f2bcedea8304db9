package core

import (
	"context"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"
)

// NewGitHubClient creates an authenticated GitHub client for preflight
// checks against the provider itself (the backend does its own fetching).
func NewGitHubClient(ctx context.Context, token string) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return github.NewClient(tc)
}
