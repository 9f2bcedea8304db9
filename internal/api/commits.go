package api

import (
	"context"
	"fmt"

	"github.com/inovacc/linkr/internal/model"
)

// RepoError is a per-repository diagnostic attached to a commit feed
// response when the backend failed to reach one of the linked providers.
type RepoError struct {
	// Repo is the repository the backend could not read
	Repo string `json:"repo"`

	// Status is the upstream HTTP status, when one was received
	Status int `json:"status,omitempty"`

	// Message is the upstream or backend-generated description
	Message string `json:"message"`
}

// CommitFeed is the aggregated commit response for a project.
type CommitFeed struct {
	// Commits is the ordered list of records, newest first
	Commits []model.CommitEntry `json:"commits"`

	// Repositories names the repositories the backend consulted
	Repositories []string `json:"repositories,omitempty"`

	// Errors carries per-repository diagnostics
	Errors []RepoError `json:"errors,omitempty"`

	// HasToken indicates whether any token is configured for the project
	HasToken bool `json:"has_token"`
}

// ListCommits fetches up to limit aggregated commits for a project.
func (c *Client) ListCommits(ctx context.Context, projectID int64, limit int) (*CommitFeed, error) {
	path := fmt.Sprintf("/api/projects/%d/commits?limit=%d", projectID, limit)

	var result CommitFeed
	if err := c.doRequest(ctx, "GET", path, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
