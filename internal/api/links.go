package api

import (
	"context"
	"fmt"

	"github.com/inovacc/linkr/internal/model"
)

// CreateRepoLinkRequest is the payload for registering a repository link.
type CreateRepoLinkRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url"`
	Type        model.LinkType `json:"type"`
	ProjectID   int64          `json:"project_id"`
}

// RepoLinkPatch is a partial update; nil fields are left untouched.
type RepoLinkPatch struct {
	Active *bool `json:"active,omitempty"`
}

// ListRepoLinks returns all repository links for a project.
func (c *Client) ListRepoLinks(ctx context.Context, projectID int64) ([]model.RepoLink, error) {
	path := fmt.Sprintf("/api/projects/%d/repositories", projectID)

	var result []model.RepoLink
	if err := c.doRequest(ctx, "GET", path, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateRepoLink registers a new repository link.
func (c *Client) CreateRepoLink(ctx context.Context, req CreateRepoLinkRequest) (*model.RepoLink, error) {
	path := fmt.Sprintf("/api/projects/%d/repositories", req.ProjectID)

	var result model.RepoLink
	if err := c.doRequestWithBody(ctx, "POST", path, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateRepoLink applies a partial patch to a repository link.
func (c *Client) UpdateRepoLink(ctx context.Context, id int64, patch RepoLinkPatch) error {
	path := fmt.Sprintf("/api/repositories/%d", id)

	return c.doRequestWithBody(ctx, "PATCH", path, patch, nil)
}

// DeleteRepoLink removes a repository link.
func (c *Client) DeleteRepoLink(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/repositories/%d", id)

	return c.doRequest(ctx, "DELETE", path, nil)
}
