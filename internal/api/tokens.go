package api

import (
	"context"
	"fmt"

	"github.com/inovacc/linkr/internal/model"
)

// CreateTokenRequest is the payload for registering a GitHub token. The
// secret is encrypted at rest by the backend and never returned.
type CreateTokenRequest struct {
	Name      string `json:"name"`
	Token     string `json:"token"`
	ProjectID int64  `json:"project_id"`
}

// TokenPatch is a partial update; nil fields are left untouched.
type TokenPatch struct {
	Active *bool `json:"active,omitempty"`
}

// ListTokens returns all GitHub tokens registered for a project.
func (c *Client) ListTokens(ctx context.Context, projectID int64) ([]model.GitHubToken, error) {
	path := fmt.Sprintf("/api/projects/%d/tokens", projectID)

	var result []model.GitHubToken
	if err := c.doRequest(ctx, "GET", path, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateToken registers a new GitHub token for a project.
func (c *Client) CreateToken(ctx context.Context, req CreateTokenRequest) (*model.GitHubToken, error) {
	path := fmt.Sprintf("/api/projects/%d/tokens", req.ProjectID)

	var result model.GitHubToken
	if err := c.doRequestWithBody(ctx, "POST", path, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateToken applies a partial patch to a token.
func (c *Client) UpdateToken(ctx context.Context, id int64, patch TokenPatch) error {
	path := fmt.Sprintf("/api/tokens/%d", id)

	return c.doRequestWithBody(ctx, "PATCH", path, patch, nil)
}

// DeleteToken removes a token.
func (c *Client) DeleteToken(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/tokens/%d", id)

	return c.doRequest(ctx, "DELETE", path, nil)
}
