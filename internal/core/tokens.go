package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/inovacc/linkr/internal/api"
	"github.com/inovacc/linkr/internal/model"
)

// TokensState is the token list as the list view renders it, plus the
// resolved "active token" header entry.
type TokensState struct {
	Tokens []model.GitHubToken
	Active *model.GitHubToken
	Err    string
}

// LoadTokens fetches the GitHub tokens for a project. The backend is
// trusted to keep at most one token active; when it does not, the first one
// wins and the disagreement is logged.
func (s *Service) LoadTokens(ctx context.Context, rawProject string) TokensState {
	projectID, err := ParseProjectID(rawProject)
	if err != nil {
		return TokensState{}
	}

	tokens, err := s.backend.ListTokens(ctx, projectID)
	if err != nil {
		s.logger.Warn("token load failed", "project", projectID, "err", err)

		return TokensState{Err: fmt.Sprintf("Failed to load tokens: %v", err)}
	}

	active, count := model.ActiveToken(tokens)
	if count > 1 {
		s.logger.Warn("multiple active tokens for project; displaying the first",
			"project", projectID, "active_count", count)
	}

	return TokensState{Tokens: tokens, Active: active}
}

// TokenForm is the new-token form buffer. The secret is held only long
// enough to submit it.
type TokenForm struct {
	Name   string
	Secret string
}

// CreateToken validates and submits a new GitHub token.
func (s *Service) CreateToken(ctx context.Context, rawProject string, form TokenForm) (*model.GitHubToken, error) {
	projectID, err := ParseProjectID(rawProject)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	secret := strings.TrimSpace(form.Secret)
	if secret == "" {
		return nil, &ValidationError{Field: "token", Reason: "is required"}
	}

	token, err := s.backend.CreateToken(ctx, api.CreateTokenRequest{
		Name:      name,
		Token:     secret,
		ProjectID: projectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return token, nil
}

// ToggleToken flips a token's active flag.
func (s *Service) ToggleToken(ctx context.Context, token model.GitHubToken) error {
	active := !token.Active
	if err := s.backend.UpdateToken(ctx, token.ID, api.TokenPatch{Active: &active}); err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	return nil
}

// DeleteToken removes a token.
func (s *Service) DeleteToken(ctx context.Context, id int64) error {
	if err := s.backend.DeleteToken(ctx, id); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
