package core

import (
	"context"
	"log/slog"

	"github.com/inovacc/linkr/internal/api"
	"github.com/inovacc/linkr/internal/model"
)

// Backend is the slice of the API client the controllers need. Tests
// substitute a fake; production code passes *api.Client.
type Backend interface {
	ListRepoLinks(ctx context.Context, projectID int64) ([]model.RepoLink, error)
	CreateRepoLink(ctx context.Context, req api.CreateRepoLinkRequest) (*model.RepoLink, error)
	UpdateRepoLink(ctx context.Context, id int64, patch api.RepoLinkPatch) error
	DeleteRepoLink(ctx context.Context, id int64) error
	ListTokens(ctx context.Context, projectID int64) ([]model.GitHubToken, error)
	CreateToken(ctx context.Context, req api.CreateTokenRequest) (*model.GitHubToken, error)
	UpdateToken(ctx context.Context, id int64, patch api.TokenPatch) error
	DeleteToken(ctx context.Context, id int64) error
	ListCommits(ctx context.Context, projectID int64, limit int) (*api.CommitFeed, error)
}

// Service wraps the backend with the page's reconciliation semantics:
// loads replace state wholesale, every mutation is followed by a reload,
// and nothing is ever patched optimistically.
type Service struct {
	backend Backend
	logger  *slog.Logger
}

// NewService creates a controller service around a backend client.
func NewService(backend Backend, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{backend: backend, logger: logger}
}
