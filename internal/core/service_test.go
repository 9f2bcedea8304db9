package core

import (
	"context"
	"errors"

	"github.com/inovacc/linkr/internal/api"
	"github.com/inovacc/linkr/internal/model"
)

// fakeBackend records calls and serves canned responses.
type fakeBackend struct {
	links     []model.RepoLink
	linksErr  error
	tokens    []model.GitHubToken
	tokensErr error
	feed      *api.CommitFeed
	feedErr   error

	createLinkErr  error
	createTokenErr error
	updateErr      error
	deleteErr      error

	listLinksCalls   int
	listTokensCalls  int
	listCommitsCalls int
	createdLinks     []api.CreateRepoLinkRequest
	createdTokens    []api.CreateTokenRequest
	patchedLinks     []int64
	patchedTokens    []int64
	deletedLinks     []int64
	deletedTokens    []int64
}

var errBackendDown = errors.New("backend unavailable")

func (f *fakeBackend) ListRepoLinks(_ context.Context, _ int64) ([]model.RepoLink, error) {
	f.listLinksCalls++

	return f.links, f.linksErr
}

func (f *fakeBackend) CreateRepoLink(_ context.Context, req api.CreateRepoLinkRequest) (*model.RepoLink, error) {
	if f.createLinkErr != nil {
		return nil, f.createLinkErr
	}

	f.createdLinks = append(f.createdLinks, req)

	return &model.RepoLink{ID: 100, Label: req.Name, URL: req.URL, Type: req.Type}, nil
}

func (f *fakeBackend) UpdateRepoLink(_ context.Context, id int64, _ api.RepoLinkPatch) error {
	if f.updateErr != nil {
		return f.updateErr
	}

	f.patchedLinks = append(f.patchedLinks, id)

	return nil
}

func (f *fakeBackend) DeleteRepoLink(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.deletedLinks = append(f.deletedLinks, id)

	return nil
}

func (f *fakeBackend) ListTokens(_ context.Context, _ int64) ([]model.GitHubToken, error) {
	f.listTokensCalls++

	return f.tokens, f.tokensErr
}

func (f *fakeBackend) CreateToken(_ context.Context, req api.CreateTokenRequest) (*model.GitHubToken, error) {
	if f.createTokenErr != nil {
		return nil, f.createTokenErr
	}

	f.createdTokens = append(f.createdTokens, req)

	return &model.GitHubToken{ID: 200, Name: req.Name}, nil
}

func (f *fakeBackend) UpdateToken(_ context.Context, id int64, _ api.TokenPatch) error {
	if f.updateErr != nil {
		return f.updateErr
	}

	f.patchedTokens = append(f.patchedTokens, id)

	return nil
}

func (f *fakeBackend) DeleteToken(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.deletedTokens = append(f.deletedTokens, id)

	return nil
}

func (f *fakeBackend) ListCommits(_ context.Context, _ int64, _ int) (*api.CommitFeed, error) {
	f.listCommitsCalls++

	return f.feed, f.feedErr
}
