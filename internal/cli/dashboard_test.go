package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/linkr/internal/api"
	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/model"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	links  []model.RepoLink
	tokens []model.GitHubToken
	feed   api.CommitFeed

	createLinkErr  error
	createTokenErr error

	listLinkCalls   int
	listTokenCalls  int
	listCommitCalls int
	createdLinks    []api.CreateRepoLinkRequest
	createdTokens   []api.CreateTokenRequest
	deletedLinks    []int64
	deletedTokens   []int64
	patchedLinks    []int64
	patchedTokens   []int64
}

func (f *fakeBackend) ListRepoLinks(_ context.Context, _ int64) ([]model.RepoLink, error) {
	f.listLinkCalls++
	return f.links, nil
}

func (f *fakeBackend) CreateRepoLink(_ context.Context, req api.CreateRepoLinkRequest) (*model.RepoLink, error) {
	if f.createLinkErr != nil {
		return nil, f.createLinkErr
	}

	f.createdLinks = append(f.createdLinks, req)
	return &model.RepoLink{ID: 1, Label: req.Name, URL: req.URL}, nil
}

func (f *fakeBackend) UpdateRepoLink(_ context.Context, id int64, _ api.RepoLinkPatch) error {
	f.patchedLinks = append(f.patchedLinks, id)
	return nil
}

func (f *fakeBackend) DeleteRepoLink(_ context.Context, id int64) error {
	f.deletedLinks = append(f.deletedLinks, id)
	return nil
}

func (f *fakeBackend) ListTokens(_ context.Context, _ int64) ([]model.GitHubToken, error) {
	f.listTokenCalls++
	return f.tokens, nil
}

func (f *fakeBackend) CreateToken(_ context.Context, req api.CreateTokenRequest) (*model.GitHubToken, error) {
	if f.createTokenErr != nil {
		return nil, f.createTokenErr
	}

	f.createdTokens = append(f.createdTokens, req)
	return &model.GitHubToken{ID: 1, Name: req.Name}, nil
}

func (f *fakeBackend) UpdateToken(_ context.Context, id int64, _ api.TokenPatch) error {
	f.patchedTokens = append(f.patchedTokens, id)
	return nil
}

func (f *fakeBackend) DeleteToken(_ context.Context, id int64) error {
	f.deletedTokens = append(f.deletedTokens, id)
	return nil
}

func (f *fakeBackend) ListCommits(_ context.Context, _ int64, _ int) (*api.CommitFeed, error) {
	f.listCommitCalls++
	feed := f.feed
	return &feed, nil
}

// drive executes a command tree and feeds every resulting message back into
// the model until the chain settles. Spinner ticks are dropped so the loop
// terminates.
func drive(t *testing.T, m DashboardModel, cmd tea.Cmd) DashboardModel {
	t.Helper()

	if cmd == nil {
		return m
	}

	msg := cmd()
	if msg == nil {
		return m
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drive(t, m, c)
		}

		return m
	}

	if _, ok := msg.(spinner.TickMsg); ok {
		return m
	}

	next, nextCmd := m.Update(msg)

	return drive(t, next.(DashboardModel), nextCmd)
}

func newTestDashboard(backend *fakeBackend) DashboardModel {
	service := core.NewService(backend, nil)

	return NewDashboard(service, "7", 8)
}

func TestDashboardInitLoadsAllThreeLists(t *testing.T) {
	backend := &fakeBackend{
		links:  []model.RepoLink{{ID: 1, Label: "widgets", URL: "https://github.com/acme/widgets"}},
		tokens: []model.GitHubToken{{ID: 2, Name: "ci", Active: true}},
	}

	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	require.Equal(t, 1, backend.listLinkCalls)
	require.Equal(t, 1, backend.listTokenCalls)
	require.Equal(t, 1, backend.listCommitCalls)
	require.True(t, m.links.FromAPI)
	require.Len(t, m.linkList.Items(), 1)
	require.Len(t, m.tokenList.Items(), 1)
	require.NotNil(t, m.tokens.Active)
}

func TestCreateRepoReloadsLinksAndFeedOnce(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	backend.listLinkCalls = 0
	backend.listCommitCalls = 0
	backend.listTokenCalls = 0

	next, cmd := m.Update(repoFormSubmittedMsg{form: core.RepoLinkForm{
		URL: "https://github.com/acme/widgets",
	}})
	m = drive(t, next.(DashboardModel), cmd)

	require.Len(t, backend.createdLinks, 1)
	require.Equal(t, 1, backend.listLinkCalls)
	require.Equal(t, 1, backend.listCommitCalls)
	require.Zero(t, backend.listTokenCalls, "repo mutations must not touch the token list")
}

func TestTokenInvalidationReloadsTokensOnce(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	backend.listTokenCalls = 0
	backend.listLinkCalls = 0

	next, cmd := m.Update(tokensInvalidatedMsg{})
	m = drive(t, next.(DashboardModel), cmd)

	require.Equal(t, 1, backend.listTokenCalls)
	require.Zero(t, backend.listLinkCalls, "token invalidation must not reload repositories")
}

func TestCreateTokenTriggersTokenInvalidation(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	backend.listTokenCalls = 0

	next, cmd := m.Update(tokenFormSubmittedMsg{form: core.TokenForm{
		Name:   "ci",
		Secret: "sekret",
	}})
	m = drive(t, next.(DashboardModel), cmd)

	require.Len(t, backend.createdTokens, 1)
	require.Equal(t, 1, backend.listTokenCalls)
}

func TestConfirmedDeleteRemovesAndReloads(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	backend.listLinkCalls = 0

	next, cmd := m.Update(confirmAnsweredMsg{
		confirmed: true,
		target:    deleteTarget{kind: targetRepo, id: 42, label: "widgets"},
	})
	m = drive(t, next.(DashboardModel), cmd)

	require.Equal(t, []int64{42}, backend.deletedLinks)
	require.Equal(t, 1, backend.listLinkCalls)
}

func TestDeclinedDeleteDoesNothing(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	backend.listLinkCalls = 0

	next, cmd := m.Update(confirmAnsweredMsg{
		confirmed: false,
		target:    deleteTarget{kind: targetRepo, id: 42},
	})
	m = drive(t, next.(DashboardModel), cmd)

	require.Empty(t, backend.deletedLinks)
	require.Zero(t, backend.listLinkCalls)
	require.Equal(t, modeBrowse, m.mode)
}

func TestSetProjectResetsLoadedMarker(t *testing.T) {
	backend := &fakeBackend{
		links: []model.RepoLink{{ID: 1, Label: "widgets"}},
	}

	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())
	require.True(t, m.links.FromAPI)

	m, cmd := m.SetProject("9")
	require.False(t, m.links.FromAPI, "switching projects must drop the loaded-from-API marker")
	require.Empty(t, m.linkList.Items())

	m = drive(t, m, cmd)
	require.True(t, m.links.FromAPI)
}

func TestNonNumericProjectSkipsBackend(t *testing.T) {
	backend := &fakeBackend{}
	service := core.NewService(backend, nil)
	m := NewDashboard(service, "template-a", 8)
	m = drive(t, m, m.Init())

	require.Zero(t, backend.listLinkCalls)
	require.Zero(t, backend.listTokenCalls)
	require.Zero(t, backend.listCommitCalls)
	require.False(t, m.links.FromAPI)
}

func TestFailedRepoCreateKeepsModalOpen(t *testing.T) {
	backend := &fakeBackend{createLinkErr: errors.New("server rejected the link")}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	m.mode = modeAddRepo
	m.addRepo = newAddRepoModel()
	m.addRepo.inputs[repoFieldURL].SetValue("https://github.com/acme/widgets")

	next, cmd := m.Update(repoFormSubmittedMsg{form: core.RepoLinkForm{
		URL: "https://github.com/acme/widgets",
	}})
	m = drive(t, next.(DashboardModel), cmd)

	require.Equal(t, modeAddRepo, m.mode, "modal must stay open on a backend create error")
	require.Contains(t, m.addRepo.fieldErr, "server rejected the link")
	require.Empty(t, m.banner, "a create error belongs in the modal, not the browse banner")
	require.Equal(t, "https://github.com/acme/widgets", m.addRepo.inputs[repoFieldURL].Value(),
		"form buffer must survive for resubmission")
}

func TestSuccessfulRepoCreateClosesModal(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	m.mode = modeAddRepo
	m.addRepo = newAddRepoModel()

	next, cmd := m.Update(repoFormSubmittedMsg{form: core.RepoLinkForm{
		URL: "https://github.com/acme/widgets",
	}})
	m = drive(t, next.(DashboardModel), cmd)

	require.Equal(t, modeBrowse, m.mode)
	require.Len(t, backend.createdLinks, 1)
}

func TestFailedTokenCreateKeepsModalOpen(t *testing.T) {
	backend := &fakeBackend{createTokenErr: errors.New("server rejected the token")}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	m.mode = modeAddToken
	m.addToken = newAddTokenModel()
	m.addToken.inputs[tokenFieldName].SetValue("ci")

	next, cmd := m.Update(tokenFormSubmittedMsg{form: core.TokenForm{
		Name:   "ci",
		Secret: "sekret",
	}})
	m = drive(t, next.(DashboardModel), cmd)

	require.Equal(t, modeAddToken, m.mode, "modal must stay open on a backend create error")
	require.Contains(t, m.addToken.fieldErr, "server rejected the token")
	require.Empty(t, m.banner)
}

func TestSuccessfulTokenCreateClosesModal(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)
	m = drive(t, m, m.Init())

	m.mode = modeAddToken
	m.addToken = newAddTokenModel()

	next, cmd := m.Update(tokenFormSubmittedMsg{form: core.TokenForm{
		Name:   "ci",
		Secret: "sekret",
	}})
	m = drive(t, next.(DashboardModel), cmd)

	require.Equal(t, modeBrowse, m.mode)
	require.Len(t, backend.createdTokens, 1)
}

func TestFirstTokenLoadFailureIsSilent(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)

	next, _ := m.Update(tokensLoadedMsg{state: core.TokensState{Err: "Failed to load tokens: down"}})
	m = next.(DashboardModel)
	require.Empty(t, m.tokens.Err, "a failed first token load must stay quiet")

	next, _ = m.Update(tokensLoadedMsg{state: core.TokensState{}})
	m = next.(DashboardModel)

	next, _ = m.Update(tokensLoadedMsg{state: core.TokensState{Err: "Failed to load tokens: down"}})
	m = next.(DashboardModel)
	require.NotEmpty(t, m.tokens.Err, "later failures must be shown")
}

func TestSuccessfulMutationClearsBanner(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)

	next, _ := m.Update(mutationFailedMsg{err: &core.ValidationError{Field: "url", Reason: "is required"}})
	m = next.(DashboardModel)
	require.NotEmpty(t, m.banner)

	next, cmd := m.Update(linksInvalidatedMsg{})
	m = drive(t, next.(DashboardModel), cmd)

	require.Empty(t, m.banner)
}

func TestMutationFailureSetsBanner(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestDashboard(backend)

	next, _ := m.Update(mutationFailedMsg{err: &core.ValidationError{Field: "url", Reason: "is required"}})
	m = next.(DashboardModel)

	require.Contains(t, m.banner, "url")
}
