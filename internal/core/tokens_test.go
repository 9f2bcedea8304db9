package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/linkr/internal/model"
)

func TestLoadTokens_NonNumericProjectSkipsBackend(t *testing.T) {
	backend := &fakeBackend{tokens: []model.GitHubToken{{ID: 1}}}
	svc := NewService(backend, nil)

	state := svc.LoadTokens(context.Background(), "template-alpha")
	require.Empty(t, state.Tokens)
	require.Nil(t, state.Active)
	require.Zero(t, backend.listTokensCalls)
}

func TestLoadTokens_ActiveSelection(t *testing.T) {
	backend := &fakeBackend{tokens: []model.GitHubToken{
		{ID: 1, Name: "ci"},
		{ID: 2, Name: "deploy", Active: true},
		{ID: 3, Name: "backup", Active: true},
	}}
	svc := NewService(backend, nil)

	state := svc.LoadTokens(context.Background(), "42")
	require.Len(t, state.Tokens, 3)
	require.NotNil(t, state.Active)
	require.Equal(t, "deploy", state.Active.Name)
}

func TestLoadTokens_FailureSurfacesError(t *testing.T) {
	backend := &fakeBackend{tokensErr: errBackendDown}
	svc := NewService(backend, nil)

	state := svc.LoadTokens(context.Background(), "42")
	require.Empty(t, state.Tokens)
	require.Contains(t, state.Err, "Failed to load tokens")
}

func TestCreateToken_Validation(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, nil)

	var v *ValidationError

	_, err := svc.CreateToken(context.Background(), "42", TokenForm{Secret: "x"})
	require.ErrorAs(t, err, &v)
	require.Equal(t, "name", v.Field)

	_, err = svc.CreateToken(context.Background(), "42", TokenForm{Name: "ci", Secret: "   "})
	require.ErrorAs(t, err, &v)
	require.Equal(t, "token", v.Field)

	var invalid *InvalidProjectError
	_, err = svc.CreateToken(context.Background(), "", TokenForm{Name: "ci", Secret: "x"})
	require.ErrorAs(t, err, &invalid)

	require.Empty(t, backend.createdTokens)
}

func TestCreateToken_Submits(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, nil)

	token, err := svc.CreateToken(context.Background(), "42", TokenForm{Name: " ci ", Secret: " s3cret "})
	require.NoError(t, err)
	require.NotNil(t, token)

	require.Len(t, backend.createdTokens, 1)
	require.Equal(t, "ci", backend.createdTokens[0].Name)
	require.Equal(t, "s3cret", backend.createdTokens[0].Token)
	require.Equal(t, int64(42), backend.createdTokens[0].ProjectID)
}

func TestToggleToken(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, nil)

	require.NoError(t, svc.ToggleToken(context.Background(), model.GitHubToken{ID: 5, Active: true}))
	require.Equal(t, []int64{5}, backend.patchedTokens)

	backend.updateErr = errBackendDown
	err := svc.ToggleToken(context.Background(), model.GitHubToken{ID: 6})
	require.Error(t, err)
	require.Equal(t, []int64{5}, backend.patchedTokens)
}

func TestDeleteToken(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, nil)

	require.NoError(t, svc.DeleteToken(context.Background(), 5))
	require.Equal(t, []int64{5}, backend.deletedTokens)
}

func TestHasRepoScope(t *testing.T) {
	require.True(t, HasRepoScope([]string{"repo", "read:org"}))
	require.True(t, HasRepoScope([]string{"public_repo"}))
	require.False(t, HasRepoScope([]string{"gist", "read:org"}))
	require.False(t, HasRepoScope(nil))
}
