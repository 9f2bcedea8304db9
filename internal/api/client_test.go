package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inovacc/linkr/internal/model"
)

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient("", ClientOptions{})
	require.Error(t, err)
}

func TestListRepoLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		require.Equal(t, "/api/projects/42/repositories", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"id": 1, "label": "widgets", "url": "https://github.com/acme/widgets", "type": "source-control", "repository": {"id": 7, "active": true}},
			{"id": 2, "label": "handbook", "url": "https://docs.acme.io", "type": "documentation"}
		]`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, ClientOptions{Session: "s3cret"})
	require.NoError(t, err)

	links, err := c.ListRepoLinks(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, links, 2)
	require.True(t, links[0].Active())
	require.Nil(t, links[1].Record)
	require.Equal(t, model.LinkTypeDocumentation, links[1].Type)
}

func TestCreateRepoLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/projects/42/repositories", r.URL.Path)

		var req CreateRepoLinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "widgets", req.Name)
		require.Equal(t, model.LinkTypeSourceControl, req.Type)

		_, _ = w.Write([]byte(`{"id": 9, "label": "widgets", "url": "https://github.com/acme/widgets", "type": "source-control"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, ClientOptions{})
	require.NoError(t, err)

	link, err := c.CreateRepoLink(context.Background(), CreateRepoLinkRequest{
		Name:      "widgets",
		URL:       "https://github.com/acme/widgets",
		Type:      model.LinkTypeSourceControl,
		ProjectID: 42,
	})
	require.NoError(t, err)
	require.Equal(t, int64(9), link.ID)
}

func TestUpdateToken_PatchBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "PATCH", r.Method)
		require.Equal(t, "/api/tokens/5", r.URL.Path)

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.Equal(t, false, patch["active"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, ClientOptions{})
	require.NoError(t, err)

	active := false
	require.NoError(t, c.UpdateToken(context.Background(), 5, TokenPatch{Active: &active}))
}

func TestAPIError_CarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "token lacks repo scope"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, ClientOptions{})
	require.NoError(t, err)

	_, err = c.ListCommits(context.Background(), 1, 8)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, StatusOf(err))
	require.Contains(t, err.Error(), "token lacks repo scope")
}

func TestAPIError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, ClientOptions{})
	require.NoError(t, err)

	err = c.DeleteRepoLink(context.Background(), 1)
	require.Error(t, err)
	require.Equal(t, http.StatusBadGateway, StatusOf(err))
	require.Contains(t, err.Error(), "upstream unavailable")
}

func TestListCommits_MixedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects/42/commits", r.URL.Path)
		require.Equal(t, "8", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{
			"commits": [
				{"hash": "a1", "author": "Ada", "author_email": "ada@x.y", "message": "m", "url": "https://u", "repo": "acme/widgets", "timestamp": "2026-08-20T14:30:00Z"},
				{"id": 2, "hash": "b2", "author": "Bot", "message": "seed", "timestamp": "last month"}
			],
			"repositories": ["acme/widgets"],
			"errors": [{"repo": "acme/legacy", "status": 404, "message": "Not Found"}],
			"has_token": true
		}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, ClientOptions{})
	require.NoError(t, err)

	feed, err := c.ListCommits(context.Background(), 42, 8)
	require.NoError(t, err)
	require.Len(t, feed.Commits, 2)
	require.Equal(t, model.CommitKindLive, feed.Commits[0].Kind)
	require.Equal(t, model.CommitKindStatic, feed.Commits[1].Kind)
	require.True(t, feed.HasToken)
	require.Len(t, feed.Errors, 1)
	require.Equal(t, 404, feed.Errors[0].Status)
}
