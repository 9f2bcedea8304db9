package core

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cli/oauth"
)

// OAuthResult contains the outcome of a device-flow authorization.
type OAuthResult struct {
	Token    string
	Username string
	Scopes   []string
}

// OAuthFlow runs the GitHub device flow so `token add --oauth` can mint a
// credential without the user pasting one.
type OAuthFlow struct {
	host         string
	scopes       []string
	onDeviceCode func(code, verificationURL string)
}

// DefaultScopes is what the backend needs to read commits from private
// repositories.
func DefaultScopes() []string {
	return []string{"repo", "read:org"}
}

// NewOAuthFlow creates a device flow against the given GitHub host.
func NewOAuthFlow(host string, scopes []string) *OAuthFlow {
	if host == "" {
		host = "github.com"
	}

	if len(scopes) == 0 {
		scopes = DefaultScopes()
	}

	return &OAuthFlow{host: host, scopes: scopes}
}

// OnDeviceCode sets the callback invoked when the user code is ready to be
// shown.
func (f *OAuthFlow) OnDeviceCode(callback func(code, verificationURL string)) {
	f.onDeviceCode = callback
}

// Run executes the device flow and returns the minted token together with
// the authenticated username.
func (f *OAuthFlow) Run(ctx context.Context) (*OAuthResult, error) {
	host, err := oauth.NewGitHubHost("https://" + f.host)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub host: %w", err)
	}

	flow := &oauth.Flow{
		Host:   host,
		Scopes: f.scopes,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if f.onDeviceCode != nil {
		flow.DisplayCode = func(code, verificationURL string) error {
			f.onDeviceCode(code, verificationURL)

			return nil
		}
	}

	accessToken, err := flow.DetectFlow()
	if err != nil {
		return nil, fmt.Errorf("OAuth flow failed: %w", err)
	}

	check, err := PreflightToken(ctx, accessToken.Token)
	if err != nil {
		return nil, err
	}

	return &OAuthResult{
		Token:    accessToken.Token,
		Username: check.Username,
		Scopes:   check.Scopes,
	}, nil
}

// TokenCheck is the result of validating a token against GitHub.
type TokenCheck struct {
	Username string
	Scopes   []string
}

// PreflightToken verifies a token against the GitHub API before it is
// submitted to the backend, returning the authenticated user and the
// granted OAuth scopes.
func PreflightToken(ctx context.Context, token string) (*TokenCheck, error) {
	client := NewGitHubClient(ctx, token)

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, &ValidationError{Field: "token", Reason: "was rejected by GitHub (invalid or expired)"}
		}

		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	var scopes []string
	if raw := resp.Header.Get("X-OAuth-Scopes"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				scopes = append(scopes, s)
			}
		}
	}

	return &TokenCheck{Username: user.GetLogin(), Scopes: scopes}, nil
}

// HasRepoScope reports whether the granted scopes allow reading private
// repository commits.
func HasRepoScope(scopes []string) bool {
	for _, s := range scopes {
		if s == "repo" || s == "public_repo" {
			return true
		}
	}

	return false
}
