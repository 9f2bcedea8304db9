package core

import (
	ghauth "github.com/cli/go-gh/v2/pkg/auth"

	"github.com/inovacc/linkr/internal/auth"
)

// ResolveGitHubToken finds a GitHub token to register with the backend.
// Priority order:
//  1. explicit --token flag
//  2. GITHUB_TOKEN environment variable
//  3. GH_TOKEN environment variable
//  4. gh CLI auth (keyring + config file)
func ResolveGitHubToken(flagToken string) (*auth.Result, error) {
	return auth.NewResolver("GitHub").
		WithFlagValue(flagToken).
		WithEnvs("GITHUB_TOKEN", "GH_TOKEN").
		WithProvider(func() (string, string, error) {
			if token, _ := ghauth.TokenForHost("github.com"); token != "" {
				return token, "cli:gh", nil
			}

			return "", "", nil
		}).
		WithHelpMessage(`Provide a token via one of:
  * --token <value>           (or pipe it on stdin)
  * linkr token add --oauth   (mints one through the GitHub device flow)
  * gh auth login             (auto-detected from the gh CLI)
  * GITHUB_TOKEN / GH_TOKEN environment variables`).
		Resolve()
}
