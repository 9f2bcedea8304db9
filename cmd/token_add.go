package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/secret"
	"github.com/spf13/cobra"
)

var (
	tokenAddOAuth    bool
	tokenAddValidate bool
	tokenAddHost     string
	tokenAddScopes   []string
)

var tokenAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a GitHub token with the project",
	Long: `Register a GitHub token with the current project.

The token value is resolved in priority order from the --token flag, the
GITHUB_TOKEN and GH_TOKEN environment variables and the gh CLI. With
--oauth, a fresh token is minted through the GitHub device flow instead.
When nothing resolves, the token is read from a masked prompt.

The secret is sent to the backend once and never stored locally.

Examples:
  linkr token add ci-bot
  linkr token add ci-bot --validate
  linkr token add personal --oauth
  linkr token add enterprise --oauth --host github.mycompany.com`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenAdd,
}

func init() {
	tokenCmd.AddCommand(tokenAddCmd)

	tokenAddCmd.Flags().BoolVar(&tokenAddOAuth, "oauth", false, "Mint a token through the GitHub device flow")
	tokenAddCmd.Flags().BoolVar(&tokenAddValidate, "validate", false, "Verify the token against GitHub before registering it")
	tokenAddCmd.Flags().StringVar(&tokenAddHost, "host", "github.com", "GitHub host (for enterprise)")
	tokenAddCmd.Flags().StringSliceVar(&tokenAddScopes, "scopes", nil, "OAuth scopes (default: repo,read:org)")
}

func runTokenAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	value, err := obtainTokenValue(cmd)
	if err != nil {
		return err
	}

	if tokenAddValidate {
		check, err := core.PreflightToken(cmd.Context(), value)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Token belongs to %s (scopes: %v)\n", check.Username, check.Scopes)

		if !core.HasRepoScope(check.Scopes) {
			_, _ = fmt.Fprintln(os.Stderr, "Warning: token lacks the repo scope; private repositories will not load.")
		}
	}

	service, cfg, err := newService()
	if err != nil {
		return err
	}

	project, err := requireProject(cfg)
	if err != nil {
		return err
	}

	token, err := service.CreateToken(cmd.Context(), project, core.TokenForm{
		Name:   name,
		Secret: value,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Registered token %s as #%d\n", token.Name, token.ID)

	return nil
}

func obtainTokenValue(cmd *cobra.Command) (string, error) {
	if tokenAddOAuth {
		flow := core.NewOAuthFlow(tokenAddHost, tokenAddScopes)

		flow.OnDeviceCode(func(code, verificationURL string) {
			_, _ = fmt.Fprintf(os.Stdout, "1. Copy this code: %s\n", code)
			_, _ = fmt.Fprintf(os.Stdout, "2. Open: %s\n", verificationURL)
			_, _ = fmt.Fprintln(os.Stdout, "3. Paste the code and authorize linkr")
		})

		result, err := flow.Run(cmd.Context())
		if err != nil {
			return "", err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Authorized as %s\n", result.Username)

		return result.Token, nil
	}

	result, err := core.ResolveGitHubToken(flagToken)
	if err == nil && result.Token != "" {
		if result.Source != "flag" {
			_, _ = fmt.Fprintf(os.Stdout, "Using token from %s\n", result.Name)
		}

		return result.Token, nil
	}

	return secret.PromptForSecret("GitHub token: ")
}
