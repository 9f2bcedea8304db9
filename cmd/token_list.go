package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the GitHub tokens of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, cfg, err := newService()
		if err != nil {
			return err
		}

		project, err := requireProject(cfg)
		if err != nil {
			return err
		}

		state := service.LoadTokens(cmd.Context(), project)
		if state.Err != "" {
			return fmt.Errorf("%s", state.Err)
		}

		if len(state.Tokens) == 0 {
			printEmptyResult("tokens", "linkr token add <name>")

			return nil
		}

		for _, token := range state.Tokens {
			_, _ = fmt.Fprintf(os.Stdout, "%s %-6d %-24s added %s by %s\n",
				activeMarker(token.Active),
				token.ID,
				truncateString(token.Name, 24),
				token.CreatedAt.Format("2006-01-02"),
				token.CreatedBy,
			)
		}

		if state.Active != nil {
			_, _ = fmt.Fprintf(os.Stdout, "\nActive token: %s\n", state.Active.Name)
		}

		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenListCmd)
}
