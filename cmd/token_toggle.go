package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var tokenToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a GitHub token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid token id %q", args[0])
		}

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

		for _, token := range state.Tokens {
			if token.ID != id {
				continue
			}

			if err := service.ToggleToken(cmd.Context(), token); err != nil {
				return err
			}

			verb := "Enabled"
			if token.Active {
				verb = "Disabled"
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", verb, token.Name)

			return nil
		}

		return fmt.Errorf("no token with id %d in project %s", id, project)
	},
}

func init() {
	tokenCmd.AddCommand(tokenToggleCmd)
}
