package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var repoToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a repository link",
	Long: `Flip whether a repository link participates in commit aggregation.
Read-only links from project templates cannot be toggled.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid link id %q", args[0])
		}

		service, cfg, err := newService()
		if err != nil {
			return err
		}

		project, err := requireProject(cfg)
		if err != nil {
			return err
		}

		state := service.LoadRepoLinks(cmd.Context(), project)
		if state.Err != "" {
			return fmt.Errorf("%s", state.Err)
		}

		for _, link := range state.Links {
			if link.ID != id {
				continue
			}

			if err := service.ToggleRepoLink(cmd.Context(), link); err != nil {
				return err
			}

			verb := "Enabled"
			if link.Active() {
				verb = "Disabled"
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", verb, link.Label)

			return nil
		}

		return fmt.Errorf("no repository link with id %d in project %s", id, project)
	},
}

func init() {
	repoCmd.AddCommand(repoToggleCmd)
}
