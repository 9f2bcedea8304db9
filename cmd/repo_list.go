package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the repository links of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if len(state.Links) == 0 {
			printEmptyResult("repository links", "linkr repo add <url>")

			return nil
		}

		for _, link := range state.Links {
			readOnly := ""
			if link.Record == nil {
				readOnly = " (read-only)"
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s %-6d %-30s %-16s %s%s\n",
				activeMarker(link.Active()),
				link.ID,
				truncateString(link.Label, 30),
				link.Type,
				link.URL,
				readOnly,
			)
		}

		return nil
	},
}

func init() {
	repoCmd.AddCommand(repoListCmd)
}
