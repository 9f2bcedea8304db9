package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/core"
	"github.com/spf13/cobra"
)

var (
	repoAddName        string
	repoAddDescription string
	repoAddType        string
)

var repoAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a repository link to a project",
	Long: `Add a repository link to the current project.

GitHub URLs are simplified to their owner/repo form and embedded
credentials are always stripped. When no name is given, the repository
name is derived from the URL.

Examples:
  linkr repo add https://github.com/acme/widgets
  linkr repo add https://acme.atlassian.net/wiki/spaces/W --type documentation --name "Widgets wiki"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, cfg, err := newService()
		if err != nil {
			return err
		}

		project, err := requireProject(cfg)
		if err != nil {
			return err
		}

		link, err := service.CreateRepoLink(cmd.Context(), project, core.RepoLinkForm{
			URL:         args[0],
			Name:        repoAddName,
			Description: repoAddDescription,
			Type:        repoAddType,
		})
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Added %s (%s) as #%d\n", link.Label, link.URL, link.ID)

		return nil
	},
}

func init() {
	repoCmd.AddCommand(repoAddCmd)
	repoAddCmd.Flags().StringVar(&repoAddName, "name", "", "Display name (derived from the URL when empty)")
	repoAddCmd.Flags().StringVar(&repoAddDescription, "description", "", "Free-form description")
	repoAddCmd.Flags().StringVar(&repoAddType, "type", "source-control", "Link type: source-control, design, documentation or other")
}
