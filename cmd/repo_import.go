package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/encoding"
	"github.com/spf13/cobra"
)

// importEntry is one row of a repo import file.
type importEntry struct {
	URL         string `json:"url"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

var repoImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import repository links from a JSON file",
	Long: `Import repository links from a JSON file. The file holds an array of
objects with "url" and optional "name", "description" and "type" fields.

Each entry goes through the same validation as 'linkr repo add'; entries
that fail are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := encoding.LoadJSON[[]importEntry](args[0])
		if err != nil {
			return err
		}

		if entries == nil || len(*entries) == 0 {
			return fmt.Errorf("no entries found in %s", args[0])
		}

		service, cfg, err := newService()
		if err != nil {
			return err
		}

		project, err := requireProject(cfg)
		if err != nil {
			return err
		}

		var added, failed int

		for _, entry := range *entries {
			link, err := service.CreateRepoLink(cmd.Context(), project, core.RepoLinkForm{
				URL:         entry.URL,
				Name:        entry.Name,
				Description: entry.Description,
				Type:        entry.Type,
			})
			if err != nil {
				failed++

				_, _ = fmt.Fprintf(os.Stderr, "skipped %s: %v\n", entry.URL, err)

				continue
			}

			added++

			_, _ = fmt.Fprintf(os.Stdout, "Added %s as #%d\n", link.Label, link.ID)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Imported %d link(s), %d skipped\n", added, failed)

		return nil
	},
}

func init() {
	repoCmd.AddCommand(repoImportCmd)
}
