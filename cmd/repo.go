package cmd

import (
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Repository link operations",
	Long: `Commands for managing the repository links attached to a project.

Available Commands:
  list    List repository links
  add     Add a repository link
  remove  Remove a repository link
  toggle  Enable or disable a repository link
  import  Import repository links from a JSON file`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(repoCmd)
}
