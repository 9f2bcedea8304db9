package cmd

import (
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "GitHub token operations",
	Long: `Commands for managing the GitHub tokens attached to a project.

Available Commands:
  list    List tokens
  add     Register a token (paste, flag, env, gh CLI or OAuth device flow)
  remove  Remove a token
  toggle  Enable or disable a token`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
