package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var repoRemoveYes bool

var repoRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a repository link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid link id %q", args[0])
		}

		if !repoRemoveYes && !promptConfirm(fmt.Sprintf("Delete repository link #%d? [y/N]: ", id)) {
			_, _ = fmt.Fprintln(os.Stdout, "Cancelled.")

			return nil
		}

		service, _, err := newService()
		if err != nil {
			return err
		}

		if err := service.DeleteRepoLink(cmd.Context(), id); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Removed repository link #%d\n", id)

		return nil
	},
}

func init() {
	repoCmd.AddCommand(repoRemoveCmd)
	repoRemoveCmd.Flags().BoolVarP(&repoRemoveYes, "yes", "y", false, "Skip confirmation prompt")
}
