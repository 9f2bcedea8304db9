package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var tokenRemoveYes bool

var tokenRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a GitHub token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid token id %q", args[0])
		}

		if !tokenRemoveYes && !promptConfirm(fmt.Sprintf("Delete token #%d? [y/N]: ", id)) {
			_, _ = fmt.Fprintln(os.Stdout, "Cancelled.")

			return nil
		}

		service, _, err := newService()
		if err != nil {
			return err
		}

		if err := service.DeleteToken(cmd.Context(), id); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Removed token #%d\n", id)

		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenRemoveCmd)
	tokenRemoveCmd.Flags().BoolVarP(&tokenRemoveYes, "yes", "y", false, "Skip confirmation prompt")
}
