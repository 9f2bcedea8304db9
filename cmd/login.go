package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/linkr/internal/database"
	"github.com/inovacc/linkr/internal/params"
	"github.com/inovacc/linkr/internal/secret"
	"github.com/spf13/cobra"
)

var loginSession string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a backend session credential",
	Long: `Store the session credential used to authenticate against the backend.
The credential is encrypted at rest and bound to the server URL it was
stored for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveSettings()
		if err != nil {
			return err
		}

		session := loginSession
		if session == "" {
			session, err = secret.PromptForSecret("Session credential: ")
			if err != nil {
				return err
			}
		}

		if session == "" {
			return fmt.Errorf("session credential is required")
		}

		keeper := secret.NewKeeper(params.AppdataDir)

		sealed, err := keeper.Seal(session, sessionPurpose(cfg.ServerURL))
		if err != nil {
			return err
		}

		if err := database.GetDB().SaveSession(cfg.ServerURL, sealed); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Session stored for %s\n", cfg.ServerURL)

		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveSettings()
		if err != nil {
			return err
		}

		if err := database.GetDB().DeleteSession(cfg.ServerURL); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Session removed for %s\n", cfg.ServerURL)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	loginCmd.Flags().StringVar(&loginSession, "session", "", "Session credential (prompted when empty)")
}
