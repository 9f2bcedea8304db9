package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/linkr/internal/cli"
	"github.com/inovacc/linkr/internal/database"
	"github.com/inovacc/linkr/internal/model"
	"github.com/spf13/cobra"
)

var (
	showConfig  bool
	resetConfig bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure linkr settings",
	Long:  `Interactively configure Linkr settings such as the backend server URL, the default project and the commit feed page size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showConfig {
			return printConfig()
		}

		if resetConfig {
			defaults := model.DefaultConfig()

			return database.GetDB().SaveConfig(&defaults)
		}

		m, err := cli.NewConfigureModel()
		if err != nil {
			return err
		}

		p := tea.NewProgram(&m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		configModel := finalModel.(*cli.ConfigureModel)
		if configModel.Err != nil {
			return configModel.Err
		}

		return nil
	},
}

func printConfig() error {
	cfg, err := database.GetDB().GetConfig()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Server URL:       %s\n", cfg.ServerURL)
	_, _ = fmt.Fprintf(os.Stdout, "Default Project:  %s\n", cfg.DefaultProject)
	_, _ = fmt.Fprintf(os.Stdout, "Commit Page Size: %d\n", cfg.CommitPageSize)

	return nil
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVarP(&showConfig, "show", "s", false, "Show current configuration")
	configureCmd.Flags().BoolVarP(&resetConfig, "reset", "r", false, "Reset configuration to defaults")
}
