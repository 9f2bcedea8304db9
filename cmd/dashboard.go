package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/linkr/internal/cli"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive project dashboard",
	Long: `Open the interactive dashboard for a project: repository links,
GitHub tokens and the aggregated commit feed in one screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func runDashboard() error {
	service, cfg, err := newService()
	if err != nil {
		return err
	}

	project, err := requireProject(cfg)
	if err != nil {
		return err
	}

	m := cli.NewDashboard(service, project, cfg.CommitPageSize)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err = p.Run()

	return err
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
