package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/inovacc/linkr/internal/application"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagServer  string
	flagProject string
	flagToken   string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A project repository and commit feed client",
	Long: `Linkr is a command-line client for the project tracker backend.
It manages the repository links and GitHub tokens attached to a project
and shows the aggregated commit feed, either as one-shot commands or as
an interactive dashboard.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagDebug {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Flags are matched case-insensitively so --Server and --server agree.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Backend server URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Project identifier (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "GitHub token (overrides env and gh CLI)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
