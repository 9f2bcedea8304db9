package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/model"
	"github.com/spf13/cobra"
)

var commitsLimit int

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "Show the aggregated commit feed of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, cfg, err := newService()
		if err != nil {
			return err
		}

		project, err := requireProject(cfg)
		if err != nil {
			return err
		}

		projectID, err := core.ParseProjectID(project)
		if err != nil {
			printEmptyResult("repositories", "linkr repo add <url>")

			return nil
		}

		limit := commitsLimit
		if limit <= 0 {
			limit = cfg.CommitPageSize
		}

		state := service.LoadCommits(cmd.Context(), projectID, limit)
		if state.Err != "" {
			_, _ = fmt.Fprintln(os.Stderr, state.Err)
		}

		if len(state.Commits) == 0 {
			if state.Err == "" {
				if state.HasRepositories {
					_, _ = fmt.Fprintln(os.Stdout, "No commits available.")
				} else {
					printEmptyResult("repositories", "linkr repo add <url>")
				}
			}

			return nil
		}

		now := time.Now()
		for _, entry := range state.Commits {
			printCommit(entry, now)
		}

		return nil
	},
}

func printCommit(entry model.CommitEntry, now time.Time) {
	switch entry.Kind {
	case model.CommitKindLive:
		c := entry.Live

		_, _ = fmt.Fprintf(os.Stdout, "%-8s %-20s %-50s %s\n",
			shortHash(c.Hash),
			truncateString(c.Author, 20),
			truncateString(c.Message, 50),
			core.FormatRelativeTime(c.Timestamp, now),
		)

	case model.CommitKindStatic:
		c := entry.Static

		_, _ = fmt.Fprintf(os.Stdout, "%-8s %-20s %-50s %s\n",
			shortHash(c.Hash),
			truncateString(c.Author, 20),
			truncateString(c.Message, 50),
			c.Timestamp,
		)
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}

	return hash
}

func init() {
	rootCmd.AddCommand(commitsCmd)
	commitsCmd.Flags().IntVarP(&commitsLimit, "limit", "n", 0, "Number of commits to show (default: configured page size)")
}
