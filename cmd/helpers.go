package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/linkr/internal/api"
	"github.com/inovacc/linkr/internal/core"
	"github.com/inovacc/linkr/internal/database"
	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/params"
	"github.com/inovacc/linkr/internal/secret"
)

// sessionPurpose binds a sealed session credential to its server so sealed
// blobs cannot be replayed against another host.
func sessionPurpose(serverURL string) string {
	return "session:" + serverURL
}

// resolveSettings merges the effective server URL, project id and page size.
// Precedence: command-line flag, .linkr.ini override in or above the
// working directory, stored configuration, built-in default.
func resolveSettings() (model.Config, error) {
	cfg, err := database.GetDB().GetConfig()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	effective := *cfg

	wd, err := os.Getwd()
	if err == nil {
		override, oerr := core.LoadOverride(wd)
		if oerr != nil {
			slog.Warn("ignoring unreadable override file", "err", oerr)
		} else if override != nil {
			if override.ServerURL != "" {
				effective.ServerURL = override.ServerURL
			}

			if override.Project != "" {
				effective.DefaultProject = override.Project
			}
		}
	}

	if flagServer != "" {
		effective.ServerURL = flagServer
	}

	if flagProject != "" {
		effective.DefaultProject = flagProject
	}

	if effective.CommitPageSize <= 0 {
		effective.CommitPageSize = model.DefaultCommitPageSize
	}

	return effective, nil
}

// loadSession unseals the stored session credential for a server, if any.
func loadSession(serverURL string) string {
	sealed, err := database.GetDB().GetSession(serverURL)
	if err != nil || sealed == nil {
		return ""
	}

	keeper := secret.NewKeeper(params.AppdataDir)

	session, err := keeper.Open(sealed, sessionPurpose(serverURL))
	if err != nil {
		slog.Warn("stored session could not be decrypted; continuing unauthenticated", "err", err)

		return ""
	}

	return session
}

// newService builds the controller service from the effective settings.
func newService() (*core.Service, model.Config, error) {
	cfg, err := resolveSettings()
	if err != nil {
		return nil, model.Config{}, err
	}

	client, err := api.NewClient(cfg.ServerURL, api.ClientOptions{
		Session: loadSession(cfg.ServerURL),
		Logger:  slog.Default(),
	})
	if err != nil {
		return nil, model.Config{}, err
	}

	return core.NewService(client, slog.Default()), cfg, nil
}

// requireProject ensures a project id is configured before a command runs.
func requireProject(cfg model.Config) (string, error) {
	if cfg.DefaultProject == "" {
		return "", fmt.Errorf("no project configured: pass --project or run `linkr configure`")
	}

	return cfg.DefaultProject, nil
}

// promptConfirm asks the user for confirmation and returns true if they confirm.
// prompt should include the question (e.g., "Delete this token? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// printEmptyResult prints a "no results" message with a create hint.
func printEmptyResult(resourceType, createCmd string) {
	_, _ = fmt.Fprintf(os.Stdout, "No %s configured.\n", resourceType)
	_, _ = fmt.Fprintf(os.Stdout, "Create one with: %s\n", createCmd)
}

// activeMarker renders the on/off dot used by the list commands.
func activeMarker(active bool) string {
	if active {
		return "●"
	}

	return "○"
}

// truncateString truncates a string to the specified length with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
