package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/inovacc/linkr/internal/api"
	"github.com/inovacc/linkr/internal/common"
	"github.com/inovacc/linkr/internal/giturl"
	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/security"
)

// LinksState is the repository-link list as the page renders it. FromAPI is
// the loaded-from-API marker: false until a fetch for the current project
// has succeeded.
type LinksState struct {
	Links   []model.RepoLink
	FromAPI bool
	Err     string
}

// LoadRepoLinks fetches the repository links for a project. A non-numeric
// or absent project identifier yields an empty list without calling the
// backend; a failed fetch yields an empty list plus a banner.
func (s *Service) LoadRepoLinks(ctx context.Context, rawProject string) LinksState {
	projectID, err := ParseProjectID(rawProject)
	if err != nil {
		return LinksState{}
	}

	links, err := s.backend.ListRepoLinks(ctx, projectID)
	if err != nil {
		s.logger.Warn("repository link load failed", "project", projectID, "err", err)

		return LinksState{Err: fmt.Sprintf("Failed to load repositories: %v", err)}
	}

	return LinksState{Links: links, FromAPI: true}
}

// RepoLinkForm is the new-repository form buffer.
type RepoLinkForm struct {
	Name        string
	Description string
	URL         string
	Type        string
}

// CreateRepoLink validates and submits a new repository link. The name is
// trimmed and, when empty, derived from the URL. Source-control URLs are
// simplified to their owner/repo form; embedded credentials are always
// stripped. The submitted fields are scanned for pasted secrets first.
func (s *Service) CreateRepoLink(ctx context.Context, rawProject string, form RepoLinkForm) (*model.RepoLink, error) {
	projectID, err := ParseProjectID(rawProject)
	if err != nil {
		return nil, err
	}

	rawURL := strings.TrimSpace(form.URL)
	if rawURL == "" {
		return nil, &ValidationError{Field: "url", Reason: "is required"}
	}

	linkType := model.ParseLinkType(strings.TrimSpace(form.Type))

	cleanURL := common.SanitizeURL(rawURL)

	if linkType == model.LinkTypeSourceControl && giturl.IsRemote(cleanURL) {
		if simplified, err := giturl.SimplifyRepoURL(cleanURL); err == nil {
			cleanURL = simplified
		}
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = giturl.RepoName(cleanURL)
	}

	if name == "" {
		name = "Repository"
	}

	description := strings.TrimSpace(form.Description)

	if err := s.guardAgainstLeaks(map[string]string{
		"url":         rawURL,
		"description": description,
	}); err != nil {
		return nil, err
	}

	link, err := s.backend.CreateRepoLink(ctx, api.CreateRepoLinkRequest{
		Name:        name,
		Description: description,
		URL:         cleanURL,
		Type:        linkType,
		ProjectID:   projectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create repository link: %w", err)
	}

	return link, nil
}

// ToggleRepoLink flips the active flag of a link's backing record. Links
// without a record (static template entries) cannot be toggled.
func (s *Service) ToggleRepoLink(ctx context.Context, link model.RepoLink) error {
	if link.Record == nil {
		return &ValidationError{Field: "repository", Reason: "is not backed by a database record"}
	}

	active := !link.Record.Active
	if err := s.backend.UpdateRepoLink(ctx, link.Record.ID, api.RepoLinkPatch{Active: &active}); err != nil {
		return fmt.Errorf("failed to update repository: %w", err)
	}

	return nil
}

// DeleteRepoLink removes a repository link.
func (s *Service) DeleteRepoLink(ctx context.Context, id int64) error {
	if err := s.backend.DeleteRepoLink(ctx, id); err != nil {
		return fmt.Errorf("failed to delete repository: %w", err)
	}

	return nil
}

var (
	scannerOnce sync.Once
	scanner     *security.Scanner
	scannerErr  error
)

// guardAgainstLeaks scans form values for pasted secrets. A scanner init
// failure is logged and skipped rather than blocking the user.
func (s *Service) guardAgainstLeaks(fields map[string]string) error {
	scannerOnce.Do(func() {
		scanner, scannerErr = security.NewScanner()
	})

	if scannerErr != nil {
		s.logger.Warn("leak scanner unavailable", "err", scannerErr)

		return nil
	}

	for field, value := range fields {
		if findings := scanner.ScanValue(value); len(findings) > 0 {
			return &LeakError{Field: field, RuleID: findings[0].RuleID}
		}
	}

	return nil
}
