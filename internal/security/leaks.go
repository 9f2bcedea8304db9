// Package security provides secret detection for user-submitted values.
package security

import (
	"fmt"

	"github.com/zricethezav/gitleaks/v8/detect"
	"github.com/zricethezav/gitleaks/v8/report"
)

// Scanner detects secrets accidentally pasted into form fields (a URL with
// embedded credentials, a token dropped into a description) before they are
// sent to the backend.
type Scanner struct {
	detector *detect.Detector
}

// NewScanner creates a scanner with the default gitleaks ruleset.
func NewScanner() (*Scanner, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gitleaks config: %w", err)
	}

	detector.Redact = 80

	return &Scanner{detector: detector}, nil
}

// ScanValue runs the ruleset over a single value and returns any findings.
func (s *Scanner) ScanValue(value string) []report.Finding {
	if value == "" {
		return nil
	}

	return s.detector.DetectString(value)
}
