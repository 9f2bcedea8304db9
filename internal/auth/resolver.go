// Package auth resolves credentials from multiple sources in priority order.
package auth

import (
	"fmt"
	"os"
	"strings"
)

// Source indicates where a token was found.
type Source string

const (
	SourceFlag Source = "flag"
	SourceEnv  Source = "env"
	SourceCLI  Source = "cli"
	SourceNone Source = "none"
)

// Result contains the resolved token and its source.
type Result struct {
	Token  string
	Source Source
	Name   string // the specific source name, e.g. "GITHUB_TOKEN" or "cli:gh"
}

// TokenProvider attempts to provide a token. It returns empty values when
// the source has nothing, and an error only for unexpected failures.
type TokenProvider func() (token string, sourceName string, err error)

// Resolver resolves tokens from multiple sources in priority order.
type Resolver struct {
	providers   []TokenProvider
	serviceName string
	helpMessage string
}

// NewResolver creates a token resolver for a service.
func NewResolver(serviceName string) *Resolver {
	return &Resolver{serviceName: serviceName}
}

// WithFlagValue adds an explicitly supplied value as the highest-priority
// source.
func (r *Resolver) WithFlagValue(value string) *Resolver {
	r.providers = append(r.providers, func() (string, string, error) {
		if value != "" {
			return value, "flag", nil
		}

		return "", "", nil
	})

	return r
}

// WithEnvs adds environment variables as token sources, checked in order.
func (r *Resolver) WithEnvs(envVars ...string) *Resolver {
	for _, envVar := range envVars {
		name := envVar
		r.providers = append(r.providers, func() (string, string, error) {
			if token := os.Getenv(name); token != "" {
				return token, name, nil
			}

			return "", "", nil
		})
	}

	return r
}

// WithProvider adds a custom token provider.
func (r *Resolver) WithProvider(provider TokenProvider) *Resolver {
	r.providers = append(r.providers, provider)

	return r
}

// WithHelpMessage sets the guidance shown when no token is found.
func (r *Resolver) WithHelpMessage(msg string) *Resolver {
	r.helpMessage = msg

	return r
}

// Resolve returns the first token any source provides.
func (r *Resolver) Resolve() (*Result, error) {
	for _, provider := range r.providers {
		token, sourceName, err := provider()
		if err != nil {
			return nil, fmt.Errorf("token provider error: %w", err)
		}

		if token != "" {
			return &Result{
				Token:  token,
				Source: categorizeSource(sourceName),
				Name:   sourceName,
			}, nil
		}
	}

	if r.helpMessage != "" {
		return nil, fmt.Errorf("%s token required\n\n%s", r.serviceName, r.helpMessage)
	}

	return nil, fmt.Errorf("%s token required", r.serviceName)
}

func categorizeSource(name string) Source {
	switch {
	case name == "flag":
		return SourceFlag
	case strings.HasPrefix(name, "cli"):
		return SourceCLI
	case strings.Contains(name, "TOKEN"):
		return SourceEnv
	default:
		return SourceNone
	}
}
