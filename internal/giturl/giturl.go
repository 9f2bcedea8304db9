// Package giturl normalizes git remote URLs for source-control links.
package giturl

import (
	"fmt"
	"net/url"
	"strings"
)

// IsRemote reports whether the string looks like a git remote reference,
// including scp-like syntax (git@github.com:owner/repo).
func IsRemote(s string) bool {
	if strings.HasPrefix(s, "git@") {
		return true
	}

	for _, scheme := range []string{"https:", "http:", "git:", "ssh:", "git+ssh:", "git+https:"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}

	return false
}

// Normalize parses a git remote reference into a URL, translating scp-like
// syntax to ssh and collapsing git+ prefixes.
func Normalize(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") && strings.ContainsRune(raw, ':') && !strings.ContainsRune(raw, '\\') {
		// scp-like: git@github.com:owner/repo
		raw = "ssh://" + strings.Replace(raw, ":", "/", 1)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "git+https":
		u.Scheme = "https"
	case "git+ssh", "ssh":
		u.Scheme = "ssh"
	case "https", "http", "git":
	default:
		return nil, fmt.Errorf("unsupported git remote scheme: %q", u.Scheme)
	}

	u.Path = strings.TrimPrefix(u.Path, "//")
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}

	return u, nil
}

// SimplifyRepoURL strips a repository URL down to its /owner/repo form,
// dropping deep-link segments (blob/..., pull/...), query strings, and
// fragments, so links pasted from a browser land on the repository itself.
func SimplifyRepoURL(raw string) (string, error) {
	u, err := Normalize(raw)
	if err != nil {
		return "", err
	}

	u.RawQuery = ""
	u.Fragment = ""

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) >= 2 {
		u.Path = "/" + segments[0] + "/" + segments[1]
	}

	return u.String(), nil
}

// RepoName extracts the trailing repository name from a remote reference,
// without the .git suffix. Returns "" when none can be determined.
func RepoName(raw string) string {
	u, err := Normalize(raw)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}

	name := segments[len(segments)-1]

	return strings.TrimSuffix(name, ".git")
}
