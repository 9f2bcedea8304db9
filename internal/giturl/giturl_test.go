package giturl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"https", "https://github.com/acme/widgets", "https://github.com/acme/widgets", false},
		{"scp-like", "git@github.com:acme/widgets.git", "ssh://git@github.com/acme/widgets.git", false},
		{"git+https", "git+https://github.com/acme/widgets", "https://github.com/acme/widgets", false},
		{"git+ssh", "git+ssh://git@github.com/acme/widgets", "ssh://git@github.com/acme/widgets", false},
		{"unsupported scheme", "ftp://example.com/repo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Normalize(tt.in)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, u.String())
		})
	}
}

func TestSimplifyRepoURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://github.com/acme/widgets", "https://github.com/acme/widgets"},
		{"tree deep link", "https://github.com/acme/widgets/blob/main/foo/bar", "https://github.com/acme/widgets"},
		{"line anchor", "https://github.com/acme/widgets/blob/main/foo.go#L168", "https://github.com/acme/widgets"},
		{"pr comment", "https://github.com/acme/widgets/pull/999#issue-123", "https://github.com/acme/widgets"},
		{"query string", "https://github.com/acme/widgets?tab=readme", "https://github.com/acme/widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SimplifyRepoURL(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRepoName(t *testing.T) {
	require.Equal(t, "widgets", RepoName("https://github.com/acme/widgets.git"))
	require.Equal(t, "widgets", RepoName("git@github.com:acme/widgets.git"))
	require.Equal(t, "", RepoName("://bad"))
}

func TestIsRemote(t *testing.T) {
	require.True(t, IsRemote("git@github.com:acme/widgets.git"))
	require.True(t, IsRemote("https://github.com/acme/widgets"))
	require.False(t, IsRemote("acme/widgets"))
}
