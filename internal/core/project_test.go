package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProjectID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{" 7 ", 7, false},
		{"", 0, true},
		{"template-alpha", 0, true},
		{"12ab", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := ParseProjectID(tt.raw)
			if tt.wantErr {
				var invalid *InvalidProjectError
				require.ErrorAs(t, err, &invalid)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, id)
		})
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	content := "[linkr]\nserver = https://hub.acme.io\nproject = 42\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, OverrideFileName), []byte(content), 0o600))

	// found from a nested directory
	o, err := LoadOverride(nested)
	require.NoError(t, err)
	require.NotNil(t, o)
	require.Equal(t, "https://hub.acme.io", o.ServerURL)
	require.Equal(t, "42", o.Project)
}

func TestLoadOverride_Missing(t *testing.T) {
	o, err := LoadOverride(t.TempDir())
	require.NoError(t, err)
	require.Nil(t, o)
}
