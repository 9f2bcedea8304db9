package core

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ParseProjectID converts a raw project identifier into a numeric id.
// Template projects and unset configuration produce non-numeric values;
// those are not errors to report loudly, the caller simply skips the
// backend and renders empty lists.
func ParseProjectID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &InvalidProjectError{Raw: raw}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &InvalidProjectError{Raw: raw}
	}

	return id, nil
}

// OverrideFileName is the per-directory settings file. A workspace checked
// out next to its backend project can pin the server and project id so
// linkr works without flags from anywhere inside it.
const OverrideFileName = ".linkr.ini"

// Override is the subset of settings a .linkr.ini file may pin.
type Override struct {
	ServerURL string `ini:"server"`
	Project   string `ini:"project"`
}

// LoadOverride walks from dir upward looking for a .linkr.ini file and
// maps its [linkr] section. Returns nil when no file is found.
func LoadOverride(dir string) (*Override, error) {
	path, ok := findOverrideFile(dir)
	if !ok {
		return nil, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	var o Override
	if err := cfg.Section("linkr").MapTo(&o); err != nil {
		return nil, err
	}

	return &o, nil
}

func findOverrideFile(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, OverrideFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}
