package store

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvDir overrides the preference directory (also keeps unit tests away from ~/.portfolio).
const EnvDir = "PORTFOLIO_DIR"

// KeyTheme is the single persisted preference.
const KeyTheme = "theme"

// Preferences is a tiny durable key/value store for user preferences.
type Preferences interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Store is the file-backed (JSON) preference store rooted at Dir.
type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// DefaultDir returns $PORTFOLIO_DIR or ~/.portfolio.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".portfolio"), nil
}
