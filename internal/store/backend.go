package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend selects where preferences are persisted.
type Backend string

const (
	BackendAuto   Backend = "auto"
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unknown prefs backend: %s (want auto|json|sqlite)", s)
	}
}

// Detect resolves BackendAuto: an existing prefs.sqlite wins, otherwise JSON.
func Detect(dir string) Backend {
	if st, err := os.Stat(filepath.Join(dir, prefsSQLiteFileName)); err == nil && !st.IsDir() {
		return BackendSQLite
	}
	return BackendJSON
}

// Open returns the preference store for dir using backend b.
func Open(dir string, b Backend) (Preferences, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("store: missing dir")
	}
	if b == BackendAuto || b == "" {
		b = Detect(dir)
	}
	switch b {
	case BackendJSON:
		return Store{Dir: dir}, nil
	case BackendSQLite:
		return SQLiteIn(dir), nil
	default:
		return nil, fmt.Errorf("unknown prefs backend: %s", b)
	}
}
