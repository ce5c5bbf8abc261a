package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const prefsFileName = "prefs.json"

// PrefsFile is the on-disk JSON shape of the preference store.
//
// Loading is best effort: a missing or corrupt file reads as empty.
type PrefsFile struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values,omitempty"`
}

func (s Store) prefsPath() string {
	return filepath.Join(s.Dir, prefsFileName)
}

func (s Store) LoadPrefs() (*PrefsFile, error) {
	if strings.TrimSpace(s.Dir) == "" {
		return &PrefsFile{Version: 1}, nil
	}
	b, err := os.ReadFile(s.prefsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &PrefsFile{Version: 1}, nil
		}
		return nil, err
	}
	var pf PrefsFile
	if err := json.Unmarshal(b, &pf); err != nil {
		// Corrupted; treat as missing.
		return &PrefsFile{Version: 1}, nil
	}
	if pf.Version == 0 {
		pf.Version = 1
	}
	return &pf, nil
}

func (s Store) SavePrefs(pf *PrefsFile) error {
	if pf == nil {
		return nil
	}
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store: missing dir")
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if pf.Version == 0 {
		pf.Version = 1
	}
	b, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return err
	}
	path := s.prefsPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s Store) Get(key string) (string, bool, error) {
	pf, err := s.LoadPrefs()
	if err != nil {
		return "", false, fmt.Errorf("load prefs: %w", err)
	}
	v, ok := pf.Values[key]
	return v, ok, nil
}

func (s Store) Set(key, value string) error {
	pf, err := s.LoadPrefs()
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	if pf.Values == nil {
		pf.Values = map[string]string{}
	}
	pf.Values[key] = value
	if err := s.SavePrefs(pf); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// Memory is an in-process Preferences implementation (ephemeral sessions, tests).
type Memory struct {
	values map[string]string
	// Writes counts successful Set calls.
	Writes int
	// Err, when set, is returned by every Set.
	Err error
}

func NewMemory() *Memory { return &Memory{values: map[string]string{}} }

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	m.Writes++
	return nil
}
