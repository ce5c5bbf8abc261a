package store

import (
	"context"
	"os"
	"testing"
)

func withEnv(t *testing.T, k, v string, fn func()) {
	t.Helper()
	old, had := os.LookupEnv(k)
	if err := os.Setenv(k, v); err != nil {
		t.Fatalf("setenv %s: %v", k, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(k, old)
		} else {
			_ = os.Unsetenv(k)
		}
	})
	fn()
}

func TestSQLitePrefs_SetGet(t *testing.T) {
	t.Parallel()

	s := SQLiteIn(t.TempDir())

	if _, ok, err := s.Get(KeyTheme); err != nil || ok {
		t.Fatalf("expected missing key; ok=%v err=%v", ok, err)
	}

	if err := s.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.SetContext(context.Background(), KeyTheme, "light"); err != nil {
		t.Fatalf("SetContext: %v", err)
	}

	v, ok, err := s.Get(KeyTheme)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "light" {
		t.Fatalf("expected last write to win; got %q ok=%v", v, ok)
	}
}

func TestOpen_AutoDetect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	p, err := Open(dir, BackendAuto)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := p.(Store); !ok {
		t.Fatalf("expected JSON store by default; got %T", p)
	}

	// Creating the sqlite file flips auto detection.
	if err := SQLiteIn(dir).Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("seed sqlite: %v", err)
	}
	if got := Detect(dir); got != BackendSQLite {
		t.Fatalf("expected %q, got %q", BackendSQLite, got)
	}
	p, err = Open(dir, BackendAuto)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if v, ok, _ := p.Get(KeyTheme); !ok || v != "dark" {
		t.Fatalf("expected dark from sqlite; got %q ok=%v", v, ok)
	}

	// Explicit JSON still wins over detection.
	p, err = Open(dir, BackendJSON)
	if err != nil {
		t.Fatalf("Open json: %v", err)
	}
	if _, ok := p.(Store); !ok {
		t.Fatalf("expected JSON store; got %T", p)
	}
}

func TestParseBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{in: "", want: BackendAuto},
		{in: "AUTO", want: BackendAuto},
		{in: " json ", want: BackendJSON},
		{in: "sqlite", want: BackendSQLite},
		{in: "redis", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseBackend(%q) err=%v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseBackend(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultDir_EnvOverride(t *testing.T) {
	want := t.TempDir()
	withEnv(t, EnvDir, want, func() {
		got, err := DefaultDir()
		if err != nil {
			t.Fatalf("DefaultDir: %v", err)
		}
		if got != want {
			t.Fatalf("DefaultDir()=%q, want %q", got, want)
		}
	})
}
