package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	return runCLIWithInput(t, nil, args)
}

func runCLIWithInput(t *testing.T, in io.Reader, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	if in != nil {
		cmd.SetIn(in)
	}
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustEnvelope(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: portfolio %v\nerr: %v\nstderr:\n%s", args, err, string(stderr))
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout: %v\nstdout:\n%s", err, string(stdout))
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected data key; got: %v", env)
	}
	return env
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PORTFOLIO_DIR", dir)
	t.Setenv("PORTFOLIO_PREFS_BACKEND", "")
	t.Setenv("PORTFOLIO_FORMAT", "")
	t.Setenv("PORTFOLIO_GUI_DELAY", "")
	t.Setenv("PORTFOLIO_DEBUG_LOG", "")
	t.Setenv("PORTFOLIO_MODE", "")
	return dir
}

func TestProjects_ListAndFilter(t *testing.T) {
	isolate(t)

	env := mustEnvelope(t, "projects")
	if got := len(env["data"].([]any)); got != 3 {
		t.Fatalf("expected 3 projects, got %d", got)
	}

	env = mustEnvelope(t, "projects", "--category", "full-stack")
	data := env["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("expected 2 Full-Stack projects, got %d", len(data))
	}
	if meta := env["meta"].(map[string]any); meta["category"] != "Full-Stack" {
		t.Fatalf("expected canonical category in meta, got %v", meta["category"])
	}
	first := data[0].(map[string]any)
	if first["id"] != "dashboard-redes" {
		t.Fatalf("expected catalog order preserved, got %v", first["id"])
	}

	_, stderr, err := runCLI(t, []string{"projects", "--category", "Mobile"})
	if err == nil || !strings.Contains(string(stderr), "category not found: Mobile") {
		t.Fatalf("expected category not-found error, got err=%v stderr=%s", err, stderr)
	}
}

func TestProjectsShow(t *testing.T) {
	isolate(t)

	env := mustEnvelope(t, "projects", "show", "automacao-backup")
	p := env["data"].(map[string]any)
	if p["category"] != "Automação & Redes" {
		t.Fatalf("unexpected category: %v", p["category"])
	}
	if _, ok := p["liveUrl"]; ok {
		t.Fatalf("expected absent liveUrl to be omitted, got %v", p["liveUrl"])
	}

	env = mustEnvelope(t, "projects", "show", "dashboard-redes")
	if got := env["meta"].(map[string]any)["hasLiveDemo"]; got != false {
		t.Fatalf("expected placeholder demo to report hasLiveDemo=false, got %v", got)
	}

	_, stderr, err := runCLI(t, []string{"projects", "show", "nope"})
	if err == nil || !strings.Contains(string(stderr), "project not found: nope") {
		t.Fatalf("expected not-found error, got err=%v stderr=%q", err, stderr)
	}
}

func TestCategories(t *testing.T) {
	isolate(t)

	env := mustEnvelope(t, "categories")
	got := env["data"].([]any)
	want := []string{"Todos", "Full-Stack", "Automação & Redes"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: got %v want %s", i, got[i], want[i])
		}
	}
}

func TestTerm_ExecTranscriptAndState(t *testing.T) {
	isolate(t)

	env := mustEnvelope(t, "term", "exec dashboard-redes", "--state")
	entries := env["data"].([]any)
	if len(entries) != 2 {
		t.Fatalf("expected echo + info, got %v", entries)
	}
	echo := entries[0].(map[string]any)
	info := entries[1].(map[string]any)
	if echo["kind"] != "input" || echo["text"] != "exec dashboard-redes" {
		t.Fatalf("unexpected echo entry: %v", echo)
	}
	if info["kind"] != "info" || info["text"] != "Executando projeto: dashboard-redes..." {
		t.Fatalf("unexpected info entry: %v", info)
	}

	st := env["meta"].(map[string]any)["state"].(map[string]any)
	if st["mode"] != "graphical" {
		t.Fatalf("expected graphical mode, got %v", st["mode"])
	}
	if open, _ := st["openProject"].(map[string]any); open == nil || open["id"] != "dashboard-redes" {
		t.Fatalf("expected dashboard-redes open, got %v", st["openProject"])
	}
}

func TestTerm_GuiFiresAfterFlush(t *testing.T) {
	isolate(t)

	env := mustEnvelope(t, "term", "gui", "--state")
	meta := env["meta"].(map[string]any)
	if meta["deferredRun"] != float64(1) {
		t.Fatalf("expected one deferred task, got %v", meta["deferredRun"])
	}
	if mode := meta["state"].(map[string]any)["mode"]; mode != "graphical" {
		t.Fatalf("expected graphical mode after the deferred switch, got %v", mode)
	}
}

func TestTerm_ReadsStdinAsText(t *testing.T) {
	isolate(t)

	stdout, stderr, err := runCLIWithInput(t, strings.NewReader("whoami\nfoo\n\n"), []string{"term", "--format", "text"})
	if err != nil {
		t.Fatalf("term failed: %v\n%s", err, stderr)
	}
	out := string(stdout)
	for _, want := range []string{"KlayverOS:~$ whoami", "Klayver Alencar", "KlayverOS:~$ foo", "Comando não encontrado: foo"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in transcript:\n%s", want, out)
		}
	}
}

func TestTerm_EDN(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, []string{"term", "clear", "--format", "edn"})
	if err != nil {
		t.Fatalf("term failed: %v", err)
	}
	if got := strings.TrimSpace(string(stdout)); got != "{:data []}" {
		t.Fatalf("expected empty scrollback as edn, got %q", got)
	}
}

func TestTheme_PersistsAcrossInvocations(t *testing.T) {
	for _, backend := range []string{"json", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			isolate(t)

			theme := func(args ...string) string {
				t.Helper()
				env := mustEnvelope(t, append([]string{"--prefs-backend", backend}, args...)...)
				return env["data"].(map[string]any)["theme"].(string)
			}

			if got := theme("theme"); got != "light" {
				t.Fatalf("expected default light, got %s", got)
			}
			if got := theme("theme", "set", "dark"); got != "dark" {
				t.Fatalf("expected dark after set, got %s", got)
			}
			if got := theme("theme"); got != "dark" {
				t.Fatalf("expected dark to persist, got %s", got)
			}
			if got := theme("theme", "toggle"); got != "light" {
				t.Fatalf("expected light after toggle, got %s", got)
			}
		})
	}
}

func TestTheme_RejectsUnknown(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, []string{"theme", "set", "purple"})
	if err == nil || !strings.Contains(string(stderr), `invalid theme: "purple"`) {
		t.Fatalf("expected invalid theme error, got err=%v stderr=%s", err, stderr)
	}
}

func TestTheme_EphemeralDoesNotPersist(t *testing.T) {
	isolate(t)

	mustEnvelope(t, "--ephemeral", "theme", "set", "dark")
	env := mustEnvelope(t, "theme")
	if got := env["data"].(map[string]any)["theme"]; got != "light" {
		t.Fatalf("expected ephemeral change to be dropped, got %v", got)
	}
}
