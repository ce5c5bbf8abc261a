package main

import (
	"os"
	"strings"

	"portfolio-cli/internal/catalog"
	"portfolio-cli/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func isProjectID(s string) bool {
	_, ok := catalog.Default().Find(strings.TrimSpace(s))
	return ok
}

// rewriteDirectProjectLookupArgs makes `portfolio <project-id>` work like
// `portfolio projects show <project-id>`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten before
// parsing. Persistent flags may come first (e.g. `portfolio --format edn <id>`), so the
// first positional token is searched, not just argv[1].
func rewriteDirectProjectLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	// Unknown flags are skipped without consuming a value so the id is never swallowed.
	valueFlags := map[string]bool{
		"--dir":           true,
		"--prefs-backend": true,
		"--format":        true,
		"--gui-delay":     true,
		"--mode":          true,
	}

	rewriteAt := func(i int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "projects", "show")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			// The subcommand must precede the terminator or cobra reads it as an argument.
			if i+1 < len(argv) && isProjectID(argv[i+1]) {
				return rewriteAt(i)
			}
			return argv
		case strings.HasPrefix(a, "-"):
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		case isProjectID(a):
			return rewriteAt(i)
		default:
			return argv
		}
	}
	return argv
}

func main() {
	os.Args = rewriteDirectProjectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
