// Package terminal implements KlayverOS, the simulated command line of the portfolio.
//
// An Interpreter turns one submitted line into scrollback entries and, for a few
// commands, view transitions requested from a Coordinator.
package terminal

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/sched"
)

// Prompt is printed before echoed input lines.
const Prompt = "KlayverOS:~$"

const welcomeText = "Bem-vindo ao KlayverOS! Digite 'help' para começar."

// DefaultGUIDelay is how long `gui` waits before switching modes.
const DefaultGUIDelay = 500 * time.Millisecond

// Kind tags a scrollback entry for styling.
type Kind int

const (
	KindInput Kind = iota
	KindInfo
	KindOutput
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindInfo:
		return "info"
	case KindOutput:
		return "output"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Entry is one scrollback line (possibly multi-line text).
type Entry struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Echo records a submitted line.
func Echo(s string) Entry { return Entry{Kind: KindInput, Text: s} }

// Info is a status line such as the welcome banner.
func Info(s string) Entry { return Entry{Kind: KindInfo, Text: s} }

// Output is regular command output.
func Output(s string) Entry { return Entry{Kind: KindOutput, Text: s} }

// Error reports a failed or unknown command.
func Error(s string) Entry { return Entry{Kind: KindError, Text: s} }

// Projects is the read-only catalog view the interpreter needs.
type Projects interface {
	IDs() []string
	Find(id string) (model.Project, bool)
}

// Coordinator receives the view transitions the interpreter requests.
type Coordinator interface {
	OpenProjectByID(id string) bool
	SwitchToGraphical()
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithGUIDelay overrides DefaultGUIDelay. Negative values are ignored.
func WithGUIDelay(d time.Duration) Option {
	return func(in *Interpreter) {
		if d >= 0 {
			in.guiDelay = d
		}
	}
}

func WithProfile(p model.Profile) Option {
	return func(in *Interpreter) { in.profile = p }
}

func WithSkillGroups(gs []model.SkillGroup) Option {
	return func(in *Interpreter) { in.skills = gs }
}

// Interpreter owns the scrollback and dispatches submitted lines.
type Interpreter struct {
	projects Projects
	coord    Coordinator
	sched    sched.Scheduler

	guiDelay time.Duration
	profile  model.Profile
	skills   []model.SkillGroup

	scrollback []Entry
}

// New returns an interpreter with an empty scrollback. A nil scheduler runs deferred
// work immediately.
func New(projects Projects, coord Coordinator, s sched.Scheduler, opts ...Option) *Interpreter {
	if s == nil {
		s = sched.Immediate{}
	}
	in := &Interpreter{
		projects: projects,
		coord:    coord,
		sched:    s,
		guiDelay: DefaultGUIDelay,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Boot resets the scrollback to the welcome banner. The terminal surface calls it
// each time it becomes active.
func (in *Interpreter) Boot() {
	in.scrollback = []Entry{Info(welcomeText)}
}

// Scrollback returns a copy of the entries in insertion order.
func (in *Interpreter) Scrollback() []Entry {
	return append([]Entry(nil), in.scrollback...)
}

func (in *Interpreter) Clear() { in.scrollback = nil }

func (in *Interpreter) appendEntry(e Entry) {
	in.scrollback = append(in.scrollback, e)
}

// Submit interprets one raw input line. Blank input is ignored entirely. Otherwise the
// echo is appended first, then the command runs; any failure becomes an error entry.
func (in *Interpreter) Submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	in.appendEntry(Echo(line))

	if err := in.dispatch(name, args); err != nil {
		log.Printf("portfolio: terminal %q: %v", name, err)
		in.appendEntry(Error(errorText(err)))
	}
}

func (in *Interpreter) dispatch(name string, args []string) error {
	cmd, ok := lookup(name)
	if !ok {
		return UnknownCommandError{Name: name}
	}
	return cmd.run(in, args)
}

// UnknownCommandError reports a command name missing from the command table.
type UnknownCommandError struct {
	Name string
}

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("Comando não encontrado: %s", e.Name)
}

// ProjectNotFoundError reports an exec target missing from the catalog.
type ProjectNotFoundError struct {
	ID string
}

func (e ProjectNotFoundError) Error() string {
	return fmt.Sprintf("Erro: Projeto %q não encontrado. Use 'ls' para ver os projetos disponíveis.", e.ID)
}

var ErrMissingProjectID = errors.New("Erro: informe o id do projeto (ex: exec dashboard-redes). Use 'ls' para ver os projetos disponíveis.")

func errorText(err error) string {
	var unknown UnknownCommandError
	var notFound ProjectNotFoundError
	switch {
	case errors.As(err, &unknown), errors.As(err, &notFound), errors.Is(err, ErrMissingProjectID):
		return err.Error()
	default:
		return "Erro: " + err.Error()
	}
}
