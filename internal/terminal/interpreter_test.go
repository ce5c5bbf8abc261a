package terminal

import (
	"strings"
	"testing"
	"time"

	"portfolio-cli/internal/catalog"
	"portfolio-cli/internal/sched"
	"portfolio-cli/internal/store"
	"portfolio-cli/internal/viewstate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	in    *Interpreter
	coord *viewstate.Coordinator
	queue *sched.Queue
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cat := catalog.Default()
	coord := viewstate.New(cat, store.NewMemory())
	q := sched.NewQueue()
	in := New(cat, coord, q,
		WithProfile(catalog.Profile()),
		WithSkillGroups(catalog.SkillGroups()),
	)
	return fixture{in: in, coord: coord, queue: q}
}

func TestSubmit_BlankInputAppendsNothing(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"", "   ", "\t\n"} {
		f := newFixture(t)
		f.in.Submit(line)
		assert.Empty(t, f.in.Scrollback(), "line %q", line)
	}
}

func TestSubmit_EchoIsTrimmedAndFirst(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("   whoami   ")
	sb := f.in.Scrollback()
	require.Len(t, sb, 2)
	assert.Equal(t, Echo("whoami"), sb[0])
	assert.Equal(t, KindOutput, sb[1].Kind)
	assert.True(t, strings.HasPrefix(sb[1].Text, "Klayver Alencar\n"))
}

func TestSubmit_ClearEmptiesScrollback(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Boot()
	f.in.Submit("help")
	f.in.Submit("foobar")
	require.NotEmpty(t, f.in.Scrollback())

	f.in.Submit("clear")
	assert.Empty(t, f.in.Scrollback())

	f.in.Submit("clear")
	assert.Empty(t, f.in.Scrollback())
}

func TestSubmit_ExecValidOpensProject(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.coord.SwitchToTerminal()

	f.in.Submit("exec dashboard-redes")

	assert.Equal(t, []Entry{
		Echo("exec dashboard-redes"),
		Info("Executando projeto: dashboard-redes..."),
	}, f.in.Scrollback())

	st := f.coord.Snapshot()
	assert.Equal(t, viewstate.ModeGraphical, st.Mode)
	require.NotNil(t, st.OpenProject)
	want, _ := catalog.Default().Find("dashboard-redes")
	assert.Equal(t, want, *st.OpenProject)
}

func TestSubmit_ExecInvalidLeavesViewState(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.coord.SwitchToTerminal()
	before := f.coord.Snapshot()

	f.in.Submit("exec nao-existe")

	sb := f.in.Scrollback()
	require.Len(t, sb, 2)
	assert.Equal(t, Echo("exec nao-existe"), sb[0])
	assert.Equal(t, KindError, sb[1].Kind)
	assert.Contains(t, sb[1].Text, `"nao-existe"`)
	assert.Contains(t, sb[1].Text, "'ls'")
	assert.Equal(t, before, f.coord.Snapshot())
}

func TestSubmit_ExecWithoutID(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.coord.SwitchToTerminal()
	f.in.Submit("exec")

	sb := f.in.Scrollback()
	require.Len(t, sb, 2)
	assert.Equal(t, Error(ErrMissingProjectID.Error()), sb[1])
	assert.Equal(t, viewstate.ModeTerminal, f.coord.Mode())
}

func TestSubmit_UnknownCommand(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("foobar --now")

	assert.Equal(t, []Entry{
		Echo("foobar --now"),
		Error("Comando não encontrado: foobar"),
	}, f.in.Scrollback())
}

func TestSubmit_CommandNamesAreCaseSensitive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("HELP")
	sb := f.in.Scrollback()
	require.Len(t, sb, 2)
	assert.Equal(t, KindError, sb[1].Kind)
}

func TestSubmit_GUISwitchesAfterDelay(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.coord.SwitchToTerminal()

	f.in.Submit("gui")
	assert.Equal(t, []Entry{Echo("gui"), Info("Iniciando interface gráfica...")}, f.in.Scrollback())
	assert.Equal(t, viewstate.ModeTerminal, f.coord.Mode(), "switch must be deferred")

	assert.Equal(t, 0, f.queue.RunDue(DefaultGUIDelay-time.Millisecond))
	assert.Equal(t, viewstate.ModeTerminal, f.coord.Mode())

	assert.Equal(t, 1, f.queue.RunDue(time.Millisecond))
	assert.Equal(t, viewstate.ModeGraphical, f.coord.Mode())
}

func TestSubmit_GUITimerOverridesLaterModeChange(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.coord.SwitchToTerminal()
	f.in.Submit("gui")

	// Input keeps flowing while the timer is pending.
	f.in.Submit("ls")
	require.Len(t, f.in.Scrollback(), 4)

	f.coord.SwitchToGraphical()
	f.coord.SwitchToTerminal()

	f.queue.Flush()
	assert.Equal(t, viewstate.ModeGraphical, f.coord.Mode())
}

func TestWithGUIDelay(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	coord := viewstate.New(cat, nil)
	q := sched.NewQueue()
	in := New(cat, coord, q, WithGUIDelay(2*time.Second))
	coord.SwitchToTerminal()
	in.Submit("gui")

	ts := q.Drain()
	require.Len(t, ts, 1)
	assert.Equal(t, 2*time.Second, ts[0].Delay)
}

func TestNilScheduler_RunsImmediately(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	coord := viewstate.New(cat, nil)
	coord.SwitchToTerminal()
	in := New(cat, coord, nil)

	in.Submit("gui")
	assert.Equal(t, viewstate.ModeGraphical, coord.Mode())
}

func TestHelp_ListsEveryCommand(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("help")
	sb := f.in.Scrollback()
	require.Len(t, sb, 2)
	assert.Equal(t, KindOutput, sb[1].Kind)

	text := sb[1].Text
	assert.True(t, strings.HasPrefix(text, "Comandos disponíveis:"))
	for _, c := range Commands() {
		assert.Contains(t, text, "  "+c.Name+" ", "help misses %q", c.Name)
		assert.Contains(t, text, c.Summary)
	}
	assert.Contains(t, text, "(ex: exec dashboard-redes)")
}

func TestEveryCommandDispatches(t *testing.T) {
	t.Parallel()

	for _, c := range Commands() {
		f := newFixture(t)
		f.in.Submit(c.Name + " dashboard-redes")
		for _, e := range f.in.Scrollback() {
			if e.Kind == KindError {
				assert.NotContains(t, e.Text, "Comando não encontrado", "command %q not dispatched", c.Name)
			}
		}
	}
}

func TestLs_ListsProjectsAndOtherCommands(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("ls")
	sb := f.in.Scrollback()
	require.Len(t, sb, 2)

	text := sb[1].Text
	for _, id := range catalog.Default().IDs() {
		assert.Contains(t, text, "  - "+id+"\n")
	}
	assert.Contains(t, text, "Outros Comandos:\n  - skills, contact, gui, help, clear, whoami")
}

func TestSkillsAndContact(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("skills")
	f.in.Submit("contact")
	sb := f.in.Scrollback()
	require.Len(t, sb, 4)

	assert.Contains(t, sb[1].Text, "[Redes e Infraestrutura]")
	assert.Contains(t, sb[1].Text, "[Desenvolvimento Web]")
	assert.Contains(t, sb[1].Text, "TCP/IP")

	assert.Contains(t, sb[3].Text, "https://www.linkedin.com/in/klayveralencar/")
	assert.Contains(t, sb[3].Text, "https://github.com/klayver2001")
}

func TestBoot_ResetsToWelcome(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("whoami")
	f.in.Boot()

	sb := f.in.Scrollback()
	require.Len(t, sb, 1)
	assert.Equal(t, KindInfo, sb[0].Kind)
	assert.Contains(t, sb[0].Text, "KlayverOS")
}

func TestScrollback_ReturnsCopy(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.in.Submit("whoami")
	sb := f.in.Scrollback()
	sb[0].Text = "changed"
	assert.Equal(t, "whoami", f.in.Scrollback()[0].Text)
}

func TestEndToEnd_TerminalExecOpensGraphicalDetail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	st := f.coord.Snapshot()
	require.Equal(t, viewstate.ModeGraphical, st.Mode)
	require.Equal(t, viewstate.ThemeLight, st.Theme)

	f.coord.SwitchToTerminal()
	f.in.Submit("exec dashboard-redes")

	assert.Equal(t, []Entry{
		Echo("exec dashboard-redes"),
		Info("Executando projeto: dashboard-redes..."),
	}, f.in.Scrollback())

	p, ok := f.coord.OpenProject()
	require.True(t, ok)
	assert.Equal(t, "dashboard-redes", p.ID)
	assert.Equal(t, viewstate.ModeGraphical, f.coord.Mode())
}
