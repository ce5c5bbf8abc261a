package tui

import (
	"time"

	"portfolio-cli/internal/catalog"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/sched"
	"portfolio-cli/internal/terminal"
	"portfolio-cli/internal/viewstate"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// deferredMsg carries a scheduled task back onto the event loop once its delay passed.
type deferredMsg struct{ run func() }

type appModel struct {
	catalog *catalog.Catalog
	coord   *viewstate.Coordinator
	term    *terminal.Interpreter
	queue   *sched.Queue
	// tick turns a drained task into the command that delivers its deferredMsg.
	tick func(sched.Task) tea.Cmd

	profile  model.Profile
	timeline []model.TimelineEvent
	skills   []model.SkillGroup

	width  int
	height int

	keys    keyMap
	help    help.Model
	page    viewport.Model
	detail  viewport.Model
	console viewport.Model
	input   textinput.Model

	filter   int
	selected int
	shownSel int
	lastMode viewstate.Mode
	openID   string
	status   string
}

func newAppModel(opts Options) appModel {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	coord := opts.Coordinator
	if coord == nil {
		coord = viewstate.New(cat, nil)
	}
	profile := catalog.Profile()
	skills := catalog.SkillGroups()
	q := sched.NewQueue()

	ti := textinput.New()
	ti.Prompt = terminal.Prompt + " "
	ti.CharLimit = 200
	ti.PromptStyle = styleEntry(terminal.KindInput)

	m := appModel{
		catalog:  cat,
		coord:    coord,
		term:     terminal.New(cat, coord, q, terminal.WithGUIDelay(opts.GUIDelay), terminal.WithProfile(profile), terminal.WithSkillGroups(skills)),
		queue:    q,
		tick:     tickTask,
		profile:  profile,
		timeline: catalog.Timeline(),
		skills:   skills,
		keys:     newKeyMap(),
		help:     help.New(),
		page:     viewport.New(80, 20),
		detail:   viewport.New(80, 20),
		console:  viewport.New(80, 20),
		input:    ti,
		lastMode: viewstate.ModeGraphical,
	}

	applyTheme(coord.Theme())
	coord.Subscribe(func(st viewstate.State) { applyTheme(st.Theme) })

	if opts.StartMode == viewstate.ModeTerminal {
		coord.SwitchToTerminal()
	}
	m.sync()
	return m
}

func tickTask(t sched.Task) tea.Cmd {
	run := t.Run
	return tea.Tick(t.Delay, func(time.Time) tea.Msg { return deferredMsg{run: run} })
}

func (m appModel) Init() tea.Cmd {
	if m.coord.Mode() == viewstate.ModeTerminal {
		return textinput.Blink
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case deferredMsg:
		if msg.run != nil {
			msg.run()
		}

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch {
		case m.coord.Mode() == viewstate.ModeTerminal:
			m, cmd = m.updateTerminal(msg)
		default:
			if _, open := m.coord.OpenProject(); open {
				m, cmd = m.updateOverlay(msg)
			} else {
				m, cmd = m.updatePage(msg)
			}
		}
		cmds = append(cmds, cmd)

	default:
		if m.coord.Mode() == viewstate.ModeTerminal {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.sync())
	for _, t := range m.queue.Drain() {
		cmds = append(cmds, m.tick(t))
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updatePage(msg tea.KeyMsg) (appModel, tea.Cmd) {
	visible := m.visibleProjects()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(visible)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Open):
		if m.selected >= 0 && m.selected < len(visible) {
			m.coord.OpenProjectByID(visible[m.selected].ID)
		}
	case key.Matches(msg, m.keys.PrevFilter):
		m.cycleFilter(-1)
	case key.Matches(msg, m.keys.NextFilter):
		m.cycleFilter(1)
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Terminal):
		m.coord.SwitchToTerminal()
	case key.Matches(msg, m.keys.PageUp):
		m.page.LineUp(m.page.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.page.LineDown(m.page.Height)
	}
	return m, nil
}

func (m appModel) updateOverlay(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.coord.CloseProject()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Up):
		m.detail.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.detail.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.detail.LineUp(m.detail.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.detail.LineDown(m.detail.Height)
	}
	return m, nil
}

func (m appModel) updateTerminal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		line := m.input.Value()
		m.input.Reset()
		m.term.Submit(line)
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.term.Submit("clear")
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.console.LineUp(m.console.Height)
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.console.LineDown(m.console.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *appModel) visibleProjects() []model.Project {
	cats := catalog.Categories()
	return m.catalog.FilterByCategory(cats[m.filter])
}

func (m *appModel) cycleFilter(delta int) {
	n := len(catalog.Categories())
	m.filter = ((m.filter+delta)%n + n) % n
	m.selected = 0
	m.page.GotoTop()
}

func (m *appModel) toggleTheme() {
	if err := m.coord.ToggleTheme(); err != nil {
		m.status = "Tema alterado, mas não foi salvo."
		return
	}
	m.status = ""
}

// sync reacts to coordinator transitions (terminal boot, overlay content) and
// re-renders the active surface.
func (m *appModel) sync() tea.Cmd {
	var cmd tea.Cmd
	mode := m.coord.Mode()
	if mode != m.lastMode {
		if mode == viewstate.ModeTerminal {
			m.term.Boot()
			m.input.Reset()
			cmd = m.input.Focus()
		} else {
			m.input.Blur()
		}
		m.lastMode = mode
	}

	openID := ""
	if p, ok := m.coord.OpenProject(); ok {
		openID = p.ID
		m.selectProject(p.ID)
	}
	if openID != m.openID {
		m.detail.GotoTop()
		m.openID = openID
	}

	m.render()
	return cmd
}

// selectProject moves the card selection onto id when it is visible under the current
// filter.
func (m *appModel) selectProject(id string) {
	for i, p := range m.visibleProjects() {
		if p.ID == id {
			m.selected = i
			return
		}
	}
}

func (m *appModel) render() {
	theme := m.coord.Theme()
	page, selLine := renderPage(pageContent{
		profile:    m.profile,
		timeline:   m.timeline,
		skills:     m.skills,
		categories: catalog.Categories(),
		filter:     m.filter,
		projects:   m.visibleProjects(),
		selected:   m.selected,
		theme:      theme,
	}, m.page.Width)
	m.page.SetContent(page)
	if selLine >= 0 && m.selected != m.shownSel {
		m.scrollIntoView(selLine)
	}
	m.shownSel = m.selected

	if p, ok := m.coord.OpenProject(); ok {
		m.detail.SetContent(renderOverlay(p, m.detail.Width, theme))
	}

	m.console.SetContent(renderScrollback(m.term.Scrollback(), m.console.Width))
	if m.coord.Mode() == viewstate.ModeTerminal {
		m.console.GotoBottom()
	}
}

func (m *appModel) scrollIntoView(line int) {
	switch {
	case line < m.page.YOffset:
		m.page.SetYOffset(line)
	case line >= m.page.YOffset+m.page.Height-4:
		m.page.SetYOffset(line - m.page.Height/2)
	}
}

func (m *appModel) resize() {
	w := max(m.width, 20)
	// Footer takes one row.
	h := max(m.height-1, 3)

	m.page.Width, m.page.Height = w, h
	m.detail.Width, m.detail.Height = w, h
	// Prompt takes one row.
	m.console.Width, m.console.Height = w, max(h-1, 1)
	m.input.Width = max(w-len(terminal.Prompt)-4, 10)
	m.help.Width = w
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	var keys helpKeys
	switch {
	case m.coord.Mode() == viewstate.ModeTerminal:
		body = m.console.View() + "\n" + renderPromptLine(m.width, m.input.View())
		keys = m.keys.terminalHelp()
	case m.openID != "":
		body = m.detail.View()
		keys = m.keys.overlayHelp()
	default:
		body = m.page.View()
		keys = m.keys.pageHelp()
	}

	footer := m.help.View(keys)
	if m.status != "" {
		footer = styleMuted().Render(m.status) + "  " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		normalizePane(body, m.width, m.height-1),
		normalizePane(footer, m.width, 1),
	)
}
