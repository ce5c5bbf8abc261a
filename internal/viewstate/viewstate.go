// Package viewstate owns the portfolio's top-level view state: which presentation
// mode is active, which project (if any) is shown in the detail overlay, and the
// display theme.
//
// The Coordinator is the only mutation surface. It is not safe for concurrent use:
// every transition runs on the UI's single event loop.
package viewstate

import (
	"fmt"
	"log"
	"strings"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/store"
)

// Mode is the active presentation.
type Mode int

const (
	ModeGraphical Mode = iota
	ModeTerminal
)

func (m Mode) String() string {
	switch m {
	case ModeGraphical:
		return "graphical"
	case ModeTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMode reads a start mode from flags or config. Empty means graphical.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "graphical", "gui":
		return ModeGraphical, nil
	case "terminal", "cli":
		return ModeTerminal, nil
	default:
		return ModeGraphical, fmt.Errorf("unknown mode: %s (want graphical|terminal)", s)
	}
}

// Theme is the persisted display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts only the exact stored values.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	default:
		return "", false
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Finder resolves project ids; *catalog.Catalog satisfies it.
type Finder interface {
	Find(id string) (model.Project, bool)
}

// State is an immutable snapshot of the coordinator.
type State struct {
	Mode        Mode           `json:"mode"`
	OpenProject *model.Project `json:"openProject"`
	Theme       Theme          `json:"theme"`
}

// Coordinator holds the current State and notifies subscribers on change.
type Coordinator struct {
	projects Finder
	prefs    store.Preferences

	mode        Mode
	openProject *model.Project
	theme       Theme

	observers []func(State)
}

// New initializes the view state: graphical mode, no open project, and the theme
// read once from prefs (light when absent, unrecognized, or unreadable).
func New(projects Finder, prefs store.Preferences) *Coordinator {
	c := &Coordinator{
		projects: projects,
		prefs:    prefs,
		mode:     ModeGraphical,
		theme:    ThemeLight,
	}
	if prefs == nil {
		return c
	}
	v, ok, err := prefs.Get(store.KeyTheme)
	if err != nil {
		log.Printf("portfolio: read theme preference: %v", err)
		return c
	}
	if !ok {
		return c
	}
	if t, ok := ParseTheme(v); ok {
		c.theme = t
	}
	return c
}

func (c *Coordinator) Mode() Mode { return c.mode }

func (c *Coordinator) Theme() Theme { return c.theme }

func (c *Coordinator) Snapshot() State {
	st := State{Mode: c.mode, Theme: c.theme}
	if c.openProject != nil {
		p := *c.openProject
		st.OpenProject = &p
	}
	return st
}

// OpenProject returns the project currently shown in the detail overlay.
func (c *Coordinator) OpenProject() (model.Project, bool) {
	if c.openProject == nil {
		return model.Project{}, false
	}
	return *c.openProject, true
}

// Subscribe registers fn to run after every transition.
func (c *Coordinator) Subscribe(fn func(State)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Coordinator) notify() {
	if len(c.observers) == 0 {
		return
	}
	st := c.Snapshot()
	for _, fn := range c.observers {
		fn(st)
	}
}

func (c *Coordinator) SwitchToGraphical() { c.setMode(ModeGraphical) }
func (c *Coordinator) SwitchToTerminal() { c.setMode(ModeTerminal) }

func (c *Coordinator) setMode(m Mode) {
	if c.mode == m {
		return
	}
	c.mode = m
	c.notify()
}

// OpenProjectByID shows the project in the detail overlay and forces graphical mode
// in the same step: the overlay only exists in graphical mode. Unknown ids leave the
// state untouched and report false.
func (c *Coordinator) OpenProjectByID(id string) bool {
	if c.projects == nil {
		return false
	}
	p, ok := c.projects.Find(id)
	if !ok {
		// Callers validate ids first; reaching this is harmless.
		return false
	}
	c.openProject = &p
	c.mode = ModeGraphical
	c.notify()
	return true
}

// CloseProject hides the overlay; the mode is unchanged.
func (c *Coordinator) CloseProject() {
	if c.openProject == nil {
		return
	}
	c.openProject = nil
	c.notify()
}

func (c *Coordinator) ToggleTheme() error {
	return c.SetTheme(c.theme.Toggle())
}

// SetTheme updates the theme and persists it. The in-memory theme changes even when
// persistence fails; the error is returned to the caller.
func (c *Coordinator) SetTheme(t Theme) error {
	if _, ok := ParseTheme(string(t)); !ok {
		return fmt.Errorf("unknown theme: %q (want light|dark)", string(t))
	}
	c.theme = t
	c.notify()
	if c.prefs == nil {
		return nil
	}
	if err := c.prefs.Set(store.KeyTheme, string(t)); err != nil {
		log.Printf("portfolio: persist theme %s: %v", t, err)
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}
