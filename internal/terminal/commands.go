package terminal

import (
	"fmt"
	"sort"
	"strings"
)

// command is one row of the KlayverOS command table. help and ls are rendered from
// this table, so a command only needs to be added here.
type command struct {
	name    string
	example string
	summary string
	// lsPos is the 1-based position under "Outros Comandos" in ls; 0 hides it.
	lsPos int
	run   func(in *Interpreter, args []string) error
}

// CommandInfo is the public description of a command.
type CommandInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

var commandTable []command

func init() {
	commandTable = []command{
		{name: "help", summary: "Mostra esta lista de ajuda", lsPos: 4, run: (*Interpreter).cmdHelp},
		{name: "whoami", summary: "Exibe informações sobre mim", lsPos: 6, run: (*Interpreter).cmdWhoami},
		{name: "ls", summary: "Lista projetos e arquivos", run: (*Interpreter).cmdLs},
		{name: "exec", example: "exec dashboard-redes", summary: "Executa um projeto", run: (*Interpreter).cmdExec},
		{name: "skills", summary: "Mostra minhas habilidades técnicas", lsPos: 1, run: (*Interpreter).cmdSkills},
		{name: "contact", summary: "Mostra minhas informações de contato", lsPos: 2, run: (*Interpreter).cmdContact},
		{name: "gui", summary: "Muda para a interface gráfica do portfólio", lsPos: 3, run: (*Interpreter).cmdGUI},
		{name: "clear", summary: "Limpa o terminal", lsPos: 5, run: (*Interpreter).cmdClear},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commandTable {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Commands lists the recognized commands in help order.
func Commands() []CommandInfo {
	out := make([]CommandInfo, 0, len(commandTable))
	for _, c := range commandTable {
		out = append(out, CommandInfo{Name: c.name, Summary: c.summary})
	}
	return out
}

func (in *Interpreter) cmdHelp(_ []string) error {
	var b strings.Builder
	b.WriteString("Comandos disponíveis:")
	for _, c := range commandTable {
		summary := c.summary
		if c.example != "" {
			summary += " (ex: " + c.example + ")"
		}
		fmt.Fprintf(&b, "\n  %-9s - %s", c.name, summary)
	}
	in.appendEntry(Output(b.String()))
	return nil
}

func (in *Interpreter) cmdWhoami(_ []string) error {
	p := in.profile
	lines := []string{p.Name, p.Role}
	lines = append(lines, p.Bio...)
	in.appendEntry(Output(strings.Join(nonEmpty(lines), "\n")))
	return nil
}

func (in *Interpreter) cmdLs(_ []string) error {
	var b strings.Builder
	b.WriteString("Projetos (executáveis):")
	if in.projects != nil {
		for _, id := range in.projects.IDs() {
			b.WriteString("\n  - " + id)
		}
	}
	var listed []command
	for _, c := range commandTable {
		if c.lsPos > 0 {
			listed = append(listed, c)
		}
	}
	sort.Slice(listed, func(i, j int) bool { return listed[i].lsPos < listed[j].lsPos })
	others := make([]string, 0, len(listed))
	for _, c := range listed {
		others = append(others, c.name)
	}
	b.WriteString("\n\nOutros Comandos:\n  - " + strings.Join(others, ", "))
	in.appendEntry(Output(b.String()))
	return nil
}

func (in *Interpreter) cmdExec(args []string) error {
	if len(args) == 0 {
		return ErrMissingProjectID
	}
	id := args[0]
	if in.projects == nil {
		return ProjectNotFoundError{ID: id}
	}
	if _, ok := in.projects.Find(id); !ok {
		return ProjectNotFoundError{ID: id}
	}
	in.appendEntry(Info(fmt.Sprintf("Executando projeto: %s...", id)))
	if in.coord != nil {
		in.coord.OpenProjectByID(id)
	}
	return nil
}

func (in *Interpreter) cmdSkills(_ []string) error {
	var b strings.Builder
	b.WriteString("Habilidades:")
	for _, g := range in.skills {
		names := make([]string, 0, len(g.Skills))
		for _, s := range g.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "\n\n[%s]\n  - %s", g.Title, strings.Join(names, ", "))
	}
	in.appendEntry(Output(b.String()))
	return nil
}

func (in *Interpreter) cmdContact(_ []string) error {
	p := in.profile
	var b strings.Builder
	b.WriteString("Você pode me encontrar em:")
	if p.Email != "" {
		b.WriteString("\n  - E-mail:   " + p.Email)
	}
	if p.LinkedIn != "" {
		b.WriteString("\n  - LinkedIn: " + p.LinkedIn)
	}
	if p.GitHub != "" {
		b.WriteString("\n  - GitHub:   " + p.GitHub)
	}
	in.appendEntry(Output(b.String()))
	return nil
}

func (in *Interpreter) cmdGUI(_ []string) error {
	in.appendEntry(Info("Iniciando interface gráfica..."))
	if in.coord == nil {
		return nil
	}
	coord := in.coord
	in.sched.After(in.guiDelay, coord.SwitchToGraphical)
	return nil
}

func (in *Interpreter) cmdClear(_ []string) error {
	in.Clear()
	return nil
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
