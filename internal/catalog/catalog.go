// Package catalog holds the read-only portfolio content: the project list and the
// static page sections that surround it.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-cli/internal/model"
)

type duplicateIDError struct {
	id string
}

func (e duplicateIDError) Error() string {
	return fmt.Sprintf("duplicate project id: %s", e.id)
}

var errEmptyID = errors.New("project id is empty")

type paddedIDError struct {
	id string
}

func (e paddedIDError) Error() string {
	return fmt.Sprintf("project id has surrounding whitespace: %q", e.id)
}

// Catalog is an immutable, ordered set of projects with unique ids.
type Catalog struct {
	projects []model.Project
	byID     map[string]int
}

// New builds a catalog, rejecting empty, padded or duplicate ids.
func New(projects []model.Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]model.Project, 0, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for _, p := range projects {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, errEmptyID
		}
		if id != p.ID {
			return nil, paddedIDError{id: p.ID}
		}
		if _, ok := c.byID[id]; ok {
			return nil, duplicateIDError{id: id}
		}
		c.byID[id] = len(c.projects)
		c.projects = append(c.projects, cloneProject(p))
	}
	return c, nil
}

// Default returns the built-in portfolio catalog.
func Default() *Catalog {
	c, err := New(defaultProjects())
	if err != nil {
		panic("catalog: invalid built-in projects: " + err.Error())
	}
	return c
}

// All returns every project in catalog order.
func (c *Catalog) All() []model.Project {
	out := make([]model.Project, 0, len(c.projects))
	for _, p := range c.projects {
		out = append(out, cloneProject(p))
	}
	return out
}

// IDs returns the project ids in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.projects))
	for _, p := range c.projects {
		out = append(out, p.ID)
	}
	return out
}

func (c *Catalog) Find(id string) (model.Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Project{}, false
	}
	return cloneProject(c.projects[i]), true
}

// FilterByCategory returns the projects in cat, preserving catalog order.
// model.CategoryAll returns the full list.
func (c *Catalog) FilterByCategory(cat model.Category) []model.Project {
	if cat == model.CategoryAll {
		return c.All()
	}
	var out []model.Project
	for _, p := range c.projects {
		if p.Category == cat {
			out = append(out, cloneProject(p))
		}
	}
	return out
}

// Categories returns the filter-bar entries, "all" first.
func Categories() []model.Category {
	return []model.Category{model.CategoryAll, model.CategoryFullStack, model.CategoryAutomation}
}

// ParseCategory matches a category by its label (case-insensitive).
func ParseCategory(s string) (model.Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.CategoryAll, true
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

func cloneProject(p model.Project) model.Project {
	if p.Technologies != nil {
		p.Technologies = append([]string(nil), p.Technologies...)
	}
	if p.LiveURL != nil {
		v := *p.LiveURL
		p.LiveURL = &v
	}
	return p
}
