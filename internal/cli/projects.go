package cli

import (
	"fmt"
	"strings"

	"portfolio-cli/internal/catalog"
	"portfolio-cli/internal/model"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List portfolio projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, ok := catalog.ParseCategory(category)
			if !ok {
				return writeErr(cmd, errNotFound("category", category))
			}
			ps := app.catalog.FilterByCategory(cat)
			return writeOut(cmd, app, result{
				Data: ps,
				Meta: map[string]any{"category": cat, "count": len(ps)},
				Hints: []string{
					"portfolio projects show <id>",
				},
				text: func() string { return projectsText(ps) },
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (Todos|Full-Stack|Automação & Redes)")
	cmd.AddCommand(newProjectsShowCmd(app))
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			p, ok := app.catalog.Find(id)
			if !ok {
				return writeErr(cmd, errNotFound("project", id))
			}
			return writeOut(cmd, app, result{
				Data: p,
				Meta: map[string]any{"hasLiveDemo": p.HasLiveDemo()},
				text: func() string { return projectText(p) },
			})
		},
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List project categories (filter bar order)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := catalog.Categories()
			return writeOut(cmd, app, result{
				Data: cats,
				text: func() string {
					lines := make([]string, 0, len(cats))
					for _, c := range cats {
						lines = append(lines, string(c))
					}
					return strings.Join(lines, "\n")
				},
			})
		},
	}
}

func projectsText(ps []model.Project) string {
	var b strings.Builder
	for _, p := range ps {
		fmt.Fprintf(&b, "%-20s %-20s %s\n", p.ID, p.Category, p.Title)
	}
	return b.String()
}

func projectText(p model.Project) string {
	lines := []string{
		p.Title,
		string(p.Category),
		"",
		p.Description,
		"",
		"Problema: " + p.Problem,
		"Solução: " + p.Solution,
		"",
		p.LongDescription,
		"",
		"Tecnologias: " + strings.Join(p.Technologies, ", "),
		"Repositório: " + p.RepoURL,
	}
	if p.HasLiveDemo() {
		lines = append(lines, "Demo ao vivo: "+*p.LiveURL)
	}
	if p.GifURL != "" {
		lines = append(lines, "Demonstração: "+p.GifURL)
	}
	return strings.Join(lines, "\n")
}
