package model

// Category groups projects on the graphical project grid.
type Category string

const (
	// CategoryAll is the filter-bar entry that selects every project.
	CategoryAll        Category = "Todos"
	CategoryFullStack  Category = "Full-Stack"
	CategoryAutomation Category = "Automação & Redes"
)

// LiveURLPlaceholder is the value the page uses for "demo coming soon".
const LiveURLPlaceholder = "#"

type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        Category `json:"category"`
	Description     string   `json:"description"`
	Problem         string   `json:"problem"`
	Solution        string   `json:"solution"`
	LongDescription string   `json:"longDescription"`
	Technologies    []string `json:"technologies"`
	RepoURL         string   `json:"repoUrl"`
	// LiveURL is nil when the project has no demo at all.
	LiveURL *string `json:"liveUrl,omitempty"`
	GifURL  string  `json:"gifUrl"`
}

// HasLiveDemo reports whether a real demo link should be shown.
func (p Project) HasLiveDemo() bool {
	return p.LiveURL != nil && *p.LiveURL != "" && *p.LiveURL != LiveURLPlaceholder
}

type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SkillGroup struct {
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Profile struct {
	Name     string   `json:"name"`
	Initials string   `json:"initials"`
	Role     string   `json:"role"`
	Headline string   `json:"headline"`
	Tagline  string   `json:"tagline"`
	Bio      []string `json:"bio"`
	Email    string   `json:"email"`
	LinkedIn string   `json:"linkedin"`
	GitHub   string   `json:"github"`
}

// Links returns the contact links in page order.
func (p Profile) Links() []Link {
	return []Link{
		{Label: "E-mail", URL: "mailto:" + p.Email},
		{Label: "LinkedIn", URL: p.LinkedIn},
		{Label: "GitHub", URL: p.GitHub},
	}
}
