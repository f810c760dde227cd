package portfolio

import (
	"time"

	"github.com/google/uuid"
	"github.com/peperuizdev/portfolio/internal/i18n"
)

// Project is a portfolio entry. Summaries and descriptions are stored per
// locale; callers pick the right one with Summary and Description.
type Project struct {
	ID            uuid.UUID
	Slug          string
	Title         string
	Category      string
	Featured      bool
	SummaryES     string
	SummaryEN     string
	DescriptionES string
	DescriptionEN string
	Technologies  []string
	LiveURL       string
	GithubURL     string
	ImagePath     string
	CompletedAt   string // YYYY-MM
	SortOrder     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Summary returns the short description in the given locale.
func (p *Project) Summary(locale string) string {
	if locale == i18n.EN && p.SummaryEN != "" {
		return p.SummaryEN
	}
	return p.SummaryES
}

// Description returns the long description in the given locale.
func (p *Project) Description(locale string) string {
	if locale == i18n.EN && p.DescriptionEN != "" {
		return p.DescriptionEN
	}
	return p.DescriptionES
}

// HasLiveURL reports whether the project has a public deployment.
func (p *Project) HasLiveURL() bool {
	return p.LiveURL != ""
}

// Skill is a technology the site owner works with, grouped by category.
type Skill struct {
	Name     string
	Category string
	Level    string
}

// Skill categories in display order.
var skillCategories = []string{"frontend", "backend", "ai", "database", "tools"}

// skills is static data; it changes with the site copy, not with user input.
var skills = []Skill{
	{"React", "frontend", "expert"},
	{"Next.js", "frontend", "advanced"},
	{"TypeScript", "frontend", "advanced"},
	{"JavaScript", "frontend", "expert"},
	{"HTML5", "frontend", "expert"},
	{"CSS3", "frontend", "expert"},
	{"Tailwind CSS", "frontend", "expert"},
	{"Sass", "frontend", "advanced"},
	{"Vite", "frontend", "advanced"},
	{"Shadcn/ui", "frontend", "intermediate"},

	{"Python", "backend", "expert"},
	{"Node.js", "backend", "advanced"},
	{"Express", "backend", "advanced"},
	{"Django", "backend", "expert"},
	{"FastAPI", "backend", "advanced"},
	{"Flask", "backend", "intermediate"},
	{"REST API", "backend", "expert"},
	{"JWT", "backend", "advanced"},
	{"Sequelize", "backend", "advanced"},

	{"Machine Learning", "ai", "advanced"},
	{"Pandas", "ai", "expert"},
	{"NumPy", "ai", "advanced"},
	{"Scikit-Learn", "ai", "advanced"},
	{"XGBoost", "ai", "advanced"},
	{"Jupyter Notebook", "ai", "expert"},
	{"Matplotlib", "ai", "advanced"},
	{"Seaborn", "ai", "advanced"},
	{"BeautifulSoup", "ai", "advanced"},
	{"Selenium", "ai", "advanced"},
	{"EDA", "ai", "advanced"},
	{"Redes Neuronales", "ai", "intermediate"},

	{"MySQL", "database", "advanced"},
	{"PostgreSQL", "database", "advanced"},
	{"MongoDB", "database", "intermediate"},
	{"Supabase", "database", "intermediate"},

	{"Git", "tools", "expert"},
	{"GitHub", "tools", "expert"},
	{"Docker", "tools", "intermediate"},
	{"Postman", "tools", "advanced"},
	{"Figma", "tools", "intermediate"},
	{"Vitest", "tools", "advanced"},
	{"Jest", "tools", "advanced"},
	{"Pytest", "tools", "advanced"},
}

// Skills returns all skills in declared order.
func Skills() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// SkillsByCategory groups the skills by category, in display order.
func SkillsByCategory() []SkillGroup {
	groups := make([]SkillGroup, 0, len(skillCategories))
	for _, cat := range skillCategories {
		var members []Skill
		for _, s := range skills {
			if s.Category == cat {
				members = append(members, s)
			}
		}
		if len(members) > 0 {
			groups = append(groups, SkillGroup{Category: cat, Skills: members})
		}
	}
	return groups
}

// SkillGroup is a skill category with its members.
type SkillGroup struct {
	Category string
	Skills   []Skill
}
