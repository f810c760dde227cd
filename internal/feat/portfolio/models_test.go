package portfolio

import (
	"testing"

	"github.com/peperuizdev/portfolio/internal/i18n"
)

func TestProjectLocalizedText(t *testing.T) {
	p := &Project{
		SummaryES:     "Resumen",
		SummaryEN:     "Summary",
		DescriptionES: "Descripción",
		DescriptionEN: "Description",
	}

	if got := p.Summary(i18n.ES); got != "Resumen" {
		t.Errorf("Summary(es) = %q", got)
	}
	if got := p.Summary(i18n.EN); got != "Summary" {
		t.Errorf("Summary(en) = %q", got)
	}
	if got := p.Description(i18n.EN); got != "Description" {
		t.Errorf("Description(en) = %q", got)
	}

	// Missing translation falls back to Spanish.
	p.SummaryEN = ""
	if got := p.Summary(i18n.EN); got != "Resumen" {
		t.Errorf("Summary(en) without translation = %q, want Spanish fallback", got)
	}
}

func TestSkillsByCategory(t *testing.T) {
	groups := SkillsByCategory()
	if len(groups) != 5 {
		t.Fatalf("groups = %d, want 5", len(groups))
	}

	wantOrder := []string{"frontend", "backend", "ai", "database", "tools"}
	for i, g := range groups {
		if g.Category != wantOrder[i] {
			t.Errorf("group %d = %s, want %s", i, g.Category, wantOrder[i])
		}
		if len(g.Skills) == 0 {
			t.Errorf("group %s has no skills", g.Category)
		}
		for _, s := range g.Skills {
			if s.Category != g.Category {
				t.Errorf("skill %s in group %s has category %s", s.Name, g.Category, s.Category)
			}
		}
	}
}

func TestSplitAndJoinTechnologies(t *testing.T) {
	techs := []string{"Go", "SQLite", "chi"}
	joined := joinTechnologies(techs)

	got := splitTechnologies(joined)
	if len(got) != 3 || got[0] != "Go" || got[2] != "chi" {
		t.Errorf("round trip = %v", got)
	}

	if splitTechnologies("") != nil {
		t.Error("empty string should yield nil")
	}
	if got := splitTechnologies(" Go , , chi "); len(got) != 2 {
		t.Errorf("split with blanks = %v", got)
	}
}
