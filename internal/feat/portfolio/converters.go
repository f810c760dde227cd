package portfolio

import (
	"strings"

	"github.com/peperuizdev/portfolio/internal/db/sqlc"
	"github.com/peperuizdev/portfolio/pkg/pf/model"
)

// Technologies are stored as a comma-separated list.
const techSeparator = ","

func fromSQLCProject(p sqlc.Project) *Project {
	return &Project{
		ID:            model.ParseID(p.ID),
		Slug:          p.Slug,
		Title:         p.Title,
		Category:      p.Category,
		Featured:      p.Featured != 0,
		SummaryES:     p.SummaryEs,
		SummaryEN:     p.SummaryEn,
		DescriptionES: p.DescriptionEs,
		DescriptionEN: p.DescriptionEn,
		Technologies:  splitTechnologies(p.Technologies),
		LiveURL:       p.LiveUrl.String,
		GithubURL:     p.GithubUrl.String,
		ImagePath:     p.ImagePath.String,
		CompletedAt:   p.CompletedAt,
		SortOrder:     p.SortOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func splitTechnologies(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, techSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinTechnologies(techs []string) string {
	return strings.Join(techs, techSeparator)
}
