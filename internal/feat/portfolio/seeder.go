package portfolio

import (
	"context"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

const seedFile = "assets/seed/projects.yaml"

// Seeder loads the project catalog from the embedded seed file when the
// projects table is empty.
type Seeder struct {
	service  Service
	assetsFS embed.FS
	log      logger.Logger
}

func NewSeeder(service Service, assetsFS embed.FS, log logger.Logger) *Seeder {
	return &Seeder{
		service:  service,
		assetsFS: assetsFS,
		log:      log,
	}
}

type seedProject struct {
	Slug          string   `yaml:"slug"`
	Title         string   `yaml:"title"`
	Category      string   `yaml:"category"`
	Featured      bool     `yaml:"featured"`
	SummaryES     string   `yaml:"summary_es"`
	SummaryEN     string   `yaml:"summary_en"`
	DescriptionES string   `yaml:"description_es"`
	DescriptionEN string   `yaml:"description_en"`
	Technologies  []string `yaml:"technologies"`
	LiveURL       string   `yaml:"live_url"`
	GithubURL     string   `yaml:"github_url"`
	ImagePath     string   `yaml:"image_path"`
	CompletedAt   string   `yaml:"completed_at"`
}

type seedCatalog struct {
	Projects []seedProject `yaml:"projects"`
}

func (s *Seeder) Start(ctx context.Context) error {
	count, err := s.service.CountProjects(ctx)
	if err != nil {
		return fmt.Errorf("cannot count projects: %w", err)
	}

	if count > 0 {
		s.log.Info("Projects already exist, skipping portfolio seeding")
		return nil
	}

	data, err := s.assetsFS.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("cannot read seed file: %w", err)
	}

	var catalog seedCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("cannot parse seed file: %w", err)
	}

	for i, sp := range catalog.Projects {
		p := &Project{
			Slug:          sp.Slug,
			Title:         sp.Title,
			Category:      sp.Category,
			Featured:      sp.Featured,
			SummaryES:     sp.SummaryES,
			SummaryEN:     sp.SummaryEN,
			DescriptionES: sp.DescriptionES,
			DescriptionEN: sp.DescriptionEN,
			Technologies:  sp.Technologies,
			LiveURL:       sp.LiveURL,
			GithubURL:     sp.GithubURL,
			ImagePath:     sp.ImagePath,
			CompletedAt:   sp.CompletedAt,
			SortOrder:     int64(i),
		}
		if err := s.service.CreateProject(ctx, p); err != nil {
			return fmt.Errorf("cannot seed project %s: %w", sp.Slug, err)
		}
	}

	s.log.Infof("Seeded %d projects", len(catalog.Projects))
	return nil
}
