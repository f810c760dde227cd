package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/peperuizdev/portfolio/internal/db/sqlc"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
	"github.com/peperuizdev/portfolio/pkg/pf/model"
)

var ErrProjectNotFound = errors.New("project not found")

// Service defines the portfolio catalog interface.
type Service interface {
	Start(ctx context.Context) error
	CreateProject(ctx context.Context, p *Project) error
	GetProjectBySlug(ctx context.Context, slug string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	ListFeaturedProjects(ctx context.Context) ([]*Project, error)
	CountProjects(ctx context.Context) (int64, error)
}

// DBProvider provides access to the database.
type DBProvider interface {
	GetDB() *sql.DB
}

type service struct {
	dbProvider DBProvider
	queries    *sqlc.Queries
	cfg        *config.Config
	log        logger.Logger
}

// NewService creates a new portfolio service.
func NewService(dbProvider DBProvider, cfg *config.Config, log logger.Logger) Service {
	return &service{
		dbProvider: dbProvider,
		cfg:        cfg,
		log:        log,
	}
}

func (s *service) ensureQueries() {
	if s.queries == nil && s.dbProvider != nil {
		s.queries = sqlc.New(s.dbProvider.GetDB())
	}
}

func (s *service) Start(ctx context.Context) error {
	s.ensureQueries()
	s.log.Info("Portfolio service started")
	return nil
}

func (s *service) CreateProject(ctx context.Context, p *Project) error {
	s.ensureQueries()

	if !model.IsValidID(p.ID) {
		p.ID = model.NewID()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	featured := int64(0)
	if p.Featured {
		featured = 1
	}

	_, err := s.queries.CreateProject(ctx, sqlc.CreateProjectParams{
		ID:            p.ID.String(),
		Slug:          p.Slug,
		Title:         p.Title,
		Category:      p.Category,
		Featured:      featured,
		SummaryEs:     p.SummaryES,
		SummaryEn:     p.SummaryEN,
		DescriptionEs: p.DescriptionES,
		DescriptionEn: p.DescriptionEN,
		Technologies:  joinTechnologies(p.Technologies),
		LiveUrl:       sql.NullString{String: p.LiveURL, Valid: p.LiveURL != ""},
		GithubUrl:     sql.NullString{String: p.GithubURL, Valid: p.GithubURL != ""},
		ImagePath:     sql.NullString{String: p.ImagePath, Valid: p.ImagePath != ""},
		CompletedAt:   p.CompletedAt,
		SortOrder:     p.SortOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("cannot create project: %w", err)
	}
	return nil
}

func (s *service) GetProjectBySlug(ctx context.Context, slug string) (*Project, error) {
	s.ensureQueries()

	row, err := s.queries.GetProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("cannot get project: %w", err)
	}
	return fromSQLCProject(row), nil
}

func (s *service) ListProjects(ctx context.Context) ([]*Project, error) {
	s.ensureQueries()

	rows, err := s.queries.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list projects: %w", err)
	}

	projects := make([]*Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, fromSQLCProject(row))
	}
	return projects, nil
}

func (s *service) ListFeaturedProjects(ctx context.Context) ([]*Project, error) {
	s.ensureQueries()

	rows, err := s.queries.ListFeaturedProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list featured projects: %w", err)
	}

	projects := make([]*Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, fromSQLCProject(row))
	}
	return projects, nil
}

func (s *service) CountProjects(ctx context.Context) (int64, error) {
	s.ensureQueries()

	count, err := s.queries.CountProjects(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot count projects: %w", err)
	}
	return count, nil
}
