package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peperuizdev/portfolio/internal/db/sqlc"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/emailjs"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// Relayer forwards a submission through an external email service.
type Relayer interface {
	Send(ctx context.Context, msg emailjs.Message) error
	IsConfigured() bool
}

// Service defines the contact service interface.
type Service interface {
	Start(ctx context.Context) error
	Submit(ctx context.Context, sub *Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	ListSubmissions(ctx context.Context) ([]*Submission, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}

// DBProvider provides access to the database.
type DBProvider interface {
	GetDB() *sql.DB
}

type service struct {
	dbProvider DBProvider
	queries    *sqlc.Queries
	relayer    Relayer
	cfg        *config.Config
	log        logger.Logger
}

// NewService creates a new contact service.
func NewService(dbProvider DBProvider, relayer Relayer, cfg *config.Config, log logger.Logger) Service {
	return &service{
		dbProvider: dbProvider,
		relayer:    relayer,
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
	if s.relayer == nil || !s.relayer.IsConfigured() {
		s.log.Info("Email relay not configured, submissions will only be stored")
	}
	s.log.Info("Contact service started")
	return nil
}

// Submit stores the submission, then relays it by email. The stored copy
// is the source of truth: a relay failure is logged and the message kept.
func (s *service) Submit(ctx context.Context, sub *Submission) error {
	s.ensureQueries()

	_, err := s.queries.CreateContactMessage(ctx, sqlc.CreateContactMessageParams{
		ID:        sub.ID.String(),
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Locale:    sub.Locale,
		IpAddress: sql.NullString{String: sub.IPAddress, Valid: sub.IPAddress != ""},
		UserAgent: sql.NullString{String: sub.UserAgent, Valid: sub.UserAgent != ""},
		CreatedAt: sub.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("cannot store submission: %w", err)
	}

	if s.relayer == nil || !s.relayer.IsConfigured() {
		return nil
	}

	msg := emailjs.Message{
		FromName:  sub.Name,
		FromEmail: sub.Email,
		Subject:   sub.Subject,
		Body:      sub.Message,
		SentDate:  sub.CreatedAt,
		ToName:    s.cfg.Site.Name,
		ToEmail:   s.cfg.Email.ToEmail,
	}

	if err := s.relayer.Send(ctx, msg); err != nil {
		s.log.Errorf("Cannot relay submission %s: %v", sub.ID, err)
		return nil
	}

	now := time.Now()
	sub.RelayedAt = &now
	if err := s.queries.MarkContactMessageRelayed(ctx, sqlc.MarkContactMessageRelayedParams{
		RelayedAt: sql.NullTime{Time: now, Valid: true},
		ID:        sub.ID.String(),
	}); err != nil {
		s.log.Errorf("Cannot mark submission %s relayed: %v", sub.ID, err)
	}

	return nil
}

func (s *service) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	s.ensureQueries()

	row, err := s.queries.GetContactMessage(ctx, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("cannot get submission: %w", err)
	}
	return fromSQLCMessage(row), nil
}

func (s *service) ListSubmissions(ctx context.Context) ([]*Submission, error) {
	s.ensureQueries()

	rows, err := s.queries.ListContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list submissions: %w", err)
	}

	subs := make([]*Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, fromSQLCMessage(row))
	}
	return subs, nil
}

func (s *service) CountUnread(ctx context.Context) (int64, error) {
	s.ensureQueries()

	count, err := s.queries.CountUnreadContactMessages(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot count unread submissions: %w", err)
	}
	return count, nil
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	s.ensureQueries()

	return s.queries.MarkContactMessageRead(ctx, sqlc.MarkContactMessageReadParams{
		ReadAt: sql.NullTime{Time: time.Now(), Valid: true},
		ID:     id.String(),
	})
}

func (s *service) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	s.ensureQueries()

	return s.queries.DeleteContactMessage(ctx, id.String())
}
