package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peperuizdev/portfolio/internal/db/sqlc"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooShort   = errors.New("password too short")
)

// Service defines the auth service interface.
type Service interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Authenticate(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	CreateUser(ctx context.Context, email, password, name, role string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
	Tokens() *TokenService
}

// DBProvider provides access to the database.
type DBProvider interface {
	GetDB() *sql.DB
}

type service struct {
	dbProvider DBProvider
	queries    *sqlc.Queries
	tokens     *TokenService
	cfg        *config.Config
	log        logger.Logger
}

// NewService creates a new auth service.
func NewService(dbProvider DBProvider, cfg *config.Config, log logger.Logger) Service {
	return &service{
		dbProvider: dbProvider,
		cfg:        cfg,
		log:        log,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.ensureQueries()

	ttl, err := time.ParseDuration(s.cfg.Auth.TokenTTL)
	if err != nil || ttl <= 0 {
		ttl = time.Hour
		s.log.Infof("Invalid token TTL, using default: %v", ttl)
	}

	secret := s.cfg.Auth.JWTSecret
	if secret == "" {
		secret = "default_secret_key"
		s.log.Error("No JWT secret configured, using insecure default")
	}

	s.tokens = NewTokenService(secret, ttl)
	s.log.Info("Auth service started")
	return nil
}

func (s *service) Stop(ctx context.Context) error {
	s.log.Info("Auth service stopped")
	return nil
}

// ensureQueries initializes the query layer. Start calls it before any
// request can reach the service; the per-method calls only matter for
// callers that skip the component lifecycle.
func (s *service) ensureQueries() {
	if s.queries == nil && s.dbProvider != nil {
		s.queries = sqlc.New(s.dbProvider.GetDB())
	}
}

// Tokens returns the token service used for minting and verification.
func (s *service) Tokens() *TokenService {
	return s.tokens
}

// Authenticate verifies an email/password pair against the stored hash.
// Unknown identifier and wrong password both return ErrInvalidCredentials
// so the caller cannot tell which one was wrong.
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login exchanges credentials for a signed session token.
func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Mint(user)
	if err != nil {
		return "", nil, fmt.Errorf("cannot mint token: %w", err)
	}

	return token, user, nil
}

func (s *service) CreateUser(ctx context.Context, email, password, name, role string) (*User, error) {
	s.ensureQueries()

	user, err := NewUser(email, password, name, role)
	if err != nil {
		return nil, fmt.Errorf("cannot create user: %w", err)
	}

	params := sqlc.CreateUserParams{
		ID:           user.ID.String(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if _, err := s.queries.CreateUser(ctx, params); err != nil {
		return nil, fmt.Errorf("cannot create user in database: %w", err)
	}

	return user, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	s.ensureQueries()

	sqlcUser, err := s.queries.GetUser(ctx, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("cannot get user: %w", err)
	}

	return fromSQLCUser(sqlcUser), nil
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.ensureQueries()

	sqlcUser, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("cannot get user by email: %w", err)
	}

	return fromSQLCUser(sqlcUser), nil
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	s.ensureQueries()

	sqlcUsers, err := s.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list users: %w", err)
	}

	users := make([]*User, len(sqlcUsers))
	for i, sqlcUser := range sqlcUsers {
		users[i] = fromSQLCUser(sqlcUser)
	}

	return users, nil
}

// ChangePassword rotates a credential. The current password must verify
// against the stored hash before the hash is overwritten; existing tokens
// stay valid until their original expiry.
func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	s.ensureQueries()

	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(currentPassword) {
		return ErrInvalidCredentials
	}

	if err := user.UpdatePassword(newPassword); err != nil {
		return fmt.Errorf("cannot hash new password: %w", err)
	}

	params := sqlc.UpdateUserPasswordParams{
		PasswordHash: user.PasswordHash,
		UpdatedAt:    user.UpdatedAt,
		ID:           user.ID.String(),
	}

	if err := s.queries.UpdateUserPassword(ctx, params); err != nil {
		return fmt.Errorf("cannot update password: %w", err)
	}

	return nil
}

// fromSQLCUser converts a sqlc User to our domain User.
func fromSQLCUser(u sqlc.User) *User {
	id, _ := uuid.Parse(u.ID)
	return &User{
		ID:           id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
