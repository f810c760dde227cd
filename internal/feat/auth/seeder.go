package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

// Seeder creates the initial admin credential when none exists.
type Seeder struct {
	service         Service
	log             logger.Logger
	credentialsPath string
}

// NewSeeder creates a new auth seeder.
func NewSeeder(service Service, log logger.Logger) *Seeder {
	return &Seeder{
		service: service,
		log:     log,
	}
}

// SetCredentialsPath sets the path where generated credentials are written.
func (s *Seeder) SetCredentialsPath(path string) {
	s.credentialsPath = path
}

// Start seeds the initial admin user if no users exist.
func (s *Seeder) Start(ctx context.Context) error {
	users, err := s.service.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("cannot list users: %w", err)
	}

	if len(users) > 0 {
		s.log.Info("Users already exist, skipping auth seeding")
		return nil
	}

	email := "admin@peperuiz.dev"
	password, err := generatePassword()
	if err != nil {
		return fmt.Errorf("cannot generate password: %w", err)
	}

	user, err := s.service.CreateUser(ctx, email, password, "Admin", RoleAdmin)
	if err != nil {
		return fmt.Errorf("cannot create admin user: %w", err)
	}

	s.log.Infof("Created admin user: %s", user.Email)

	if s.credentialsPath != "" {
		if err := s.writeCredentials(email, password); err != nil {
			s.log.Errorf("Cannot write credentials file: %v", err)
		} else {
			s.log.Infof("Credentials written to: %s", s.credentialsPath)
		}
	} else {
		s.log.Infof("Admin credentials - Email: %s, Password: %s", email, password)
	}

	return nil
}

func (s *Seeder) writeCredentials(email, password string) error {
	dir := filepath.Dir(s.credentialsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	content := fmt.Sprintf("Email: %s\nPassword: %s\n", email, password)
	if err := os.WriteFile(s.credentialsPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("cannot write file: %w", err)
	}

	return nil
}

func generatePassword() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
