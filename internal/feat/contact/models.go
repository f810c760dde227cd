package contact

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peperuizdev/portfolio/pkg/pf/validation"
)

// emailPattern mirrors the form's client-side rule.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission represents a contact form entry.
type Submission struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Locale    string     `json:"locale"`
	IPAddress string     `json:"ip_address"`
	UserAgent string     `json:"user_agent"`
	RelayedAt *time.Time `json:"relayed_at,omitempty"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewSubmission creates a submission with trimmed fields.
func NewSubmission(name, email, subject, message, locale string) *Submission {
	return &Submission{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Subject:   strings.TrimSpace(subject),
		Message:   strings.TrimSpace(message),
		Locale:    locale,
		CreatedAt: time.Now(),
	}
}

// Validate enforces the same rules the form applies client-side.
func (s *Submission) Validate() validation.ValidationErrors {
	var errs validation.ValidationErrors

	if s.Name == "" {
		errs.Add("name", "name is required")
	} else if len(s.Name) < 2 {
		errs.Add("name", "name must be at least 2 characters")
	}

	if s.Email == "" {
		errs.Add("email", "email is required")
	} else if !emailPattern.MatchString(s.Email) {
		errs.Add("email", "email is not valid")
	}

	if s.Subject == "" {
		errs.Add("subject", "subject is required")
	} else if len(s.Subject) < 3 {
		errs.Add("subject", "subject must be at least 3 characters")
	}

	if s.Message == "" {
		errs.Add("message", "message is required")
	} else if len(s.Message) < 10 {
		errs.Add("message", "message must be at least 10 characters")
	}

	return errs
}

// IsRead returns true if the submission has been marked as read.
func (s *Submission) IsRead() bool {
	return s.ReadAt != nil
}

// IsRelayed returns true if the submission was forwarded by email.
func (s *Submission) IsRelayed() bool {
	return s.RelayedAt != nil
}

// MessagePreview returns a truncated preview of the message.
func (s *Submission) MessagePreview() string {
	if len(s.Message) <= 80 {
		return s.Message
	}
	return s.Message[:80] + "..."
}
