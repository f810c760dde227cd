package contact

import (
	"github.com/peperuizdev/portfolio/internal/db/sqlc"
	"github.com/peperuizdev/portfolio/pkg/pf/model"
)

// fromSQLCMessage converts a sqlc ContactMessage to our domain Submission.
func fromSQLCMessage(m sqlc.ContactMessage) *Submission {
	return &Submission{
		ID:        model.ParseID(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Locale:    m.Locale,
		IPAddress: m.IpAddress.String,
		UserAgent: m.UserAgent.String,
		RelayedAt: model.NullTime{NullTime: m.RelayedAt}.ToPtr(),
		ReadAt:    model.NullTime{NullTime: m.ReadAt}.ToPtr(),
		CreatedAt: m.CreatedAt,
	}
}
