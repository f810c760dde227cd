package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peperuizdev/portfolio/internal/testutil"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/emailjs"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

// stubRelayer records what was sent and can be told to fail.
type stubRelayer struct {
	configured bool
	fail       bool
	sent       []emailjs.Message
}

func (s *stubRelayer) Send(ctx context.Context, msg emailjs.Message) error {
	if s.fail {
		return errors.New("relay unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *stubRelayer) IsConfigured() bool {
	return s.configured
}

func newTestContactService(t *testing.T, relayer Relayer) Service {
	t.Helper()

	provider := testutil.NewTestProvider(t)
	cfg := &config.Config{
		Site:  config.SiteConfig{Name: "Pepe Ruiz"},
		Email: config.EmailConfig{ToEmail: "owner@example.com"},
	}

	svc := NewService(provider, relayer, cfg, logger.NewNoopLogger())
	require.NoError(t, svc.Start(context.Background()))
	return svc
}

func validSubmission() *Submission {
	return NewSubmission("Jane Doe", "jane@example.com", "Hello", "I would like to talk about a project.", "en")
}

func TestSubmitStoresAndRelays(t *testing.T) {
	relayer := &stubRelayer{configured: true}
	svc := newTestContactService(t, relayer)
	ctx := context.Background()

	sub := validSubmission()
	require.NoError(t, svc.Submit(ctx, sub))

	require.Len(t, relayer.sent, 1)
	assert.Equal(t, "Jane Doe", relayer.sent[0].FromName)
	assert.Equal(t, "owner@example.com", relayer.sent[0].ToEmail)

	stored, err := svc.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.Email, stored.Email)
	assert.True(t, stored.IsRelayed())
}

func TestSubmitKeepsMessageOnRelayFailure(t *testing.T) {
	relayer := &stubRelayer{configured: true, fail: true}
	svc := newTestContactService(t, relayer)
	ctx := context.Background()

	sub := validSubmission()
	require.NoError(t, svc.Submit(ctx, sub), "relay failure must not surface")

	stored, err := svc.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsRelayed())
}

func TestSubmitWithoutRelayer(t *testing.T) {
	svc := newTestContactService(t, &stubRelayer{configured: false})
	ctx := context.Background()

	sub := validSubmission()
	require.NoError(t, svc.Submit(ctx, sub))

	stored, err := svc.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsRelayed())
}

func TestListMarkReadAndDelete(t *testing.T) {
	svc := newTestContactService(t, &stubRelayer{})
	ctx := context.Background()

	first := validSubmission()
	second := NewSubmission("John", "john@example.com", "Question", "Another message long enough.", "es")
	require.NoError(t, svc.Submit(ctx, first))
	require.NoError(t, svc.Submit(ctx, second))

	subs, err := svc.ListSubmissions(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	unread, err := svc.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	require.NoError(t, svc.MarkRead(ctx, first.ID))

	unread, err = svc.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	stored, err := svc.GetSubmission(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead())

	require.NoError(t, svc.DeleteSubmission(ctx, first.ID))
	_, err = svc.GetSubmission(ctx, first.ID)
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}
