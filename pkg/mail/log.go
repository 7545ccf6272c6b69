package mail

import (
	"context"
	"fmt"

	"github.com/pixelvide/gmail-go/pkg/config"
	"github.com/rs/zerolog"
)

// LogMailer implements Mailer by logging messages instead of sending them.
// It is the dry-run driver for local development and tests.
type LogMailer struct {
	cfg config.MailConfig
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(cfg config.MailConfig) *LogMailer {
	return &LogMailer{cfg: cfg}
}

// Send logs the message details
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	from := m.cfg.FromAddress
	if from == "" {
		from = m.cfg.Username
	}
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, from)
	}

	logger := zerolog.Ctx(ctx).With().
		Str("mailer", "log").
		Str("from", from).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("content_type", msg.ContentType()).
		Logger()

	if len(msg.Cc) > 0 {
		logger = logger.With().Strs("cc", msg.Cc).Logger()
	}
	if len(msg.Bcc) > 0 {
		logger = logger.With().Strs("bcc", msg.Bcc).Logger()
	}
	if len(msg.Attachments) > 0 {
		logger = logger.With().Strs("attachments", msg.Attachments).Logger()
	}

	logger.Info().Msg("Sending email")
	logger.Info().Msgf("Body:\n%s", msg.Body)

	return nil
}
