package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"

	"github.com/pixelvide/gmail-go/pkg/config"
	"github.com/rs/zerolog"
)

// Gmail's SMTP submission endpoint. Authentication requires an App Password
// when the account has two-factor authentication enabled.
const (
	GmailHost = "smtp.gmail.com"
	GmailPort = "587"
)

// session is the subset of *smtp.Client the dispatcher uses. It is factored
// out so tests can substitute a recording fake for the network session.
type session interface {
	StartTLS(cfg *tls.Config) error
	Auth(a smtp.Auth) error
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// dialFunc opens an SMTP session to addr.
type dialFunc func(addr string) (session, error)

func dialSMTP(addr string) (session, error) {
	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// SMTPMailer implements Mailer over a single authenticated STARTTLS session
// per call. It performs exactly one attempt; there is no retry or pooling.
type SMTPMailer struct {
	cfg  config.MailConfig
	dial dialFunc
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, dial: dialSMTP}
}

// NewGmailMailer creates an SMTPMailer preconfigured for Gmail's submission
// endpoint. appPassword is a Gmail App Password, not the account password.
func NewGmailMailer(sender, appPassword string) *SMTPMailer {
	return NewSMTPMailer(config.MailConfig{
		Mailer:      "smtp",
		Host:        GmailHost,
		Port:        GmailPort,
		Username:    sender,
		Password:    appPassword,
		FromAddress: sender,
	})
}

// Send validates, composes and transmits the message. Failures are returned
// as *SendError with a classification; the session is closed on every exit
// path once it has been opened.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	logger := zerolog.Ctx(ctx).With().
		Str("mailer", "smtp").
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Logger()

	if err := msg.Validate(); err != nil {
		logger.Error().Err(err).Msg("Message validation failed")
		return err
	}

	from := m.cfg.FromAddress
	if from == "" {
		from = m.cfg.Username
	}
	fromHeader := from
	if m.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.cfg.FromName, from)
	}

	// Compose before dialing so a missing attachment never opens a session.
	body, err := buildMessage(fromHeader, msg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build message")
		return err
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	sess, err := m.dial(addr)
	if err != nil {
		logger.Error().Err(err).Str("addr", addr).Msg("Failed to connect to SMTP server")
		return &SendError{Kind: KindTransport, Err: fmt.Errorf("dial %s: %w", addr, err)}
	}
	defer func() {
		_ = sess.Close()
	}()

	if err := m.transmit(sess, from, msg.Recipients(), body); err != nil {
		logger.Error().Err(err).Msg("Failed to send email")
		return err
	}

	// The message was accepted when the DATA writer closed; a failed QUIT
	// after that does not undo delivery.
	if err := sess.Quit(); err != nil {
		logger.Warn().Err(err).Msg("QUIT failed after message was accepted")
	}

	logger.Info().Int("recipients", len(msg.Recipients())).Msg("Email sent")
	return nil
}

func (m *SMTPMailer) transmit(sess session, from string, recipients []string, body []byte) error {
	if err := sess.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return classify(KindTransport, fmt.Errorf("starttls: %w", err))
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := sess.Auth(auth); err != nil {
		return &SendError{Kind: KindAuth, Err: fmt.Errorf("auth: %w", err)}
	}

	if err := sess.Mail(from); err != nil {
		return classify(KindSenderRejected, fmt.Errorf("mail from %s: %w", from, err))
	}

	for _, rcpt := range recipients {
		if err := sess.Rcpt(rcpt); err != nil {
			return classify(KindRecipientRejected, fmt.Errorf("rcpt to %s: %w", rcpt, err))
		}
	}

	w, err := sess.Data()
	if err != nil {
		return classify(KindTransport, fmt.Errorf("data: %w", err))
	}
	if _, err := w.Write(body); err != nil {
		return classify(KindTransport, fmt.Errorf("failed to write message: %w", err))
	}
	if err := w.Close(); err != nil {
		return classify(KindTransport, fmt.Errorf("failed to close data writer: %w", err))
	}

	return nil
}

// Send sends a single message without keeping a mailer around. It constructs
// a transient Gmail mailer, uses it for one call and discards it.
func Send(ctx context.Context, sender, appPassword string, msg *Message) error {
	return NewGmailMailer(sender, appPassword).Send(ctx, msg)
}
