package mail

import (
	"errors"
	"strings"
)

// Message represents an email message. It is built fresh for every send and
// is not retained after transmission.
type Message struct {
	To          string   // recipient address, required
	Subject     string
	Body        string
	IsHTML      bool     // send Body as text/html instead of text/plain
	Cc          []string
	Bcc         []string // envelope-only recipients, never written as a header
	Attachments []string // file paths, read at send time
}

// ContentType returns the MIME content type of the message body.
func (m *Message) ContentType() string {
	if m.IsHTML {
		return "text/html"
	}
	return "text/plain"
}

// Recipients returns the full envelope recipient set (To + Cc + Bcc).
func (m *Message) Recipients() []string {
	recipients := make([]string, 0, 1+len(m.Cc)+len(m.Bcc))
	recipients = append(recipients, m.To)
	recipients = append(recipients, m.Cc...)
	recipients = append(recipients, m.Bcc...)
	return recipients
}

// Validate checks that the message has everything needed to attempt a send.
// It runs before any file or network I/O.
func (m *Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return &SendError{Kind: KindValidation, Err: errors.New("message has no recipient")}
	}
	if strings.TrimSpace(m.Subject) == "" && strings.TrimSpace(m.Body) == "" {
		return &SendError{Kind: KindValidation, Err: errors.New("message has neither subject nor body")}
	}
	return nil
}
