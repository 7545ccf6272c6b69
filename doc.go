// Package gmailgo provides a small mail composer and dispatcher for Gmail's
// SMTP submission endpoint.
//
// It builds MIME messages (plain text or HTML, with optional Cc/Bcc and file
// attachments), opens a STARTTLS session to smtp.gmail.com:587, authenticates
// with an App Password, and transmits the message in a single attempt. There
// is no queueing, no retry policy and no connection pooling; callers doing
// bulk sends are expected to pace themselves (see the send:bulk command).
//
// Key subpackages:
//
//	github.com/pixelvide/gmail-go/pkg/mail      - Message model, MIME composer, SMTP dispatcher
//	github.com/pixelvide/gmail-go/pkg/config    - Configuration structs and env loader
//	github.com/pixelvide/gmail-go/pkg/console   - CLI commands (send, send:bulk)
//	github.com/pixelvide/gmail-go/pkg/telemetry - Logging and tracing setup
//
// Example Usage:
//
//	package main
//
//	import (
//		"context"
//		"github.com/pixelvide/gmail-go/pkg/mail"
//	)
//
//	func main() {
//		mailer := mail.NewGmailMailer("you@gmail.com", "your-app-password")
//		msg := &mail.Message{
//			To:      "recipient@example.com",
//			Subject: "Hello",
//			Body:    "Sent from Go.",
//		}
//		if err := mailer.Send(context.Background(), msg); err != nil {
//			// mail.KindOf(err) tells you what went wrong
//		}
//	}
package gmailgo
