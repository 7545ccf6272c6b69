package mail

import (
	"errors"
	"fmt"
	"net/textproto"
)

// Kind classifies a send failure.
type Kind string

const (
	// KindValidation means a required message field was missing.
	KindValidation Kind = "validation"
	// KindLocalIO means an attachment path could not be read.
	KindLocalIO Kind = "local_io"
	// KindTransport means the server was unreachable or the session broke.
	KindTransport Kind = "transport"
	// KindAuth means the server rejected the credentials.
	KindAuth Kind = "auth"
	// KindSenderRejected means the server refused the envelope sender.
	KindSenderRejected Kind = "sender_rejected"
	// KindRecipientRejected means the server refused a recipient address.
	KindRecipientRejected Kind = "recipient_rejected"
)

// SendError wraps a send failure with its classification.
type SendError struct {
	Kind Kind
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail: %s: %v", e.Kind, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or "" if err did not come from
// this package.
func KindOf(err error) Kind {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Kind
	}
	return ""
}

// classify wraps err with the kind implied by the protocol step it occurred
// in. A server reply carrying an authentication status code upgrades the
// classification to KindAuth regardless of the step.
func classify(kind Kind, err error) *SendError {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			kind = KindAuth
		}
	}
	return &SendError{Kind: kind, Err: err}
}
