package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		wantKind Kind
	}{
		{
			name: "valid",
			msg:  Message{To: "to@example.com", Subject: "Hi", Body: "Hello"},
		},
		{
			name: "body only",
			msg:  Message{To: "to@example.com", Body: "Hello"},
		},
		{
			name:     "missing recipient",
			msg:      Message{Subject: "Hi", Body: "Hello"},
			wantKind: KindValidation,
		},
		{
			name:     "whitespace recipient",
			msg:      Message{To: "   ", Subject: "Hi", Body: "Hello"},
			wantKind: KindValidation,
		},
		{
			name:     "no subject and no body",
			msg:      Message{To: "to@example.com"},
			wantKind: KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
			}
		})
	}
}

func TestMessage_Recipients(t *testing.T) {
	msg := &Message{
		To:  "to@example.com",
		Cc:  []string{"cc1@example.com", "cc2@example.com"},
		Bcc: []string{"bcc@example.com"},
	}

	recipients := msg.Recipients()
	assert.Equal(t, []string{
		"to@example.com",
		"cc1@example.com",
		"cc2@example.com",
		"bcc@example.com",
	}, recipients)
}

func TestMessage_ContentType(t *testing.T) {
	plain := &Message{To: "to@example.com", Body: "x"}
	assert.Equal(t, "text/plain", plain.ContentType())

	html := &Message{To: "to@example.com", Body: "<p>x</p>", IsHTML: true}
	assert.Equal(t, "text/html", html.ContentType())
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(assert.AnError))
	assert.Equal(t, Kind(""), KindOf(nil))
}
