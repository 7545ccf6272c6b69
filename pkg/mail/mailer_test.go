package mail

import (
	"bytes"
	"context"
	"testing"

	"github.com/pixelvide/gmail-go/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFactory(t *testing.T) {
	tests := []struct {
		name      string
		config    config.MailConfig
		wantType  interface{}
		expectErr bool
	}{
		{
			name: "smtp",
			config: config.MailConfig{
				Mailer: "smtp",
			},
			wantType:  &SMTPMailer{},
			expectErr: false,
		},
		{
			name: "log",
			config: config.MailConfig{
				Mailer: "log",
			},
			wantType:  &LogMailer{},
			expectErr: false,
		},
		{
			name: "invalid",
			config: config.MailConfig{
				Mailer: "invalid",
			},
			wantType:  nil,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMailer(tt.config)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.IsType(t, tt.wantType, got)
			}
		})
	}
}

func TestLogMailer_Send(t *testing.T) {
	// Capture log output
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	cfg := config.MailConfig{
		Mailer:   "log",
		Username: "test@gmail.com",
		FromName: "Test Sender",
	}
	mailer := NewLogMailer(cfg)

	msg := &Message{
		To:      "recipient@example.com",
		Subject: "Test Subject",
		Body:    "Test Body",
		Bcc:     []string{"hidden@example.com"},
	}

	err := mailer.Send(ctx, msg)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Sending email")
	assert.Contains(t, output, "Test Sender <test@gmail.com>")
	assert.Contains(t, output, "recipient@example.com")
	assert.Contains(t, output, "Test Subject")
	assert.Contains(t, output, "Test Body")
	assert.Contains(t, output, "hidden@example.com")
}

func TestLogMailer_Send_Invalid(t *testing.T) {
	mailer := NewLogMailer(config.MailConfig{Mailer: "log"})

	err := mailer.Send(context.Background(), &Message{Subject: "no recipient"})
	assert.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}
