package mail

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage_PlainText(t *testing.T) {
	msg := &Message{
		To:      "to@example.com",
		Subject: "Test",
		Body:    "Hello there",
	}

	out, err := buildMessage("sender@gmail.com", msg)
	assert.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "From: sender@gmail.com\r\n")
	assert.Contains(t, body, "To: to@example.com\r\n")
	assert.Contains(t, body, "Subject: Test\r\n")
	assert.Contains(t, body, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.Contains(t, body, "MIME-Version: 1.0\r\n")
	assert.Contains(t, body, "Message-ID: <")
	assert.True(t, strings.HasSuffix(body, "\r\n\r\nHello there"))
}

func TestBuildMessage_HTML(t *testing.T) {
	msg := &Message{
		To:     "to@example.com",
		Body:   "<h1>Hello</h1>",
		IsHTML: true,
	}

	out, err := buildMessage("sender@gmail.com", msg)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "Content-Type: text/html; charset=UTF-8\r\n")
	assert.NotContains(t, string(out), "Content-Type: text/plain")
}

func TestBuildMessage_CcHeader(t *testing.T) {
	msg := &Message{
		To:   "to@example.com",
		Body: "x",
		Cc:   []string{"cc1@example.com", "cc2@example.com"},
	}

	out, err := buildMessage("sender@gmail.com", msg)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "Cc: cc1@example.com, cc2@example.com\r\n")
}

func TestBuildMessage_BccNeverInHeaders(t *testing.T) {
	msg := &Message{
		To:   "to@example.com",
		Body: "x",
		Cc:   []string{"cc@example.com"},
		Bcc:  []string{"hidden@example.com"},
	}

	out, err := buildMessage("sender@gmail.com", msg)
	assert.NoError(t, err)
	assert.NotContains(t, string(out), "hidden@example.com")
	assert.NotContains(t, string(out), "Bcc:")
}

func TestBuildMessage_HeaderSanitization(t *testing.T) {
	msg := &Message{
		To:      "to@example.com",
		Subject: "Test\r\nInjected: Header",
		Body:    "x",
	}

	out, err := buildMessage("sender@gmail.com", msg)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "Subject: TestInjected: Header\r\n")
	assert.NotContains(t, string(out), "Subject: Test\r\nInjected")
}

func TestBuildMessage_Attachments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")
	content := []byte("a,b,c\n1,2,3\n")
	assert.NoError(t, os.WriteFile(path, content, 0o600))

	msg := &Message{
		To:          "to@example.com",
		Subject:     "Report",
		Body:        "See attached.",
		Attachments: []string{path},
	}

	out, err := buildMessage("sender@gmail.com", msg)
	assert.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, body, `attachment; filename="report.csv"`)
	assert.Contains(t, body, "Content-Transfer-Encoding: base64")
	assert.Contains(t, body, base64.StdEncoding.EncodeToString(content))
	// Body part still present alongside the attachment.
	assert.Contains(t, body, "See attached.")
}

func TestBuildMessage_MissingAttachment(t *testing.T) {
	msg := &Message{
		To:          "to@example.com",
		Body:        "x",
		Attachments: []string{"/nonexistent/file.bin"},
	}

	_, err := buildMessage("sender@gmail.com", msg)
	assert.Error(t, err)
	assert.Equal(t, KindLocalIO, KindOf(err))
}

func TestEncodeBase64Wrapped(t *testing.T) {
	// 100 bytes encodes to more than 76 characters, forcing a line break.
	data := make([]byte, 100)
	encoded := encodeBase64Wrapped(data)

	for _, line := range strings.Split(encoded, "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\r\n", ""))
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestMessageID(t *testing.T) {
	id := messageID("Sender Name <sender@gmail.com>")
	assert.True(t, strings.HasPrefix(id, "<"))
	assert.True(t, strings.HasSuffix(id, "@gmail.com>"))

	id = messageID("no-at-sign")
	assert.True(t, strings.HasSuffix(id, "@localhost>"))
}
