package mail

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestBuildMessage_PlainText(t *testing.T) {
	raw := BuildMessage("sos@safetrip.app", "", Message{
		To:      "mom@example.com",
		Subject: "SOS",
		Text:    "help",
	})

	assert.Contains(t, raw, "From: sos@safetrip.app\r\n")
	assert.Contains(t, raw, "To: mom@example.com\r\n")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8\r\n\r\nhelp")
	assert.NotContains(t, raw, "multipart")
	assert.NotContains(t, raw, "X-SafeTrip-Ref")
}

func TestBuildMessage_Multipart(t *testing.T) {
	raw := BuildMessage("sos@safetrip.app", "SafeTrip SOS", Message{
		To:        "mom@example.com",
		Subject:   "SOS",
		Text:      "help",
		HTML:      "<b>help</b>",
		Reference: "abc",
	})

	assert.Contains(t, raw, "From: SafeTrip SOS <sos@safetrip.app>\r\n")
	assert.Contains(t, raw, "X-SafeTrip-Ref: abc\r\n")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "<b>help</b>")

	textAt := strings.Index(raw, "text/plain")
	htmlAt := strings.Index(raw, "text/html")
	assert.True(t, textAt > 0 && htmlAt > textAt, "plain part must precede html part")
	assert.True(t, strings.HasSuffix(raw, "--\r\n"))
}

func TestSMTP_Send_NotConfigured(t *testing.T) {
	s := NewSMTP(Config{}, slog.Default())

	err := s.Send(context.Background(), Message{To: "a@b.c"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	raw := BuildMessage("sos@safetrip.app", "", Message{To: "a@b.c", Subject: "❗ SOS", Text: "x"})

	assert.Contains(t, raw, "Subject: =?utf-8?q?")
	assert.NotContains(t, raw, "Subject: ❗")
}
