package usecase

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"meeting-notes-backend/pkg/config"

	"github.com/emersion/go-message/mail"
)

const (
	fallbackHint = "meeting summary"

	bodyTemplate = `Dear Team,

Please find below the %s:

%s

Best regards,
AI Meeting Notes Summarizer

---
This summary was automatically generated using AI technology.`
)

// IntroHint strips the default subject phrase out of subject and trims what
// is left. An empty result falls back to "meeting summary".
func IntroHint(subject string) string {
	hint := strings.TrimSpace(strings.ReplaceAll(subject, config.DefaultSubject, ""))
	if hint == "" {
		return fallbackHint
	}
	return hint
}

// ComposeBody renders the plain-text email body for summary.
func ComposeBody(subject, summary string) string {
	return fmt.Sprintf(bodyTemplate, strings.ToLower(IntroHint(subject)), summary)
}

// composeMessage builds a single-part text/plain MIME message. The To header
// lists recipients exactly as given; the relay envelope is what delivers them.
func composeMessage(from string, recipients []string, subject, body string, now time.Time) ([]byte, error) {
	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{{Address: from}})
	h.Set("To", strings.Join(recipients, ", "))
	h.SetSubject(subject)
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	h.Set("Content-Transfer-Encoding", "quoted-printable")
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("generate message id: %w", err)
	}

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("create message writer: %w", err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		return nil, fmt.Errorf("write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close message writer: %w", err)
	}

	return buf.Bytes(), nil
}
