package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var ErrNotConfigured = errors.New("smtp relay is not configured")

// Message is a single-recipient email with plain text and optional HTML bodies.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
	// Reference ends up in the X-SafeTrip-Ref header.
	Reference string
}

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// SMTP sends through a relay with STARTTLS and PLAIN auth.
type SMTP struct {
	cfg     Config
	timeout time.Duration
	log     *slog.Logger
}

func NewSMTP(cfg Config, log *slog.Logger) *SMTP {
	return &SMTP{
		cfg:     cfg,
		timeout: 30 * time.Second,
		log:     log.With("component", "smtp"),
	}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if s.cfg.Host == "" || s.cfg.From == "" {
		return ErrNotConfigured
	}

	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect to smtp server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if s.cfg.UseTLS {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("start tls: %w", err)
		}
	}

	if s.cfg.User != "" && s.cfg.Password != "" {
		if err := client.Auth(smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("set recipient %s: %w", msg.To, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data: %w", err)
	}
	if _, err := w.Write([]byte(BuildMessage(s.cfg.From, s.cfg.FromName, msg))); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data: %w", err)
	}

	s.log.Debug("mail sent", "to", msg.To, "ref", msg.Reference)
	return client.Quit()
}

// BuildMessage renders headers and a multipart/alternative body when both
// text and HTML are present.
func BuildMessage(from, fromName string, msg Message) string {
	var b strings.Builder

	if fromName != "" {
		fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", fromName), from)
	} else {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	if msg.Reference != "" {
		fmt.Fprintf(&b, "X-SafeTrip-Ref: %s\r\n", msg.Reference)
	}

	if msg.HTML == "" {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(msg.Text)
		return b.String()
	}

	boundary := "safetrip-" + uuid.NewString()
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}
