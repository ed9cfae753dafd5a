package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"go-buildpro-backend/config"

	"github.com/google/uuid"
)

// SMTPSender delivers appointment notifications over SMTP. It is constructed
// once at process start from injected configuration and shared across
// requests; it holds no mutable state.
type SMTPSender struct {
	host      string
	port      string
	username  string
	password  string
	fromName  string
	toEmail   string
	helloName string
}

// NewSMTPSender creates a sender from the process configuration. The SMTP
// login doubles as the from address, matching Gmail app-password setups.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.EmailUser,
		password:  cfg.EmailPass,
		fromName:  "BuildPro Construction Website",
		toEmail:   cfg.ToEmail,
		helloName: "localhost",
	}
}

// IsConfigured checks whether SMTP credentials are present.
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Verify dials the SMTP server, negotiates STARTTLS and authenticates, then
// disconnects without sending. Any failure is reported as a transport
// verification error.
func (s *SMTPSender) Verify(ctx context.Context) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	client, err := s.connect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransportAuth, err)
	}
	defer client.Close()

	if err := s.authenticate(client); err != nil {
		return fmt.Errorf("%w: %v", ErrTransportAuth, err)
	}

	_ = client.Quit()
	return nil
}

// Send delivers the message to the configured recipient with the submitter's
// address as Reply-To. Exactly one attempt is made.
func (s *SMTPSender) Send(ctx context.Context, msg Message, replyTo string) (*Receipt, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	raw := s.buildMessage(msg, replyTo, messageID)

	client, err := s.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	defer client.Close()

	if err := s.authenticate(client); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if err := s.deliver(client, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return &Receipt{MessageID: messageID}, nil
}

// connect dials the server and completes EHLO plus STARTTLS. The context
// deadline bounds the whole SMTP conversation via the connection deadline.
func (s *SMTPSender) connect(ctx context.Context) (*smtp.Client, error) {
	dialer := &net.Dialer{}
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("new client: %w", err)
	}

	if err := client.Hello(s.helloName); err != nil {
		client.Close()
		return nil, fmt.Errorf("hello: %w", err)
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{
			ServerName: s.host,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsCfg); err != nil {
			client.Close()
			return nil, fmt.Errorf("starttls: %w", err)
		}
	}

	return client, nil
}

func (s *SMTPSender) authenticate(client *smtp.Client) error {
	if ok, _ := client.Extension("AUTH"); !ok {
		return nil
	}
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}

func (s *SMTPSender) deliver(client *smtp.Client, raw []byte) error {
	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(s.toEmail); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		_ = writer.Close()
		return fmt.Errorf("data write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("data close: %w", err)
	}

	_ = client.Quit()
	return nil
}

// buildMessage constructs a multipart/alternative MIME message carrying both
// the plain-text and HTML bodies.
func (s *SMTPSender) buildMessage(msg Message, replyTo, messageID string) []byte {
	const boundary = "buildpro-alt-boundary"

	var buf bytes.Buffer
	writeHeader := func(key, value string) {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(sanitizeHeaderValue(value))
		buf.WriteString("\r\n")
	}

	writeHeader("From", fmt.Sprintf("%q <%s>", s.fromName, s.username))
	writeHeader("To", s.toEmail)
	writeHeader("Reply-To", replyTo)
	writeHeader("Subject", msg.Subject)
	writeHeader("Message-Id", messageID)
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	buf.WriteString("\r\n")

	writePart := func(contentType, body string) {
		buf.WriteString("--" + boundary + "\r\n")
		buf.WriteString("Content-Type: " + contentType + "\r\n\r\n")
		buf.WriteString(normalizeBody(body))
		buf.WriteString("\r\n")
	}

	writePart("text/plain; charset=UTF-8", msg.TextBody)
	writePart("text/html; charset=UTF-8", msg.HTMLBody)
	buf.WriteString("--" + boundary + "--\r\n")

	return buf.Bytes()
}

// normalizeBody rewrites line endings to CRLF as required on the wire.
func normalizeBody(body string) string {
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.ReplaceAll(normalized, "\n", "\r\n")
}
