package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/quillmail/quillmail/core/mailer"
)

// Client implements mailer.Transport using the standard SMTP protocol.
// Supports STARTTLS, direct TLS, and plain connections and is safe for
// concurrent use.
type Client struct {
	config Config
	auth   smtp.Auth
}

// New creates an SMTP-backed transport.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be between 1 and 65535", ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", ErrInvalidConfig)
	}
	if cfg.TLSMode != "starttls" && cfg.TLSMode != "tls" && cfg.TLSMode != "plain" {
		return nil, fmt.Errorf("%w: TLSMode must be starttls, tls, or plain", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" || !isValidEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.ReplyTo != "" && !isValidEmail(cfg.ReplyTo) {
		return nil, fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidConfig)
	}

	return &Client{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}, nil
}

// MustNew creates an SMTP transport that panics on invalid config.
// Fails fast during initialization rather than letting a broken mailer start.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Send implements mailer.Transport over an SMTP transaction.
func (c *Client) Send(ctx context.Context, msg *mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	if len(msg.To) == 0 {
		return mailer.ErrNoRecipient
	}

	payload := c.buildPayload(msg)
	serverAddr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))

	var err error
	switch c.config.TLSMode {
	case "tls":
		err = c.sendWithTLS(serverAddr, msg.To, payload)
	case "starttls":
		err = c.sendWithSTARTTLS(serverAddr, msg.To, payload)
	case "plain":
		err = c.sendPlain(serverAddr, msg.To, payload)
	}
	if err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	return nil
}

// buildPayload creates the MIME-formatted message.
func (c *Client) buildPayload(msg *mailer.Message) []byte {
	from := c.config.SenderEmail
	if c.config.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", c.config.SenderName, c.config.SenderEmail)
	}

	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = c.config.ReplyTo
	}

	var sb strings.Builder
	writeHeader := func(key, value string) {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\r\n")
	}

	writeHeader("From", from)
	writeHeader("To", strings.Join(msg.To, ", "))
	if replyTo != "" {
		writeHeader("Reply-To", replyTo)
	}
	writeHeader("Subject", msg.Subject)
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/html; charset="UTF-8"`)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%d.%s@%s>",
		time.Now().UnixNano(),
		strings.ReplaceAll(msg.Tag, "/", "."),
		c.config.Host,
	))
	for key, value := range msg.Headers {
		writeHeader(key, value)
	}

	sb.WriteString("\r\n")
	sb.WriteString(msg.HTML)
	return []byte(sb.String())
}

// sendWithTLS delivers over a direct TLS connection.
func (c *Client) sendWithTLS(serverAddr string, recipients []string, payload []byte) error {
	tlsConfig := &tls.Config{ServerName: c.config.Host}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server with TLS: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, recipients, payload)
}

// sendWithSTARTTLS delivers over a connection upgraded with STARTTLS.
func (c *Client) sendWithSTARTTLS(serverAddr string, recipients []string, payload []byte) error {
	client, err := smtp.Dial(serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	return c.transact(client, recipients, payload)
}

// sendPlain delivers without encryption.
func (c *Client) sendPlain(serverAddr string, recipients []string, payload []byte) error {
	client, err := smtp.Dial(serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = client.Close() }()

	return c.transact(client, recipients, payload)
}

// transact performs the SMTP transaction.
func (c *Client) transact(client *smtp.Client, recipients []string, payload []byte) error {
	if err := client.Auth(c.auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	if err := client.Mail(c.config.SenderEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := writer.Write(payload); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	// Quit errors are non-fatal as the message was already accepted; some
	// servers close the connection immediately after DATA.
	_ = client.Quit()
	return nil
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail checks if the provided string is a valid email address.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
