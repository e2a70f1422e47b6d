package postmark

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/quillmail/quillmail/core/mailer"
)

// ErrInvalidConfig indicates the Postmark configuration failed validation.
var ErrInvalidConfig = errors.New("invalid postmark configuration")

// Client implements mailer.Transport using Postmark's transactional API.
type Client struct {
	client *postmark.Client
	config Config
}

// New creates a Postmark-backed transport. Both tokens are required so a
// misconfigured mailer fails at startup rather than on first send.
func New(cfg Config) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: AccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" || !isValidEmail(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.ReplyTo != "" && !isValidEmail(cfg.ReplyTo) {
		return nil, fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidConfig)
	}

	return &Client{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		config: cfg,
	}, nil
}

// MustNew creates a Postmark transport that panics on invalid config.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Send implements mailer.Transport. Open tracking and HTML link tracking are
// enabled for analytics; plain text is left untracked.
func (c *Client) Send(ctx context.Context, msg *mailer.Message) error {
	if len(msg.To) == 0 {
		return mailer.ErrNoRecipient
	}

	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = c.config.ReplyTo
	}

	email := postmark.Email{
		From:       c.config.SenderEmail,
		To:         strings.Join(msg.To, ","),
		ReplyTo:    replyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	}
	for name, value := range msg.Headers {
		email.Headers = append(email.Headers, postmark.Header{Name: name, Value: value})
	}
	for _, a := range msg.Attachments {
		email.Attachments = append(email.Attachments, postmark.Attachment{
			Name:        a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.ContentType,
			ContentID:   a.ContentID,
		})
	}

	resp, err := c.client.SendEmail(ctx, email)
	if err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			mailer.ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// isValidEmail checks if the provided string is a valid email address.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
