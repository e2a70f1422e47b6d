package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/quillmail/quillmail/core/mailer"
)

// ErrInvalidConfig indicates the Resend configuration failed validation.
var ErrInvalidConfig = errors.New("invalid resend configuration")

// Client implements mailer.Transport using the Resend API.
type Client struct {
	client *resend.Client
	config Config
}

// New creates a Resend-backed transport.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: APIKey is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	return &Client{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}, nil
}

// MustNew creates a Resend transport that panics on invalid config.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Send implements mailer.Transport.
func (c *Client) Send(ctx context.Context, msg *mailer.Message) error {
	if len(msg.To) == 0 {
		return mailer.ErrNoRecipient
	}

	from := c.config.SenderEmail
	if c.config.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", c.config.SenderName, c.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
		Headers: msg.Headers,
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "template", Value: tagValue(msg.Tag)}}
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		})
	}

	if _, err := c.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(mailer.ErrSendFailed, fmt.Errorf("resend: %w", err))
	}
	return nil
}

// tagValue folds a namespace/name template identifier into Resend's tag
// value alphabet (ASCII letters, numbers, underscores, dashes).
func tagValue(tag string) string {
	out := make([]rune, 0, len(tag))
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
