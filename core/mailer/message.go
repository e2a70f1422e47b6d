package mailer

import "context"

// Message is a fully-assembled email ready for a transport.
type Message struct {
	To          []string          // Recipients (at least one required)
	Subject     string            // Processed subject line
	HTML        string            // Final HTML document
	Headers     map[string]string // Custom headers
	Attachments []Attachment      // File attachments
	Tag         string            // Template identifier, for provider analytics
	ReplyTo     string            // Reply-to address
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}

// Transport delivers assembled messages. The core never implements delivery
// itself; adapters live under integration/transport.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// CapabilityChecker reports whether the current caller holds an
// access-control capability. It gates manual and test sends.
type CapabilityChecker func(capability string) bool
