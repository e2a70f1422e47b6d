package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevTransport implements Transport for local development.
// It saves messages as HTML and JSON files to a directory instead of
// delivering them.
type DevTransport struct {
	dir string
}

// NewDevTransport creates a development transport that saves messages to
// disk. The directory is created on first send if it doesn't exist.
func NewDevTransport(dir string) *DevTransport {
	return &DevTransport{dir: dir}
}

// messageMetadata is the message data saved to JSON (excluding HTML content).
type messageMetadata struct {
	Timestamp string   `json:"timestamp"`
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
	Tag       string   `json:"tag,omitempty"`
}

// Send saves the message as an HTML file plus a JSON metadata file.
func (d *DevTransport) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return ErrNoRecipient
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrSendFailed, err)
	}

	// Timestamp prefix keeps saved messages in chronological order.
	now := time.Now()
	timestamp := now.Format("2006_01_02_150405")

	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	baseFilename := fmt.Sprintf("%s_%s", timestamp, sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.HTML), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrSendFailed, err)
	}

	metadata := messageMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrSendFailed, err)
	}
	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrSendFailed, err)
	}

	return nil
}

// sanitizeRegex removes filesystem-unsafe characters from filenames.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe lowercase filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
