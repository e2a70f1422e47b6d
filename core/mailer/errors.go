package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("message must have a recipient")

	// ErrTemplateDisabled indicates the template's resolved settings have it
	// switched off; the send is skipped, not failed loudly.
	ErrTemplateDisabled = errors.New("template is disabled")

	// ErrCapabilityDenied indicates a manual or test send was attempted
	// without the template's required capability.
	ErrCapabilityDenied = errors.New("capability required for manual send")

	// ErrNoTransport indicates the manager was constructed without a
	// transport but asked to send.
	ErrNoTransport = errors.New("no transport configured")

	// ErrSendFailed indicates the transport reported a delivery failure.
	ErrSendFailed = errors.New("failed to send email")
)
