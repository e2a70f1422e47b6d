package mailer

// Hook names fired around message assembly and delivery. The message filters
// receive and may return a *Message; returning anything else leaves the
// message unchanged.
const (
	// FilterMessage runs over every assembled, not-yet-sent message.
	// Template-specific variants use MessageFilterName.
	FilterMessage = "message.build"

	// EventSendBefore and EventSendAfter are one-way notifications fired
	// around the transport handoff regardless of outcome.
	EventSendBefore = "send.before"
	EventSendAfter  = "send.after"
)

// MessageFilterName returns the template-specific message filter name for a
// namespace/template pair, e.g. "message.build:shop/welcome".
func MessageFilterName(namespace, templateName string) string {
	return FilterMessage + ":" + namespace + "/" + templateName
}

// SendEvent is the payload of EventSendBefore and EventSendAfter.
type SendEvent struct {
	Namespace string
	Template  string
	Message   *Message
	Err       error // Set on EventSendAfter when delivery failed
}
