package tag

import "github.com/quillmail/quillmail/core/components"

// Kind classifies how a tag produces its output.
// The set is closed: the three content kinds below plus every component kind
// registered in the components package. Anything else fails construction.
type Kind string

// Content kinds return their callback output directly.
const (
	Text     Kind = "text"
	HTML     Kind = "html"
	Callback Kind = "callback"
)

// Component kinds dispatch their callback output through the matching
// components renderer.
const (
	Button    Kind = "button"
	Alert     Kind = "alert"
	Table     Kind = "table"
	List      Kind = "list"
	Image     Kind = "image"
	Heading   Kind = "heading"
	Paragraph Kind = "paragraph"
	Divider   Kind = "divider"
	Spacer    Kind = "spacer"
	Quote     Kind = "quote"
	Code      Kind = "code"
	Link      Kind = "link"
	Badge     Kind = "badge"
	Panel     Kind = "panel"
	Progress  Kind = "progress"
	Social    Kind = "social"
	Footnote  Kind = "footnote"
	Preheader Kind = "preheader"
	Markdown  Kind = "markdown"
	OTP       Kind = "otp"
)

// Valid reports whether k belongs to the closed kind set.
func (k Kind) Valid() bool {
	switch k {
	case Text, HTML, Callback:
		return true
	}
	return components.Known(string(k))
}

// IsComponent reports whether k dispatches to a component renderer.
func (k Kind) IsComponent() bool {
	switch k {
	case Text, HTML, Callback:
		return false
	}
	return components.Known(string(k))
}

// needsCallback reports whether a tag of this kind requires a render callback.
// Divider and spacer are fully described by their static options.
func (k Kind) needsCallback() bool {
	return k != Divider && k != Spacer
}
