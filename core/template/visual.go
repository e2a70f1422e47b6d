package template

// Link is a labelled URL used in footer and social sections.
type Link struct {
	Label string
	URL   string
}

// Footer holds the footer content rendered below the message body.
type Footer struct {
	Text        string
	Links       []Link
	SocialLinks []Link
}

// Visual bundles the presentation configuration of a template: the color
// palette substituted into {color_*} layout tokens, the logo image, and the
// footer content.
type Visual struct {
	Colors map[string]string
	Logo   string
	Footer Footer
}

// DefaultVisual returns the built-in presentation defaults. Caller-supplied
// visual configuration is merged over these key by key.
func DefaultVisual() Visual {
	return Visual{
		Colors: map[string]string{
			"background":  "#f3f4f6",
			"body":        "#ffffff",
			"text":        "#374151",
			"heading":     "#111827",
			"link":        "#2563eb",
			"button":      "#2563eb",
			"button_text": "#ffffff",
			"border":      "#e5e7eb",
			"footer_text": "#9ca3af",
		},
	}
}

// mergeVisual overlays the set fields of over onto base. Colors merge per
// key; logo and footer sections replace only when provided.
func mergeVisual(base, over Visual) Visual {
	merged := Visual{
		Colors: make(map[string]string, len(base.Colors)+len(over.Colors)),
		Logo:   base.Logo,
		Footer: base.Footer,
	}
	for k, v := range base.Colors {
		merged.Colors[k] = v
	}
	for k, v := range over.Colors {
		merged.Colors[k] = v
	}
	if over.Logo != "" {
		merged.Logo = over.Logo
	}
	if over.Footer.Text != "" {
		merged.Footer.Text = over.Footer.Text
	}
	if len(over.Footer.Links) > 0 {
		merged.Footer.Links = over.Footer.Links
	}
	if len(over.Footer.SocialLinks) > 0 {
		merged.Footer.SocialLinks = over.Footer.SocialLinks
	}
	return merged
}
