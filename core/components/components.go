package components

import (
	"fmt"
	"html"
	"strings"
)

// renderers is the static lookup table dispatched to by Render.
// Every entry is a pure function from a flat argument bag to an HTML fragment.
var renderers = map[string]func(Args) string{
	"button":    Button,
	"alert":     Alert,
	"table":     Table,
	"list":      List,
	"image":     Image,
	"heading":   Heading,
	"paragraph": Paragraph,
	"divider":   Divider,
	"spacer":    Spacer,
	"quote":     Quote,
	"code":      Code,
	"link":      Link,
	"badge":     Badge,
	"panel":     Panel,
	"progress":  Progress,
	"social":    Social,
	"footnote":  Footnote,
	"preheader": Preheader,
	"markdown":  Markdown,
	"otp":       OTP,
}

// Render dispatches to the renderer registered for kind.
// Unknown kinds produce empty output, never an error.
func Render(kind string, args Args) string {
	fn, ok := renderers[kind]
	if !ok {
		return ""
	}
	return fn(args)
}

// Known reports whether kind has a registered renderer.
func Known(kind string) bool {
	_, ok := renderers[kind]
	return ok
}

// Button renders a centered call-to-action button.
func Button(args Args) string {
	text := html.EscapeString(args.StringOr("text", "Click here"))
	url := args.StringOr("url", "#")
	color := args.StringOr("color", "#2563eb")
	textColor := args.StringOr("text_color", "#ffffff")
	return fmt.Sprintf(
		`<table role="presentation" border="0" cellpadding="0" cellspacing="0" align="center"><tr><td style="border-radius:6px;background-color:%s;"><a href="%s" target="_blank" style="display:inline-block;padding:12px 24px;font-weight:600;color:%s;text-decoration:none;border-radius:6px;">%s</a></td></tr></table>`,
		color, url, textColor, text,
	)
}

// Alert renders a highlighted notice box. Supported variants: info (default),
// success, warning, error.
func Alert(args Args) string {
	message := args.StringOr("message", "")
	if message == "" {
		return ""
	}
	variant := args.StringOr("variant", "info")
	bg, border := alertColors(variant)
	return fmt.Sprintf(
		`<div style="background-color:%s;border-left:4px solid %s;padding:12px 16px;margin:16px 0;border-radius:4px;">%s</div>`,
		bg, border, message,
	)
}

func alertColors(variant string) (bg, border string) {
	switch variant {
	case "success":
		return "#ecfdf5", "#10b981"
	case "warning":
		return "#fffbeb", "#f59e0b"
	case "error":
		return "#fef2f2", "#ef4444"
	default:
		return "#eff6ff", "#3b82f6"
	}
}

// Table renders tabular data. The "data" argument holds the rows and the
// optional "header" argument a list of column titles.
func Table(args Args) string {
	rows := args.Rows("data")
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<table role="presentation" border="0" cellpadding="8" cellspacing="0" width="100%" style="border-collapse:collapse;">`)

	if header := args.Strings("header"); len(header) > 0 {
		sb.WriteString("<tr>")
		for _, cell := range header {
			sb.WriteString(`<th align="left" style="border-bottom:2px solid #e5e7eb;font-weight:600;">`)
			sb.WriteString(html.EscapeString(cell))
			sb.WriteString("</th>")
		}
		sb.WriteString("</tr>")
	}

	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString(`<td align="left" style="border-bottom:1px solid #e5e7eb;">`)
			sb.WriteString(html.EscapeString(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table>")
	return sb.String()
}

// List renders a bulleted or ordered list from the "items" argument.
func List(args Args) string {
	items := args.Strings("items")
	if len(items) == 0 {
		return ""
	}
	tagName := "ul"
	if args.Bool("ordered") {
		tagName = "ol"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<%s style="margin:16px 0;padding-left:24px;">`, tagName)
	for _, item := range items {
		sb.WriteString("<li style=\"margin:4px 0;\">")
		sb.WriteString(item)
		sb.WriteString("</li>")
	}
	fmt.Fprintf(&sb, "</%s>", tagName)
	return sb.String()
}

// Image renders a responsive image from the "src" argument.
func Image(args Args) string {
	src := args.String("src")
	if src == "" {
		return ""
	}
	alt := html.EscapeString(args.String("alt"))
	width := args.StringOr("width", "100%")
	return fmt.Sprintf(
		`<img src="%s" alt="%s" width="%s" style="max-width:100%%;height:auto;display:block;margin:16px auto;" />`,
		src, alt, width,
	)
}

// Heading renders a section heading. The "level" argument accepts 1-4 and
// defaults to 2.
func Heading(args Args) string {
	text := args.String("text")
	if text == "" {
		return ""
	}
	level := args.Int("level")
	if level < 1 || level > 4 {
		level = 2
	}
	return fmt.Sprintf(
		`<h%d style="margin:24px 0 8px;color:#111827;">%s</h%d>`,
		level, text, level,
	)
}

// Paragraph renders a standard paragraph of body text.
func Paragraph(args Args) string {
	text := args.String("text")
	if text == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="margin:16px 0;line-height:1.6;color:#374151;">%s</p>`, text)
}

// Divider renders a horizontal rule. It takes no meaningful arguments.
func Divider(args Args) string {
	color := args.StringOr("color", "#e5e7eb")
	return fmt.Sprintf(`<hr style="border:none;border-top:1px solid %s;margin:24px 0;" />`, color)
}

// Spacer renders vertical whitespace of "height" pixels (default 24).
func Spacer(args Args) string {
	height := args.Int("height")
	if height <= 0 {
		height = 24
	}
	return fmt.Sprintf(`<div style="height:%dpx;line-height:%dpx;">&#8202;</div>`, height, height)
}

// Quote renders a blockquote with an optional "cite" attribution.
func Quote(args Args) string {
	text := args.String("text")
	if text == "" {
		return ""
	}
	cite := ""
	if c := args.String("cite"); c != "" {
		cite = fmt.Sprintf(`<footer style="margin-top:8px;font-size:14px;color:#6b7280;">&mdash; %s</footer>`, html.EscapeString(c))
	}
	return fmt.Sprintf(
		`<blockquote style="border-left:4px solid #d1d5db;margin:16px 0;padding:8px 16px;color:#4b5563;font-style:italic;">%s%s</blockquote>`,
		text, cite,
	)
}

// Code renders preformatted monospace content.
func Code(args Args) string {
	content := args.String("content")
	if content == "" {
		return ""
	}
	return fmt.Sprintf(
		`<pre style="background-color:#1f2937;color:#f9fafb;padding:16px;border-radius:6px;overflow-x:auto;font-size:13px;"><code>%s</code></pre>`,
		html.EscapeString(content),
	)
}

// Link renders an inline text link.
func Link(args Args) string {
	url := args.String("url")
	if url == "" {
		return ""
	}
	text := args.StringOr("text", url)
	color := args.StringOr("color", "#2563eb")
	return fmt.Sprintf(`<a href="%s" target="_blank" style="color:%s;text-decoration:underline;">%s</a>`, url, color, text)
}

// Badge renders a small rounded label.
func Badge(args Args) string {
	text := args.String("text")
	if text == "" {
		return ""
	}
	color := args.StringOr("color", "#e0e7ff")
	textColor := args.StringOr("text_color", "#3730a3")
	return fmt.Sprintf(
		`<span style="display:inline-block;background-color:%s;color:%s;padding:2px 10px;border-radius:9999px;font-size:12px;font-weight:600;">%s</span>`,
		color, textColor, html.EscapeString(text),
	)
}

// Panel renders content inside a bordered box with an optional "title".
func Panel(args Args) string {
	content := args.String("content")
	if content == "" {
		return ""
	}
	title := ""
	if t := args.String("title"); t != "" {
		title = fmt.Sprintf(`<div style="font-weight:600;margin-bottom:8px;color:#111827;">%s</div>`, t)
	}
	return fmt.Sprintf(
		`<div style="border:1px solid #e5e7eb;border-radius:8px;padding:16px;margin:16px 0;background-color:#f9fafb;">%s%s</div>`,
		title, content,
	)
}

// Progress renders a horizontal progress bar for "value" percent (0-100).
func Progress(args Args) string {
	value := args.Int("value")
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	color := args.StringOr("color", "#2563eb")
	return fmt.Sprintf(
		`<div style="background-color:#e5e7eb;border-radius:9999px;height:8px;margin:16px 0;"><div style="background-color:%s;border-radius:9999px;height:8px;width:%d%%;"></div></div>`,
		color, value,
	)
}

// Social renders a row of social profile links from the "links" argument,
// each entry an argument bag with "label" and "url".
func Social(args Args) string {
	links := args.Links("links")
	if len(links) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<p style="text-align:center;margin:16px 0;">`)
	for i, link := range links {
		if i > 0 {
			sb.WriteString(` <span style="color:#9ca3af;">&middot;</span> `)
		}
		fmt.Fprintf(&sb,
			`<a href="%s" target="_blank" style="color:#6b7280;text-decoration:none;">%s</a>`,
			link.String("url"), html.EscapeString(link.String("label")),
		)
	}
	sb.WriteString("</p>")
	return sb.String()
}

// Footnote renders small muted text, typically legal or unsubscribe copy.
func Footnote(args Args) string {
	text := args.String("text")
	if text == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="font-size:12px;color:#9ca3af;margin:8px 0;">%s</p>`, text)
}

// Preheader renders hidden preview text shown by email clients in the inbox
// list next to the subject.
func Preheader(args Args) string {
	text := args.String("text")
	if text == "" {
		return ""
	}
	return fmt.Sprintf(
		`<span style="display:none;font-size:1px;color:transparent;max-height:0;max-width:0;opacity:0;overflow:hidden;">%s</span>`,
		html.EscapeString(text),
	)
}

// OTP renders a one-time code in a large spaced monospace block.
func OTP(args Args) string {
	code := args.String("code")
	if code == "" {
		return ""
	}
	return fmt.Sprintf(
		`<div style="text-align:center;margin:24px 0;"><span style="display:inline-block;background-color:#f3f4f6;border-radius:8px;padding:16px 32px;font-family:monospace;font-size:28px;letter-spacing:8px;font-weight:700;color:#111827;">%s</span></div>`,
		html.EscapeString(code),
	)
}
