package components

// primaryKeys maps a component kind to the argument key a scalar callback
// result is placed under before dispatch. Kinds not listed use "content".
var primaryKeys = map[string]string{
	"button":    "text",
	"alert":     "message",
	"table":     "data",
	"list":      "items",
	"image":     "src",
	"heading":   "text",
	"paragraph": "text",
	"spacer":    "height",
	"quote":     "text",
	"link":      "url",
	"badge":     "text",
	"progress":  "value",
	"social":    "links",
	"footnote":  "text",
	"preheader": "text",
	"otp":       "code",
}

// PrimaryKey returns the argument key a bare string value maps to for the
// given component kind.
func PrimaryKey(kind string) string {
	if key, ok := primaryKeys[kind]; ok {
		return key
	}
	return "content"
}

// samples holds representative argument bags used to preview a component
// when no explicit preview value is configured on the tag.
var samples = map[string]Args{
	"button":    {"text": "Confirm Order", "url": "https://example.com"},
	"alert":     {"message": "This is a sample notice.", "variant": "info"},
	"table":     {"header": []string{"Item", "Qty", "Price"}, "data": [][]string{{"Sample Product", "2", "$19.00"}, {"Another Product", "1", "$7.50"}}},
	"list":      {"items": []string{"First item", "Second item", "Third item"}},
	"image":     {"src": "https://example.com/sample.png", "alt": "Sample image"},
	"heading":   {"text": "Sample Heading"},
	"paragraph": {"text": "This is a sample paragraph of body text."},
	"divider":   {},
	"spacer":    {"height": 24},
	"quote":     {"text": "A sample quotation.", "cite": "Jane Doe"},
	"code":      {"content": "sample code"},
	"link":      {"url": "https://example.com", "text": "Example link"},
	"badge":     {"text": "New"},
	"panel":     {"title": "Sample Panel", "content": "Panel body content."},
	"progress":  {"value": 60},
	"social":    {"links": []Args{{"label": "Twitter", "url": "https://twitter.com/example"}, {"label": "GitHub", "url": "https://github.com/example"}}},
	"footnote":  {"text": "You received this email because you signed up at example.com."},
	"preheader": {"text": "A short preview of this email."},
	"markdown":  {"content": "Some **sample** markdown."},
	"otp":       {"code": "123456"},
}

// Sample returns a copy of the canned preview arguments for kind,
// or nil for unknown kinds.
func Sample(kind string) Args {
	args, ok := samples[kind]
	if !ok {
		return nil
	}
	out := make(Args, len(args))
	for k, v := range args {
		out[k] = v
	}
	return out
}
