package components

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md is shared across calls; goldmark.Markdown is safe for concurrent use.
var (
	mdOnce sync.Once
	md     goldmark.Markdown
)

func markdownConverter() goldmark.Markdown {
	mdOnce.Do(func() {
		md = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		)
	})
	return md
}

// Markdown converts the "content" argument from Markdown to an HTML fragment.
// Conversion failures produce empty output like any other renderer miss.
func Markdown(args Args) string {
	content := args.String("content")
	if content == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return buf.String()
}
