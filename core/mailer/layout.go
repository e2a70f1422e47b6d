package mailer

import (
	_ "embed"
	"os"
	"path/filepath"
	"sync"

	"github.com/quillmail/quillmail/core/tag"
)

//go:embed layouts/default.html
var defaultLayout string

// fallbackLayout is the last-resort skeleton used if the embedded default is
// ever unavailable. It carries only the tokens required to produce a
// readable document.
const fallbackLayout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{subject}</title></head>
<body style="margin:0;padding:16px;background-color:{color_background};font-family:sans-serif;color:{color_text};">
{content}
</body>
</html>`

// Layouts resolves HTML skeletons by name. Lookup order: a theme-directory
// override file, the embedded default skeleton, and finally a hardcoded
// minimal fallback. Resolved skeletons are cached per name.
type Layouts struct {
	themeDir string
	mu       sync.Mutex
	cache    map[string]string
}

// NewLayouts creates a layout source. An empty themeDir disables overrides.
func NewLayouts(themeDir string) *Layouts {
	return &Layouts{
		themeDir: themeDir,
		cache:    make(map[string]string),
	}
}

// Load returns the skeleton for the given layout name.
func (l *Layouts) Load(name string) string {
	// Normalizing the name also keeps lookups inside the theme directory.
	name = tag.Normalize(name)
	if name == "" {
		name = "default"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[name]; ok {
		return cached
	}

	skeleton := l.resolve(name)
	l.cache[name] = skeleton
	return skeleton
}

func (l *Layouts) resolve(name string) string {
	if l.themeDir != "" {
		path := filepath.Join(l.themeDir, name+".html")
		if body, err := os.ReadFile(path); err == nil && len(body) > 0 {
			return string(body)
		}
	}
	if defaultLayout != "" {
		return defaultLayout
	}
	return fallbackLayout
}
