package tag

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// FromTempl adapts a static templ component into a render callback.
// The component is rendered to a string on every pass.
func FromTempl(component templ.Component) RenderFunc {
	return func(any) (any, error) {
		return renderTempl(component)
	}
}

// FromTemplFunc adapts a data-driven templ component constructor into a
// render callback.
func FromTemplFunc(fn func(data any) templ.Component) RenderFunc {
	return func(data any) (any, error) {
		return renderTempl(fn(data))
	}
}

func renderTempl(component templ.Component) (string, error) {
	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
