package tag

import (
	"fmt"

	"github.com/quillmail/quillmail/core/components"
)

// RenderFunc computes a tag's output for one rendering pass. The data value
// is whatever the caller supplied for the pass: a business object, a map, or
// nil in preview mode. Returning a string yields the output directly; for
// component kinds a map result is merged over the tag's static options and a
// string result is placed under the kind's primary argument key.
type RenderFunc func(data any) (any, error)

// Result is the outcome of rendering a single tag. The substitution loop
// maps a failed result to the mode-appropriate fallback string, so a broken
// callback degrades one placeholder instead of aborting the batch.
type Result struct {
	Value string
	Err   error
}

// OK wraps a successful render value.
func OK(value string) Result { return Result{Value: value} }

// Fail wraps a render failure.
func Fail(err error) Result { return Result{Err: err} }

// Failed reports whether the render produced an error.
func (r Result) Failed() bool { return r.Err != nil }

// Config describes a tag at registration time.
type Config struct {
	Label       string          // Human-readable name; derived from the tag name if empty
	Description string          // Shown in tag listings for authors
	Kind        Kind            // Required; must belong to the closed kind set
	Callback    RenderFunc      // Required unless Kind is Divider or Spacer
	Options     components.Args // Static defaults merged under callback output
	Preview     string          // Literal preview value
	PreviewFunc func() string   // Preview generator; wins over Preview
	Groups      []string        // Additional namespaces this tag is aliased into
}

// Tag is a named placeholder bound to a render callback. Tags are created
// once at registration time and immutable afterwards; the same *Tag may be
// aliased into several namespaces.
type Tag struct {
	Name        string
	Label       string
	Description string
	Kind        Kind
	Callback    RenderFunc
	Options     components.Args
	Groups      []string

	preview   string
	previewFn func() string
}

// New validates the configuration and constructs a Tag. The name is
// normalized here, once; every later lookup can assume canonical keys.
func New(name string, cfg Config) (*Tag, error) {
	name = Normalize(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !cfg.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, cfg.Kind)
	}
	if cfg.Callback == nil && cfg.Kind.needsCallback() {
		return nil, fmt.Errorf("%w: kind %q", ErrMissingCallback, cfg.Kind)
	}

	label := cfg.Label
	if label == "" {
		label = labelFromName(name)
	}

	return &Tag{
		Name:        name,
		Label:       label,
		Description: cfg.Description,
		Kind:        cfg.Kind,
		Callback:    cfg.Callback,
		Options:     cfg.Options,
		Groups:      NormalizeAll(cfg.Groups),
		preview:     cfg.Preview,
		previewFn:   cfg.PreviewFunc,
	}, nil
}

// Render computes the tag's live output for the given data. Callback errors
// and panics are captured in the Result; they never propagate.
func (t *Tag) Render(data any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail(fmt.Errorf("tag %q: callback panic: %v", t.Name, r))
		}
	}()

	if t.Callback == nil {
		// Only divider/spacer reach here; they render from options alone.
		if t.Kind.IsComponent() {
			return OK(components.Render(string(t.Kind), t.Options))
		}
		return OK("")
	}

	out, err := t.Callback(data)
	if err != nil {
		return Fail(fmt.Errorf("tag %q: %w", t.Name, err))
	}

	if t.Kind.IsComponent() {
		return OK(t.renderComponent(out))
	}

	// Content kinds return string output verbatim; anything else coerces
	// to empty rather than leaking a formatting artifact into the email.
	if s, ok := out.(string); ok {
		return OK(s)
	}
	return OK("")
}

// renderComponent shapes a callback result into renderer arguments.
func (t *Tag) renderComponent(out any) string {
	kind := string(t.Kind)
	switch v := out.(type) {
	case nil:
		return ""
	case components.Args:
		return components.Render(kind, components.Merge(t.Options, v))
	case map[string]any:
		return components.Render(kind, components.Merge(t.Options, components.Args(v)))
	case string:
		return components.Render(kind, components.Merge(t.Options, components.Args{
			components.PrimaryKey(kind): v,
		}))
	default:
		// Booleans and other scalars carry no renderable payload.
		return ""
	}
}

// Preview computes the tag's sample output for authoring mode. Resolution
// order: explicit preview generator, literal preview value, canned component
// sample merged with the tag's options, generic bracketed label.
func (t *Tag) Preview() (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail(fmt.Errorf("tag %q: preview panic: %v", t.Name, r))
		}
	}()

	if t.previewFn != nil {
		return OK(t.previewFn())
	}
	if t.preview != "" {
		return OK(t.preview)
	}
	if t.Kind.IsComponent() {
		args := components.Merge(components.Sample(string(t.Kind)), t.Options)
		return OK(components.Render(string(t.Kind), args))
	}
	return OK("[" + t.Label + "]")
}
