package processor

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/quillmail/quillmail/core/hook"
	"github.com/quillmail/quillmail/core/logger"
	"github.com/quillmail/quillmail/core/registry"
	"github.com/quillmail/quillmail/core/tag"
)

// Mode selects where substitution values come from.
type Mode string

const (
	// ModeLive renders tags with real caller-supplied data.
	ModeLive Mode = "live"
	// ModePreview renders tags with synthetic sample values.
	ModePreview Mode = "preview"
)

// Processor performs placeholder substitution over content text using the
// tags resolvable for a set of groups.
type Processor struct {
	reg   *registry.Registry
	log   *slog.Logger
	hooks *hook.Bus
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used for per-tag failure diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *Processor) { p.log = log }
}

// WithHooks sets the bus the substitution extension points fire on.
func WithHooks(bus *hook.Bus) Option {
	return func(p *Processor) { p.hooks = bus }
}

// New creates a Processor resolving tags through the given registry.
func New(reg *registry.Registry, opts ...Option) *Processor {
	p := &Processor{
		reg: reg,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessGroups substitutes live tag output into content. A tag whose render
// fails is logged and replaced with an empty string; live sends degrade
// gracefully rather than leaking markers to recipients.
func (p *Processor) ProcessGroups(content string, groups []string, data any) string {
	return p.process(content, groups, ModeLive, data)
}

// ProcessPreviewGroups substitutes preview values into content. A tag whose
// preview fails is replaced with a visible "[name]" marker so the author
// notices the problem.
func (p *Processor) ProcessPreviewGroups(content string, groups []string) string {
	return p.process(content, groups, ModePreview, nil)
}

// ProcessAuto routes to the live path when data is present, the preview path
// when the preview flag is set without data, and otherwise returns content
// unchanged.
func (p *Processor) ProcessAuto(content string, groups []string, data any, preview bool) string {
	switch {
	case data != nil:
		return p.process(content, groups, ModeLive, data)
	case preview:
		return p.process(content, groups, ModePreview, nil)
	default:
		return content
	}
}

func (p *Processor) process(content string, groups []string, mode Mode, data any) string {
	content = p.filterContent(FilterContentBefore, content, groups, mode)
	p.hooks.Emit(EventProcessBefore, Pass{Content: content, Groups: groups, Mode: mode})

	tags := p.reg.TagsForGroups(groups...)

	// Collect token/value pairs for every tag actually present, then apply
	// them in one simultaneous pass. A replacement value that itself
	// contains another tag's token is never re-substituted.
	pairs := make([]string, 0, 2*len(tags))
	replaced := 0
	for name, t := range tags {
		token := "{" + name + "}"
		if !strings.Contains(content, token) {
			continue
		}

		var res tag.Result
		if mode == ModeLive {
			res = t.Render(data)
		} else {
			res = t.Preview()
		}

		value := res.Value
		if res.Failed() {
			p.log.Warn("tag render failed",
				logger.Component("processor"),
				logger.Key("tag", name),
				logger.Key("mode", string(mode)),
				logger.Error(res.Err),
			)
			if mode == ModeLive {
				value = ""
			} else {
				value = "[" + name + "]"
			}
		}

		pairs = append(pairs, token, value)
		replaced++
	}

	if len(pairs) > 0 {
		content = strings.NewReplacer(pairs...).Replace(content)
	}

	content = p.filterContent(FilterContentAfter, content, groups, mode)
	p.hooks.Emit(EventProcessAfter, Pass{Content: content, Groups: groups, Mode: mode, Replaced: replaced})
	return content
}

// filterContent runs content through an extension point, keeping the
// original when a filter returns an unexpected shape.
func (p *Processor) filterContent(name, content string, groups []string, mode Mode) string {
	out := p.hooks.Apply(name, Pass{Content: content, Groups: groups, Mode: mode})
	if pass, ok := out.(Pass); ok {
		return pass.Content
	}
	return content
}

// PlaceholdersForGroups lists every placeholder token currently resolvable
// for the given groups, sorted, for documentation and autocomplete surfaces.
func (p *Processor) PlaceholdersForGroups(groups ...string) []string {
	tags := p.reg.TagsForGroups(groups...)
	out := make([]string, 0, len(tags))
	for name := range tags {
		out = append(out, "{"+name+"}")
	}
	sort.Strings(out)
	return out
}
