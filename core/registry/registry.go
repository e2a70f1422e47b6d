package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/quillmail/quillmail/core/hook"
	"github.com/quillmail/quillmail/core/logger"
	"github.com/quillmail/quillmail/core/tag"
	"github.com/quillmail/quillmail/core/template"
)

// Registry stores tags and templates in two independent two-level maps:
// namespace to name to value. It is constructed once at application start
// and injected into the processor and mailer; there is no package-global
// instance.
//
// Registration happens during bootstrap; lookups are pure reads. The mutex
// keeps the registry safe even when those phases overlap.
type Registry struct {
	mu        sync.RWMutex
	tags      map[string]map[string]*tag.Tag
	templates map[string]map[string]*template.Template
	log       *slog.Logger
	hooks     *hook.Bus
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for registration diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// WithHooks sets the bus that registration events are emitted on.
func WithHooks(bus *hook.Bus) Option {
	return func(r *Registry) { r.hooks = bus }
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		tags:      make(map[string]map[string]*tag.Tag),
		templates: make(map[string]map[string]*template.Template),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterTag constructs a tag from cfg and stores it under the namespace.
// The same tag is additionally aliased into every group listed in
// cfg.Groups; aliases merge last-write-wins, while a duplicate primary
// registration is a hard failure.
func (r *Registry) RegisterTag(namespace, name string, cfg tag.Config) (*tag.Tag, error) {
	ns := tag.Normalize(namespace)
	if ns == "" {
		return nil, ErrInvalidNamespace
	}

	t, err := tag.New(name, cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if _, exists := r.tags[ns][t.Name]; exists {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateTag, ns, t.Name)
	}
	r.storeTag(ns, t)
	for _, group := range t.Groups {
		if group != ns {
			r.storeTag(group, t)
		}
	}
	r.mu.Unlock()

	r.log.Debug("tag registered",
		logger.Component("registry"),
		logger.Key("namespace", ns),
		logger.Key("tag", t.Name),
	)
	r.hooks.Emit(EventTagRegistered, TagRegistered{Namespace: ns, Tag: t})
	return t, nil
}

// storeTag writes t into the namespace map. Caller holds the write lock.
func (r *Registry) storeTag(namespace string, t *tag.Tag) {
	bucket, ok := r.tags[namespace]
	if !ok {
		bucket = make(map[string]*tag.Tag)
		r.tags[namespace] = bucket
	}
	bucket[t.Name] = t
}

// RegisterTemplate constructs a template from cfg and stores it under the
// namespace. Duplicate registration is a hard failure.
func (r *Registry) RegisterTemplate(namespace, name string, cfg template.Config) (*template.Template, error) {
	tpl, err := template.New(namespace, name, cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if _, exists := r.templates[tpl.Namespace][tpl.Name]; exists {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateTemplate, tpl.Namespace, tpl.Name)
	}
	bucket, ok := r.templates[tpl.Namespace]
	if !ok {
		bucket = make(map[string]*template.Template)
		r.templates[tpl.Namespace] = bucket
	}
	bucket[tpl.Name] = tpl
	r.mu.Unlock()

	r.log.Debug("template registered",
		logger.Component("registry"),
		logger.Key("namespace", tpl.Namespace),
		logger.Key("template", tpl.Name),
	)
	r.hooks.Emit(EventTemplateRegistered, TemplateRegistered{Namespace: tpl.Namespace, Template: tpl})
	return tpl, nil
}

// Tags returns a copy of the tag map for one namespace.
func (r *Registry) Tags(namespace string) map[string]*tag.Tag {
	namespace = tag.Normalize(namespace)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*tag.Tag, len(r.tags[namespace]))
	for name, t := range r.tags[namespace] {
		out[name] = t
	}
	return out
}

// TagsForGroups merges the tag maps of the given groups left to right.
// On a name collision the first occurrence wins: earlier groups in the list
// take priority.
func (r *Registry) TagsForGroups(groups ...string) map[string]*tag.Tag {
	groups = tag.NormalizeAll(groups)

	r.mu.RLock()
	defer r.mu.RUnlock()

	merged := make(map[string]*tag.Tag)
	for _, group := range groups {
		for name, t := range r.tags[group] {
			if _, ok := merged[name]; !ok {
				merged[name] = t
			}
		}
	}
	return merged
}

// Template returns the template registered under the namespace and name.
func (r *Registry) Template(namespace, name string) (*template.Template, error) {
	namespace = tag.Normalize(namespace)
	name = tag.Normalize(name)

	r.mu.RLock()
	tpl, ok := r.templates[namespace][name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, namespace, name)
	}
	return tpl, nil
}

// TagInfo is the projection of a tag used by documentation and editor UIs.
type TagInfo struct {
	Name        string
	Label       string
	Description string
	Kind        tag.Kind
	Preview     string
}

// TemplateTags lists the tags available to a template, sorted by name.
// With an empty templateName it falls back to the namespace's own tags.
func (r *Registry) TemplateTags(namespace, templateName string) ([]TagInfo, error) {
	var tags map[string]*tag.Tag
	if templateName != "" {
		tpl, err := r.Template(namespace, templateName)
		if err != nil {
			return nil, err
		}
		tags = r.TagsForGroups(tpl.TagGroups...)
	} else {
		tags = r.Tags(namespace)
	}

	infos := make([]TagInfo, 0, len(tags))
	for _, t := range tags {
		preview := t.Preview()
		value := preview.Value
		if preview.Failed() {
			value = "[" + t.Name + "]"
		}
		infos = append(infos, TagInfo{
			Name:        t.Name,
			Label:       t.Label,
			Description: t.Description,
			Kind:        t.Kind,
			Preview:     value,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Reset clears both stores. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.tags = make(map[string]map[string]*tag.Tag)
	r.templates = make(map[string]map[string]*template.Template)
	r.mu.Unlock()
}
