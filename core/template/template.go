package template

import (
	"github.com/quillmail/quillmail/core/tag"
)

// Config describes a template at registration time.
type Config struct {
	Description string

	// Default content settings. Templates are enabled unless opted out.
	Subject  string
	Message  string
	Title    string
	Subtitle string
	Disabled bool

	// TagGroups lists the namespaces whose tags are available to this
	// template, in lookup-priority order. TagGroup is the legacy
	// single-group form, appended after TagGroups. When both are empty the
	// template draws from its own namespace.
	TagGroups []string
	TagGroup  string

	// SettingsFunc supplies runtime overrides merged field-by-field over
	// the defaults above.
	SettingsFunc SettingsFunc

	// Visual configuration merged over the built-in defaults.
	Visual Visual

	// Capability gates manual and test sends of this template.
	Capability string

	// Layout names the HTML skeleton; empty means the default layout.
	Layout string
}

// Template is a named email configuration: default subject/message, visual
// styling, and the tag namespaces it draws from. Templates are created once
// at bootstrap and immutable afterwards.
type Template struct {
	Namespace    string
	Name         string
	Description  string
	TagGroups    []string
	Defaults     Settings
	SettingsFunc SettingsFunc
	Visual       Visual
	Capability   string
	Layout       string
}

// New validates the configuration and constructs a Template. Namespace and
// name are normalized once here; tag groups are normalized, de-duplicated,
// and default to the template's own namespace.
func New(namespace, name string, cfg Config) (*Template, error) {
	namespace = tag.Normalize(namespace)
	name = tag.Normalize(name)
	if name == "" || namespace == "" {
		return nil, ErrInvalidName
	}

	groups := cfg.TagGroups
	if cfg.TagGroup != "" {
		groups = append(append([]string{}, groups...), cfg.TagGroup)
	}
	groups = tag.NormalizeAll(groups)
	if len(groups) == 0 {
		groups = []string{namespace}
	}

	layout := cfg.Layout
	if layout == "" {
		layout = "default"
	}

	return &Template{
		Namespace:   namespace,
		Name:        name,
		Description: cfg.Description,
		TagGroups:   groups,
		Defaults: Settings{
			Subject:  cfg.Subject,
			Message:  cfg.Message,
			Title:    cfg.Title,
			Subtitle: cfg.Subtitle,
			Enabled:  !cfg.Disabled,
		},
		SettingsFunc: cfg.SettingsFunc,
		Visual:       mergeVisual(DefaultVisual(), cfg.Visual),
		Capability:   cfg.Capability,
		Layout:       layout,
	}, nil
}

// ResolveSettings merges the dynamic settings source, when configured, over
// the registration-time defaults. A panicking settings source is treated as
// absent so a broken configuration store cannot take rendering down.
func (t *Template) ResolveSettings() (s Settings) {
	s = t.Defaults
	if t.SettingsFunc == nil {
		return s
	}
	defer func() {
		if r := recover(); r != nil {
			s = t.Defaults
		}
	}()
	return t.Defaults.apply(t.SettingsFunc())
}
