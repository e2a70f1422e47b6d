package registry

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quillmail/quillmail/core/components"
	"github.com/quillmail/quillmail/core/tag"
	"github.com/quillmail/quillmail/core/template"
)

// manifest is the YAML shape accepted by Load. Manifest tags are static:
// their output is the literal value (or, for component kinds, their options),
// which covers declaratively configured templates without code.
type manifest struct {
	Namespace string             `yaml:"namespace"`
	Tags      []manifestTag      `yaml:"tags"`
	Templates []manifestTemplate `yaml:"templates"`
}

type manifestTag struct {
	Name        string         `yaml:"name"`
	Kind        string         `yaml:"kind"`
	Label       string         `yaml:"label"`
	Description string         `yaml:"description"`
	Value       string         `yaml:"value"`
	Preview     string         `yaml:"preview"`
	Groups      []string       `yaml:"groups"`
	Options     map[string]any `yaml:"options"`
}

type manifestTemplate struct {
	Name       string   `yaml:"name"`
	Subject    string   `yaml:"subject"`
	Message    string   `yaml:"message"`
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Disabled   bool     `yaml:"disabled"`
	TagGroups  []string `yaml:"tag_groups"`
	Capability string   `yaml:"capability"`
	Layout     string   `yaml:"layout"`
}

// LoadFile registers the tags and templates described by a YAML manifest
// file. See Load.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	defer func() { _ = f.Close() }()
	return r.Load(f)
}

// Load registers the tags and templates described by a YAML manifest.
// Registration stops at the first failure, leaving earlier entries in place.
func (r *Registry) Load(rd io.Reader) error {
	var m manifest
	dec := yaml.NewDecoder(rd)
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Namespace == "" {
		return fmt.Errorf("%w: namespace is required", ErrInvalidManifest)
	}

	for _, mt := range m.Tags {
		if _, err := r.RegisterTag(m.Namespace, mt.Name, manifestTagConfig(mt)); err != nil {
			return errors.Join(ErrInvalidManifest, err)
		}
	}
	for _, mt := range m.Templates {
		cfg := template.Config{
			Subject:    mt.Subject,
			Message:    mt.Message,
			Title:      mt.Title,
			Subtitle:   mt.Subtitle,
			Disabled:   mt.Disabled,
			TagGroups:  mt.TagGroups,
			Capability: mt.Capability,
			Layout:     mt.Layout,
		}
		if _, err := r.RegisterTemplate(m.Namespace, mt.Name, cfg); err != nil {
			return errors.Join(ErrInvalidManifest, err)
		}
	}
	return nil
}

// manifestTagConfig builds a static tag configuration from a manifest entry.
func manifestTagConfig(mt manifestTag) tag.Config {
	kind := tag.Kind(mt.Kind)
	if kind == "" {
		kind = tag.Text
	}

	value := mt.Value
	callback := func(any) (any, error) {
		if value != "" {
			return value, nil
		}
		// Component kinds fall back to rendering from their options.
		return components.Args{}, nil
	}

	return tag.Config{
		Label:       mt.Label,
		Description: mt.Description,
		Kind:        kind,
		Callback:    callback,
		Options:     components.Args(mt.Options),
		Preview:     mt.Preview,
		Groups:      mt.Groups,
	}
}
