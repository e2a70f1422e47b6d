package registry

import (
	"github.com/quillmail/quillmail/core/tag"
	"github.com/quillmail/quillmail/core/template"
)

// Hook event names emitted by the registry.
const (
	EventTagRegistered      = "tag.registered"
	EventTemplateRegistered = "template.registered"
)

// TagRegistered is the payload of EventTagRegistered.
type TagRegistered struct {
	Namespace string
	Tag       *tag.Tag
}

// TemplateRegistered is the payload of EventTemplateRegistered.
type TemplateRegistered struct {
	Namespace string
	Template  *template.Template
}
