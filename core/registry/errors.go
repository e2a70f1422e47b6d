package registry

import "errors"

var (
	// ErrInvalidNamespace indicates the namespace is empty after normalization.
	ErrInvalidNamespace = errors.New("invalid namespace")

	// ErrDuplicateTag indicates a tag is already registered under the
	// namespace and name. Registration never silently overwrites.
	ErrDuplicateTag = errors.New("tag already registered")

	// ErrDuplicateTemplate indicates a template is already registered under
	// the namespace and name.
	ErrDuplicateTemplate = errors.New("template already registered")

	// ErrTemplateNotFound indicates no template exists under the namespace
	// and name.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidManifest indicates a registration manifest could not be
	// parsed or described an invalid tag or template.
	ErrInvalidManifest = errors.New("invalid registration manifest")
)
