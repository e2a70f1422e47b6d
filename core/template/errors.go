package template

import "errors"

// ErrInvalidName indicates the template namespace or name is empty after
// normalization.
var ErrInvalidName = errors.New("invalid template name")
