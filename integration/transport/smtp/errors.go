package smtp

import "errors"

// ErrInvalidConfig indicates the SMTP configuration failed validation.
var ErrInvalidConfig = errors.New("invalid smtp configuration")
