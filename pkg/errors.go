package findclone

import "errors"

// ErrRootNotTraversable is returned when the root path cannot be stat'ed or listed at all.
var ErrRootNotTraversable = errors.New("root path cannot be traversed")

// ErrUnsupportedAlgorithm is returned for unknown hash algorithm names.
var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// ErrUnsupportedFormat is returned for unknown output formats.
var ErrUnsupportedFormat = errors.New("unsupported output format")
