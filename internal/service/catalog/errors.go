package catalog

import "errors"

// ErrInternal is returned on internal service errors
var ErrInternal = errors.New("catalog service: internal error")
