package notifications

import "errors"

// ErrInternal is returned on internal notifier errors
var ErrInternal = errors.New("notifications service: internal error")
