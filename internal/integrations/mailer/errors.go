package mailer

import "errors"

var (
	// ErrSendFailed is returned when the SMTP delivery fails
	ErrSendFailed = errors.New("mailer client: failed to send message")

	// ErrInvalidRecipient is returned for an empty recipient address
	ErrInvalidRecipient = errors.New("mailer client: invalid recipient")
)
