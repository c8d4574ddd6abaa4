package mail

import "errors"

var (
	// ErrInvalidView is returned when a view has neither an html nor a text template
	ErrInvalidView = errors.New(`invalid email view: must contain "html" and/or "text" template`)

	// ErrRender is returned when a template could not be found or rendered
	ErrRender = errors.New("mail: render failed")

	// ErrTransport is returned when the transport rejects the message
	ErrTransport = errors.New("mail: transport failed")

	// ErrUnsupportedMailer is returned by the factory for an unknown mailer name
	ErrUnsupportedMailer = errors.New("unsupported mailer")
)
