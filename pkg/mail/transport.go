package mail

import "context"

// Transport delivers composed messages
type Transport interface {
	// Send delivers the given message
	Send(ctx context.Context, msg *Message) error
}

// TransportFunc adapts a function to the Transport interface
type TransportFunc func(ctx context.Context, msg *Message) error

// Send calls f(ctx, msg)
func (f TransportFunc) Send(ctx context.Context, msg *Message) error {
	return f(ctx, msg)
}
