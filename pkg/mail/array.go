package mail

import (
	"context"
	"sync"
)

// ArrayTransport keeps sent messages in memory
type ArrayTransport struct {
	mu       sync.Mutex
	messages []*Message
}

// NewArrayTransport creates a new ArrayTransport
func NewArrayTransport() *ArrayTransport {
	return &ArrayTransport{}
}

// Send records the message
func (t *ArrayTransport) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
	return nil
}

// Messages returns the recorded messages in send order
func (t *ArrayTransport) Messages() []*Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Message(nil), t.messages...)
}

// Flush forgets every recorded message
func (t *ArrayTransport) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}

// Name returns the transport name
func (t *ArrayTransport) Name() string {
	return "array"
}
