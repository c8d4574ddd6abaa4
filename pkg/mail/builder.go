package mail

import (
	"os"
	"time"

	"github.com/google/uuid"
)

// MessageBuilder accumulates the fields of a message.
// Recipient setters append; the Replace variants overwrite the whole list.
type MessageBuilder interface {
	From(addr Address) MessageBuilder
	Sender(addr Address) MessageBuilder
	ReturnPath(addr Address) MessageBuilder
	ReplyTo(addrs AddressInput) MessageBuilder
	To(addrs AddressInput) MessageBuilder
	Cc(addrs AddressInput) MessageBuilder
	Bcc(addrs AddressInput) MessageBuilder
	ReplaceTo(addrs AddressInput) MessageBuilder
	ReplaceCc(addrs AddressInput) MessageBuilder
	ReplaceBcc(addrs AddressInput) MessageBuilder
	Subject(subject string) MessageBuilder
	Date(date time.Time) MessageBuilder
	Priority(priority Priority) MessageBuilder
	AttachFile(path, name, contentType string) MessageBuilder
	AttachData(content []byte, name, contentType string) MessageBuilder
	HTML(body, charset string) MessageBuilder
	Text(body, charset string) MessageBuilder

	// Message materializes the accumulated message
	Message() *Message
}

// Builder is the default MessageBuilder
type Builder struct {
	msg   Message
	files []Attachment
	data  []Attachment
}

// NewBuilder creates an empty Builder
func NewBuilder() MessageBuilder {
	return &Builder{}
}

func (b *Builder) From(addr Address) MessageBuilder {
	b.msg.From = addr
	return b
}

func (b *Builder) Sender(addr Address) MessageBuilder {
	b.msg.Sender = addr
	return b
}

func (b *Builder) ReturnPath(addr Address) MessageBuilder {
	b.msg.ReturnPath = addr
	return b
}

func (b *Builder) ReplyTo(addrs AddressInput) MessageBuilder {
	b.msg.ReplyTo = append(b.msg.ReplyTo, normalize(addrs)...)
	return b
}

func (b *Builder) To(addrs AddressInput) MessageBuilder {
	b.msg.To = append(b.msg.To, normalize(addrs)...)
	return b
}

func (b *Builder) Cc(addrs AddressInput) MessageBuilder {
	b.msg.Cc = append(b.msg.Cc, normalize(addrs)...)
	return b
}

func (b *Builder) Bcc(addrs AddressInput) MessageBuilder {
	b.msg.Bcc = append(b.msg.Bcc, normalize(addrs)...)
	return b
}

func (b *Builder) ReplaceTo(addrs AddressInput) MessageBuilder {
	b.msg.To = normalize(addrs)
	return b
}

func (b *Builder) ReplaceCc(addrs AddressInput) MessageBuilder {
	b.msg.Cc = normalize(addrs)
	return b
}

func (b *Builder) ReplaceBcc(addrs AddressInput) MessageBuilder {
	b.msg.Bcc = normalize(addrs)
	return b
}

func (b *Builder) Subject(subject string) MessageBuilder {
	b.msg.Subject = subject
	return b
}

func (b *Builder) Date(date time.Time) MessageBuilder {
	b.msg.Date = date
	return b
}

func (b *Builder) Priority(priority Priority) MessageBuilder {
	b.msg.Priority = priority
	return b
}

func (b *Builder) AttachFile(path, name, contentType string) MessageBuilder {
	b.files = append(b.files, Attachment{Path: path, Name: name, ContentType: contentType})
	return b
}

func (b *Builder) AttachData(content []byte, name, contentType string) MessageBuilder {
	b.data = append(b.data, Attachment{Content: content, Name: name, ContentType: contentType})
	return b
}

func (b *Builder) HTML(body, charset string) MessageBuilder {
	b.msg.HTML = body
	b.msg.Charset = charset
	return b
}

func (b *Builder) Text(body, charset string) MessageBuilder {
	b.msg.Text = body
	b.msg.Charset = charset
	return b
}

// Message returns a copy of the accumulated message with a Message-ID assigned.
// File attachments come before data attachments.
func (b *Builder) Message() *Message {
	msg := b.msg
	msg.ReplyTo = append(AddressList(nil), b.msg.ReplyTo...)
	msg.To = append(AddressList(nil), b.msg.To...)
	msg.Cc = append(AddressList(nil), b.msg.Cc...)
	msg.Bcc = append(AddressList(nil), b.msg.Bcc...)

	msg.Attachments = make([]Attachment, 0, len(b.files)+len(b.data))
	msg.Attachments = append(msg.Attachments, b.files...)
	msg.Attachments = append(msg.Attachments, b.data...)

	if msg.Charset == "" {
		msg.Charset = DefaultCharset
	}
	if msg.MessageID == "" {
		msg.MessageID = newMessageID()
	}
	return &msg
}

func newMessageID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return uuid.New().String() + "@" + host
}
