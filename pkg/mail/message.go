package mail

import (
	"path/filepath"
	"time"
)

// Content channel names
const (
	ViewHTML = "html"
	ViewText = "text"
)

// DefaultCharset is the charset tagged on rendered content
const DefaultCharset = "utf-8"

// Priority is the X-Priority of a message, 1 is highest and 5 is lowest.
// The zero value means no priority header.
type Priority int

const (
	PriorityHighest Priority = iota + 1
	PriorityHigh
	PriorityNormal
	PriorityLow
	PriorityLowest
)

// String returns the X-Priority header value
func (p Priority) String() string {
	switch p {
	case PriorityHighest:
		return "1 (Highest)"
	case PriorityHigh:
		return "2 (High)"
	case PriorityNormal:
		return "3 (Normal)"
	case PriorityLow:
		return "4 (Low)"
	case PriorityLowest:
		return "5 (Lowest)"
	default:
		return ""
	}
}

// View names the template used for each content channel.
// An empty path means the channel is absent.
type View struct {
	HTML string
	Text string
}

// IsEmpty reports whether neither channel has a template
func (v View) IsEmpty() bool {
	return v.HTML == "" && v.Text == ""
}

// Attachment is a file attached either by path or by content
type Attachment struct {
	Path        string
	Content     []byte
	Name        string
	ContentType string
}

// Filename returns the display name, falling back to the base name of the path
func (a Attachment) Filename() string {
	if a.Name != "" {
		return a.Name
	}
	if a.Path != "" {
		return filepath.Base(a.Path)
	}
	return ""
}

// Message is a fully composed email ready for a Transport
type Message struct {
	MessageID   string
	From        Address
	Sender      Address
	ReturnPath  Address
	ReplyTo     AddressList
	To          AddressList
	Cc          AddressList
	Bcc         AddressList
	Subject     string
	Date        time.Time
	Priority    Priority
	HTML        string
	Text        string
	Charset     string
	Attachments []Attachment
}

// Recipients returns every envelope recipient, to then cc then bcc
func (m *Message) Recipients() AddressList {
	recipients := make(AddressList, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	recipients = append(recipients, m.To...)
	recipients = append(recipients, m.Cc...)
	recipients = append(recipients, m.Bcc...)
	return recipients
}

// EnvelopeFrom returns the return path if set, otherwise the sender or from address
func (m *Message) EnvelopeFrom() Address {
	switch {
	case !m.ReturnPath.IsZero():
		return m.ReturnPath
	case !m.Sender.IsZero():
		return m.Sender
	default:
		return m.From
	}
}
