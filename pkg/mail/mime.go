package mail

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

// NewMsg converts a Message into a go-mail message ready to be written as MIME
func NewMsg(m *Message) (*gomail.Msg, error) {
	charset := gomail.CharsetUTF8
	if m.Charset != "" && !strings.EqualFold(m.Charset, DefaultCharset) {
		charset = gomail.Charset(m.Charset)
	}

	msg := gomail.NewMsg(gomail.WithCharset(charset))

	if !m.From.IsZero() {
		if err := msg.From(m.From.String()); err != nil {
			return nil, fmt.Errorf("invalid from address: %w", err)
		}
	}
	if !m.Sender.IsZero() {
		msg.SetGenHeader(gomail.Header("Sender"), m.Sender.String())
	}
	if from := m.EnvelopeFrom(); !from.IsZero() {
		if err := msg.EnvelopeFrom(from.Email); err != nil {
			return nil, fmt.Errorf("invalid return path: %w", err)
		}
	}
	if len(m.ReplyTo) > 0 {
		msg.SetGenHeader(gomail.HeaderReplyTo, strings.Join(m.ReplyTo.Strings(), ", "))
	}

	for _, rcpt := range m.To {
		if err := msg.AddTo(rcpt.String()); err != nil {
			return nil, fmt.Errorf("invalid to address: %w", err)
		}
	}
	for _, rcpt := range m.Cc {
		if err := msg.AddCc(rcpt.String()); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	for _, rcpt := range m.Bcc {
		if err := msg.AddBcc(rcpt.String()); err != nil {
			return nil, fmt.Errorf("invalid bcc address: %w", err)
		}
	}

	msg.Subject(m.Subject)

	if m.Date.IsZero() {
		msg.SetDate()
	} else {
		msg.SetDateWithValue(m.Date)
	}

	if m.MessageID != "" {
		msg.SetMessageIDWithValue(m.MessageID)
	} else {
		msg.SetMessageID()
	}

	if m.Priority != 0 {
		msg.SetGenHeader(gomail.HeaderXPriority, m.Priority.String())
	}

	switch {
	case m.Text != "" && m.HTML != "":
		msg.SetBodyString(gomail.TypeTextPlain, m.Text)
		msg.AddAlternativeString(gomail.TypeTextHTML, m.HTML)
	case m.HTML != "":
		msg.SetBodyString(gomail.TypeTextHTML, m.HTML)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, m.Text)
	}

	for _, a := range m.Attachments {
		if err := attach(msg, a); err != nil {
			return nil, err
		}
	}

	return msg, nil
}

func attach(msg *gomail.Msg, a Attachment) error {
	var opts []gomail.FileOption
	if a.ContentType != "" {
		opts = append(opts, gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
	}

	if a.Path != "" {
		info, err := os.Stat(a.Path)
		if err != nil {
			return fmt.Errorf("failed to attach %q: %w", a.Path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("failed to attach %q: is a directory", a.Path)
		}
		if a.Name != "" {
			opts = append(opts, gomail.WithFileName(a.Name))
		}
		msg.AttachFile(a.Path, opts...)
		return nil
	}

	if err := msg.AttachReader(a.Filename(), bytes.NewReader(a.Content), opts...); err != nil {
		return fmt.Errorf("failed to attach %q: %w", a.Filename(), err)
	}
	return nil
}

// Bytes renders the message as RFC 5322 MIME
func (m *Message) Bytes() ([]byte, error) {
	msg, err := NewMsg(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write message: %w", err)
	}
	return buf.Bytes(), nil
}
