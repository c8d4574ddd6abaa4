package mail

import (
	"maps"
	"time"
)

// Mailable is a reusable, self-populating message.
//
// Implementations embed Base and fill it in Build:
//
//	type WelcomeMail struct {
//		mail.Base
//		User User
//	}
//
//	func (m *WelcomeMail) Build() {
//		m.To(mail.NewAddress(m.User.Name, m.User.Email)).
//			Subject("Welcome").
//			HTML("emails/welcome.html", map[string]any{"name": m.User.Name})
//	}
//
// A Mailable is sent through a Mailer, with mailer.Send(ctx, m) or
// mailer.To(addrs).Send(ctx, m). Base has no Send method of its own because
// Build is defined on the embedding type, which Base cannot reach.
type Mailable interface {
	// Build populates the mailable. It runs once, at the start of a send.
	Build()

	base() *Base
}

// Base holds the composition state of a Mailable
type Base struct {
	to         AddressList
	cc         AddressList
	bcc        AddressList
	replyTo    AddressList
	from       Address
	sender     Address
	returnPath Address
	subject    string
	date       time.Time
	priority   Priority
	files      []Attachment
	data       []Attachment
	html       string
	text       string
	view       View
	viewData   map[string]any
}

func (b *Base) base() *Base {
	return b
}

// To appends recipients; empty input is a no-op
func (b *Base) To(addrs AddressInput) *Base {
	b.to = append(b.to, normalize(addrs)...)
	return b
}

// Cc appends carbon copy recipients; empty input is a no-op
func (b *Base) Cc(addrs AddressInput) *Base {
	b.cc = append(b.cc, normalize(addrs)...)
	return b
}

// Bcc appends blind carbon copy recipients; empty input is a no-op
func (b *Base) Bcc(addrs AddressInput) *Base {
	b.bcc = append(b.bcc, normalize(addrs)...)
	return b
}

// ReplyTo appends reply-to addresses; empty input is a no-op
func (b *Base) ReplyTo(addrs AddressInput) *Base {
	b.replyTo = append(b.replyTo, normalize(addrs)...)
	return b
}

// From sets the from address
func (b *Base) From(addr Address) *Base {
	b.from = addr
	return b
}

// Sender sets the sender address
func (b *Base) Sender(addr Address) *Base {
	b.sender = addr
	return b
}

// ReturnPath sets the bounce address
func (b *Base) ReturnPath(addr Address) *Base {
	b.returnPath = addr
	return b
}

// Subject sets the subject line
func (b *Base) Subject(subject string) *Base {
	b.subject = subject
	return b
}

// Date sets the date header
func (b *Base) Date(date time.Time) *Base {
	b.date = date
	return b
}

// Priority sets the message priority
func (b *Base) Priority(priority Priority) *Base {
	b.priority = priority
	return b
}

// AttachFile attaches the file at path. Name and contentType may be empty.
func (b *Base) AttachFile(path, name, contentType string) *Base {
	b.files = append(b.files, Attachment{Path: path, Name: name, ContentType: contentType})
	return b
}

// AttachData attaches an in-memory payload. Name and contentType may be empty.
func (b *Base) AttachData(content []byte, name, contentType string) *Base {
	b.data = append(b.data, Attachment{Content: content, Name: name, ContentType: contentType})
	return b
}

// HTML sets the html template and merges data into the view data
func (b *Base) HTML(path string, data map[string]any) *Base {
	b.html = path
	b.mergeData(data)
	return b
}

// Text sets the plain text template and merges data into the view data
func (b *Base) Text(path string, data map[string]any) *Base {
	b.text = path
	b.mergeData(data)
	return b
}

// View sets both templates at once. Non-empty channels take precedence over HTML and Text.
func (b *Base) View(v View, data map[string]any) *Base {
	b.view = v
	b.mergeData(data)
	return b
}

func (b *Base) mergeData(data map[string]any) {
	if len(data) == 0 {
		return
	}
	if b.viewData == nil {
		b.viewData = make(map[string]any, len(data))
	}
	maps.Copy(b.viewData, data)
}

// buildView resolves the templates to render
func (b *Base) buildView() View {
	v := View{HTML: b.html, Text: b.text}
	if b.view.HTML != "" {
		v.HTML = b.view.HTML
	}
	if b.view.Text != "" {
		v.Text = b.view.Text
	}
	return v
}

// apply pushes the mailable's envelope and attachments onto the builder.
// Scalars overwrite the mailer defaults, recipients are appended.
func (b *Base) apply(mb MessageBuilder) {
	if !b.from.IsZero() {
		mb.From(b.from)
	}
	if !b.sender.IsZero() {
		mb.Sender(b.sender)
	}
	if !b.returnPath.IsZero() {
		mb.ReturnPath(b.returnPath)
	}
	if b.subject != "" {
		mb.Subject(b.subject)
	}
	if !b.date.IsZero() {
		mb.Date(b.date)
	}
	if b.priority != 0 {
		mb.Priority(b.priority)
	}

	mb.ReplyTo(b.replyTo)
	mb.To(b.to)
	mb.Cc(b.cc)
	mb.Bcc(b.bcc)

	for _, f := range b.files {
		mb.AttachFile(f.Path, f.Name, f.ContentType)
	}
	for _, d := range b.data {
		mb.AttachData(d.Content, d.Name, d.ContentType)
	}
}
