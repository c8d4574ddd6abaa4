package mail

import (
	"context"
	"fmt"

	"github.com/pixelvide/laravel-mail/pkg/telemetry"
	"github.com/pixelvide/laravel-mail/pkg/view"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/pixelvide/laravel-mail/pkg/mail"

// Mailer composes messages from views and mailables and hands them to a Transport.
//
// The always-defaults are plain fields; a Mailer must not be reconfigured
// while sends are in flight.
type Mailer struct {
	transport  Transport
	renderer   view.Renderer
	newBuilder func() MessageBuilder
	charset    string
	name       string
	tracer     trace.Tracer

	from       Address
	replyTo    Address
	returnPath Address
	to         AddressList
}

// Option configures a Mailer
type Option func(*Mailer)

// WithCharset sets the charset tagged on rendered content
func WithCharset(charset string) Option {
	return func(m *Mailer) {
		if charset != "" {
			m.charset = charset
		}
	}
}

// WithBuilder sets the factory used to create a MessageBuilder for every send
func WithBuilder(fn func() MessageBuilder) Option {
	return func(m *Mailer) {
		if fn != nil {
			m.newBuilder = fn
		}
	}
}

// WithTracer sets the tracer used for send spans
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Mailer) {
		if tracer != nil {
			m.tracer = tracer
		}
	}
}

// WithName sets the mailer name reported in logs and spans
func WithName(name string) Option {
	return func(m *Mailer) {
		m.name = name
	}
}

// New creates a Mailer delivering through transport and rendering with renderer
func New(transport Transport, renderer view.Renderer, opts ...Option) *Mailer {
	m := &Mailer{
		transport:  transport,
		renderer:   renderer,
		newBuilder: NewBuilder,
		charset:    DefaultCharset,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AlwaysFrom sets the from address applied to every message unless overridden
func (m *Mailer) AlwaysFrom(addr Address) *Mailer {
	m.from = addr
	return m
}

// AlwaysReplyTo sets the reply-to address applied to every message
func (m *Mailer) AlwaysReplyTo(addr Address) *Mailer {
	m.replyTo = addr
	return m
}

// AlwaysReturnPath sets the return path applied to every message unless overridden
func (m *Mailer) AlwaysReturnPath(addr Address) *Mailer {
	m.returnPath = addr
	return m
}

// AlwaysTo redirects every message to addrs, dropping any cc and bcc recipients
func (m *Mailer) AlwaysTo(addrs AddressInput) *Mailer {
	m.to = normalize(addrs)
	return m
}

// To starts a pending send with the given recipients
func (m *Mailer) To(addrs AddressInput) *PendingRecipients {
	return (&PendingRecipients{mailer: m}).To(addrs)
}

// Cc starts a pending send with the given carbon copy recipients
func (m *Mailer) Cc(addrs AddressInput) *PendingRecipients {
	return (&PendingRecipients{mailer: m}).Cc(addrs)
}

// Bcc starts a pending send with the given blind carbon copy recipients
func (m *Mailer) Bcc(addrs AddressInput) *PendingRecipients {
	return (&PendingRecipients{mailer: m}).Bcc(addrs)
}

// Send builds the mailable and sends it
func (m *Mailer) Send(ctx context.Context, mailable Mailable) error {
	return m.send(ctx, mailable, nil)
}

func (m *Mailer) send(ctx context.Context, mailable Mailable, extra func(*Base)) error {
	mailable.Build()

	b := mailable.base()
	if extra != nil {
		extra(b)
	}

	return m.SendView(ctx, b.buildView(), b.viewData, b.apply)
}

// SendView renders v with data and sends the result.
//
// The always-defaults are applied first so configure can override them.
// AlwaysTo is applied last and replaces whatever recipients were set.
func (m *Mailer) SendView(ctx context.Context, v View, data map[string]any, configure func(MessageBuilder)) error {
	ctx, span := m.tracer.Start(ctx, "mail.send", trace.WithAttributes(
		attribute.String("mail.mailer", m.name),
	))
	defer span.End()

	mb := m.buildEmail()

	if v.IsEmpty() {
		return m.fail(ctx, span, ErrInvalidView)
	}

	if configure != nil {
		configure(mb)
	}

	if err := m.addContent(mb, v, data); err != nil {
		return m.fail(ctx, span, err)
	}

	if len(m.to) > 0 {
		mb.ReplaceTo(m.to).ReplaceCc(nil).ReplaceBcc(nil)
	}

	msg := mb.Message()
	span.SetAttributes(
		attribute.String("mail.message_id", msg.MessageID),
		attribute.String("mail.subject", msg.Subject),
		attribute.Int("mail.recipients", len(msg.Recipients())),
	)

	if err := m.transport.Send(ctx, msg); err != nil {
		return m.fail(ctx, span, fmt.Errorf("%w: %w", ErrTransport, err))
	}

	telemetry.LoggerFromContext(ctx).Debug().
		Str("mailer", m.name).
		Str("message_id", msg.MessageID).
		Str("subject", msg.Subject).
		Strs("to", msg.To.Strings()).
		Msg("Email sent")

	return nil
}

func (m *Mailer) buildEmail() MessageBuilder {
	mb := m.newBuilder()

	if !m.from.IsZero() {
		mb.From(m.from)
	}
	if !m.replyTo.IsZero() {
		mb.ReplyTo(m.replyTo)
	}
	if !m.returnPath.IsZero() {
		mb.ReturnPath(m.returnPath)
	}

	return mb
}

func (m *Mailer) addContent(mb MessageBuilder, v View, data map[string]any) error {
	if v.HTML != "" {
		body, err := m.renderer.Render(v.HTML, data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}
		mb.HTML(body, m.charset)
	}

	if v.Text != "" {
		body, err := m.renderer.Render(v.Text, data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}
		mb.Text(body, m.charset)
	}

	return nil
}

func (m *Mailer) fail(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	telemetry.LoggerFromContext(ctx).Error().
		Err(err).
		Str("mailer", m.name).
		Msg("Failed to send email")

	return err
}
